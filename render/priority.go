package render

// RenderPriority orders renderer execution, low draws first
type RenderPriority int

const (
	PriorityBackdrop RenderPriority = 100
	PriorityOrbits   RenderPriority = 150
	PriorityEntities RenderPriority = 200
	PriorityEffects  RenderPriority = 300
	PriorityUI       RenderPriority = 400
	PriorityOverlay  RenderPriority = 500
)
