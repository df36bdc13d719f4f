package constants

// Default overview camera pose
const (
	DefaultCameraDistance = 250.0
	DefaultCameraPitch    = 30.0
	DefaultCameraYaw      = 45.0
	DefaultCameraZoom     = 1.0
)

// Camera manipulation limits
const (
	// PitchLimit keeps the pitch strictly inside ±90° to avoid gimbal lock
	PitchLimit = 89.0

	// DragSensitivity is degrees of rotation per cell of pointer travel
	DragSensitivity = 0.5

	// ZoomInFactor and ZoomOutFactor scale zoom per wheel notch
	ZoomInFactor  = 0.9
	ZoomOutFactor = 1.1

	ZoomMin = 0.1
	ZoomMax = 5.0
)

// Focus transition parameters
const (
	// AnimationStep is the per-tick progress increment (~0.8s at 60Hz)
	AnimationStep = 0.02

	// FocusDistanceScale multiplies body radius for the inspection distance
	FocusDistanceScale = 3.5

	// FocusDistanceMin keeps small bodies framed at a sane distance
	FocusDistanceMin = 15.0

	FocusPitch = 20.0
	FocusYaw   = 45.0
	FocusZoom  = 1.0

	// FocusRenderScale enlarges the focused body for inspection
	FocusRenderScale = 4.0
)
