package constants

// Hit-testing
const (
	// HitRadiusFrac scales the hit threshold with the terminal width,
	// tuned from a 30px radius at a 1400px window
	HitRadiusFrac = 30.0 / 1400.0

	// HitRadiusMin is the floor for the hit radius in cell-width units
	HitRadiusMin = 2.0
)

// Starfield backdrop
const (
	// StarfieldSeed keeps the generated backdrop deterministic across runs
	StarfieldSeed = 0x5EED574211

	StarCountDefault = 600

	// StarfieldRadius is the maximum star distance from the system center
	StarfieldRadius = 1200.0
)

// Gravity demo
const (
	// GravityDamping artificially slows the free-fall demo for visibility
	GravityDamping = 0.3

	// GravityDropHeight is the ball release height above the surface
	GravityDropHeight = 10.0
)

// Pointer motion scaling: one cell stands in for ~10 pixels
// horizontally and ~20 vertically, so drag sensitivity keeps the
// 0.5°/px feel at terminal granularity
const (
	CellPixelsX = 10.0
	CellPixelsY = 20.0
)

// Tooltip placement offsets in cells
const (
	TooltipOffsetX = 2
	TooltipOffsetY = 1
)
