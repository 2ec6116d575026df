package block

import (
	"github.com/dm-vev/metafluids/server/fluid"
)

// MaxLiquidDepth is the highest liquid depth a fluid block may have. A depth of 0 is a source block.
const MaxLiquidDepth = 15

// Fluid is the world block of a fluid generated from a material.
type Fluid struct {
	// Name is the identifier of the block, such as "gregtech:fluid.steam".
	Name string
	// Fluid is the fluid the block holds.
	Fluid *fluid.Record
	// Depth is the liquid depth of the block. Source blocks have a depth of 0.
	Depth int
}

// LightEmissionLevel returns the light level emitted by the fluid.
func (f Fluid) LightEmissionLevel() uint8 {
	return uint8(f.Fluid.Properties().Luminosity)
}

// Gaseous checks if the block spreads upwards rather than downwards.
func (f Fluid) Gaseous() bool {
	return f.Fluid.Properties().Gaseous
}

// WithDepth returns the block with its liquid depth set to depth, clamped to the range valid for fluid blocks.
func (f Fluid) WithDepth(depth int) Fluid {
	f.Depth = min(max(depth, 0), MaxLiquidDepth)
	return f
}

// EncodeBlock ...
func (f Fluid) EncodeBlock() (name string, properties map[string]any) {
	return f.Name, map[string]any{
		"fluid":        f.Fluid.Name(),
		"liquid_depth": int32(f.Depth),
	}
}

// allDepths returns the fluid block f at every liquid depth.
func allDepths(f Fluid) (b []Fluid) {
	for depth := 0; depth <= MaxLiquidDepth; depth++ {
		b = append(b, f.WithDepth(depth))
	}
	return
}
