package fluid

// State is the physical state of a fluid. The physical properties of a fluid depend only on its State.
type State uint8

const (
	// StateLiquid is the state of fluids that flow downwards.
	StateLiquid State = iota
	// StateGas is the state of gaseous fluids, which rise instead of sink.
	StateGas
	// StatePlasma is the state of plasma fluids.
	StatePlasma
)

// Properties holds the physical simulation properties of a fluid.
type Properties struct {
	// Gaseous specifies if the fluid behaves like a gas.
	Gaseous bool
	// Density is the density of the fluid in kg/m³. Negative densities make the fluid rise.
	Density int
	// Viscosity is the resistance of the fluid against flowing.
	Viscosity int
	// Luminosity is the light level emitted by the fluid, between 0 and 15.
	Luminosity int
}

// DefaultProperties are the properties of a fluid before any state specific properties are applied, which are also
// the properties of fluids registered by other subsystems that do not specify their own.
var DefaultProperties = Properties{Density: 1000, Viscosity: 1000}

// Properties returns the physical properties of fluids in the State.
func (s State) Properties() Properties {
	p := DefaultProperties
	switch s {
	case StateLiquid:
		p.Gaseous = false
		p.Viscosity = 1000
	case StateGas:
		p.Gaseous = true
		p.Density = -100
		p.Viscosity = 200
	case StatePlasma:
		p.Gaseous = true
		p.Density = 55536
		p.Viscosity = 10
		p.Luminosity = 15
	default:
		panic("unknown fluid state")
	}
	return p
}

// LocalePrefix returns the translation key wrapped around the localised material name for fluids in the State. False
// is returned if the material name is used as is.
func (s State) LocalePrefix() (string, bool) {
	if s == StatePlasma {
		return "gregtech.fluid.plasma", true
	}
	return "", false
}

// String ...
func (s State) String() string {
	switch s {
	case StateLiquid:
		return "liquid"
	case StateGas:
		return "gas"
	case StatePlasma:
		return "plasma"
	}
	panic("unknown fluid state")
}
