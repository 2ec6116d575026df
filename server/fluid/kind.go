package fluid

import (
	"github.com/dm-vev/metafluids/server/material"
)

// PlasmaTemperatureOffset is added to the fluid temperature of a material to obtain the temperature of its plasma.
const PlasmaTemperatureOffset = 30000

// Kind is the variant of a material a fluid is generated for. Each material has at most one fluid per Kind.
type Kind uint8

const (
	// KindNormal is the regular liquid or gaseous form of a material.
	KindNormal Kind = iota
	// KindPlasma is the plasma form of a material.
	KindPlasma
)

// Kinds returns all fluid kinds.
func Kinds() []Kind {
	return []Kind{KindNormal, KindPlasma}
}

// Prefix returns the prefix put in front of the material ID to form the name of a fluid of this Kind.
func (k Kind) Prefix() string {
	switch k {
	case KindNormal:
		return ""
	case KindPlasma:
		return "plasma."
	}
	panic("unknown fluid kind")
}

// String ...
func (k Kind) String() string {
	switch k {
	case KindNormal:
		return "normal"
	case KindPlasma:
		return "plasma"
	}
	panic("unknown fluid kind")
}

// KindByName returns the Kind with the name passed, as returned by Kind.String.
func KindByName(name string) (Kind, bool) {
	for _, k := range Kinds() {
		if k.String() == name {
			return k, true
		}
	}
	return 0, false
}

// CanonicalName returns the name of the fluid of Kind k generated for m, such as "steam" or "plasma.helium".
func CanonicalName(m *material.Material, k Kind) string {
	return k.Prefix() + m.ID()
}

// Classify returns the physical state of the fluid of Kind k generated for m. Normal fluids are gases if the fluid
// form of the material is gaseous and liquids otherwise. Plasma fluids are always plasma.
func Classify(m *material.Material, k Kind) State {
	switch k {
	case KindPlasma:
		return StatePlasma
	default:
		if m.IsGaseous() {
			return StateGas
		}
		return StateLiquid
	}
}

// Temperature returns the temperature in kelvin of the fluid of Kind k generated for m.
func Temperature(m *material.Material, k Kind) int {
	if k == KindPlasma {
		return m.BaseTemperature() + PlasmaTemperatureOffset
	}
	return m.BaseTemperature()
}
