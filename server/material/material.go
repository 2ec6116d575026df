// Package material holds the materials fluids and other derived content are generated from, together with the
// catalog they are loaded into at startup.
package material

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultFluidTemperature is the temperature in kelvin of a fluid whose material does not specify one.
const DefaultFluidTemperature = 300

// Material is a substance such as a chemical element or compound. A Material is immutable once it has been added to
// a Catalog.
type Material struct {
	// Name is the stable name of the material, such as "Steam" or "DistilledWater".
	Name string
	// Colour is the base colour of the material as 0xRRGGBB.
	Colour uint32
	// IconSet is the visual family of the material.
	IconSet IconSet
	// Formula is the chemical formula of the material. It may be empty.
	Formula string
	// Ore specifies if the material generates as an ore.
	Ore bool
	// Fluid is non-nil if the material has a fluid form.
	Fluid *FluidProperty
	// Plasma is non-nil if the material has a plasma form. Plasma is only honoured for materials that also have a
	// Fluid property.
	Plasma *PlasmaProperty
}

// FluidProperty describes the fluid form of a material.
type FluidProperty struct {
	// Gas specifies if the fluid is gaseous rather than liquid.
	Gas bool
	// Temperature is the temperature of the fluid in kelvin. If 0, DefaultFluidTemperature is used.
	Temperature int
	// Block specifies if a placeable fluid block should be generated for the fluid.
	Block bool
}

// PlasmaProperty marks that a material has a plasma form. The plasma temperature is derived from the fluid
// temperature of the material.
type PlasmaProperty struct{}

// ID returns the registry key of the material: its name in lower snake case, so "DistilledWater" becomes
// "distilled_water".
func (m *Material) ID() string {
	return foldName(m.Name)
}

// String returns the ID of the material.
func (m *Material) String() string {
	return m.ID()
}

// UnlocalizedName returns the translation key of the material.
func (m *Material) UnlocalizedName() string {
	return "gregtech.material." + m.ID()
}

// HasFluid reports if the material has a fluid form.
func (m *Material) HasFluid() bool {
	return m != nil && m.Fluid != nil
}

// HasPlasma reports if the material has a plasma form.
func (m *Material) HasPlasma() bool {
	return m.HasFluid() && m.Plasma != nil
}

// IsGaseous reports if the fluid form of the material is a gas. It returns false for materials without a fluid
// form.
func (m *Material) IsGaseous() bool {
	return m.HasFluid() && m.Fluid.Gas
}

// BaseTemperature returns the temperature of the fluid form of the material in kelvin.
func (m *Material) BaseTemperature() int {
	if !m.HasFluid() || m.Fluid.Temperature == 0 {
		return DefaultFluidTemperature
	}
	return m.Fluid.Temperature
}

// BaseColour returns the base colour of the material as 0xRRGGBB.
func (m *Material) BaseColour() uint32 {
	return m.Colour & 0xffffff
}

// ChemicalFormula returns the chemical formula of the material.
func (m *Material) ChemicalFormula() string {
	return m.Formula
}

// foldName converts a material or icon set name to lower snake case. Word boundaries are upper case letters that
// follow a lower case letter or digit, and runs of spaces, dashes and underscores.
func foldName(name string) string {
	name = strings.TrimSpace(name)
	var b strings.Builder
	b.Grow(len(name) + 4)

	var prev rune
	for _, r := range name {
		switch {
		case r == ' ' || r == '-' || r == '_':
			if b.Len() > 0 && prev != '_' {
				b.WriteByte('_')
				prev = '_'
			}
			continue
		case unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev)):
			b.WriteByte('_')
		}
		b.WriteRune(r)
		prev = r
	}
	return strings.TrimSuffix(cases.Lower(language.Und).String(b.String()), "_")
}
