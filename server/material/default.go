package material

// DefaultMaterials returns the materials shipped with the server. They are used when no catalog file is configured
// and cover the materials the stock fluid textures and alternate fluid names refer to.
func DefaultMaterials() []Material {
	return []Material{
		{Name: "Water", Colour: 0x0000ff, IconSet: Fluid(), Formula: "H2O", Fluid: &FluidProperty{Block: true}},
		{Name: "Lava", Colour: 0xff4000, IconSet: Fluid(), Fluid: &FluidProperty{Temperature: 1300, Block: true}},
		{Name: "DistilledWater", Colour: 0x0000ff, IconSet: Fluid(), Formula: "H2O", Fluid: &FluidProperty{}},
		{Name: "Steam", Colour: 0xc4c4c4, IconSet: Gas(), Formula: "H2O", Fluid: &FluidProperty{Gas: true, Temperature: 400, Block: true}},
		{Name: "Air", Colour: 0xa9d0f5, IconSet: Gas(), Fluid: &FluidProperty{Gas: true}},
		{Name: "Hydrogen", Colour: 0x0000b5, IconSet: Gas(), Formula: "H", Fluid: &FluidProperty{Gas: true}, Plasma: &PlasmaProperty{}},
		{Name: "Deuterium", Colour: 0xffffb9, IconSet: Gas(), Formula: "D", Fluid: &FluidProperty{Gas: true}},
		{Name: "Tritium", Colour: 0xff5050, IconSet: Gas(), Formula: "T", Fluid: &FluidProperty{Gas: true}},
		{Name: "Helium", Colour: 0xfcff90, IconSet: Gas(), Formula: "He", Fluid: &FluidProperty{Gas: true}, Plasma: &PlasmaProperty{}},
		{Name: "Helium3", Colour: 0xfcffd7, IconSet: Gas(), Formula: "He_3", Fluid: &FluidProperty{Gas: true}},
		{Name: "Nitrogen", Colour: 0x00bfc1, IconSet: Gas(), Formula: "N", Fluid: &FluidProperty{Gas: true}, Plasma: &PlasmaProperty{}},
		{Name: "Oxygen", Colour: 0x4cc3ff, IconSet: Gas(), Formula: "O", Fluid: &FluidProperty{Gas: true}, Plasma: &PlasmaProperty{}},
		{Name: "Iron", Colour: 0xc8c8c8, IconSet: Metallic(), Formula: "Fe", Ore: true, Fluid: &FluidProperty{Temperature: 1811}, Plasma: &PlasmaProperty{}},
		{Name: "Copper", Colour: 0xff6400, IconSet: Shiny(), Formula: "Cu", Ore: true, Fluid: &FluidProperty{Temperature: 1357}},
		{Name: "Ethanol", Colour: 0xfc4c04, IconSet: Dull(), Formula: "C2H6O", Fluid: &FluidProperty{}},
		{Name: "Honey", Colour: 0xfac800, IconSet: Fluid(), Fluid: &FluidProperty{}},
		{Name: "SeedOil", Colour: 0xc4ff00, IconSet: Fluid(), Fluid: &FluidProperty{}},
		{Name: "Ice", Colour: 0xc8c8ff, IconSet: Shiny(), Formula: "H2O", Fluid: &FluidProperty{Temperature: 273}},
		{Name: "Diesel", Colour: 0xfcf404, IconSet: Dull(), Fluid: &FluidProperty{}},
		{Name: "Oil", Colour: 0x0a0a0a, IconSet: Fluid(), Fluid: &FluidProperty{Block: true}},
		{Name: "NaturalGas", Colour: 0xffffff, IconSet: Gas(), Fluid: &FluidProperty{Gas: true, Block: true}},
		{Name: "SulfuricAcid", Colour: 0xff8000, IconSet: Fluid(), Formula: "H2SO4", Fluid: &FluidProperty{}},
		{Name: "Lubricant", Colour: 0xffc400, IconSet: Fluid(), Fluid: &FluidProperty{}},
		{Name: "Diamond", Colour: 0xc8ffff, IconSet: Diamond(), Formula: "C", Ore: true},
	}
}

// DefaultCatalog returns a Catalog holding DefaultMaterials.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(DefaultMaterials()...)
	if err != nil {
		panic("material: default catalog invalid: " + err.Error())
	}
	return c
}
