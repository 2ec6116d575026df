package material

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestMaterialID(t *testing.T) {
	tests := map[string]string{
		"Steam":           "steam",
		"DistilledWater":  "distilled_water",
		"distilled water": "distilled_water",
		"Helium3":         "helium3",
		"LPG":             "lpg",
		" Seed-Oil ":      "seed_oil",
		"gem_horizontal":  "gem_horizontal",
	}
	for name, want := range tests {
		m := &Material{Name: name}
		if got := m.ID(); got != want {
			t.Fatalf("ID of %q = %q, want %q", name, got, want)
		}
	}
}

func TestMaterialCapabilities(t *testing.T) {
	steam := &Material{Name: "Steam", Fluid: &FluidProperty{Gas: true, Temperature: 400}}
	if !steam.HasFluid() || !steam.IsGaseous() || steam.HasPlasma() {
		t.Fatalf("unexpected capabilities for steam: %+v", steam)
	}
	if steam.BaseTemperature() != 400 {
		t.Fatalf("expected temperature 400, got %d", steam.BaseTemperature())
	}

	stone := &Material{Name: "Stone", Plasma: &PlasmaProperty{}}
	if stone.HasFluid() || stone.HasPlasma() || stone.IsGaseous() {
		t.Fatalf("material without fluid must not report fluid capabilities")
	}
	if stone.BaseTemperature() != DefaultFluidTemperature {
		t.Fatalf("expected default temperature, got %d", stone.BaseTemperature())
	}
}

func TestNewCatalogRejectsDuplicates(t *testing.T) {
	_, err := NewCatalog(Material{Name: "DistilledWater"}, Material{Name: "distilled_water"})
	if !errors.Is(err, ErrDuplicateMaterial) {
		t.Fatalf("expected ErrDuplicateMaterial, got %v", err)
	}
}

func TestNewCatalogRejectsPlasmaWithoutFluid(t *testing.T) {
	_, err := NewCatalog(Material{Name: "Sun", Plasma: &PlasmaProperty{}})
	if !errors.Is(err, ErrInvalidMaterial) {
		t.Fatalf("expected ErrInvalidMaterial, got %v", err)
	}
}

func TestNewCatalogCopiesMaterials(t *testing.T) {
	prop := &FluidProperty{Temperature: 500}
	c, err := NewCatalog(Material{Name: "Oil", Fluid: prop})
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}
	prop.Temperature = 900

	m, ok := c.ByName("oil")
	if !ok {
		t.Fatalf("expected oil in catalog")
	}
	if m.BaseTemperature() != 500 {
		t.Fatalf("catalog material changed after insertion: %d", m.BaseTemperature())
	}
}

func TestLoadCatalogTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "materials.toml")
	writeFile(t, path, `
[[material]]
name = "Steam"
colour = "#C4C4C4"
icon_set = "gas"
formula = "H2O"
  [material.fluid]
  gas = true
  temperature = 400
  block = true

[[material]]
name = "Helium"
colour = "0xFCFF90"
plasma = true
  [material.fluid]
  gas = true

[[material]]
name = "Diamond"
icon_set = "Diamond"
ore = true
`)
	c, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	if c.Len() != 3 {
		t.Fatalf("expected 3 materials, got %d", c.Len())
	}
	steam, _ := c.ByName("Steam")
	if steam.Colour != 0xc4c4c4 || steam.IconSet != Gas() || !steam.IsGaseous() || steam.BaseTemperature() != 400 || !steam.Fluid.Block {
		t.Fatalf("steam decoded incorrectly: %+v %+v", steam, steam.Fluid)
	}
	helium, _ := c.ByName("helium")
	if !helium.HasPlasma() || helium.IconSet != Dull() {
		t.Fatalf("helium decoded incorrectly: %+v", helium)
	}
	diamond, _ := c.ByName("diamond")
	if diamond.HasFluid() || !diamond.Ore || diamond.IconSet != Diamond() {
		t.Fatalf("diamond decoded incorrectly: %+v", diamond)
	}

	var order []string
	for m := range c.Materials() {
		order = append(order, m.ID())
	}
	if len(order) != 3 || order[0] != "steam" || order[1] != "helium" || order[2] != "diamond" {
		t.Fatalf("unexpected iteration order: %v", order)
	}
}

func TestLoadCatalogYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "materials.yaml")
	writeFile(t, path, `
materials:
  - name: Ethanol
    colour: "#FC4C04"
    formula: C2H6O
    fluid:
      temperature: 295
  - name: Nitrogen
    icon_set: gas
    plasma: true
    fluid:
      gas: true
`)
	c, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	ethanol, ok := c.ByName("ethanol")
	if !ok || ethanol.ChemicalFormula() != "C2H6O" || ethanol.BaseTemperature() != 295 || ethanol.IsGaseous() {
		t.Fatalf("ethanol decoded incorrectly: %+v", ethanol)
	}
	nitrogen, ok := c.ByName("Nitrogen")
	if !ok || !nitrogen.HasPlasma() || !nitrogen.IsGaseous() {
		t.Fatalf("nitrogen decoded incorrectly: %+v", nitrogen)
	}
}

func TestLoadCatalogUnknownIconSet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "materials.toml")
	writeFile(t, path, "[[material]]\nname = \"Foo\"\nicon_set = \"sparkly\"\n")
	if _, err := LoadCatalog(path); !errors.Is(err, ErrInvalidMaterial) {
		t.Fatalf("expected ErrInvalidMaterial, got %v", err)
	}
}

func TestParseColour(t *testing.T) {
	for _, s := range []string{"#8B5A2B", "0x8b5a2b", "8B5A2B"} {
		c, err := ParseColour(s)
		if err != nil || c != 0x8b5a2b {
			t.Fatalf("ParseColour(%q) = %#x, %v", s, c, err)
		}
	}
	for _, s := range []string{"", "#123", "#GGGGGG"} {
		if _, err := ParseColour(s); err == nil {
			t.Fatalf("expected error parsing %q", s)
		}
	}
}

func TestIconSetNames(t *testing.T) {
	sets := IconSets()
	if len(sets) != 27 {
		t.Fatalf("expected 27 icon sets, got %d", len(sets))
	}
	for i, s := range sets {
		if int(s.Uint8()) != i {
			t.Fatalf("icon set %v has index %d, want %d", s, s.Uint8(), i)
		}
		got, ok := IconSetByName(s.String())
		if !ok || got != s {
			t.Fatalf("IconSetByName(%q) = %v, %v", s.String(), got, ok)
		}
	}
	if got, ok := IconSetByName("GemHorizontal"); !ok || got != GemHorizontal() {
		t.Fatalf("expected GemHorizontal to resolve, got %v, %v", got, ok)
	}
}

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()
	if c.Len() != len(DefaultMaterials()) {
		t.Fatalf("expected %d materials, got %d", len(DefaultMaterials()), c.Len())
	}
	if _, ok := c.ByName("DistilledWater"); !ok {
		t.Fatalf("expected distilled water in default catalog")
	}
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("write %v: %v", path, err)
	}
}
