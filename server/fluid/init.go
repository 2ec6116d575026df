package fluid

import (
	"fmt"

	"github.com/dm-vev/metafluids/server/material"
)

// Init runs the startup pass over the catalog passed. For every material with a fluid form, the normal fluid is
// registered, with a block if the material asks for one, followed by the plasma if the material has a plasma form.
// The chemical formula of the material becomes the tooltip of both fluids.
//
// The whole pass is published at once: lookups done concurrently see either none or all of its fluids. Init returns
// the amount of fluids created by the pass.
func (r *Registry) Init(c *material.Catalog) (int, error) {
	if r.closed() {
		return 0, fmt.Errorf("init fluids: %w", ErrFrozen)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed() {
		return 0, fmt.Errorf("init fluids: %w", ErrFrozen)
	}

	idx := r.index.Load().clone()
	before := idx.created
	for m := range c.Materials() {
		if !m.HasFluid() {
			continue
		}
		rec := r.register(idx, m, KindNormal, m.Fluid.Block)
		r.conf.Tooltips.Register(rec.Name(), m.ChemicalFormula())

		if m.HasPlasma() {
			rec = r.register(idx, m, KindPlasma, false)
			r.conf.Tooltips.Register(rec.Name(), m.ChemicalFormula())
		}
	}
	r.index.Store(idx)

	r.log.Debug("Registered material fluids.", "materials", c.Len(), "created", idx.created-before, "fluids", len(idx.fluids))
	return idx.created - before, nil
}

// DefaultAlternativeNames maps material names to the names other mods register the same fluid under.
var DefaultAlternativeNames = map[string]string{
	"Ethanol": "bio.ethanol",
	"Honey":   "for.honey",
	"SeedOil": "seed.oil",
	"Ice":     "fluid.ice",
	"Diesel":  "fuel",
}

// defaultTextures lists the materials whose normal fluid has a texture named after the material.
var defaultTextures = []string{
	"Air", "Deuterium", "Tritium", "Helium", "Helium3", "Fluorine", "TitaniumTetrachloride", "Steam", "OilHeavy",
	"OilMedium", "OilLight", "HydrogenSulfide", "SulfuricGas", "RefineryGas", "SulfuricNaphtha", "SulfuricLightFuel",
	"SulfuricHeavyFuel", "Naphtha", "LightFuel", "HeavyFuel", "LPG", "SteamCrackedLightFuel", "SteamCrackedHeavyFuel",
	"Chlorine", "NitroDiesel", "SodiumPersulfate", "GlycerylTrinitrate", "Lubricant", "Creosote", "SeedOil", "Oil",
	"Diesel", "Honey", "Biomass", "Ethanol", "SulfuricAcid", "Milk", "McGuffium239", "Glue", "HydrochloricAcid",
	"LeadZincSolution", "NaturalGas", "Blaze",
}

// RegisterDefaults installs the stock alternate names and textures for the materials of the catalog passed. It must
// be called before Init for the defaults to take effect. Materials not present in the catalog are skipped.
func (r *Registry) RegisterDefaults(c *material.Catalog) {
	for name, alt := range DefaultAlternativeNames {
		if m, ok := c.ByName(name); ok {
			r.conf.Aliases.SetAlternativeName(m, KindNormal, alt)
		}
	}
	textures := r.conf.Textures
	for _, name := range defaultTextures {
		if m, ok := c.ByName(name); ok {
			textures.SetDefaultTexture(m, KindNormal)
		}
	}
	if m, ok := c.ByName("Helium"); ok {
		textures.SetDefaultTexture(m, KindPlasma)
	}
	if m, ok := c.ByName("DistilledWater"); ok {
		textures.SetTexture(m, KindNormal, ParseTexture("minecraft:blocks/water_still"))
	}
}
