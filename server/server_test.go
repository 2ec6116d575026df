package server

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dm-vev/metafluids/server/block"
	"github.com/dm-vev/metafluids/server/fluid"
	"github.com/dm-vev/metafluids/server/material"
	"github.com/pelletier/go-toml"
)

type countingRenderer struct {
	n int
}

func (r *countingRenderer) RegisterTextureHandle(fluid.Texture) { r.n++ }

func TestNewDefaultServer(t *testing.T) {
	renderer := &countingRenderer{}
	srv := Config{Renderer: renderer}.New()

	if !srv.Fluids().Frozen() {
		t.Fatalf("expected registry to be frozen after startup")
	}
	if renderer.n != srv.Sprites().Len() {
		t.Fatalf("expected %d textures registered with renderer, got %d", srv.Sprites().Len(), renderer.n)
	}
	ethanol, ok := srv.Fluid("bio.ethanol")
	if ok {
		t.Fatalf("bio.ethanol is not registered by anyone, got %v", ethanol.Name())
	}
	water, ok := srv.Fluid("water")
	if !ok || !water.External() {
		t.Fatalf("expected vanilla water to be adopted")
	}
	if b, ok := water.Block(); !ok {
		t.Fatalf("expected vanilla water to keep its block")
	} else if name, _ := b.EncodeBlock(); name != "minecraft:water" {
		t.Fatalf("expected vanilla water block, got %v", name)
	}
	// Steam, oil and natural gas ask for a block. Water and lava already have one.
	if srv.Palette().Len() != 3*(block.MaxLiquidDepth+1) {
		t.Fatalf("unexpected palette size %d", srv.Palette().Len())
	}
	for _, s := range srv.Palette().States() {
		if s.Name == "gregtech:fluid.water" || s.Name == "gregtech:fluid.lava" {
			t.Fatalf("vanilla fluid got a second block %v", s.Name)
		}
	}
	if _, err := srv.Fluids().GetOrCreateFluid(&material.Material{Name: "Late", Fluid: &material.FluidProperty{}}, fluid.KindNormal, false); !errors.Is(err, fluid.ErrFrozen) {
		t.Fatalf("expected ErrFrozen, got %v", err)
	}
}

func TestNewLateRegistration(t *testing.T) {
	srv := Config{AllowLateRegistration: true, DisableDefaults: true}.New()
	if srv.Fluids().Frozen() {
		t.Fatalf("registry must stay open with late registration")
	}
	rec, err := srv.Fluids().GetOrCreateFluid(&material.Material{Name: "Late", Fluid: &material.FluidProperty{}}, fluid.KindNormal, false)
	if err != nil {
		t.Fatalf("late registration: %v", err)
	}
	if _, ok := srv.Host().Fluid(rec.Name()); !ok {
		t.Fatalf("late fluid was not registered with the host")
	}
}

func TestUserConfig(t *testing.T) {
	data, err := toml.Marshal(DefaultConfig())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var defaults UserConfig
	if err := toml.Unmarshal(data, &defaults); err != nil {
		t.Fatalf("unmarshal defaults: %v", err)
	}
	if !defaults.Fluids.RegisterDefaults || !defaults.Palette.Export || defaults.Palette.File != "fluid_palette.nbt" {
		t.Fatalf("defaults lost in round trip: %+v", defaults)
	}

	contents := `
[Fluids]
RegisterDefaults = true

[Fluids.Aliases]
honey = "forestry.honey"
" " = "ignored"

[Fluids.Textures]
"plasma.iron" = "gregtech:blocks/fluids/fluid.iron.plasma"
`
	var decoded UserConfig
	if err := toml.Unmarshal([]byte(contents), &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	conf, err := decoded.Config(nil)
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	if len(conf.Aliases) != 1 || conf.Aliases["honey"] != "forestry.honey" {
		t.Fatalf("unexpected aliases %v", conf.Aliases)
	}

	ns := fluid.NewNamespace()
	ns.RegisterExternal("forestry.honey", fluid.StateLiquid)
	conf.Host = ns
	srv := conf.New()

	honey, _ := srv.Fluid("honey")
	if honey.Name() != "forestry.honey" {
		t.Fatalf("expected honey to adopt forestry.honey, got %v", honey.Name())
	}
	iron, _ := srv.Fluid("plasma.iron")
	if iron.Texture().String() != "gregtech:blocks/fluids/fluid.iron.plasma" {
		t.Fatalf("unexpected plasma iron texture %v", iron.Texture())
	}
}

func TestUserConfigUnknownTexture(t *testing.T) {
	for _, name := range []string{"unobtainium", "plasma.copper", "diamond"} {
		uc := DefaultConfig()
		uc.Fluids.Textures[name] = "minecraft:blocks/stone"
		if _, err := uc.Config(nil); !errors.Is(err, ErrUnknownFluid) {
			t.Fatalf("%v: expected ErrUnknownFluid, got %v", name, err)
		}
	}
}

func TestUserConfigCatalogFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "materials.yaml")
	contents := "materials:\n  - name: Mercury\n    colour: \"#c0c0c0\"\n    icon_set: fluid\n    fluid:\n      temperature: 234\n      block: true\n"
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	uc := DefaultConfig()
	uc.Catalog.File = path
	conf, err := uc.Config(nil)
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	srv := conf.New()
	mercury, ok := srv.Fluid("mercury")
	if !ok || mercury.Temperature() != 234 {
		t.Fatalf("expected mercury at 234K, got %v", mercury)
	}

	out := filepath.Join(dir, "out", "palette.nbt")
	if err := srv.ExportPalette(out); err != nil {
		t.Fatalf("export: %v", err)
	}
	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	states, err := block.ReadPalette(f)
	if err != nil {
		t.Fatalf("read palette: %v", err)
	}
	if len(states) != block.MaxLiquidDepth+1 || states[0].Name != "gregtech:fluid.mercury" {
		t.Fatalf("unexpected exported palette %v", states)
	}

	uc.Catalog.File = filepath.Join(dir, "missing.toml")
	if _, err := uc.Config(nil); err == nil {
		t.Fatalf("expected error for missing catalog file")
	}
}
