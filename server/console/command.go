package console

import (
	"slices"
	"strconv"
	"strings"

	"github.com/dm-vev/metafluids/server"
	"github.com/dm-vev/metafluids/server/colour"
	"github.com/dm-vev/metafluids/server/fluid"
	"github.com/dm-vev/metafluids/server/material"
)

// command is a read-only console command. Commands never modify the server.
type command struct {
	name        string
	usage       string
	description string
	aliases     []string
	run         func(srv *server.Server, args []string, o *Output)
}

func commands() []command {
	return []command{
		{name: "fluid", usage: "fluid <name>", description: "Shows a fluid by canonical or registered name.", run: runFluid},
		{name: "material", usage: "material <fluid>", description: "Shows the material a fluid was generated for.", run: runMaterial},
		{name: "list", usage: "list", description: "Lists the canonical names of all fluids.", aliases: []string{"fluids"}, run: runList},
		{name: "checksum", usage: "checksum", description: "Shows the checksum of the fluid registry.", run: runChecksum},
		{name: "gradient", usage: "gradient <rrggbb> <delta>", description: "Shows a darker and lighter shade of a colour.", run: runGradient},
	}
}

func byAlias(cmds []command, name string) (command, bool) {
	name = strings.ToLower(name)
	i := slices.IndexFunc(cmds, func(c command) bool {
		return c.name == name || slices.Contains(c.aliases, name)
	})
	if i == -1 {
		return command{}, false
	}
	return cmds[i], true
}

func runHelp(cmds []command, o *Output) {
	o.Printf("%d commands available:", len(cmds)+1)
	for _, c := range cmds {
		o.Printf("%s - %s", c.usage, c.description)
	}
	o.Print("help - Lists all commands.")
}

func runFluid(srv *server.Server, args []string, o *Output) {
	if len(args) != 1 {
		o.Error("usage: fluid <name>")
		return
	}
	rec, ok := srv.Fluid(args[0])
	if !ok {
		o.Errorf("fluid %v: %w", args[0], fluid.ErrNotFound)
		return
	}
	o.Printf("%s (%s)", rec.Name(), fluid.DisplayName(rec))
	o.Printf("State: %v | Temperature: %dK | Colour: #%08x", rec.State(), rec.Temperature(), rec.Colour())
	p := rec.Properties()
	o.Printf("Density: %d | Viscosity: %d | Luminosity: %d | Gaseous: %v", p.Density, p.Viscosity, p.Luminosity, p.Gaseous)
	o.Printf("Texture: %v", rec.Texture())
	if b, ok := rec.Block(); ok {
		name, _ := b.EncodeBlock()
		if rid, ok := srv.Palette().RuntimeID(b); ok {
			o.Printf("Block: %s (runtime ID %d)", name, rid)
		} else {
			o.Printf("Block: %s", name)
		}
	}
	if formula, ok := srv.Fluids().Tooltips().Lookup(rec.Name()); ok {
		o.Printf("Formula: %s", formula)
	}
	if rec.External() {
		o.Print("Registered by another subsystem.")
	}
}

func runMaterial(srv *server.Server, args []string, o *Output) {
	if len(args) != 1 {
		o.Error("usage: material <fluid>")
		return
	}
	rec, ok := srv.Fluid(args[0])
	if !ok {
		o.Errorf("fluid %v: %w", args[0], fluid.ErrNotFound)
		return
	}
	m, err := srv.Fluids().MaterialFor(rec)
	if err != nil {
		o.Errorf("%w", err)
		return
	}
	o.Printf("%s (%s)", m.Name, m.ID())
	o.Printf("Colour: #%06x | Icon set: %v | Temperature: %dK", m.BaseColour(), m.IconSet, m.BaseTemperature())
	if formula := m.ChemicalFormula(); formula != "" {
		o.Printf("Formula: %s", formula)
	}
	o.Printf("Gaseous: %v | Plasma: %v | Ore: %v", m.IsGaseous(), m.HasPlasma(), m.Ore)
}

func runList(srv *server.Server, _ []string, o *Output) {
	names := srv.Fluids().CanonicalNames()
	o.Printf("There are %d fluids registered.", len(names))
	if len(names) != 0 {
		o.Print(strings.Join(names, ", "))
	}
}

func runChecksum(srv *server.Server, _ []string, o *Output) {
	o.Printf("Checksum: %016x", srv.Fluids().Checksum())
}

func runGradient(_ *server.Server, args []string, o *Output) {
	if len(args) != 2 {
		o.Error("usage: gradient <rrggbb> <delta>")
		return
	}
	rgb, err := material.ParseColour(args[0])
	if err != nil {
		o.Errorf("%w", err)
		return
	}
	delta, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		o.Errorf("delta %q: %w", args[1], err)
		return
	}
	darker, lighter := colour.GradientRGB(rgb, delta)
	h, s, l := colour.RGBToHSL(colour.FromRGB(rgb))
	o.Printf("HSL: %.1f, %.1f%%, %.1f%%", h, s, l)
	o.Printf("Darker: #%06x | Lighter: #%06x", darker, lighter)
}
