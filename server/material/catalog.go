package material

import (
	"errors"
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

var (
	// ErrDuplicateMaterial is returned when two materials in a catalog share the same ID.
	ErrDuplicateMaterial = errors.New("duplicate material")
	// ErrInvalidMaterial is returned when a material in a catalog cannot be used.
	ErrInvalidMaterial = errors.New("invalid material")
)

// Catalog is an ordered, immutable collection of materials. Materials are iterated in the order they were added,
// which is the order derived content such as fluids is registered in.
type Catalog struct {
	materials []*Material
	byID      map[string]*Material
}

// NewCatalog creates a Catalog holding copies of the materials passed. An error is returned if a material has no name,
// if two materials share an ID or if a material has a plasma form without a fluid form.
func NewCatalog(materials ...Material) (*Catalog, error) {
	c := &Catalog{
		materials: make([]*Material, 0, len(materials)),
		byID:      make(map[string]*Material, len(materials)),
	}
	for i, m := range materials {
		if strings.TrimSpace(m.Name) == "" {
			return nil, fmt.Errorf("material %d: name must be set: %w", i, ErrInvalidMaterial)
		}
		if m.Plasma != nil && m.Fluid == nil {
			return nil, fmt.Errorf("material %v: plasma requires a fluid form: %w", m.Name, ErrInvalidMaterial)
		}
		if m.Fluid != nil {
			fluid := *m.Fluid
			m.Fluid = &fluid
		}
		if m.Plasma != nil {
			m.Plasma = &PlasmaProperty{}
		}
		ptr := &m
		id := ptr.ID()
		if _, ok := c.byID[id]; ok {
			return nil, fmt.Errorf("material %v: %w", id, ErrDuplicateMaterial)
		}
		c.byID[id] = ptr
		c.materials = append(c.materials, ptr)
	}
	return c, nil
}

// Len returns the amount of materials in the catalog.
func (c *Catalog) Len() int {
	return len(c.materials)
}

// Materials returns an iterator over all materials in the catalog in insertion order.
func (c *Catalog) Materials() iter.Seq[*Material] {
	return slices.Values(c.materials)
}

// ByName looks up a material by its name or ID. Names are matched case-insensitively after converting them to the
// ID form, so "DistilledWater", "distilled water" and "distilled_water" all resolve to the same material.
func (c *Catalog) ByName(name string) (*Material, bool) {
	m, ok := c.byID[foldName(name)]
	return m, ok
}

// catalogFile is the on-disk representation of a Catalog.
type catalogFile struct {
	Materials []materialEntry `toml:"material" yaml:"materials"`
}

type materialEntry struct {
	Name    string      `toml:"name" yaml:"name"`
	Colour  string      `toml:"colour" yaml:"colour"`
	IconSet string      `toml:"icon_set" yaml:"icon_set"`
	Formula string      `toml:"formula" yaml:"formula"`
	Ore     bool        `toml:"ore" yaml:"ore"`
	Plasma  bool        `toml:"plasma" yaml:"plasma"`
	Fluid   *fluidEntry `toml:"fluid" yaml:"fluid"`
}

type fluidEntry struct {
	Gas         bool `toml:"gas" yaml:"gas"`
	Temperature int  `toml:"temperature" yaml:"temperature"`
	Block       bool `toml:"block" yaml:"block"`
}

// LoadCatalog reads a catalog from the file at path. Files with a .yaml or .yml extension are decoded as YAML, all
// other files as TOML.
func LoadCatalog(path string) (*Catalog, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var data catalogFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(contents, &data)
	default:
		err = toml.Unmarshal(contents, &data)
	}
	if err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return data.catalog()
}

func (f catalogFile) catalog() (*Catalog, error) {
	materials := make([]Material, 0, len(f.Materials))
	for _, e := range f.Materials {
		m, err := e.material()
		if err != nil {
			return nil, err
		}
		materials = append(materials, m)
	}
	return NewCatalog(materials...)
}

func (e materialEntry) material() (Material, error) {
	m := Material{Name: strings.TrimSpace(e.Name), Formula: e.Formula, Ore: e.Ore, IconSet: Dull()}
	if e.Colour != "" {
		c, err := ParseColour(e.Colour)
		if err != nil {
			return m, fmt.Errorf("material %v: %w", e.Name, err)
		}
		m.Colour = c
	}
	if e.IconSet != "" {
		set, ok := IconSetByName(e.IconSet)
		if !ok {
			return m, fmt.Errorf("material %v: unknown icon set %q: %w", e.Name, e.IconSet, ErrInvalidMaterial)
		}
		m.IconSet = set
	}
	if e.Fluid != nil {
		m.Fluid = &FluidProperty{Gas: e.Fluid.Gas, Temperature: e.Fluid.Temperature, Block: e.Fluid.Block}
	}
	if e.Plasma {
		m.Plasma = &PlasmaProperty{}
	}
	return m, nil
}

// ParseColour parses a colour written as "#RRGGBB", "0xRRGGBB" or "RRGGBB".
func ParseColour(s string) (uint32, error) {
	s = strings.TrimSpace(s)
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		hex, _ = strings.CutPrefix(strings.ToLower(s), "0x")
	}
	if len(hex) != 6 {
		return 0, fmt.Errorf("colour %q: expected 6 hex digits: %w", s, ErrInvalidMaterial)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("colour %q: %w", s, ErrInvalidMaterial)
	}
	return uint32(v), nil
}
