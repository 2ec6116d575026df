package fluid

import (
	"sync/atomic"

	"github.com/dm-vev/metafluids/server/colour"
	"github.com/dm-vev/metafluids/server/material"
	"github.com/google/uuid"
)

// recordSpace is the UUID namespace record IDs are derived in. Records with the same name always have the same ID,
// across restarts too.
var recordSpace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/dm-vev/metafluids/fluid"))

// Record is a fluid. Records created by a Registry are derived from a material; records registered by other
// subsystems through a Host may have no material. Apart from the block, which may be attached once, a Record is
// immutable.
type Record struct {
	name        string
	id          uuid.UUID
	material    *material.Material
	kind        Kind
	state       State
	texture     Texture
	colour      uint32
	temperature int
	props       Properties

	block atomic.Pointer[blockRef]
}

type blockRef struct{ Block }

// newRecord creates the Record of Kind k for m. All derived values are computed here.
func newRecord(m *material.Material, k Kind, texture Texture) *Record {
	name := CanonicalName(m, k)
	state := Classify(m, k)
	return &Record{
		name:        name,
		id:          uuid.NewSHA1(recordSpace, []byte(name)),
		material:    m,
		kind:        k,
		state:       state,
		texture:     texture,
		colour:      colour.Opaque(m.BaseColour()),
		temperature: Temperature(m, k),
		props:       state.Properties(),
	}
}

// NewExternal creates a Record for a fluid owned by another subsystem, such as a vanilla fluid. The record has no
// material and the properties of the state passed.
func NewExternal(name string, state State, temperature int, texture Texture, argb uint32) *Record {
	return &Record{
		name:        name,
		id:          uuid.NewSHA1(recordSpace, []byte(name)),
		state:       state,
		texture:     texture,
		colour:      argb,
		temperature: temperature,
		props:       state.Properties(),
	}
}

// Name returns the name the fluid is registered under.
func (r *Record) Name() string { return r.name }

// ID returns a UUID derived from the name of the fluid.
func (r *Record) ID() uuid.UUID { return r.id }

// Material returns the material the fluid was generated from. False is returned for fluids owned by other
// subsystems.
func (r *Record) Material() (*material.Material, bool) { return r.material, r.material != nil }

// External reports if the fluid was registered by another subsystem rather than generated from a material.
func (r *Record) External() bool { return r.material == nil }

// Kind returns the Kind the fluid was generated as. External fluids are always KindNormal.
func (r *Record) Kind() Kind { return r.kind }

// State returns the physical state of the fluid.
func (r *Record) State() State { return r.state }

// Texture returns the texture used for both the still and flowing fluid.
func (r *Record) Texture() Texture { return r.texture }

// Colour returns the colour overlaid on the texture as 0xAARRGGBB. The alpha channel of generated fluids is always
// 0xFF.
func (r *Record) Colour() uint32 { return r.colour }

// Shades returns a darker and lighter variant of the fluid colour as 0xRRGGBB, with a lightness difference of delta
// percent.
func (r *Record) Shades(delta float64) (darker, lighter uint32) {
	return colour.GradientRGB(r.colour&0xffffff, delta)
}

// Temperature returns the temperature of the fluid in kelvin.
func (r *Record) Temperature() int { return r.temperature }

// Properties returns the physical properties of the fluid.
func (r *Record) Properties() Properties { return r.props }

// UnlocalizedName returns the translation key of the fluid. Generated fluids use the key of their material.
func (r *Record) UnlocalizedName() string {
	if r.material != nil {
		return r.material.UnlocalizedName()
	}
	return "fluid." + r.name
}

// Block returns the block placed in the world for the fluid, if one was attached.
func (r *Record) Block() (Block, bool) {
	if ref := r.block.Load(); ref != nil {
		return ref.Block, true
	}
	return nil, false
}

// attachBlock attaches b to the record. It returns false if a block was already attached, in which case b is
// discarded.
func (r *Record) attachBlock(b Block) bool {
	return r.block.CompareAndSwap(nil, &blockRef{b})
}
