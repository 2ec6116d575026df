package fluid

import (
	"slices"
	"sync"

	"github.com/dm-vev/metafluids/server/material"
)

// Host is the fluid namespace shared with other subsystems. The Registry looks fluids up in it before creating them
// and registers every fluid it creates with it.
type Host interface {
	// Fluid looks up a fluid by name.
	Fluid(name string) (*Record, bool)
	// RegisterFluid registers r under its name. It returns false if a fluid with that name already exists.
	RegisterFluid(r *Record) bool
	// AddBucket makes a bucket item available for r. It returns false if the fluid already had one.
	AddBucket(r *Record) bool
}

// Block is a block placed in the world for a fluid.
type Block interface {
	// EncodeBlock returns the name and block state properties of the block.
	EncodeBlock() (name string, properties map[string]any)
}

// BlockFactory creates the world blocks of fluids.
type BlockFactory interface {
	// CreateFluidBlock creates the block of fluid r, which was generated for m.
	CreateFluidBlock(r *Record, m *material.Material) Block
}

// NamedBlock is the Block created when a Registry has no BlockFactory. It only carries a name.
type NamedBlock struct {
	Name  string
	Fluid string
}

// EncodeBlock ...
func (b NamedBlock) EncodeBlock() (string, map[string]any) {
	return b.Name, map[string]any{"fluid": b.Fluid}
}

type namedBlocks struct{}

// CreateFluidBlock ...
func (namedBlocks) CreateFluidBlock(r *Record, m *material.Material) Block {
	return NamedBlock{Name: BlockName(m), Fluid: r.Name()}
}

// BlockName returns the registry name of the block of the normal fluid of m.
func BlockName(m *material.Material) string {
	return ResourceNamespace + ":fluid." + m.ID()
}

// Namespace is an in-memory Host. It is safe for concurrent use.
type Namespace struct {
	mu      sync.RWMutex
	fluids  map[string]*Record
	buckets map[string]struct{}
}

// NewNamespace returns an empty Namespace.
func NewNamespace() *Namespace {
	return &Namespace{fluids: make(map[string]*Record), buckets: make(map[string]struct{})}
}

// Fluid ...
func (n *Namespace) Fluid(name string) (*Record, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	r, ok := n.fluids[name]
	return r, ok
}

// RegisterFluid ...
func (n *Namespace) RegisterFluid(r *Record) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	if _, ok := n.fluids[r.Name()]; ok {
		return false
	}
	n.fluids[r.Name()] = r
	return true
}

// RegisterExternal registers a fluid owned by another subsystem under the name passed and returns it. If a fluid with
// the name already exists, the existing fluid is returned.
func (n *Namespace) RegisterExternal(name string, state State) *Record {
	n.mu.Lock()
	defer n.mu.Unlock()
	if r, ok := n.fluids[name]; ok {
		return r
	}
	r := NewExternal(name, state, material.DefaultFluidTemperature, ParseTexture("blocks/"+name+"_still"), 0xffffffff)
	n.fluids[name] = r
	return r
}

// AddBucket ...
func (n *Namespace) AddBucket(r *Record) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	if _, ok := n.buckets[r.Name()]; ok {
		return false
	}
	n.buckets[r.Name()] = struct{}{}
	return true
}

// HasBucket checks if a bucket was added for the fluid with the name passed.
func (n *Namespace) HasBucket(name string) bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	_, ok := n.buckets[name]
	return ok
}

// Names returns the sorted names of all fluids in the namespace.
func (n *Namespace) Names() []string {
	n.mu.RLock()
	names := make([]string, 0, len(n.fluids))
	for name := range n.fluids {
		names = append(names, name)
	}
	n.mu.RUnlock()
	slices.Sort(names)
	return names
}

// Len returns the amount of fluids in the namespace.
func (n *Namespace) Len() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.fluids)
}

// RegisterVanilla registers the fluids that exist without any material, water and lava, as external fluids. Both
// already own a world block, so no other block is ever attached to them.
func (n *Namespace) RegisterVanilla() {
	water := n.RegisterExternal("water", StateLiquid)
	water.attachBlock(NamedBlock{Name: "minecraft:water", Fluid: "water"})

	lava := NewExternal("lava", StateLiquid, 1300, ParseTexture("blocks/lava_still"), 0xffffffff)
	lava.props.Luminosity = 15
	lava.props.Density = 3000
	lava.props.Viscosity = 6000
	lava.attachBlock(NamedBlock{Name: "minecraft:lava", Fluid: "lava"})
	n.RegisterFluid(lava)
}
