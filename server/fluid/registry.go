// Package fluid generates fluids from materials and keeps track of which material every fluid belongs to.
package fluid

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
	"github.com/dm-vev/metafluids/server/material"
)

var (
	// ErrNotFound is returned when a fluid has no material associated with it in the Registry. Callers should treat
	// the fluid as one without material rather than as a failure.
	ErrNotFound = errors.New("fluid not found")
	// ErrFrozen is returned when a fluid would have to be created after the Registry was frozen.
	ErrFrozen = errors.New("fluid registry frozen")

	// errDuplicateCreation signals that a fluid was about to be created twice. The lookups done before creating a
	// fluid make this impossible, so it is only ever logged as a bug.
	errDuplicateCreation = errors.New("duplicate fluid creation")
)

// Config contains options for creating a Registry.
type Config struct {
	// Log is the Logger used for logging information. If nil, Log is set to slog.Default().
	Log *slog.Logger
	// Host is the fluid namespace shared with other subsystems. Fluids found in it are adopted instead of created,
	// and created fluids are registered with it. If nil, an empty Namespace is used.
	Host Host
	// Textures resolves the textures of created fluids. If nil, a TextureResolver with a new SpriteSet is used.
	Textures *TextureResolver
	// Aliases holds the alternate names fluids may already be registered under. If nil, an empty AliasTable is used.
	Aliases *AliasTable
	// Blocks creates the world blocks of fluids that request one. If nil, blocks only carry a name.
	Blocks BlockFactory
	// Tooltips holds the chemical formula shown for fluids. If nil, an empty Tooltips is used.
	Tooltips *Tooltips
	// AllowLateRegistration specifies if fluids may still be created after the Registry has been frozen. Writes are
	// serialised either way, and reads never block.
	AllowLateRegistration bool
}

// New creates a Registry using the fields of conf.
func (conf Config) New() *Registry {
	if conf.Log == nil {
		conf.Log = slog.Default()
	}
	conf.Log = conf.Log.With("component", "fluid")
	if conf.Host == nil {
		conf.Host = NewNamespace()
	}
	if conf.Textures == nil {
		conf.Textures = NewTextureResolver(NewSpriteSet(), conf.Log)
	}
	if conf.Aliases == nil {
		conf.Aliases = NewAliasTable()
	}
	if conf.Blocks == nil {
		conf.Blocks = namedBlocks{}
	}
	if conf.Tooltips == nil {
		conf.Tooltips = NewTooltips()
	}
	r := &Registry{conf: conf, log: conf.Log}
	r.index.Store(&index{
		fluids:    make(map[string]*Record),
		materials: make(map[string]*material.Material),
	})
	return r
}

// Registry generates fluids from materials. Every material has at most one fluid per Kind: asking for a fluid twice
// returns the same Record. The Registry keeps a reverse index from fluid name to material, which is resolvable for
// every fluid returned by GetOrCreateFluid.
//
// A Registry is populated once at startup and then frozen. Writes are serialised by a mutex and published as an
// immutable index, so lookups never block and are safe from any goroutine.
type Registry struct {
	conf Config
	log  *slog.Logger

	mu     sync.Mutex
	frozen atomic.Bool
	index  atomic.Pointer[index]
}

// index is a snapshot of the state of a Registry. A published index is never modified.
type index struct {
	// fluids maps canonical names to the fluid created or adopted for them.
	fluids map[string]*Record
	// materials maps fluid names to the material they belong to.
	materials map[string]*material.Material
	created   int
}

func (idx *index) clone() *index {
	return &index{fluids: maps.Clone(idx.fluids), materials: maps.Clone(idx.materials), created: idx.created}
}

// GetOrCreateFluid returns the fluid of Kind k for material m, creating it if it does not exist yet. A fluid already
// registered with the Host under the canonical name, or under the alternate name set in the AliasTable, is adopted
// instead of created. Every fluid is given a bucket. If generateBlock is true and the fluid is not a plasma, a block
// is attached to the fluid if it has none yet.
//
// GetOrCreateFluid only returns an error if the Registry is frozen and the fluid does not exist yet.
func (r *Registry) GetOrCreateFluid(m *material.Material, k Kind, generateBlock bool) (*Record, error) {
	if r.closed() {
		return r.existing(m, k)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	// Freeze may have run while waiting for the lock.
	if r.closed() {
		return r.existing(m, k)
	}

	idx := r.index.Load().clone()
	rec := r.register(idx, m, k, generateBlock)
	r.index.Store(idx)
	return rec, nil
}

// closed reports if fluids that do not exist yet can no longer be created.
func (r *Registry) closed() bool {
	return r.frozen.Load() && !r.conf.AllowLateRegistration
}

// existing returns the fluid of Kind k for m if it was registered before the Registry was frozen.
func (r *Registry) existing(m *material.Material, k Kind) (*Record, error) {
	name := CanonicalName(m, k)
	if rec, ok := r.index.Load().fluids[name]; ok {
		return rec, nil
	}
	return nil, fmt.Errorf("register fluid %v: %w", name, ErrFrozen)
}

// register runs the registration of a single fluid against idx. r.mu must be held.
func (r *Registry) register(idx *index, m *material.Material, k Kind, generateBlock bool) *Record {
	name := CanonicalName(m, k)
	host := r.conf.Host

	rec, ok := host.Fluid(name)
	if !ok {
		if alt, found := r.conf.Aliases.ResolveAlias(name); found {
			if rec, ok = host.Fluid(alt); ok {
				r.log.Debug("Adopted fluid registered under alternative name.", "fluid", name, "alternative", alt)
			}
		}
	}
	if !ok {
		rec = r.create(idx, m, k)
	}

	host.AddBucket(rec)

	if generateBlock && k != KindPlasma && rec.State() != StatePlasma {
		if _, hasBlock := rec.Block(); !hasBlock {
			rec.attachBlock(r.conf.Blocks.CreateFluidBlock(rec, m))
		}
	}

	idx.fluids[name] = rec
	idx.materials[rec.Name()] = m
	return rec
}

// create creates and registers a new fluid. It is only called when no fluid with the canonical name or its
// alternative name exists in the Host.
func (r *Registry) create(idx *index, m *material.Material, k Kind) *Record {
	name := CanonicalName(m, k)
	if existing, ok := idx.fluids[name]; ok {
		r.log.Error("Fluid created twice, keeping first.", "fluid", name, "err", errDuplicateCreation)
		return existing
	}
	rec := newRecord(m, k, r.conf.Textures.Resolve(m, k))
	if !r.conf.Host.RegisterFluid(rec) {
		r.log.Error("Host rejected new fluid.", "fluid", name, "err", errDuplicateCreation)
	}
	idx.created++
	return rec
}

// MaterialFor returns the material fluid rec was generated for or adopted by. An error wrapping ErrNotFound is
// returned if the fluid never passed through the Registry or if its material no longer has a fluid form.
func (r *Registry) MaterialFor(rec *Record) (*material.Material, error) {
	if rec == nil {
		return nil, fmt.Errorf("material for nil fluid: %w", ErrNotFound)
	}
	return r.MaterialByFluidName(rec.Name())
}

// MaterialByFluidName is MaterialFor for a fluid name.
func (r *Registry) MaterialByFluidName(name string) (*material.Material, error) {
	m, ok := r.index.Load().materials[name]
	if !ok || !m.HasFluid() {
		return nil, fmt.Errorf("material for fluid %v: %w", name, ErrNotFound)
	}
	return m, nil
}

// Fluid looks up a fluid by its canonical name. For adopted fluids, the name of the returned Record may differ from
// the canonical name.
func (r *Registry) Fluid(canonical string) (*Record, bool) {
	rec, ok := r.index.Load().fluids[canonical]
	return rec, ok
}

// FluidFor looks up the fluid of Kind k for m without creating it.
func (r *Registry) FluidFor(m *material.Material, k Kind) (*Record, bool) {
	return r.Fluid(CanonicalName(m, k))
}

// CanonicalNames returns the sorted canonical names of all fluids in the Registry.
func (r *Registry) CanonicalNames() []string {
	return slices.Sorted(maps.Keys(r.index.Load().fluids))
}

// Len returns the amount of fluids in the Registry, adopted ones included.
func (r *Registry) Len() int {
	return len(r.index.Load().fluids)
}

// Created returns the amount of fluids created by the Registry.
func (r *Registry) Created() int {
	return r.index.Load().created
}

// SetAlias sets the alternate name of a canonical fluid name. It only affects fluids registered afterwards.
func (r *Registry) SetAlias(canonical, alternate string) {
	r.conf.Aliases.SetAlias(canonical, alternate)
}

// SetTextureOverride sets an explicit texture for the fluid of Kind k generated for m. It only affects fluids
// created afterwards.
func (r *Registry) SetTextureOverride(m *material.Material, k Kind, t Texture) {
	r.conf.Textures.SetTexture(m, k, t)
}

// Textures returns the TextureResolver of the Registry.
func (r *Registry) Textures() *TextureResolver { return r.conf.Textures }

// Aliases returns the AliasTable of the Registry.
func (r *Registry) Aliases() *AliasTable { return r.conf.Aliases }

// Tooltips returns the Tooltips of the Registry.
func (r *Registry) Tooltips() *Tooltips { return r.conf.Tooltips }

// Host returns the Host of the Registry.
func (r *Registry) Host() Host { return r.conf.Host }

// Freeze marks the end of the startup pass. Unless late registration is allowed, fluids that do not exist yet can no
// longer be created afterwards.
func (r *Registry) Freeze() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.frozen.Swap(true) {
		return
	}
	idx := r.index.Load()
	r.log.Info("Fluid registry frozen.", "fluids", len(idx.fluids), "created", idx.created)
}

// Frozen reports if Freeze was called.
func (r *Registry) Frozen() bool {
	return r.frozen.Load()
}

// Checksum returns a hash of the contents of the Registry. Two registries populated from the same catalog and
// configuration have the same checksum.
func (r *Registry) Checksum() uint64 {
	idx := r.index.Load()
	d := xxhash.New()
	buf := make([]byte, 0, 64)
	for _, name := range slices.Sorted(maps.Keys(idx.fluids)) {
		rec := idx.fluids[name]
		buf = buf[:0]
		buf = append(buf, name...)
		buf = append(buf, 0)
		buf = append(buf, rec.Name()...)
		buf = append(buf, 0)
		buf = append(buf, rec.State().String()...)
		buf = append(buf, 0)
		buf = strconv.AppendInt(buf, int64(rec.Temperature()), 10)
		buf = append(buf, 0)
		buf = strconv.AppendUint(buf, uint64(rec.Colour()), 16)
		buf = append(buf, 0)
		buf = append(buf, rec.Texture().String()...)
		buf = append(buf, '\n')
		_, _ = d.Write(buf)
	}
	return d.Sum64()
}
