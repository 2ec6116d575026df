package block

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/brentp/intintmap"
	"github.com/dm-vev/metafluids/server/fluid"
	"github.com/dm-vev/metafluids/server/material"
	"github.com/sandertv/gophertunnel/minecraft/nbt"
	"github.com/segmentio/fasthash/fnv1"
)

// StateVersion is the version written for every block state in an exported palette.
const StateVersion int32 = 1

// ErrRuntimeIDCollision is returned when two different block states hash to the same runtime ID.
var ErrRuntimeIDCollision = errors.New("runtime ID collision")

// State is a block state held by a Palette, in the form it is exported in.
type State struct {
	Name       string         `nbt:"name"`
	Properties map[string]any `nbt:"states"`
	Version    int32          `nbt:"version"`
	RuntimeID  int32          `nbt:"network_id"`
}

// String returns the state in the form "name[key=value,...]" with the properties sorted by key.
func (s State) String() string {
	return stateKey(s.Name, s.Properties)
}

type paletteFile struct {
	States []State `nbt:"blocks"`
}

// Palette holds the block states of all fluid blocks and assigns each of them a runtime ID. Runtime IDs are hashes of
// the block state, so the same state has the same runtime ID regardless of registration order. A Palette implements
// fluid.BlockFactory and is safe for concurrent use.
type Palette struct {
	log *slog.Logger

	mu     sync.RWMutex
	states []State
	ids    *intintmap.Map
}

// NewPalette returns an empty Palette. If log is nil, slog.Default() is used.
func NewPalette(log *slog.Logger) *Palette {
	if log == nil {
		log = slog.Default()
	}
	return &Palette{log: log.With("component", "palette"), ids: intintmap.New(256, 0.6)}
}

// CreateFluidBlock registers the block of fluid r at every liquid depth and returns its source block.
func (p *Palette) CreateFluidBlock(r *fluid.Record, m *material.Material) fluid.Block {
	source := Fluid{Name: fluid.BlockName(m), Fluid: r}
	for _, b := range allDepths(source) {
		if _, err := p.Register(b); err != nil {
			p.log.Error("Could not register fluid block.", "fluid", r.Name(), "depth", b.Depth, "err", err)
		}
	}
	return source
}

// Register registers the block state of b and returns its runtime ID. Registering a state that is already present
// returns the existing runtime ID.
func (p *Palette) Register(b fluid.Block) (uint32, error) {
	name, properties := b.EncodeBlock()
	key := stateKey(name, properties)
	rid, err := runtimeID(name, properties)
	if err != nil {
		return 0, fmt.Errorf("register %v: %w", key, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if i, ok := p.ids.Get(int64(rid)); ok {
		if existing := p.states[i]; existing.String() != key {
			return 0, fmt.Errorf("register %v: %w with %v", key, ErrRuntimeIDCollision, existing)
		}
		return rid, nil
	}
	p.ids.Put(int64(rid), int64(len(p.states)))
	p.states = append(p.states, State{
		Name:       name,
		Properties: maps.Clone(properties),
		Version:    StateVersion,
		RuntimeID:  int32(rid),
	})
	return rid, nil
}

// RuntimeID returns the runtime ID of b. False is returned if the state of b was never registered.
func (p *Palette) RuntimeID(b fluid.Block) (uint32, bool) {
	name, properties := b.EncodeBlock()
	key := stateKey(name, properties)
	rid, err := runtimeID(name, properties)
	if err != nil {
		return 0, false
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	i, ok := p.ids.Get(int64(rid))
	if !ok || p.states[i].String() != key {
		return 0, false
	}
	return rid, true
}

// StateByRuntimeID looks up the block state with the runtime ID passed.
func (p *Palette) StateByRuntimeID(rid uint32) (State, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	i, ok := p.ids.Get(int64(rid))
	if !ok {
		return State{}, false
	}
	return p.states[i], true
}

// Len returns the amount of block states in the palette.
func (p *Palette) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.states)
}

// States returns all block states sorted by name and then by properties.
func (p *Palette) States() []State {
	p.mu.RLock()
	states := slices.Clone(p.states)
	p.mu.RUnlock()

	slices.SortFunc(states, func(a, b State) int {
		return strings.Compare(a.String(), b.String())
	})
	return states
}

// WriteTo writes the palette to w as a single NBT compound holding the sorted block states.
func (p *Palette) WriteTo(w io.Writer) (int64, error) {
	data, err := nbt.Marshal(paletteFile{States: p.States()})
	if err != nil {
		return 0, fmt.Errorf("encode palette: %w", err)
	}
	n, err := w.Write(data)
	return int64(n), err
}

// ReadPalette reads block states written by Palette.WriteTo.
func ReadPalette(r io.Reader) ([]State, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read palette: %w", err)
	}
	var f paletteFile
	if err := nbt.NewDecoder(bytes.NewBuffer(data)).Decode(&f); err != nil {
		return nil, fmt.Errorf("decode palette: %w", err)
	}
	return f.States, nil
}

// runtimeID hashes the block name followed by the NBT encoding of each property, in key order.
func runtimeID(name string, properties map[string]any) (uint32, error) {
	h := fnv1.AddString32(fnv1.Init32, name)
	for _, k := range slices.Sorted(maps.Keys(properties)) {
		data, err := nbt.MarshalEncoding(properties[k], nbt.LittleEndian)
		if err != nil {
			return 0, fmt.Errorf("encode property %v: %w", k, err)
		}
		h = fnv1.AddBytes32(fnv1.AddString32(h, k), data)
	}
	return h, nil
}

// stateKey returns a string uniquely identifying the block state passed.
func stateKey(name string, properties map[string]any) string {
	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteByte('[')
	for i, k := range slices.Sorted(maps.Keys(properties)) {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "%v=%v", k, properties[k])
	}
	sb.WriteByte(']')
	return sb.String()
}
