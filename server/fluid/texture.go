package fluid

import (
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/dm-vev/metafluids/server/material"
)

// ResourceNamespace is the resource namespace of textures owned by the fluid registry.
const ResourceNamespace = "gregtech"

// Texture is an opaque resource location identifying a texture, such as "gregtech:blocks/fluids/fluid.steam". The
// registry never loads texture data: a Texture is only a handle passed on to the renderer.
type Texture struct {
	Namespace, Path string
}

// NewTexture returns a Texture in the registry's own namespace.
func NewTexture(path string) Texture {
	return Texture{Namespace: ResourceNamespace, Path: path}
}

// ParseTexture parses a resource location in the form "namespace:path". A location without namespace is placed in
// the "minecraft" namespace.
func ParseTexture(s string) Texture {
	ns, path, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return Texture{Namespace: "minecraft", Path: ns}
	}
	return Texture{Namespace: ns, Path: path}
}

// String returns the texture in the form "namespace:path".
func (t Texture) String() string {
	return t.Namespace + ":" + t.Path
}

// AutoGeneratedPlasmaTexture is the texture of every plasma that has no texture of its own.
var AutoGeneratedPlasmaTexture = NewTexture("blocks/fluids/fluid.plasma.autogenerated")

// IconSetTexture returns the default fluid texture of materials in the icon set passed.
func IconSetTexture(set material.IconSet) Texture {
	return NewTexture("blocks/material_sets/" + set.String() + "/fluid")
}

// FallbackTexture is returned for normal fluids when neither an explicit texture nor an icon set texture is available.
var FallbackTexture = IconSetTexture(material.Dull())

// Renderer is the renderer textures are registered with before they are first used.
type Renderer interface {
	// RegisterTextureHandle registers the texture so that it is stitched into the texture atlas.
	RegisterTextureHandle(t Texture)
}

// SpriteSet is an ordered set of textures that must be registered with the renderer. It is safe for concurrent use.
type SpriteSet struct {
	mu       sync.Mutex
	textures []Texture
	seen     map[Texture]struct{}
}

// NewSpriteSet returns an empty SpriteSet.
func NewSpriteSet() *SpriteSet {
	return &SpriteSet{seen: make(map[Texture]struct{})}
}

// Add adds t to the set. It returns false if t was already present.
func (s *SpriteSet) Add(t Texture) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.seen[t]; ok {
		return false
	}
	s.seen[t] = struct{}{}
	s.textures = append(s.textures, t)
	return true
}

// Contains checks if t is present in the set.
func (s *SpriteSet) Contains(t Texture) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.seen[t]
	return ok
}

// Len returns the amount of textures in the set.
func (s *SpriteSet) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.textures)
}

// Textures returns the textures in the set in the order they were added.
func (s *SpriteSet) Textures() []Texture {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.textures)
}

// RegisterSprites registers every texture in the set with the renderer passed, in the order they were added.
func (s *SpriteSet) RegisterSprites(r Renderer) {
	for _, t := range s.Textures() {
		r.RegisterTextureHandle(t)
	}
}

type textureKey struct {
	material string
	kind     Kind
}

// TextureResolver resolves the texture of a fluid. Every texture it can return is added to its SpriteSet when it
// becomes known to the resolver, so the renderer has registered it before the fluid is first drawn.
type TextureResolver struct {
	sprites *SpriteSet
	log     *slog.Logger

	mu        sync.RWMutex
	overrides map[textureKey]Texture
	iconSets  map[material.IconSet]Texture
}

// NewTextureResolver returns a TextureResolver that adds textures to the SpriteSet passed. The plasma texture and
// the fluid texture of every icon set are added immediately. If log is nil, slog.Default() is used.
func NewTextureResolver(sprites *SpriteSet, log *slog.Logger) *TextureResolver {
	if sprites == nil {
		sprites = NewSpriteSet()
	}
	if log == nil {
		log = slog.Default()
	}
	r := &TextureResolver{
		sprites:   sprites,
		log:       log,
		overrides: make(map[textureKey]Texture),
		iconSets:  make(map[material.IconSet]Texture),
	}
	sprites.Add(AutoGeneratedPlasmaTexture)
	for _, set := range material.IconSets() {
		t := IconSetTexture(set)
		r.iconSets[set] = t
		sprites.Add(t)
	}
	sprites.Add(FallbackTexture)
	return r
}

// Sprites returns the SpriteSet the resolver adds textures to.
func (r *TextureResolver) Sprites() *SpriteSet {
	return r.sprites
}

// SetTexture sets an explicit texture for the fluid of Kind k generated for m. The material colour is still
// overlaid on the texture.
func (r *TextureResolver) SetTexture(m *material.Material, k Kind, t Texture) {
	r.mu.Lock()
	r.overrides[textureKey{material: m.ID(), kind: k}] = t
	r.mu.Unlock()
	r.sprites.Add(t)
}

// SetDefaultTexture sets the texture of the fluid of Kind k generated for m to the texture named after the material,
// "gregtech:blocks/fluids/fluid.<id>" with a ".plasma" suffix for plasmas.
func (r *TextureResolver) SetDefaultTexture(m *material.Material, k Kind) {
	path := "blocks/fluids/fluid." + m.ID()
	if k == KindPlasma {
		path += ".plasma"
	}
	r.SetTexture(m, k, NewTexture(path))
}

// Resolve returns the texture of the fluid of Kind k generated for m. An explicit texture set through SetTexture is
// preferred. Plasmas otherwise use AutoGeneratedPlasmaTexture and normal fluids the texture of the material's icon
// set, or FallbackTexture if the icon set has none.
func (r *TextureResolver) Resolve(m *material.Material, k Kind) Texture {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if t, ok := r.overrides[textureKey{material: m.ID(), kind: k}]; ok {
		return t
	}
	if k == KindPlasma {
		return AutoGeneratedPlasmaTexture
	}
	if t, ok := r.iconSets[m.IconSet]; ok {
		return t
	}
	r.log.Debug("No fluid texture for icon set, using fallback.", "material", m.ID(), "icon_set", m.IconSet.String())
	return FallbackTexture
}
