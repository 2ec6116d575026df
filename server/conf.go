package server

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/dm-vev/metafluids/server/block"
	"github.com/dm-vev/metafluids/server/fluid"
	"github.com/dm-vev/metafluids/server/material"
)

// ErrUnknownFluid is returned when a configured fluid name does not refer to a fluid of any material in the catalog.
var ErrUnknownFluid = errors.New("unknown fluid")

// Config contains options for building a fluid server.
type Config struct {
	// Log is the Logger to use for logging information. If nil, Log is set to
	// slog.Default().
	Log *slog.Logger
	// Catalog holds the materials fluids are generated for. If nil, Catalog is
	// set to material.DefaultCatalog().
	Catalog *material.Catalog
	// Host is the fluid namespace shared with other subsystems. If nil, a
	// fluid.Namespace holding the vanilla fluids is used.
	Host fluid.Host
	// Renderer is the renderer fluid textures are registered with once the
	// startup pass is complete. If nil, textures are only logged.
	Renderer fluid.Renderer
	// DisableDefaults disables the stock alternate fluid names and textures.
	DisableDefaults bool
	// AllowLateRegistration specifies if fluids may still be created after
	// the server was built. Lookups never block, regardless of this setting.
	AllowLateRegistration bool
	// Aliases maps canonical fluid names to the alternate names they may be
	// registered under by other subsystems.
	Aliases map[string]string
	// Textures holds explicit textures that replace the texture otherwise
	// resolved for a fluid.
	Textures []TextureOverride
}

// TextureOverride is an explicit texture for the fluid of a material.
type TextureOverride struct {
	Material *material.Material
	Kind     fluid.Kind
	Texture  fluid.Texture
}

// New builds a Server using fields of conf. The startup pass over the
// catalog is run immediately, after which the fluid registry is frozen
// unless AllowLateRegistration is set.
func (conf Config) New() *Server {
	if conf.Log == nil {
		conf.Log = slog.Default()
	}
	if conf.Catalog == nil {
		conf.Catalog = material.DefaultCatalog()
	}
	if conf.Host == nil {
		ns := fluid.NewNamespace()
		ns.RegisterVanilla()
		conf.Host = ns
	}
	if conf.Renderer == nil {
		conf.Renderer = logRenderer{log: conf.Log}
	}
	conf.Aliases = maps.Clone(conf.Aliases)
	conf.Textures = slices.Clone(conf.Textures)

	srv := &Server{
		conf:    conf,
		log:     conf.Log,
		sprites: fluid.NewSpriteSet(),
		palette: block.NewPalette(conf.Log),
	}
	srv.fluids = fluid.Config{
		Log:                   conf.Log,
		Host:                  conf.Host,
		Textures:              fluid.NewTextureResolver(srv.sprites, conf.Log),
		Blocks:                srv.palette,
		AllowLateRegistration: conf.AllowLateRegistration,
	}.New()

	if !conf.DisableDefaults {
		srv.fluids.RegisterDefaults(conf.Catalog)
	}
	for canonical, alt := range conf.Aliases {
		srv.fluids.SetAlias(canonical, alt)
	}
	for _, o := range conf.Textures {
		srv.fluids.SetTextureOverride(o.Material, o.Kind, o.Texture)
	}
	created, err := srv.fluids.Init(conf.Catalog)
	if err != nil {
		panic("config: " + err.Error())
	}
	srv.sprites.RegisterSprites(conf.Renderer)
	if !conf.AllowLateRegistration {
		srv.fluids.Freeze()
	}

	conf.Log.Info("Fluid registry ready.", "materials", conf.Catalog.Len(), "fluids", srv.fluids.Len(), "created", created, "blocks", srv.palette.Len(), "sprites", srv.sprites.Len(), "checksum", fmt.Sprintf("%016x", srv.fluids.Checksum()))
	return srv
}

type logRenderer struct {
	log *slog.Logger
}

// RegisterTextureHandle ...
func (r logRenderer) RegisterTextureHandle(t fluid.Texture) {
	r.log.Debug("Registered fluid texture.", "texture", t.String())
}

// UserConfig is the user configuration of a fluid server. It may be
// serialised and can be converted to a Config by calling UserConfig.Config().
type UserConfig struct {
	Catalog struct {
		// File is the TOML or YAML file materials are loaded from. If empty,
		// the built-in materials are used.
		File string
	}
	Fluids struct {
		// RegisterDefaults controls if the stock alternate fluid names and
		// textures are installed before the startup pass.
		RegisterDefaults bool
		// AllowLateRegistration controls if fluids may be created after
		// startup.
		AllowLateRegistration bool
		// Aliases maps canonical fluid names, such as "ethanol", to the name
		// another mod registers the same fluid under.
		Aliases map[string]string
		// Textures maps canonical fluid names, such as "plasma.helium", to a
		// texture in the form "namespace:path".
		Textures map[string]string
	}
	Palette struct {
		// Export controls if the fluid block palette is written to File after
		// startup.
		Export bool
		// File is the file the fluid block palette is written to.
		File string
	}
}

// Config converts a UserConfig to a Config, so that it may be used for
// building a Server. An error is returned if loading the catalog failed or if
// a texture refers to a fluid that does not exist.
func (uc UserConfig) Config(log *slog.Logger) (Config, error) {
	conf := Config{
		Log:                   log,
		DisableDefaults:       !uc.Fluids.RegisterDefaults,
		AllowLateRegistration: uc.Fluids.AllowLateRegistration,
		Aliases:               make(map[string]string, len(uc.Fluids.Aliases)),
	}
	if file := strings.TrimSpace(uc.Catalog.File); file != "" {
		c, err := material.LoadCatalog(file)
		if err != nil {
			return conf, fmt.Errorf("load catalog: %w", err)
		}
		conf.Catalog = c
	} else {
		conf.Catalog = material.DefaultCatalog()
	}
	for canonical, alt := range uc.Fluids.Aliases {
		canonical, alt = strings.TrimSpace(canonical), strings.TrimSpace(alt)
		if canonical == "" || alt == "" {
			if log != nil {
				log.Warn("config: ignoring empty fluid alias.", "fluid", canonical, "alias", alt)
			}
			continue
		}
		conf.Aliases[canonical] = alt
	}
	for _, name := range slices.Sorted(maps.Keys(uc.Fluids.Textures)) {
		m, k, err := parseFluidName(conf.Catalog, name)
		if err != nil {
			return conf, fmt.Errorf("texture of %v: %w", name, err)
		}
		conf.Textures = append(conf.Textures, TextureOverride{Material: m, Kind: k, Texture: fluid.ParseTexture(uc.Fluids.Textures[name])})
	}
	return conf, nil
}

// parseFluidName finds the material and kind of the fluid with the canonical name passed.
func parseFluidName(c *material.Catalog, name string) (*material.Material, fluid.Kind, error) {
	name = strings.TrimSpace(name)
	k := fluid.KindNormal
	if rest, ok := strings.CutPrefix(name, fluid.KindPlasma.Prefix()); ok {
		name, k = rest, fluid.KindPlasma
	}
	m, ok := c.ByName(name)
	if !ok || !m.HasFluid() || (k == fluid.KindPlasma && !m.HasPlasma()) {
		return nil, k, ErrUnknownFluid
	}
	return m, k, nil
}

// DefaultConfig returns a configuration with the default values filled out.
func DefaultConfig() UserConfig {
	c := UserConfig{}
	c.Catalog.File = ""
	c.Fluids.RegisterDefaults = true
	c.Fluids.AllowLateRegistration = false
	c.Fluids.Aliases = map[string]string{}
	c.Fluids.Textures = map[string]string{}
	c.Palette.Export = true
	c.Palette.File = "fluid_palette.nbt"
	return c
}
