package server

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dm-vev/metafluids/server/block"
	"github.com/dm-vev/metafluids/server/fluid"
	"github.com/dm-vev/metafluids/server/material"
)

// Server holds the fluids generated for a material catalog, together with
// the textures and world blocks they use. A Server is created by calling
// Config.New and is safe for concurrent use.
type Server struct {
	conf Config
	log  *slog.Logger

	fluids  *fluid.Registry
	sprites *fluid.SpriteSet
	palette *block.Palette
}

// Catalog returns the material catalog the fluids of the Server were
// generated for.
func (srv *Server) Catalog() *material.Catalog {
	return srv.conf.Catalog
}

// Fluids returns the fluid registry of the Server.
func (srv *Server) Fluids() *fluid.Registry {
	return srv.fluids
}

// Host returns the fluid namespace shared with other subsystems.
func (srv *Server) Host() fluid.Host {
	return srv.conf.Host
}

// Sprites returns the textures registered with the renderer.
func (srv *Server) Sprites() *fluid.SpriteSet {
	return srv.sprites
}

// Palette returns the block palette holding the blocks of all fluids.
func (srv *Server) Palette() *block.Palette {
	return srv.palette
}

// Fluid looks up a fluid by name. The name is first looked up as a canonical
// name in the fluid registry and then in the shared namespace, so that
// fluids may also be found by the name they were adopted under.
func (srv *Server) Fluid(name string) (*fluid.Record, bool) {
	if rec, ok := srv.fluids.Fluid(name); ok {
		return rec, true
	}
	return srv.conf.Host.Fluid(name)
}

// ExportPalette writes the block palette to the file at the path passed,
// creating its directory if needed.
func (srv *Server) ExportPalette(path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0777); err != nil {
			return fmt.Errorf("create palette directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create palette file: %w", err)
	}
	n, err := srv.palette.WriteTo(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("write palette: %w", err)
	}
	srv.log.Info("Exported fluid block palette.", "file", path, "states", srv.palette.Len(), "bytes", n)
	return nil
}
