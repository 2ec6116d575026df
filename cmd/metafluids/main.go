package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dm-vev/metafluids/server"
	"github.com/dm-vev/metafluids/server/console"
	"github.com/pelletier/go-toml"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(log)

	uc, err := readConfig("config.toml")
	if err != nil {
		log.Error("config: " + err.Error())
		os.Exit(1)
	}
	conf, err := uc.Config(log)
	if err != nil {
		log.Error("config: " + err.Error())
		os.Exit(1)
	}
	srv := conf.New()

	if uc.Palette.Export {
		if err := srv.ExportPalette(uc.Palette.File); err != nil {
			log.Error("export palette: " + err.Error())
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	console.New(srv, log).Run(ctx)
}

// readConfig reads the configuration from the file at the path passed, or
// creates the file with the default configuration if it does not yet exist.
func readConfig(path string) (server.UserConfig, error) {
	c := server.DefaultConfig()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		data, err := toml.Marshal(c)
		if err != nil {
			return c, fmt.Errorf("encode default config: %w", err)
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return c, fmt.Errorf("create default config: %w", err)
		}
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("decode config: %w", err)
	}
	return c, nil
}
