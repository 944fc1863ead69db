// Package config loads notegraph settings from an optional TOML file.
package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"

	pkgerrors "github.com/matzehuels/notegraph/pkg/errors"
	"github.com/matzehuels/notegraph/pkg/graph"
	pkgio "github.com/matzehuels/notegraph/pkg/io"
)

// DefaultFile is the config file looked up in the working directory.
const DefaultFile = "notegraph.toml"

// DefaultGraphFile is the graph file used when the config names none.
const DefaultGraphFile = "graph.json"

// Config holds settings shared by every command.
type Config struct {
	File              string   `toml:"file"`
	Strict            bool     `toml:"strict"`
	ResolveByGeometry bool     `toml:"resolve_by_geometry"`
	Verbose           bool     `toml:"verbose"`
	DefaultPosition   Position `toml:"default_position"`

	// Unknown lists keys present in the file that Config does not define.
	Unknown []string `toml:"-"`
}

// Position is where notes are placed when created without coordinates.
type Position struct {
	X float64 `toml:"x"`
	Y float64 `toml:"y"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{File: DefaultGraphFile}
}

// Load reads the TOML file at path over the defaults. A missing file is
// not an error unless required is set; an explicit --config is required.
func Load(path string, required bool) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return cfg, nil
		}
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, pkgerrors.Wrap(pkgerrors.ErrCodeFileNotFound, err, "config file %s not found", path)
		}
		return cfg, pkgerrors.Wrap(pkgerrors.ErrCodeIO, err, "read config %s", path)
	}
	return Parse(data)
}

// Parse decodes TOML data over the defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Default(), pkgerrors.Wrap(pkgerrors.ErrCodeFormat, err, "invalid config")
	}
	for _, key := range md.Undecoded() {
		cfg.Unknown = append(cfg.Unknown, key.String())
	}
	if cfg.File == "" {
		cfg.File = DefaultGraphFile
	}
	if err := pkgerrors.ValidatePath(cfg.File); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// CodecOptions returns the save and load options selected by the config.
func (c Config) CodecOptions() pkgio.Options {
	return pkgio.Options{ResolveByGeometry: c.ResolveByGeometry, Strict: c.Strict}
}

// Origin returns the default note position.
func (c Config) Origin() graph.Point {
	return graph.Point{X: c.DefaultPosition.X, Y: c.DefaultPosition.Y}
}
