package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/mod/modfile"
	"gopkg.in/yaml.v3"

	"xcm-generator/internal/common"
	"xcm-generator/internal/gen"
)

// Config holds the generator settings.
type Config struct {
	Package       string   `yaml:"package" toml:"package"`
	OutputDir     string   `yaml:"output_dir" toml:"output_dir"`
	LocationFile  string   `yaml:"location_file" toml:"location_file"`
	JunctionsFile string   `yaml:"junctions_file" toml:"junctions_file"`
	Comments      *bool    `yaml:"comments,omitempty" toml:"comments,omitempty"`
	Previous      Previous `yaml:"previous" toml:"previous"`
}

// Previous locates the package of the previous protocol version. Path wins
// over Dir; Dir is resolved against the enclosing go.mod.
type Previous struct {
	Alias string `yaml:"alias,omitempty" toml:"alias,omitempty"`
	Path  string `yaml:"path,omitempty" toml:"path,omitempty"`
	Dir   string `yaml:"dir,omitempty" toml:"dir,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)

	return cfg
}

// Load reads a configuration file. The format follows the extension:
// .toml for TOML, anything else for YAML. Relative OutputDir and
// Previous.Dir are taken relative to the file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg *Config
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		cfg, err = ParseTOML(data)
	} else {
		cfg, err = ParseYAML(data)
	}

	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	base := filepath.Dir(path)
	cfg.OutputDir = relativeTo(base, cfg.OutputDir)

	if cfg.Previous.Dir != "" {
		cfg.Previous.Dir = relativeTo(base, cfg.Previous.Dir)
	}

	return cfg, nil
}

// ParseYAML parses YAML data into a Config.
func ParseYAML(data []byte) (*Config, error) {
	var cfg Config

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	// An empty document leaves every setting at its default.
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

// ParseTOML parses TOML data into a Config.
func ParseTOML(data []byte) (*Config, error) {
	var cfg Config

	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config TOML: %w", err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown config keys: %v", undecoded)
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(cfg *Config) {
	def := gen.DefaultGeneratorConfig()

	if cfg.Package == "" {
		cfg.Package = def.PackageName
	}

	if cfg.OutputDir == "" {
		cfg.OutputDir = def.OutputDir
	}

	if cfg.LocationFile == "" {
		cfg.LocationFile = def.LocationFile
	}

	if cfg.JunctionsFile == "" {
		cfg.JunctionsFile = def.JunctionsFile
	}

	if cfg.Comments == nil {
		comments := def.GenerateComments
		cfg.Comments = &comments
	}

	if cfg.Previous.Path == "" && cfg.Previous.Dir == "" {
		cfg.Previous.Path = def.Previous.Path
	}
}

// Marshal serializes a Config to YAML.
func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// GeneratorConfig converts the settings for the generator, resolving the
// previous version's import path when only its directory is known.
func (c *Config) GeneratorConfig() (gen.GeneratorConfig, error) {
	prevPath := c.Previous.Path
	if prevPath == "" {
		resolved, err := ImportPath(c.Previous.Dir)
		if err != nil {
			return gen.GeneratorConfig{}, fmt.Errorf("resolving previous version: %w", err)
		}

		prevPath = resolved
	}

	alias := c.Previous.Alias
	if alias == "" {
		alias = common.PkgAlias(prevPath)
	}

	return gen.GeneratorConfig{
		PackageName:      c.Package,
		OutputDir:        c.OutputDir,
		LocationFile:     c.LocationFile,
		JunctionsFile:    c.JunctionsFile,
		GenerateComments: c.Comments == nil || *c.Comments,
		Previous: gen.PreviousVersion{
			Alias: alias,
			Path:  prevPath,
		},
	}, nil
}

// ErrNoModule is returned when no go.mod encloses a directory.
var ErrNoModule = errors.New("no go.mod found")

// ImportPath returns the import path of the package in dir by locating the
// enclosing go.mod and joining its module path with the relative directory.
func ImportPath(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	for root := abs; ; {
		data, err := os.ReadFile(filepath.Join(root, "go.mod"))
		if err == nil {
			modPath := modfile.ModulePath(data)
			if modPath == "" {
				return "", fmt.Errorf("%s: go.mod has no module directive", root)
			}

			rel, err := filepath.Rel(root, abs)
			if err != nil {
				return "", err
			}

			if rel == "." {
				return modPath, nil
			}

			return modPath + "/" + filepath.ToSlash(rel), nil
		}

		if !errors.Is(err, os.ErrNotExist) {
			return "", err
		}

		parent := filepath.Dir(root)
		if parent == root {
			return "", fmt.Errorf("%w above %s", ErrNoModule, abs)
		}

		root = parent
	}
}

func relativeTo(base, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}

	return filepath.Join(base, p)
}
