// Package config loads the CLI's optional .tsqlrc.toml configuration file:
// default output format, whether to validate emitted SQL, and the dummy
// generator's defaults.
//
// Grounded on internal/parser/toml/parser.go's
// toml.NewDecoder(r).Decode(&x) pattern. Library: github.com/BurntSushi/toml.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the decoded shape of .tsqlrc.toml. Decoding starts from
// Default(), and LoadFileOrDefault returns Default() when the file is
// absent; the zero Config is not the same as Default().
type Config struct {
	Output   OutputConfig   `toml:"output"`
	Generate GenerateConfig `toml:"generate"`
}

// OutputConfig controls how `tsql compile` renders its result.
type OutputConfig struct {
	// Format is one of "sql" (default), "tsql", or "json".
	Format string `toml:"format"`
	// Verify runs emitted SQL through internal/emit.ValidateSQL before
	// printing it.
	Verify bool `toml:"verify"`
}

// GenerateConfig holds defaults for `tsql generate`.
type GenerateConfig struct {
	Seed           int `toml:"seed"`
	FieldsPerTable int `toml:"fields_per_table"`
}

// Default returns the configuration used when no .tsqlrc.toml is present.
func Default() Config {
	return Config{
		Output: OutputConfig{
			Format: "sql",
		},
		Generate: GenerateConfig{
			Seed:           0,
			FieldsPerTable: 5,
		},
	}
}

// LoadFile opens path and decodes it as a Config, starting from Default()
// so any keys the file omits keep their default value.
func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: open %q: %w", path, err)
	}
	defer f.Close()

	return Load(f)
}

// Load decodes a Config from r, starting from Default().
func Load(r io.Reader) (Config, error) {
	cfg := Default()
	if _, err := toml.NewDecoder(r).Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode error: %w", err)
	}
	return cfg, nil
}

// LoadFileOrDefault loads path if it exists, otherwise returns Default().
// This is the entry point cmd/tsql uses so a missing .tsqlrc.toml is never
// a hard failure.
func LoadFileOrDefault(path string) (Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return LoadFile(path)
}
