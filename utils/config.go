package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/sheikhrachel/go-conway/model"
)

// Config holds the settings that are not given on the command line
type Config struct {
	RandomWidth        int    `json:"random_width" yaml:"random_width"`
	RandomHeight       int    `json:"random_height" yaml:"random_height"`
	Workers            int    `json:"workers" yaml:"workers"`
	Render             string `json:"render" yaml:"render"`
	DefaultGenerations int    `json:"default_generations" yaml:"default_generations"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		RandomWidth:        5,
		RandomHeight:       5,
		Workers:            1, // Rows are processed on the calling goroutine
		Render:             model.RenderText,
		DefaultGenerations: 1,
	}
}

// LoadConfig loads configuration from a JSON file, or a YAML file when the
// name ends in .yaml or .yml. Fields missing from the file keep their defaults.
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &config)
	default:
		err = json.Unmarshal(data, &config)
	}
	if err != nil {
		return DefaultConfig(), errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}
