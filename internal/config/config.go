// Package config loads the optional vba-sync project file, which supplies
// per-repository defaults for the workbook path, source directory, and
// host app so commands can be run without repeating flags.
//
// Two formats are accepted: YAML (vba-sync.yml / vba-sync.yaml) and JSONC
// (vba-sync.jsonc / vba-sync.json, JSON with Comments: the same dialect
// VS Code uses for its own config files). JSONC input is stripped with
// github.com/tidwall/jsonc before parsing with the standard encoding/json
// library.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/shinji-kodama/vba-sync/internal/model"
)

// fileNames lists the recognized project file names in lookup order.
// The first one that exists wins.
var fileNames = []string{
	"vba-sync.yml",
	"vba-sync.yaml",
	"vba-sync.jsonc",
	"vba-sync.json",
}

// Config holds the project-level defaults. Every field is optional;
// command-line flags override whatever is set here.
type Config struct {
	// Workbook is the default document package path, relative to the
	// project file's directory unless absolute.
	Workbook string `yaml:"workbook" json:"workbook"`

	// Dir is the default VBA source directory, relative to the project
	// file's directory unless absolute.
	Dir string `yaml:"dir" json:"dir"`

	// App is the default host application ("excel" or "word").
	App string `yaml:"app" json:"app"`

	// Clean is the default for the --clean flag on import and
	// push-direction sync.
	Clean bool `yaml:"clean" json:"clean"`
}

// HostApp returns the configured host app, defaulting to Excel when the
// project file sets none.
func (c *Config) HostApp() (model.HostApp, error) {
	if c.App == "" {
		return model.AppExcel, nil
	}
	return model.ParseHostApp(c.App)
}

// Load reads the project file from dir. A missing project file is not an
// error: Load returns a zero-value Config so callers can fall through to
// flag values. A present but unparseable file is an error.
//
// Relative Workbook/Dir values are resolved against dir so commands
// behave the same from any working directory below the project root.
func Load(dir string) (*Config, error) {
	for _, name := range fileNames {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, model.WrapCLIError(model.ExitGeneralError, fmt.Sprintf("failed to read %s", path), err)
		}

		cfg := &Config{}
		if err := unmarshal(name, data, cfg); err != nil {
			return nil, model.WrapCLIError(model.ExitGeneralError, fmt.Sprintf("failed to parse %s", path), err)
		}

		if cfg.Workbook != "" && !filepath.IsAbs(cfg.Workbook) {
			cfg.Workbook = filepath.Join(dir, cfg.Workbook)
		}
		if cfg.Dir != "" && !filepath.IsAbs(cfg.Dir) {
			cfg.Dir = filepath.Join(dir, cfg.Dir)
		}
		return cfg, nil
	}
	return &Config{}, nil
}

// unmarshal decodes the project file contents according to the file
// name's extension.
func unmarshal(name string, data []byte, cfg *Config) error {
	switch filepath.Ext(name) {
	case ".yml", ".yaml":
		return yaml.Unmarshal(data, cfg)
	default:
		// jsonc.ToJSON replaces comments and trailing commas with
		// whitespace, producing standard JSON.
		return json.Unmarshal(jsonc.ToJSON(data), cfg)
	}
}
