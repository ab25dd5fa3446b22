package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/cropcircles/internal/config"
	"github.com/specialistvlad/cropcircles/internal/fsutil"
	"github.com/specialistvlad/cropcircles/internal/hcl"
	"github.com/specialistvlad/cropcircles/internal/yamlcfg"
)

// Config holds everything needed to build an App instance.
type Config struct {
	// ConfigPath is an optional .hcl, .yaml or .yml file.
	ConfigPath string
	// Overrides come from the command line and win over the file.
	Overrides config.Model
}

// loaderFor picks the config.Loader matching the file extension.
func loaderFor(path string) (config.Loader, error) {
	switch fsutil.Ext(path) {
	case ".hcl":
		return hcl.NewLoader(), nil
	case ".yaml", ".yml":
		return yamlcfg.NewLoader(), nil
	default:
		return nil, fmt.Errorf("unsupported config file %q: expected .hcl, .yaml or .yml", path)
	}
}

// resolveConfig layers defaults, the config file and the overrides, then
// validates the result.
func resolveConfig(ctx context.Context, cfg *Config) (*config.Model, error) {
	model := config.Defaults()

	if cfg.ConfigPath != "" {
		loader, err := loaderFor(cfg.ConfigPath)
		if err != nil {
			return nil, err
		}
		fileModel, err := loader.Load(ctx, cfg.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		model = model.Merge(fileModel)
	}

	model = model.Merge(&cfg.Overrides)
	if err := model.Validate(); err != nil {
		return nil, err
	}
	return model, nil
}
