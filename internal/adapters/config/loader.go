// Package config provides the configuration loader for sde.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/sde/internal/core/domain"
	"go.trai.ch/sde/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new configuration loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the configuration file at path and applies defaults for every unset field.
func (l *Loader) Load(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		err = zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, "failed to load configuration"), "cause", err.Error())
		return nil, zerr.With(err, "path", path)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	l.logger.Debug("configuration loaded", "path", path)
	return cfg, nil
}

// LoadOrDefault behaves like Load but returns the defaults when path does not exist.
func (l *Loader) LoadOrDefault(path string) (*domain.Config, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		l.logger.Debug("no configuration file, using defaults", "path", path)
		return domain.DefaultConfig(), nil
	}
	return l.Load(path)
}

// Parse decodes an sde.yaml document into a domain.Config.
func Parse(data []byte) (*domain.Config, error) {
	var sdefile Sdefile
	if err := yaml.Unmarshal(data, &sdefile); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, "failed to load configuration"), "cause", err.Error())
	}

	cfg := domain.DefaultConfig()
	setIfPresent(&cfg.DatasetDir, sdefile.Dataset.Dir)
	setIfPresent(&cfg.GroupsFile, sdefile.Dataset.Groups)
	setIfPresent(&cfg.ItemsFile, sdefile.Dataset.Items)
	setIfPresent(&cfg.Fields.GroupID, sdefile.Dataset.Fields.GroupID)
	setIfPresent(&cfg.Fields.ParentID, sdefile.Dataset.Fields.ParentID)
	setIfPresent(&cfg.Fields.ItemGroup, sdefile.Dataset.Fields.ItemGroup)
	setIfPresent(&cfg.Fields.ItemName, sdefile.Dataset.Fields.ItemName)
	setIfPresent(&cfg.CacheDir, sdefile.Cache.Dir)
	setIfPresent(&cfg.Locale, sdefile.Classify.Locale)
	setIfPresent(&cfg.OverridesFile, sdefile.Classify.Overrides)

	if sdefile.Classify.Root != nil {
		cfg.RootGroupID = domain.ID(*sdefile.Classify.Root)
	}

	if filepath.IsAbs(cfg.GroupsFile) || filepath.IsAbs(cfg.ItemsFile) {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "dataset files must be relative to the dataset dir"),
			"groups", cfg.GroupsFile)
	}

	return cfg, nil
}

func setIfPresent(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}
