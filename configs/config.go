package configs

import (
	"errors"
	"fmt"
	"strings"
	"text/template"

	"github.com/mlproject/mlproject/internal/common"
	"github.com/mlproject/mlproject/internal/logger"
	"github.com/mlproject/mlproject/internal/scaffold"
)

type (
	Config struct {
		Logging   Logging   `mapstructure:"logging"`
		Scaffold  Scaffold  `mapstructure:"scaffold"`
		Artifacts Artifacts `mapstructure:"artifacts"`
	}

	Logging struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
		Dir    string `mapstructure:"dir"`
		File   string `mapstructure:"file"`
	}

	Scaffold struct {
		ProjectName string   `mapstructure:"project-name"`
		Files       []string `mapstructure:"files"`
		GitInit     bool     `mapstructure:"git-init"`
	}

	Artifacts struct {
		Compression string `mapstructure:"compression"`
	}
)

func (c *Config) Validate() error {
	return errors.Join(c.Logging.Validate(), c.Scaffold.Validate(), c.Artifacts.Validate())
}

func (c *Logging) Validate() error {
	var errs []error

	if _, err := logger.ParseLevel(c.Level); err != nil {
		errs = append(errs, fmt.Errorf("logging.level: %w", err))
	}
	if c.Format != "json" && c.Format != "text" {
		errs = append(errs, errors.New("logging.format must be either 'json' or 'text'"))
	}
	if c.Dir == "" {
		errs = append(errs, errors.New("logging.dir is required"))
	}
	if c.File == "" {
		errs = append(errs, errors.New("logging.file is required"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("logging configuration validation failed: %w", errors.Join(errs...))
	}
	return nil
}

func (c *Scaffold) Validate() error {
	var errs []error

	if err := scaffold.ValidateProjectName(c.ProjectName); err != nil {
		errs = append(errs, fmt.Errorf("scaffold.project-name: %w", err))
	}
	if len(c.Files) == 0 {
		errs = append(errs, errors.New("scaffold.files must list at least one file"))
	}
	for i, f := range c.Files {
		if strings.TrimSpace(f) == "" {
			errs = append(errs, fmt.Errorf("scaffold.files[%d] is empty", i))
			continue
		}
		if _, err := template.New("file").Parse(f); err != nil {
			errs = append(errs, fmt.Errorf("scaffold.files[%d]: %w", i, err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("scaffold configuration validation failed: %w", errors.Join(errs...))
	}
	return nil
}

func (c *Artifacts) Validate() error {
	if _, err := common.ParseCompression(c.Compression); err != nil {
		return fmt.Errorf("artifacts.compression: %w", err)
	}
	return nil
}
