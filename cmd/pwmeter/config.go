package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/andybalholm/cascadia"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the configuration of pwmeter, read from a YAML or TOML file.
type Config struct {
	Mount  string `yaml:"mount" toml:"mount" validate:"required,selector"`
	Title  string `yaml:"title" toml:"title" validate:"max=200"`
	Page   string `yaml:"page" toml:"page" validate:"omitempty,file"`
	Trace  string `yaml:"trace" toml:"trace" validate:"oneof=error info debug"`
	Output string `yaml:"output" toml:"output" validate:"oneof=auto console json"`
}

// DefaultConfig returns the configuration used if no config file is given.
func DefaultConfig() *Config {
	return &Config{
		Mount:  "#app",
		Title:  "Password Strength",
		Trace:  "error",
		Output: "auto",
	}
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("selector", func(fl validator.FieldLevel) bool {
			_, err := cascadia.Compile(fl.Field().String())
			return err == nil
		})
		validateInst = v
	})
	return validateInst
}

// LoadConfig reads a configuration file, in TOML format for files ending
// in ".toml" and in YAML format otherwise. Settings missing from the file
// keep their defaults, unknown settings are rejected. An empty path
// yields the default configuration.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read config: %w", err)
	}
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = decodeTOML(data, cfg)
	} else {
		err = decodeYAML(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func decodeYAML(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func decodeTOML(data []byte, cfg *Config) error {
	meta, err := toml.Decode(string(data), cfg)
	if err != nil {
		return err
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown setting %q", undecoded[0].String())
	}
	return nil
}

// Validate checks a configuration.
func (cfg *Config) Validate() error {
	err := validatorInstance().Struct(cfg)
	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		return fmt.Errorf("%s failed validation for tag '%s': %q",
			strings.ToLower(ve.Field()), ve.Tag(), ve.Value())
	}
	return err
}
