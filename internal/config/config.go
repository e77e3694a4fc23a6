// Package config holds the viewer's texts and options.
//
// A Config is built once at startup, from the embedded defaults and an optional user file, and is then
// passed to every component that renders text. It must not be modified after Load returns.
package config

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/spf13/afero"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaults []byte

// Server sort orders.
const (
	SortByName       = "name"
	SortByIdentifier = "identifier"
)

var (
	ErrInvalidLineWidth  = errors.New("line_width must be positive")
	ErrInvalidServerSort = errors.New("server_sort must be " + SortByName + " or " + SortByIdentifier)
)

// Config contains all texts and display options.
type Config struct {
	Kinds        map[string]string `yaml:"kinds"`
	Name         string            `yaml:"name"`
	Version      string            `yaml:"version"`
	ServerSort   string            `yaml:"server_sort"`
	Product      string            `yaml:"product"`
	Text         Text              `yaml:"text"`
	LineWidth    int               `yaml:"line_width"`
	MaskPassword bool              `yaml:"mask_password"`
}

// Text contains the messages shown to the user.
type Text struct {
	PromptUsername        string `yaml:"prompt_username"`
	PromptPassword        string `yaml:"prompt_password"`
	SelectServer          string `yaml:"select_server"`
	SelectOperation       string `yaml:"select_operation"`
	SelectMediaType       string `yaml:"select_media_type"`
	SelectItem            string `yaml:"select_item"`
	StatusLoadingAll      string `yaml:"status_loading_all"`
	StatusLoadingSessions string `yaml:"status_loading_sessions"`
	OperationBrowse       string `yaml:"operation_browse"`
	OperationSessions     string `yaml:"operation_sessions"`
	NoSessions            string `yaml:"no_sessions"`
	Welcome               string `yaml:"welcome"`
}

// Default returns the built-in configuration.
func Default() *Config {
	var cfg Config
	if err := yaml.Unmarshal(defaults, &cfg); err != nil {
		panic("invalid embedded defaults: " + err.Error())
	}
	return &cfg
}

// Load returns the built-in configuration, overlaid with the YAML file at path.
// Keys missing from the file keep their default value. If path is blank, Load returns the defaults.
func Load(fs afero.Fs, path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	content, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err = yaml.Unmarshal(content, cfg); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	if err = cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.LineWidth <= 0 {
		return ErrInvalidLineWidth
	}
	if c.ServerSort != SortByName && c.ServerSort != SortByIdentifier {
		return ErrInvalidServerSort
	}
	return nil
}

// Title returns the title shown on the viewer's own dialogs.
func (c *Config) Title() string {
	return c.Name + " v" + c.Version
}

// Welcome returns the welcome message.
func (c *Config) Welcome() string {
	return fmt.Sprintf(c.Text.Welcome, c.Name)
}

// KindLabel returns the human-readable name of a media kind. Unknown kinds are title-cased.
func (c *Config) KindLabel(kind string) string {
	if label, ok := c.Kinds[kind]; ok {
		return label
	}
	return cases.Title(language.English).String(kind)
}
