// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mwiater/autodetect/internal/autodetect"
	"github.com/mwiater/autodetect/internal/templates"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// defaultLogFile is used when the config does not name a log file.
	defaultLogFile = "autodetect.log"
)

// Config represents the top-level application configuration.
type Config struct {
	Models     []ModelEntry `json:"models"`
	Debug      bool         `json:"debug"`
	JSONMode   bool         `json:"jsonMode"`
	LogFile    string       `json:"logFile,omitempty"`
	ConfigPath string       `json:"-" mapstructure:"-"`
}

// ModelEntry is one configured model, as a user would list it for their editor.
type ModelEntry struct {
	Title        string                   `json:"title,omitempty"`
	Provider     string                   `json:"provider"`
	Model        string                   `json:"model"`
	Template     string                   `json:"template,omitempty"`
	Capabilities *autodetect.Capabilities `json:"capabilities,omitempty"`
}

// LogFilePath returns the path to the application log file, applying a default if not set.
func (c Config) LogFilePath() string {
	if path := c.LogFile; strings.TrimSpace(path) != "" {
		return path
	}
	return defaultLogFile
}

// DisplayName returns the title if set, otherwise provider/model.
func (m ModelEntry) DisplayName() string {
	if t := strings.TrimSpace(m.Title); t != "" {
		return t
	}
	return m.Provider + "/" + m.Model
}

// Request converts the entry into a detection request. An empty template means autodetect.
func (m ModelEntry) Request() (autodetect.Request, error) {
	req := autodetect.Request{
		Provider:     m.Provider,
		Model:        m.Model,
		Title:        m.Title,
		Capabilities: m.Capabilities,
	}
	if strings.TrimSpace(m.Template) != "" {
		family, err := templates.ParseFamily(m.Template)
		if err != nil {
			return autodetect.Request{}, fmt.Errorf("model %q: %w", m.DisplayName(), err)
		}
		req.Family = &family
	}
	return req, nil
}

// Load reads, validates and decodes the configuration at path.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("no configuration file found at %q", path)
		}
		return Config{}, fmt.Errorf("could not read config file %q: %w", path, err)
	}

	config, err := parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config file %q: %w", path, err)
	}
	config.ConfigPath = path
	return config, nil
}

// parse validates raw JSON against the schema and decodes it.
func parse(data []byte) (Config, error) {
	if err := Validate(data); err != nil {
		return Config{}, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return Config{}, err
	}
	if len(config.Models) == 0 {
		return Config{}, errors.New("config must contain at least one model")
	}
	return config, nil
}
