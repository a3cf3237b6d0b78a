package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration. It is loaded once at startup,
// validated, and passed by reference to every component; nothing mutates it
// at runtime.
type Config struct {
	App   AppConfig   `mapstructure:"app"`
	Model ModelConfig `mapstructure:"model"`
	Style StyleConfig `mapstructure:"style"`
}

// AppConfig holds user-facing text and the crisis contact lines.
type AppConfig struct {
	Title          string `mapstructure:"title"`
	WarningMessage string `mapstructure:"warning_message"`
	CrisisHotline  string `mapstructure:"crisis_hotline"`
	CrisisText     string `mapstructure:"crisis_text"`
}

// ModelConfig holds completion provider parameters.
type ModelConfig struct {
	DefaultModel string  `mapstructure:"default_model"`
	MaxTokens    int     `mapstructure:"max_tokens"`
	Temperature  float32 `mapstructure:"temperature"`
}

// StyleConfig holds presentation settings consumed by the front-end surface.
type StyleConfig struct {
	BackgroundColor string `mapstructure:"background_color"`
}

// requiredKeys enumerates every key the application depends on. A missing
// key is a startup error, never a silent default.
var requiredKeys = []string{
	"app.title",
	"app.warning_message",
	"app.crisis_hotline",
	"app.crisis_text",
	"model.default_model",
	"model.max_tokens",
	"model.temperature",
	"style.background_color",
}

// Load reads configuration from the given TOML file. It fails listing every
// missing key so a broken deployment surfaces all problems at once.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var missing []string
	for _, key := range requiredKeys {
		if !v.IsSet(key) {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required config keys: %s", strings.Join(missing, ", "))
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks value ranges once all required keys are present.
func (c *Config) Validate() error {
	if c.Model.Temperature < 0 || c.Model.Temperature > 2.0 {
		return fmt.Errorf("model temperature must be between 0.0 and 2.0, got %.2f", c.Model.Temperature)
	}
	if c.Model.MaxTokens <= 0 {
		return fmt.Errorf("model max_tokens must be positive, got %d", c.Model.MaxTokens)
	}
	return nil
}
