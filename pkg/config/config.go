package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

// DefaultPath is the configuration file read when no path is given.
const DefaultPath = "parse_config.yaml"

// ErrNotFound indicates the configuration file does not exist at the given path.
var ErrNotFound = errors.New("configuration file not found")

// AppConfig holds the complete configuration for one export run
type AppConfig struct {
	Environment string `mapstructure:"environment"`
	LogLevel    string `mapstructure:"log_level"`
	ServiceName string `mapstructure:"service_name"`

	// AuthURL receives the form-encoded login payload and returns the bearer token.
	AuthURL   string            `mapstructure:"auth_url"`
	LoginData map[string]string `mapstructure:"login_data"`

	// CharactersURL is a template with a {projectId} placeholder.
	CharactersURL string `mapstructure:"characters_url"`
	// CharacterDetailsURL is a template with {projectId} and {characterId} placeholders.
	CharacterDetailsURL string `mapstructure:"character_details_url"`

	ProjectID  string `mapstructure:"project_id"`
	OutputFile string `mapstructure:"output_file"`
}

// Load loads configuration from file and environment variables
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	// Default values
	v.SetDefault("environment", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("service_name", "charexport")
	v.SetDefault("output_file", "output.csv")

	// Environment variables
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if path == "" {
		path = DefaultPath
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, err
	}

	// Bind environment variables explicitly so Unmarshal picks them up
	v.BindEnv("environment", "ENVIRONMENT")
	v.BindEnv("log_level", "LOG_LEVEL")
	v.BindEnv("service_name", "SERVICE_NAME")
	v.BindEnv("auth_url", "AUTH_URL")
	v.BindEnv("characters_url", "CHARACTERS_URL")
	v.BindEnv("character_details_url", "CHARACTER_DETAILS_URL")
	v.BindEnv("project_id", "PROJECT_ID")
	v.BindEnv("output_file", "OUTPUT_FILE")

	var config AppConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks if the configuration is valid
func (c *AppConfig) Validate() error {
	if c.AuthURL == "" {
		return errors.New("auth_url is required")
	}
	if len(c.LoginData) == 0 {
		return errors.New("login_data is required")
	}
	if c.CharactersURL == "" {
		return errors.New("characters_url is required")
	}
	if c.CharacterDetailsURL == "" {
		return errors.New("character_details_url is required")
	}
	if c.ProjectID == "" {
		return errors.New("project_id is required")
	}
	if c.OutputFile == "" {
		return errors.New("output_file is required")
	}
	return nil
}
