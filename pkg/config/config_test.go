package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validYAML = `
auth_url: https://example.org/x-game-api/token
login_data:
  grant_type: password
  username: someone
  password: secret
characters_url: https://example.org/x-game-api/{projectId}/characters
character_details_url: https://example.org/x-game-api/{projectId}/characters/{characterId}
project_id: "42"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "parse_config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	cfg, err := Load(writeConfig(t, validYAML))
	require.NoError(t, err)

	assert.Equal(t, "https://example.org/x-game-api/token", cfg.AuthURL)
	assert.Equal(t, "password", cfg.LoginData["grant_type"])
	assert.Equal(t, "someone", cfg.LoginData["username"])
	assert.Equal(t, "https://example.org/x-game-api/{projectId}/characters", cfg.CharactersURL)
	assert.Equal(t, "42", cfg.ProjectID)

	// Defaults
	assert.Equal(t, "output.csv", cfg.OutputFile)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "development", cfg.Environment)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does_not_exist.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestLoadConfigMissingRequiredKey(t *testing.T) {
	// project_id omitted
	path := writeConfig(t, `
auth_url: https://example.org/token
login_data:
  username: someone
characters_url: https://example.org/{projectId}/characters
character_details_url: https://example.org/{projectId}/characters/{characterId}
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "project_id")
}

func TestConfigValidation(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("valid config passes validation", prop.ForAll(
		func(authURL, listURL, detailURL, projectID string) bool {
			cfg := AppConfig{
				AuthURL:             authURL,
				LoginData:           map[string]string{"username": "u"},
				CharactersURL:       listURL,
				CharacterDetailsURL: detailURL,
				ProjectID:           projectID,
				OutputFile:          "output.csv",
			}
			return cfg.Validate() == nil
		},
		gen.Identifier(),
		gen.Identifier(),
		gen.Identifier(),
		gen.Identifier(),
	))

	properties.Property("empty login payload fails validation", prop.ForAll(
		func(authURL string) bool {
			cfg := AppConfig{
				AuthURL:             authURL,
				CharactersURL:       "l",
				CharacterDetailsURL: "d",
				ProjectID:           "p",
				OutputFile:          "o",
			}
			return cfg.Validate() != nil
		},
		gen.Identifier(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
