package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	// Provide a path that definitely doesn't exist
	config, err := LoadConfig("non_existent_config.yml")
	require.NoError(t, err)

	assert.Equal(t, ProviderGemini, config.Provider)
	assert.Equal(t, "gemini-1.5-flash-latest", config.ModelSettings.GeminiModel)
	assert.Equal(t, "gpt-4o-mini", config.ModelSettings.OpenAIModel)
	assert.Equal(t, 1.0, config.ModelSettings.Temperature)
	assert.Equal(t, 1.0, config.ModelSettings.TopP)
	assert.Equal(t, "lifesim_stats.json", config.Storage.StatsFile)
	assert.Equal(t, "lifesim_journal.json", config.Storage.JournalFile)
}

func TestLoadConfig_ValidFile(t *testing.T) {
	content := []byte(`
provider: openai
model_settings:
  openai_model: gpt-4o
  openai_base_url: https://example.com/v1
  temperature: 0.7
  top_p: 0.9
storage:
  stats_file: /tmp/my_stats.json
`)
	tmpfile, err := os.CreateTemp("", "config_test_*.yml")
	require.NoError(t, err)
	defer os.Remove(tmpfile.Name()) // clean up

	if _, err := tmpfile.Write(content); err != nil {
		tmpfile.Close()
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(tmpfile.Name())
	require.NoError(t, err)

	assert.Equal(t, ProviderOpenAI, config.Provider)
	assert.Equal(t, "gpt-4o", config.ModelSettings.OpenAIModel)
	assert.Equal(t, "https://example.com/v1", config.ModelSettings.OpenAIBaseURL)
	assert.Equal(t, 0.7, config.ModelSettings.Temperature)
	assert.Equal(t, 0.9, config.ModelSettings.TopP)
	assert.Equal(t, "/tmp/my_stats.json", config.Storage.StatsFile)
	// Omitted fields keep defaults
	assert.Equal(t, "lifesim_journal.json", config.Storage.JournalFile)
	assert.Equal(t, "gemini-1.5-flash-latest", config.ModelSettings.GeminiModel)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	content := []byte(`
model_settings:
  temperature: "not a number"
  broken_yaml: [ unclosed bracket
`)
	tmpfile, err := os.CreateTemp("", "config_invalid_*.yml")
	require.NoError(t, err)
	defer os.Remove(tmpfile.Name())

	if _, err := tmpfile.Write(content); err != nil {
		tmpfile.Close()
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(tmpfile.Name())

	assert.Error(t, err)
	assert.Nil(t, config)
}
