package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Provider names accepted in the config file.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

type Config struct {
	Provider      string `yaml:"provider"`
	ModelSettings struct {
		GeminiModel   string  `yaml:"gemini_model"`
		OpenAIModel   string  `yaml:"openai_model"`
		OpenAIBaseURL string  `yaml:"openai_base_url"`
		Temperature   float64 `yaml:"temperature"`
		TopP          float64 `yaml:"top_p"`
	} `yaml:"model_settings"`
	Storage struct {
		StatsFile   string `yaml:"stats_file"`
		JournalFile string `yaml:"journal_file"`
	} `yaml:"storage"`
}

func defaults() *Config {
	config := &Config{}
	config.Provider = ProviderGemini
	config.ModelSettings.GeminiModel = "gemini-1.5-flash-latest"
	config.ModelSettings.OpenAIModel = "gpt-4o-mini"
	config.ModelSettings.Temperature = 1
	config.ModelSettings.TopP = 1
	config.Storage.StatsFile = "lifesim_stats.json"
	config.Storage.JournalFile = "lifesim_journal.json"
	return config
}

// LoadConfig reads the yaml config at path. A missing file yields the
// defaults; a present but unreadable file is an error. Fields omitted from
// the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	config := defaults()

	_, err := os.Stat(path)
	if os.IsNotExist(err) {
		return config, nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	err = yaml.Unmarshal(file, config)
	if err != nil {
		return nil, err
	}

	return config, nil
}
