package reviewlens

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the demo server's startup settings: where to listen and where
// the read-only artifacts live.
type Config struct {
	Listen     string `yaml:"listen"`
	ModelPath  string `yaml:"model_path"`
	SlangPath  string `yaml:"slang_path"`
	CorpusPath string `yaml:"corpus_path"`
	TopN       int    `yaml:"top_n"`
	LogLevel   string `yaml:"log_level"`
}

// DefaultConfig returns the settings used when no file is supplied.
func DefaultConfig() *Config {
	return &Config{
		Listen:     ":8080",
		ModelPath:  "artifacts/model.json",
		SlangPath:  "artifacts/slang-dict.csv",
		CorpusPath: "artifacts/imdb_demo.txt",
		TopN:       DefaultTopN,
		LogLevel:   "info",
	}
}

// LoadConfig reads a YAML configuration file and fills in defaults for any
// field left unset.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	def := DefaultConfig()
	if c.Listen == "" {
		c.Listen = def.Listen
	}
	if c.ModelPath == "" {
		c.ModelPath = def.ModelPath
	}
	if c.SlangPath == "" {
		c.SlangPath = def.SlangPath
	}
	if c.CorpusPath == "" {
		c.CorpusPath = def.CorpusPath
	}
	if c.TopN < 1 {
		c.TopN = def.TopN
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
}
