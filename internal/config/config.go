package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/paclead/paclead-backend/internal/logger"
	"github.com/paclead/paclead-backend/internal/utils"
)

type ServerConfig struct {
	Port        string   `yaml:"port"`
	CORSOrigins []string `yaml:"cors_origins"`
}

type ChatConfig struct {
	Model        string `yaml:"model"`
	CatalogLimit int    `yaml:"catalog_limit"`
}

type AppConfig struct {
	Server ServerConfig `yaml:"server"`
	Chat   ChatConfig   `yaml:"chat"`
}

func defaults() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port: "8080",
			CORSOrigins: []string{
				"http://localhost:3000",
				"http://localhost:5173",
			},
		},
		Chat: ChatConfig{
			Model:        "gpt-3.5-turbo",
			CatalogLimit: 200,
		},
	}
}

// Load reads the optional YAML file pointed at by APP_CONFIG and applies env
// overrides on top. A missing file is not an error; a malformed one is.
func Load(log *logger.Logger) (*AppConfig, error) {
	cfg := defaults()

	path := utils.GetEnv("APP_CONFIG", "", log)
	if path != "" {
		file, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(cfg); err != nil {
			return nil, err
		}
	}

	cfg.Server.Port = utils.GetEnv("PORT", cfg.Server.Port, log)
	cfg.Chat.Model = utils.GetEnv("OPENAI_CHAT_MODEL", cfg.Chat.Model, log)
	cfg.Chat.CatalogLimit = utils.GetEnvAsInt("CHAT_CATALOG_LIMIT", cfg.Chat.CatalogLimit, log)
	if cfg.Chat.CatalogLimit <= 0 {
		cfg.Chat.CatalogLimit = defaults().Chat.CatalogLimit
	}
	return cfg, nil
}
