package config

import (
	"OpenSAT-Quiz-Backend/internal/client"
	"OpenSAT-Quiz-Backend/internal/repository"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"
)

const envPrefix = "OPENSAT_QUIZ"

type Config struct {
	OpenSAT OpenSATConfig `mapstructure:"opensat"`
	Quiz    QuizConfig    `mapstructure:"quiz"`
	Server  ServerConfig  `mapstructure:"server"`
	CORS    CORSConfig    `mapstructure:"cors"`
	Catalog CatalogConfig `mapstructure:"catalog"`
}

type OpenSATConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

type QuizConfig struct {
	Section string `mapstructure:"section"`
	Domain  string `mapstructure:"domain"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type CatalogConfig struct {
	Domains map[string][]string `mapstructure:"domains"`
}

// New returns a viper instance with defaults, env binding and the config search path set.
// An explicit configFile replaces the search path.
func New(configFile string) *viper.Viper {
	v := viper.New()
	v.SetDefault("opensat.base_url", client.DefaultBankURL)
	v.SetDefault("opensat.timeout_seconds", 15)
	v.SetDefault("quiz.section", "")
	v.SetDefault("quiz.domain", "Algebra")
	v.SetDefault("server.port", ":8080")
	v.SetDefault("cors.allowed_origins", []string{})
	v.SetDefault("catalog.domains", repository.DefaultSectionDomains)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file if there is one and decodes everything into Config.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			log.Println("警告：未找到 config.yaml 文件，将使用默认值和环境变量进行配置。")
		} else {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}
	if cfg.OpenSAT.BaseURL == "" {
		cfg.OpenSAT.BaseURL = client.DefaultBankURL
	}
	return &cfg, nil
}
