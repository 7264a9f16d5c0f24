package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Apollo    ApolloConfig    `yaml:"apollo" mapstructure:"apollo"`
	Lusha     LushaConfig     `yaml:"lusha" mapstructure:"lusha"`
	Serper    SerperConfig    `yaml:"serper" mapstructure:"serper"`
	Anthropic AnthropicConfig `yaml:"anthropic" mapstructure:"anthropic"`
	Search    SearchConfig    `yaml:"search" mapstructure:"search"`
	Pipeline  PipelineConfig  `yaml:"pipeline" mapstructure:"pipeline"`
	Server    ServerConfig    `yaml:"server" mapstructure:"server"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
}

// ApolloConfig holds directory-service credentials and paging defaults.
type ApolloConfig struct {
	Key     string `yaml:"key" mapstructure:"key"`
	PerPage int    `yaml:"per_page" mapstructure:"per_page"`
}

// LushaConfig holds the secondary enrichment provider credential.
type LushaConfig struct {
	Key string `yaml:"key" mapstructure:"key"`
}

// SerperConfig holds web-search settings.
type SerperConfig struct {
	Key             string `yaml:"key" mapstructure:"key"`
	Country         string `yaml:"country" mapstructure:"country"`
	Locale          string `yaml:"locale" mapstructure:"locale"`
	DateRestriction string `yaml:"date_restriction" mapstructure:"date_restriction"`
	RateLimit       int    `yaml:"rate_limit" mapstructure:"rate_limit"`
}

// AnthropicConfig holds Anthropic API settings.
type AnthropicConfig struct {
	Key         string  `yaml:"key" mapstructure:"key"`
	Model       string  `yaml:"model" mapstructure:"model"`
	MaxTokens   int64   `yaml:"max_tokens" mapstructure:"max_tokens"`
	Temperature float64 `yaml:"temperature" mapstructure:"temperature"`
}

// SearchConfig configures discovery defaults and the optional vocabulary file.
type SearchConfig struct {
	VocabularyPath string `yaml:"vocabulary_path" mapstructure:"vocabulary_path"`
	EmployeeRange  string `yaml:"employee_range" mapstructure:"employee_range"`
}

// PipelineConfig configures orchestration behavior.
type PipelineConfig struct {
	MaxConcurrentCompanies int `yaml:"max_concurrent_companies" mapstructure:"max_concurrent_companies"`
	MaxConcurrentContacts  int `yaml:"max_concurrent_contacts" mapstructure:"max_concurrent_contacts"`
}

// ServerConfig configures the HTTP API server.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("PROSPECT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("server.port", 8080)
	v.SetDefault("apollo.per_page", 20)
	v.SetDefault("serper.country", "br")
	v.SetDefault("serper.locale", "pt-br")
	v.SetDefault("serper.date_restriction", "d[6]")
	v.SetDefault("serper.rate_limit", 5)
	v.SetDefault("anthropic.model", "claude-haiku-4-5-20251001")
	v.SetDefault("anthropic.max_tokens", 2048)
	v.SetDefault("anthropic.temperature", 0.3)
	v.SetDefault("search.employee_range", "11,500")
	v.SetDefault("pipeline.max_concurrent_companies", 5)
	v.SetDefault("pipeline.max_concurrent_contacts", 4)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
