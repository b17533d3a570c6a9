package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the command line tool
type Config struct {
	Input     InputConfig     `mapstructure:"input"`
	Normalize NormalizeConfig `mapstructure:"normalize"`
	Output    OutputConfig    `mapstructure:"output"`
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
}

// InputConfig describes how sequences are read from input files
type InputConfig struct {
	Format    string `mapstructure:"format"`    // lines, csv, tsv or json
	Key       string `mapstructure:"key"`       // csv column or json field holding the sequence
	Delimiter string `mapstructure:"delimiter"` // csv field delimiter
	Encoding  string `mapstructure:"encoding"`  // any WHATWG encoding label, e.g. utf-8, latin1
}

// NormalizeConfig describes how sequences are normalized before use
type NormalizeConfig struct {
	Form string `mapstructure:"form"` // nfc, nfd, nfkc, nfkd or none
	Fold bool   `mapstructure:"fold"` // case folding
}

type OutputConfig struct {
	Format string `mapstructure:"format"` // lines, csv, tsv or json
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// LoadConfig loads configuration from file and SEQTRIE_* environment variables.
// An empty path loads only defaults and environment.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("seqtrie")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("input.format", "lines")
	v.SetDefault("input.key", "sequence")
	v.SetDefault("input.delimiter", ",")
	v.SetDefault("input.encoding", "utf-8")

	v.SetDefault("normalize.form", "nfc")
	v.SetDefault("normalize.fold", false)

	v.SetDefault("output.format", "lines")

	v.SetDefault("server.addr", ":8080")

	v.SetDefault("log.level", "info")
}
