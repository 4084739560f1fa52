package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config represents the perflint configuration
type Config struct {
	Root           string `mapstructure:"root"`
	Format         string `mapstructure:"format"`
	Output         string `mapstructure:"output"`
	FailUnder      int    `mapstructure:"failUnder"`
	Thresholds     string `mapstructure:"thresholds"`
	FollowSymlinks bool   `mapstructure:"followSymlinks"`
	Quiet          bool   `mapstructure:"quiet"`
	Verbose        bool   `mapstructure:"verbose"`
}

// LoadConfig loads configuration from defaults, rc files, environment
// variables, and bound flags, in increasing precedence.
func LoadConfig(rootPath string) (*Config, error) {
	viper.SetDefault("root", "")
	viper.SetDefault("format", "console")
	viper.SetDefault("output", "")
	viper.SetDefault("failUnder", 0)
	viper.SetDefault("thresholds", "")
	viper.SetDefault("followSymlinks", false)
	viper.SetDefault("quiet", false)
	viper.SetDefault("verbose", false)

	// Config file locations
	configPaths := []string{".perflintrc.json", ".perflintrc.yaml", ".perflintrc.yml"}
	for _, path := range configPaths {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err == nil {
			break
		}
	}

	// Environment variables
	viper.SetEnvPrefix("PERFLINT")
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Override root if provided
	if rootPath != "" {
		config.Root = rootPath
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// validateConfig validates the configuration
func validateConfig(config *Config) error {
	if config.Format != "console" && config.Format != "json" && config.Format != "markdown" {
		return fmt.Errorf("invalid format: %s. Must be 'console', 'json', or 'markdown'", config.Format)
	}

	if config.FailUnder < 0 || config.FailUnder > 100 {
		return fmt.Errorf("fail-under must be between 0 and 100, got %d", config.FailUnder)
	}

	return nil
}
