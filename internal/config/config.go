package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/KaramelBytes/strokelens-cli/internal/logger"
)

const dirName = ".strokelens"

// Global configuration structure.
type Global struct {
	DataFile         string    `mapstructure:"data_file" yaml:"data_file"`
	Delimiter        string    `mapstructure:"delimiter" yaml:"delimiter"`
	ExportDir        string    `mapstructure:"export_dir" yaml:"export_dir"`
	LogLevel         string    `mapstructure:"log_level" yaml:"log_level"`
	StrictCategories bool      `mapstructure:"strict_categories" yaml:"strict_categories"`
	Percentiles      []float64 `mapstructure:"percentiles" yaml:"percentiles"`
	// Loader warnings logged one by one before only a total is reported.
	MaxWarnings int `mapstructure:"max_warnings" yaml:"max_warnings"`
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.strokelens/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, dirName)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (applied by the caller) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("STROKELENS")
	v.AutomaticEnv()

	v.SetDefault("data_file", "data.csv")
	v.SetDefault("delimiter", ",")
	v.SetDefault("export_dir", ".")
	v.SetDefault("log_level", "info")
	v.SetDefault("strict_categories", false)
	v.SetDefault("percentiles", []float64{25, 50, 75})
	v.SetDefault("max_warnings", 20)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		v.AddConfigPath(filepath.Join(home, dirName))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := ValidatePercentiles(c.Percentiles); err != nil {
		// Fall back so a bad saved value can still be repaired with config set
		logger.Warn("ignoring configured percentiles", "err", err)
		c.Percentiles = nil
	}
	if len(c.Percentiles) == 0 {
		c.Percentiles = []float64{25, 50, 75}
	}
	return &c, nil
}

// ValidatePercentiles checks that every rank is a number in [0,100].
func ValidatePercentiles(ranks []float64) error {
	for _, r := range ranks {
		if math.IsNaN(r) || r < 0 || r > 100 {
			return fmt.Errorf("invalid percentile rank: %v (use numbers in 0..100)", r)
		}
	}
	return nil
}

// DelimiterRune resolves the configured delimiter. Accepts ",", ";", "|" and
// "tab" or a literal tab.
func (c *Global) DelimiterRune() (rune, error) {
	return ParseDelimiter(c.Delimiter)
}

// ParseDelimiter maps a user-facing delimiter name to its rune.
func ParseDelimiter(s string) (rune, error) {
	switch s {
	case "", ",":
		return ',', nil
	case ";":
		return ';', nil
	case "|":
		return '|', nil
	case "\t", "tab":
		return '\t', nil
	default:
		return 0, fmt.Errorf("unsupported delimiter: %q (use ',' | ';' | '|' | 'tab')", s)
	}
}
