package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rx-tui/rx-tui/internal/prescription"
	"github.com/spf13/viper"
)

const EnvPrefix = "RXTUI"

type Config struct {
	Linearizer LinearizerConfig `mapstructure:"linearizer"`
	Grammars   GrammarConfig    `mapstructure:"grammars"`
	UI         UIConfig         `mapstructure:"ui"`
	Log        LogConfig        `mapstructure:"log"`
}

type LinearizerConfig struct {
	Bin     string        `mapstructure:"bin"`
	Args    []string      `mapstructure:"args"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type GrammarConfig struct {
	English    string `mapstructure:"english"`
	Portuguese string `mapstructure:"portuguese"`
}

type UIConfig struct {
	Language string `mapstructure:"language"`
	Mode     string `mapstructure:"mode"`
}

type LogConfig struct {
	File    string `mapstructure:"file"`
	Level   string `mapstructure:"level"`
	Console bool   `mapstructure:"console"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("linearizer.bin", "gf")
	v.SetDefault("linearizer.args", []string{"--run"})
	v.SetDefault("linearizer.timeout", time.Duration(0))
	v.SetDefault("grammars.english", "PrescriptionGrammarEng.gf")
	// Empty: every language imports the English grammar unless configured.
	v.SetDefault("grammars.portuguese", "")
	v.SetDefault("ui.language", "en")
	v.SetDefault("ui.mode", "free")
	v.SetDefault("log.file", filepath.Join(configDir(), "rx-tui.log"))
	v.SetDefault("log.level", "info")
	v.SetDefault("log.console", false)
}

// LoadConfig reads defaults, then the config file, then RXTUI_* environment
// variables. An explicit path must exist; the default path is optional.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if def := getDefaultConfigPath(); fileExists(def) {
		v.SetConfigFile(def)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", def, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Linearizer.Bin) == "" {
		return fmt.Errorf("linearizer.bin is required")
	}
	if c.Linearizer.Timeout < 0 {
		return fmt.Errorf("linearizer.timeout must not be negative")
	}
	if c.Grammars.English == "" {
		return fmt.Errorf("grammars.english is required")
	}
	if _, err := c.Language(); err != nil {
		return err
	}
	if _, err := c.Mode(); err != nil {
		return err
	}
	return nil
}

// GrammarFiles maps each language to the grammar it imports.
func (c *Config) GrammarFiles() map[prescription.Language]string {
	files := map[prescription.Language]string{
		prescription.English: c.Grammars.English,
	}
	if c.Grammars.Portuguese != "" {
		files[prescription.PortugueseBRA] = c.Grammars.Portuguese
	}
	return files
}

func (c *Config) Language() (prescription.Language, error) {
	return prescription.ParseLanguage(c.UI.Language)
}

func (c *Config) Mode() (prescription.Mode, error) {
	return prescription.ParseMode(c.UI.Mode)
}

func configDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".rx-tui"
	}
	return filepath.Join(homeDir, ".rx-tui")
}

func getDefaultConfigPath() string {
	return filepath.Join(configDir(), "config.yaml")
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
