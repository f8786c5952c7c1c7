package retropda

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Defaults for a fresh install
const (
	DefaultAppDirName      = ".pypda"
	DefaultManifestName    = "extensions.json"
	DefaultConfigName      = "pda.yaml"
	DefaultTitle           = "PyPDA v0.1"
	DefaultColumns         = 3
	DefaultExtensionFilter = "py"
	DefaultFontSize        = 14
)

// Config carries everything the shell needs to locate its data and render
// itself. It is built once at startup and passed down explicitly.
type Config struct {
	DataDir         string `mapstructure:"data_dir" yaml:"data_dir"`
	ManifestName    string `mapstructure:"manifest_name" yaml:"manifest_name"`
	Title           string `mapstructure:"title" yaml:"title"`
	Fullscreen      bool   `mapstructure:"fullscreen" yaml:"fullscreen"`
	Columns         int    `mapstructure:"columns" yaml:"columns"`
	ExtensionFilter string `mapstructure:"extension_filter" yaml:"extension_filter"`
	ShowHidden      bool   `mapstructure:"show_hidden" yaml:"show_hidden"`
	FontSize        int    `mapstructure:"font_size" yaml:"font_size"`
	IconsDir        string `mapstructure:"icons_dir" yaml:"icons_dir"`
	FontFile        string `mapstructure:"font_file" yaml:"font_file"`
	QuitShortcut    string `mapstructure:"quit_shortcut" yaml:"quit_shortcut"`
	Debug           bool   `mapstructure:"debug" yaml:"debug"`
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		DataDir:         DefaultDataDir(),
		ManifestName:    DefaultManifestName,
		Title:           DefaultTitle,
		Fullscreen:      true,
		Columns:         DefaultColumns,
		ExtensionFilter: DefaultExtensionFilter,
		ShowHidden:      true,
		FontSize:        DefaultFontSize,
		QuitShortcut:    DefaultQuitShortcut(runtime.GOOS),
	}
}

// DefaultQuitShortcut returns the platform quit shortcut for goos.
// The window starts full screen, so this is the in-app way out.
func DefaultQuitShortcut(goos string) string {
	if goos == "darwin" {
		return "Cmd+Q"
	}
	return "Ctrl+Q"
}

// DefaultDataDir returns ~/.pypda, or a relative .pypda when the home
// directory cannot be determined.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil || strings.TrimSpace(home) == "" {
		return DefaultAppDirName
	}
	return filepath.Join(home, DefaultAppDirName)
}

// DefaultConfigPath returns the path of the optional config file.
func DefaultConfigPath() string {
	return filepath.Join(DefaultDataDir(), DefaultConfigName)
}

// ManifestPath returns the full path to the manifest file.
func (c *Config) ManifestPath() string {
	return filepath.Join(c.DataDir, c.ManifestName)
}

// Validate fills zero values with defaults and rejects unusable settings.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DataDir) == "" {
		c.DataDir = DefaultDataDir()
	}
	if strings.TrimSpace(c.ManifestName) == "" {
		c.ManifestName = DefaultManifestName
	}
	if filepath.Base(c.ManifestName) != c.ManifestName {
		return fmt.Errorf("manifest_name %q must be a bare file name", c.ManifestName)
	}
	if c.Title == "" {
		c.Title = DefaultTitle
	}
	if c.Columns <= 0 {
		c.Columns = DefaultColumns
	}
	if c.FontSize <= 0 {
		c.FontSize = DefaultFontSize
	}
	c.ExtensionFilter = strings.TrimPrefix(strings.TrimSpace(c.ExtensionFilter), ".")
	c.DataDir = expandHome(c.DataDir)
	c.IconsDir = expandHome(c.IconsDir)
	c.FontFile = expandHome(c.FontFile)
	c.QuitShortcut = strings.TrimSpace(c.QuitShortcut)
	return nil
}

func newConfigViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix("PDA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setConfigDefaults(v, DefaultConfig())
	return v
}

func setConfigDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("data_dir", d.DataDir)
	v.SetDefault("manifest_name", d.ManifestName)
	v.SetDefault("title", d.Title)
	v.SetDefault("fullscreen", d.Fullscreen)
	v.SetDefault("columns", d.Columns)
	v.SetDefault("extension_filter", d.ExtensionFilter)
	v.SetDefault("show_hidden", d.ShowHidden)
	v.SetDefault("font_size", d.FontSize)
	v.SetDefault("icons_dir", d.IconsDir)
	v.SetDefault("font_file", d.FontFile)
	v.SetDefault("quit_shortcut", d.QuitShortcut)
	v.SetDefault("debug", d.Debug)
}

// LoadConfig reads the YAML config at path. A missing file is not an error:
// defaults (plus PDA_* environment overrides) are returned instead.
func LoadConfig(path string) (*Config, error) {
	v := newConfigViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("read config %s: %w", path, err)
			}
		}
	}
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// WriteDefaultConfig writes cfg as YAML to path, creating the parent
// directory. An existing file is left untouched unless overwrite is set.
func WriteDefaultConfig(path string, cfg *Config, overwrite bool) error {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config %s already exists", path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	body, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	header := "# retro PDA configuration\n# Every key is optional; remove a line to fall back to the default.\n\n"
	if err := os.WriteFile(path, append([]byte(header), body...), 0644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
