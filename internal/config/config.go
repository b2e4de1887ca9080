package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Library  LibraryConfig
	Picker   PickerConfig
	Stickers StickersConfig
	Export   ExportConfig
	Log      LogConfig
}

// LibraryConfig locates the media library: exported files and their sqlite index.
type LibraryConfig struct {
	Dir    string `mapstructure:"dir" validate:"required"`
	DBPath string `mapstructure:"db_path" validate:"required"`
}

// PickerConfig controls the photo picker.
type PickerConfig struct {
	Dir      string `mapstructure:"dir" validate:"required"`
	CacheDir string `mapstructure:"cache_dir" validate:"required"`
}

// StickersConfig points at an optional directory of extra PNG stickers.
type StickersConfig struct {
	Dir string `mapstructure:"dir"`
}

// ExportConfig selects the export target.
type ExportConfig struct {
	Target       string `mapstructure:"target" validate:"oneof=native browser"`
	DownloadsDir string `mapstructure:"downloads_dir" validate:"required"`
}

// LogConfig holds the log file settings.
type LogConfig struct {
	Path  string `mapstructure:"path"`
	Level string `mapstructure:"level" validate:"omitempty,oneof=trace debug info warn warning error disabled off"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads configuration from file and env. Env var overrides use prefix STICKERSMASH_.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v, os.Getenv("HOME"))

	v.SetConfigType("toml")

	cfgPath := os.Getenv("STICKERSMASH_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "stickersmash"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("STICKERSMASH")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.Export.Target = strings.ToLower(strings.TrimSpace(c.Export.Target))
	if err := Validate(c); err != nil {
		return Config{}, err
	}
	return c, nil
}

func setDefaults(v *viper.Viper, home string) {
	share := filepath.Join(home, ".local", "share", "stickersmash")
	v.SetDefault("library.dir", filepath.Join(home, "Pictures", "StickerSmash"))
	v.SetDefault("library.db_path", filepath.Join(share, "library.db"))
	v.SetDefault("picker.dir", filepath.Join(home, "Pictures"))
	v.SetDefault("picker.cache_dir", filepath.Join(home, ".cache", "stickersmash"))
	v.SetDefault("stickers.dir", filepath.Join(share, "stickers"))
	v.SetDefault("export.target", "native")
	v.SetDefault("export.downloads_dir", filepath.Join(home, "Downloads"))
	v.SetDefault("log.path", filepath.Join(share, "stickersmash.log"))
	v.SetDefault("log.level", "info")
}

// Validate checks the struct tags on c.
func Validate(c Config) error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Path is where Save writes: $STICKERSMASH_CONFIG or the default location.
func Path() string {
	if p := os.Getenv("STICKERSMASH_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "stickersmash", "config.toml")
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("library.dir", cfg.Library.Dir)
	v.Set("library.db_path", cfg.Library.DBPath)
	v.Set("picker.dir", cfg.Picker.Dir)
	v.Set("picker.cache_dir", cfg.Picker.CacheDir)
	v.Set("stickers.dir", cfg.Stickers.Dir)
	v.Set("export.target", cfg.Export.Target)
	v.Set("export.downloads_dir", cfg.Export.DownloadsDir)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
