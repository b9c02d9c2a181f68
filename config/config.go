package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server   `mapstructure:"server"   validate:"required"`
	Database Database `mapstructure:"database" validate:"required"`
	Static   Static   `mapstructure:"static"   validate:"required"`
	Log      Log      `mapstructure:"log"      validate:"required"`
}

type Server struct {
	Addr        string `mapstructure:"addr"          validate:"required"`
	OpenBrowser bool   `mapstructure:"open_browser"`
	MaxUploadMB int64  `mapstructure:"max_upload_mb" validate:"min=1,max=512"`
}

type Database struct {
	Path          string `mapstructure:"path"            validate:"required"`
	BusyTimeoutMs int    `mapstructure:"busy_timeout_ms" validate:"min=0"`
}

// Static はアップロード画像の保存先と公開URLの設定です。
type Static struct {
	Dir          string `mapstructure:"dir"            validate:"required"`
	URLPrefix    string `mapstructure:"url_prefix"     validate:"required,startswith=/"`
	MarkImageDir string `mapstructure:"mark_image_dir" validate:"required"`
}

type Log struct {
	Level      string `mapstructure:"level"       validate:"required,oneof=debug info warn error"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" validate:"min=1"`
	MaxBackups int    `mapstructure:"max_backups" validate:"min=0"`
}

var (
	cfg Config
	mu  sync.RWMutex
)

const defaultConfigName = "hainyu_config"

// Load は設定ファイル・環境変数(HAINYU_*)・デフォルト値から設定を読み込みます。
// path が空の場合はカレントディレクトリの hainyu_config.json を探し、無ければデフォルトを使います。
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("HAINYU")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(defaultConfigName)
		v.SetConfigType("json")
		v.AddConfigPath(".")
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config read error: %w", err)
		}
	}

	var loaded Config
	if err := v.UnmarshalExact(&loaded); err != nil {
		return Config{}, fmt.Errorf("config unmarshal error: %w", err)
	}

	if err := validator.New().Struct(&loaded); err != nil {
		return Config{}, fmt.Errorf("config validation failed: %w", err)
	}

	mu.Lock()
	cfg = loaded
	mu.Unlock()

	return loaded, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.open_browser", false)
	v.SetDefault("server.max_upload_mb", 32)
	v.SetDefault("database.path", "./hainyu.db")
	v.SetDefault("database.busy_timeout_ms", 5000)
	v.SetDefault("static.dir", "./static")
	v.SetDefault("static.url_prefix", "/static/")
	v.SetDefault("static.mark_image_dir", "mark_images")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "./logs/hainyu.log")
	v.SetDefault("log.max_size_mb", 50)
	v.SetDefault("log.max_backups", 5)
}

// GetConfig は最後に Load した設定を返します。
func GetConfig() Config {
	mu.RLock()
	defer mu.RUnlock()
	return cfg
}

// DSN は go-sqlite3 用の接続文字列を組み立てます。
func (d Database) DSN() string {
	return fmt.Sprintf("%s?_journal_mode=WAL&_busy_timeout=%d", d.Path, d.BusyTimeoutMs)
}
