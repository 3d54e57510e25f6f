package config

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Config содержит настройки приложения
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"db"`
	Log      LogConfig      `mapstructure:"log"`
	Report   ReportConfig   `mapstructure:"report"`
	Page     PageConfig     `mapstructure:"page"`
}

// ServerConfig - настройки HTTP сервера
type ServerConfig struct {
	Port string `mapstructure:"port"`
}

// DatabaseConfig - настройки подключения к БД
type DatabaseConfig struct {
	Host         string `mapstructure:"host"`
	Port         string `mapstructure:"port"`
	User         string `mapstructure:"user"`
	Password     string `mapstructure:"password"`
	DBName       string `mapstructure:"name"`
	SSLMode      string `mapstructure:"sslmode"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
}

// LogConfig - уровень и формат логов (json или console)
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ReportConfig - поведение отчётов
type ReportConfig struct {
	ExcludeDeleted bool `mapstructure:"exclude_deleted"`
}

// PageConfig - параметры постраничной выдачи
type PageConfig struct {
	DefaultSize int `mapstructure:"default_size"`
}

// DSN возвращает строку подключения к PostgreSQL
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

var defaults = map[string]any{
	"server.port":            "8080",
	"db.host":                "localhost",
	"db.port":                "5432",
	"db.user":                "postgres",
	"db.password":            "postgres",
	"db.name":                "orgpayroll",
	"db.sslmode":             "disable",
	"db.max_open_conns":      25,
	"db.max_idle_conns":      5,
	"log.level":              "info",
	"log.format":             "json",
	"report.exclude_deleted": false,
	"page.default_size":      20,
}

// Load загружает конфигурацию из переменных окружения (SERVER_PORT, DB_HOST, ...)
// и, если задан CONFIG_FILE, из файла. Окружение имеет приоритет над файлом.
func Load() (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("config_file", "CONFIG_FILE"); err != nil {
		return nil, errors.Wrap(err, "bind CONFIG_FILE")
	}
	if path := v.GetString("config_file"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config file %s", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	return &cfg, nil
}
