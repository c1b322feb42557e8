package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Log      LogConfig
	Printer  PrinterConfig
	Order    OrderConfig
}

type ServerConfig struct {
	Port int
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type LogConfig struct {
	Level string
}

type PrinterConfig struct {
	// Mode is "auto" (probe for hardware, fall back to mock) or "mock".
	Mode              string
	Address           string
	Port              int
	DevicePath        string
	RestaurantName    string
	RestaurantAddress string
}

type OrderConfig struct {
	DefaultPrepTimeMinutes int
}

func Load() (*Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", 8080)
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", 3306)
	viper.SetDefault("DB_USER", "tillroll")
	viper.SetDefault("DB_PASSWORD", "secret")
	viper.SetDefault("DB_NAME", "tillroll")
	viper.SetDefault("DB_MAX_OPEN_CONNS", 25)
	viper.SetDefault("DB_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DB_CONN_MAX_LIFETIME", "5m")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("PRINTER_MODE", "auto")
	viper.SetDefault("PRINTER_ADDRESS", "")
	viper.SetDefault("PRINTER_PORT", 9100)
	viper.SetDefault("PRINTER_DEVICE_PATH", "")
	viper.SetDefault("RESTAURANT_NAME", "The Curry Vault")
	viper.SetDefault("RESTAURANT_ADDRESS", "")
	viper.SetDefault("ORDER_DEFAULT_PREP_TIME_MINUTES", 20)

	connMaxLifetime, err := time.ParseDuration(viper.GetString("DB_CONN_MAX_LIFETIME"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: viper.GetInt("SERVER_PORT"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			Name:            viper.GetString("DB_NAME"),
			MaxOpenConns:    viper.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: connMaxLifetime,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Printer: PrinterConfig{
			Mode:              viper.GetString("PRINTER_MODE"),
			Address:           viper.GetString("PRINTER_ADDRESS"),
			Port:              viper.GetInt("PRINTER_PORT"),
			DevicePath:        viper.GetString("PRINTER_DEVICE_PATH"),
			RestaurantName:    viper.GetString("RESTAURANT_NAME"),
			RestaurantAddress: viper.GetString("RESTAURANT_ADDRESS"),
		},
		Order: OrderConfig{
			DefaultPrepTimeMinutes: viper.GetInt("ORDER_DEFAULT_PREP_TIME_MINUTES"),
		},
	}

	return cfg, nil
}
