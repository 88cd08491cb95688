package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the food delivery system.
type Config struct {
	MenuService  MenuServiceConfig  `yaml:"menu_service"`
	OrderService OrderServiceConfig `yaml:"order_service"`
	Client       ClientConfig       `yaml:"client"`
}

// MenuServiceConfig holds the menu service's listen port and catalog path.
type MenuServiceConfig struct {
	Port     int    `yaml:"port"`
	DataPath string `yaml:"data_path"`
}

// OrderServiceConfig holds the order service's listen port and ledger path.
type OrderServiceConfig struct {
	Port     int    `yaml:"port"`
	DataPath string `yaml:"data_path"`
}

// ClientConfig holds the ordering client's upstream URLs and cache TTL.
type ClientConfig struct {
	MenuServiceURL  string `yaml:"menu_service_url"`
	OrderServiceURL string `yaml:"order_service_url"`
	CacheTTLSeconds int    `yaml:"cache_ttl_seconds"`
}

// Load reads configuration from a YAML file, then applies overrides from
// the environment (a .env file is honored if present).
func Load(filename string) (*Config, error) {
	_ = godotenv.Load()

	cfg := defaults()

	data, err := os.ReadFile(filename)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// No config file: defaults plus environment.
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyEnv()
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		MenuService: MenuServiceConfig{
			Port:     5001,
			DataPath: "shared_data/menus.json",
		},
		OrderService: OrderServiceConfig{
			Port:     5002,
			DataPath: "shared_data/orders.json",
		},
		Client: ClientConfig{
			MenuServiceURL:  "http://127.0.0.1:5001",
			OrderServiceURL: "http://127.0.0.1:5002",
			CacheTTLSeconds: 600,
		},
	}
}

func (c *Config) applyEnv() {
	if v := getEnv("MENU_PORT", ""); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.MenuService.Port = port
		}
	}
	if v := getEnv("ORDER_PORT", ""); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.OrderService.Port = port
		}
	}
	c.MenuService.DataPath = getEnv("MENU_DATA_PATH", c.MenuService.DataPath)
	c.OrderService.DataPath = getEnv("ORDER_DATA_PATH", c.OrderService.DataPath)
	c.Client.MenuServiceURL = getEnv("MENU_SERVICE_URL", c.Client.MenuServiceURL)
	c.Client.OrderServiceURL = getEnv("ORDER_SERVICE_URL", c.Client.OrderServiceURL)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
