package config

import (
	"os"
	"strconv"

	"github.com/go-yaml/yaml"
)

type Config struct {
	Server Server `yaml:"server"`
	Admin  Admin  `yaml:"admin"`
}

type Server struct {
	Port          int    `yaml:"port"`
	PostgresDsn   string `yaml:"postgresDsn"`
	RedisAddr     string `yaml:"redisAddr"`
	RedisDB       int    `yaml:"redisDB"`
	MemcachedAddr string `yaml:"memcachedAddr"`
	EnableTrace   bool   `yaml:"enableTrace"`
	TraceEndpoint string `yaml:"traceEndpoint"`
}

type Admin struct {
	// Token guards the /api/v1/admin surface. Empty means the surface is
	// open, which is only sensible for local development.
	Token string `yaml:"token"`
}

// Load reads the yaml config at path. A missing file is not an error;
// the zero config plus env overrides runs a memory-only server.
func Load(path string) (Config, error) {
	var config Config

	file, err := os.Open(path)
	if err == nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return Config{}, err
		}
	} else if !os.IsNotExist(err) {
		return Config{}, err
	}

	if port := os.Getenv("PORT"); port != "" {
		if n, err := strconv.Atoi(port); err == nil {
			config.Server.Port = n
		}
	}
	if config.Server.Port == 0 {
		config.Server.Port = 8080
	}

	if token := os.Getenv("ADMIN_TOKEN"); token != "" {
		config.Admin.Token = token
	}

	return config, nil
}
