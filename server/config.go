package server

import (
	"github.com/joeshaw/envdecode"
)

// Config carries the server's environment-driven settings
type Config struct {
	Addr          string `env:"EUCHRE_ADDR,default=:8000"`
	AllowedOrigin string `env:"EUCHRE_ALLOWED_ORIGIN,default=*"`
	WinTarget     int    `env:"EUCHRE_WIN_TARGET,default=10"`
}

// LoadConfig reads the server configuration from the environment
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
