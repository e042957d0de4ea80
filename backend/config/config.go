package config

import (
	env "github.com/Netflix/go-env"
	"github.com/joho/godotenv"
)

type Config struct {
	Addr         string `env:"CHIRP_ADDR,default=:8080"`
	DatabasePath string `env:"CHIRP_DB_PATH,default=./chirp.db"`
	Development  bool   `env:"CHIRP_DEV_LOG,default=false"`
}

// Load reads the configuration from the environment, applying a .env
// file first when one is present.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
