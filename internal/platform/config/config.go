package config

import "github.com/kelseyhightower/envconfig"

// App captures process-level configuration so main stays lean. Values come
// from PCDIR_-prefixed environment variables.
type App struct {
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	SeedFleet bool   `envconfig:"SEED_FLEET" default:"true"`
}

// FromEnv builds the App config from the environment.
func FromEnv() (App, error) {
	var c App
	if err := envconfig.Process("PCDIR", &c); err != nil {
		return App{}, err
	}
	return c, nil
}
