// Package config loads typed configuration from the environment.
//
// Load reads optional .env files with github.com/joho/godotenv and then
// parses environment variables into a struct with
// github.com/caarlos0/env/v11 field tags:
//
//	type Config struct {
//	    FlashDelay time.Duration `env:"FLASH_DELAY" envDefault:"4s"`
//	}
//
//	cfg, err := config.Load[Config]()
//
// Variables already present in the process environment win over values from
// .env files. WithEnvironment replaces the process environment entirely,
// which keeps tests hermetic.
package config
