package configs

import (
	"errors"
	"io/fs"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envFile = ".env"

type EnvConfig struct {
	ApplicationName string
	ContextPath     string
}

var Env *EnvConfig

// init loads a local .env file into the process environment. It runs before the
// logger, properties and messages packages read their own variables.
func init() {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Ignoring %s: %v", envFile, err)
	}

	viper.AutomaticEnv()

	Env = &EnvConfig{
		ApplicationName: getStringOrDefault("APPLICATION_NAME", "golf-api"),
		ContextPath:     getStringOrDefault("CONTEXT_PATH", "/golf"),
	}
}

func getStringOrDefault(key, defaultValue string) string {
	value := viper.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}

