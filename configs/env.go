package configs

import (
	_ "embed"

	"github.com/spf13/viper"
)

// EnvConfig holds settings that are read from the environment before the
// properties file is loaded.
type EnvConfig struct {
	ApplicationName    string
	PropertiesFilePath string
}

var Env *EnvConfig

// DefaultProperties is the bundled application.yml, used when the properties
// file cannot be read.
//
//go:embed application.yml
var DefaultProperties []byte

func init() {
	viper.AutomaticEnv()

	Env = &EnvConfig{
		ApplicationName:    getStringOrDefault("APPLICATION_NAME", "climate-api"),
		PropertiesFilePath: getStringOrDefault("PROPERTIES_FILE_PATH", "configs/application.yml"),
	}
}

func getStringOrDefault(key, defaultValue string) string {
	value := viper.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}
