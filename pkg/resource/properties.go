package resource

import (
	"bytes"
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/spf13/viper"
)

var properties = viper.New()
var envPattern = regexp.MustCompile(`\$\{([^:}]+)(?::([^}]*))?}`)

// Init loads application properties from a YAML file.
func Init(filepath string) error {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return fmt.Errorf("read properties %s: %w", filepath, err)
	}
	return InitFromBytes(data)
}

// InitFromBytes loads application properties from YAML content, resolving
// ${ENV} and ${ENV:default} placeholders against the process environment.
func InitFromBytes(data []byte) error {
	raw := viper.New()
	raw.SetConfigType("yml")
	if err := raw.ReadConfig(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("parse properties: %w", err)
	}

	resolved := make(map[string]any)
	parsePropertiesMap("", raw.AllSettings(), resolved)

	next := viper.New()
	for key, value := range resolved {
		next.Set(key, value)
	}
	properties = next
	return nil
}

// parsePropertiesMap flattens the YAML tree into dotted keys
func parsePropertiesMap(prefix string, data map[string]any, result map[string]any) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = resolveEnvVariables(v)
		case map[string]any:
			parsePropertiesMap(fullKey, v, result)
		default:
			result[fullKey] = v
		}
	}
}

// resolveEnvVariables replaces every placeholder in value; an unset variable
// without default resolves to the empty string
func resolveEnvVariables(value string) string {
	return envPattern.ReplaceAllStringFunc(value, func(placeholder string) string {
		matches := envPattern.FindStringSubmatch(placeholder)
		if envValue, exists := os.LookupEnv(matches[1]); exists {
			return envValue
		}
		return matches[2]
	})
}

// Set overrides a single property, e.g. from a command line flag.
func Set(key string, value any) {
	properties.Set(key, value)
}

func IsSet(key string) bool {
	return properties.IsSet(key)
}

func Get(key string) any {
	return properties.Get(key)
}

func GetString(key string) string {
	return properties.GetString(key)
}

func GetBool(key string) bool {
	return properties.GetBool(key)
}

func GetDuration(key string) time.Duration {
	return properties.GetDuration(key)
}

func GetInt(key string) int {
	return properties.GetInt(key)
}

func GetFloat64(key string) float64 {
	return properties.GetFloat64(key)
}

func GetStringSlice(key string) []string {
	return properties.GetStringSlice(key)
}
