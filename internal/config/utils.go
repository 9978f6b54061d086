package config

import (
	"log"

	"github.com/spf13/viper"
)

// GetStringConfig returns a string configuration value, falling back to
// defaultValue if the key is unset.
func GetStringConfig(key string, defaultValue ...string) string {
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return ""
}

// GetIntConfig returns an integer configuration value, falling back to
// defaultValue if the key is unset.
func GetIntConfig(key string, defaultValue ...int) int {
	if viper.IsSet(key) {
		return viper.GetInt(key)
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return 0
}

// GetBoolConfig returns a boolean configuration value, falling back to
// defaultValue if the key is unset.
func GetBoolConfig(key string, defaultValue ...bool) bool {
	if viper.IsSet(key) {
		return viper.GetBool(key)
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return false
}

// GetStringSliceConfig returns a string-slice configuration value,
// falling back to defaultValue if the key is unset.
func GetStringSliceConfig(key string, defaultValue ...[]string) []string {
	if viper.IsSet(key) {
		return viper.GetStringSlice(key)
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return []string{}
}

// PrintConfig logs the non-sensitive parts of the running configuration.
func PrintConfig() {
	log.Println("=== Configuration ===")
	log.Printf("Server: %s:%s", GetStringConfig("HOST"), GetStringConfig("PORT"))
	log.Printf("Gin Mode: %s", GetStringConfig("GIN_MODE"))
	log.Printf("Redis URL: %s", GetStringConfig("REDIS_URL"))
	log.Printf("CORS Origins: %v", GetStringSliceConfig("CORS_ORIGINS"))
	log.Printf("Log Level: %s", GetStringConfig("LOG_LEVEL"))
	log.Printf("Log Format: %s", GetStringConfig("LOG_FORMAT"))
	log.Println("=====================")
}

// IsDevelopment reports whether GIN_MODE selects the debug profile.
func IsDevelopment() bool {
	return GetStringConfig("GIN_MODE") == "debug"
}

// IsProduction reports whether GIN_MODE selects the release profile.
func IsProduction() bool {
	return GetStringConfig("GIN_MODE") == "release"
}
