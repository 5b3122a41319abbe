package utils

import "os"

// GetEnvString returns defaultValue when key is unset or empty.
func GetEnvString(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}
