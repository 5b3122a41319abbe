package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func init() {
	godotenv.Load()
}

// load binds every default key to its upper-snake environment variable
// (app.port -> APP_PORT) and decodes the result into out.
func load(defaults map[string]interface{}, out interface{}) error {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	return v.Unmarshal(out)
}

func NewDriverConfig() (*DriverConfig, error) {
	cfg := &DriverConfig{}
	if err := load(driverDefaults, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func NewInternalConfig() (*InternalConfig, error) {
	cfg := &InternalConfig{}
	if err := load(internalDefaults, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
