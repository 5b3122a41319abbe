package config

import "time"

type InternalConfig struct {
	App      App      `mapstructure:"app"`
	Ecare    Ecare    `mapstructure:"ecare"`
	Workflow Workflow `mapstructure:"workflow"`
}

type App struct {
	Env                       string `mapstructure:"env"`
	Port                      string `mapstructure:"port"`
	Version                   string `mapstructure:"version"`
	Address                   string `mapstructure:"address"`
	EndpointPrefix            string `mapstructure:"endpoint_prefix"`
	CorsAllowedOrigins        string `mapstructure:"cors_allowed_origins"`
	MaxRequests               int    `mapstructure:"max_requests"`
	MaxTimeRequestsPerSeconds int    `mapstructure:"max_time_requests_per_seconds"`
	ShutdownTimeoutInSeconds  int    `mapstructure:"shutdown_timeout_in_seconds"`
}

// Ecare overrides the selected environment profile when a value is set.
type Ecare struct {
	DefaultEnvironment       string  `mapstructure:"default_environment"`
	BaseUrl                  string  `mapstructure:"base_url"`
	TenantID                 string  `mapstructure:"tenant_id"`
	Username                 string  `mapstructure:"username"`
	Password                 string  `mapstructure:"password"`
	RequestTimeoutInSeconds  int     `mapstructure:"request_timeout_in_seconds"`
	RequestsPerSecond        float64 `mapstructure:"requests_per_second"`
	RequestBurst             int     `mapstructure:"request_burst"`
	RetryMaxAttempts         int     `mapstructure:"retry_max_attempts"`
	RetryDelayInMilliseconds int     `mapstructure:"retry_delay_in_milliseconds"`
	RetryBackoffMultiplier   float64 `mapstructure:"retry_backoff_multiplier"`
	TokenCacheTTLInMinutes   int     `mapstructure:"token_cache_ttl_in_minutes"`
	TokenExpirySkewInSeconds int     `mapstructure:"token_expiry_skew_in_seconds"`
}

// Workflow.Schedule is a cron spec; empty disables scheduled runs.
type Workflow struct {
	RunTimeoutInSeconds      int    `mapstructure:"run_timeout_in_seconds"`
	LockTTLInMinutes         int    `mapstructure:"lock_ttl_in_minutes"`
	RunEventTimeoutInSeconds int    `mapstructure:"run_event_timeout_in_seconds"`
	Schedule                 string `mapstructure:"schedule"`
	ScheduleEnvironment      string `mapstructure:"schedule_environment"`
}

var internalDefaults = map[string]interface{}{
	"app.env":                               "development",
	"app.port":                              ":8080",
	"app.version":                           "v1",
	"app.address":                           "localhost",
	"app.endpoint_prefix":                   "/api",
	"app.cors_allowed_origins":              "*",
	"app.max_requests":                      20,
	"app.max_time_requests_per_seconds":     1,
	"app.shutdown_timeout_in_seconds":       10,
	"ecare.default_environment":             "stage",
	"ecare.base_url":                        "",
	"ecare.tenant_id":                       "",
	"ecare.username":                        "",
	"ecare.password":                        "",
	"ecare.request_timeout_in_seconds":      0,
	"ecare.requests_per_second":             5.0,
	"ecare.request_burst":                   1,
	"ecare.retry_max_attempts":              0,
	"ecare.retry_delay_in_milliseconds":     0,
	"ecare.retry_backoff_multiplier":        0.0,
	"ecare.token_cache_ttl_in_minutes":      30,
	"ecare.token_expiry_skew_in_seconds":    60,
	"workflow.run_timeout_in_seconds":       300,
	"workflow.lock_ttl_in_minutes":          10,
	"workflow.run_event_timeout_in_seconds": 5,
	"workflow.schedule":                     "",
	"workflow.schedule_environment":         "",
}

// The helpers below fall back to the documented defaults when a value is
// unset, so a zero InternalConfig stays usable.

func (c Workflow) RunTimeout() time.Duration {
	return orDefault(c.RunTimeoutInSeconds, 300, time.Second)
}

func (c Workflow) LockTTL() time.Duration {
	return orDefault(c.LockTTLInMinutes, 10, time.Minute)
}

func (c Workflow) RunEventTimeout() time.Duration {
	return orDefault(c.RunEventTimeoutInSeconds, 5, time.Second)
}

func (c Ecare) TokenCacheTTL() time.Duration {
	return orDefault(c.TokenCacheTTLInMinutes, 30, time.Minute)
}

func (c Ecare) TokenExpirySkew() time.Duration {
	return orDefault(c.TokenExpirySkewInSeconds, 60, time.Second)
}

func orDefault(value, fallback int, unit time.Duration) time.Duration {
	if value <= 0 {
		value = fallback
	}
	return time.Duration(value) * unit
}
