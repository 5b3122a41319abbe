package config

import (
	"ecare-automation/internal/pkg/constvars"
	"ecare-automation/internal/pkg/exceptions"
	"ecare-automation/internal/pkg/retry"
	"ecare-automation/internal/pkg/utils"
	"time"
)

type Timeouts struct {
	Request    time.Duration
	Navigation time.Duration
	Assertion  time.Duration
}

type Credentials struct {
	Username string
	Password string
}

// Environment is one deployment of the healthcare API the workflow can run
// against.
type Environment struct {
	Name        string
	BaseUrl     string
	TenantID    string
	Credentials Credentials
	Timeouts    Timeouts
	Retry       retry.Policy
}

var defaultTimeouts = Timeouts{
	Request:    30 * time.Second,
	Navigation: 60 * time.Second,
	Assertion:  10 * time.Second,
}

func profiles() map[string]Environment {
	return map[string]Environment{
		constvars.EnvironmentStage: {
			Name:     constvars.EnvironmentStage,
			BaseUrl:  "https://stage-api.ecarehealth.com/api/master",
			TenantID: "stage_aithinkitive",
			Credentials: Credentials{
				Username: "rose.gomez@jourrapide.com",
				Password: "Pass@123",
			},
			Timeouts: defaultTimeouts,
			Retry:    retry.DefaultPolicy(),
		},
		constvars.EnvironmentDev: {
			Name:     constvars.EnvironmentDev,
			BaseUrl:  "https://dev-api.ecarehealth.com/api/master",
			TenantID: "dev_aithinkitive",
			Credentials: Credentials{
				Username: utils.GetEnvString("DEV_USERNAME", "test@example.com"),
				Password: utils.GetEnvString("DEV_PASSWORD", "testpass"),
			},
			Timeouts: defaultTimeouts,
			Retry:    retry.DefaultPolicy(),
		},
	}
}

func EnvironmentNames() []string {
	return []string{constvars.EnvironmentStage, constvars.EnvironmentDev}
}

// ResolveEnvironment picks the named profile (the configured default when
// name is empty) and applies any ECARE_* overrides from cfg.
func ResolveEnvironment(name string, cfg *InternalConfig) (*Environment, error) {
	if name == "" && cfg != nil {
		name = cfg.Ecare.DefaultEnvironment
	}
	if name == "" {
		name = constvars.EnvironmentStage
	}

	env, ok := profiles()[name]
	if !ok {
		return nil, exceptions.ErrInvalidEnvironment(nil, name)
	}
	if cfg == nil {
		return &env, nil
	}

	overrides := cfg.Ecare
	if overrides.BaseUrl != "" {
		env.BaseUrl = overrides.BaseUrl
	}
	if overrides.TenantID != "" {
		env.TenantID = overrides.TenantID
	}
	if overrides.Username != "" {
		env.Credentials.Username = overrides.Username
	}
	if overrides.Password != "" {
		env.Credentials.Password = overrides.Password
	}
	if overrides.RequestTimeoutInSeconds > 0 {
		env.Timeouts.Request = time.Duration(overrides.RequestTimeoutInSeconds) * time.Second
	}
	if overrides.RetryMaxAttempts > 0 {
		env.Retry.MaxAttempts = overrides.RetryMaxAttempts
	}
	if overrides.RetryDelayInMilliseconds > 0 {
		env.Retry.Delay = time.Duration(overrides.RetryDelayInMilliseconds) * time.Millisecond
	}
	if overrides.RetryBackoffMultiplier > 0 {
		env.Retry.BackoffMultiplier = overrides.RetryBackoffMultiplier
	}

	return &env, nil
}
