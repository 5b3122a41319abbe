package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingRunIDKey          = "run_id"
	LoggingEnvironmentKey    = "environment"
	LoggingTenantIDKey       = "tenant_id"
	LoggingStepKey           = "step"
	LoggingStepNameKey       = "step_name"
	LoggingOperationKey      = "operation"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingURLKey            = "url"
	LoggingStatusCodeKey     = "status_code"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingAttemptKey        = "attempt"
	LoggingMaxAttemptsKey    = "max_attempts"
	LoggingDelayKey          = "delay"
	LoggingIncludeAuthKey    = "include_auth"
	LoggingHasDataKey        = "has_data"
	LoggingRawResponseKey    = "raw"
	LoggingPatientIDKey      = "patient_id"
	LoggingProviderIDKey     = "provider_id"
	LoggingAppointmentIDKey  = "appointment_id"
	LoggingRoleKey           = "role"
	LoggingNameKey           = "name"
	LoggingCountKey          = "count"
	LoggingPageKey           = "page"
	LoggingSizeKey           = "size"
	LoggingSearchStringKey   = "search_string"
	LoggingSlotsCountKey     = "slots_count"
	LoggingRedisKey          = "redis_key"
	LoggingLockValueKey      = "lock_value"
	LoggingLockExpirationKey = "lock_expiration"
	LoggingBucketKey         = "bucket"
	LoggingObjectKey         = "object"
	LoggingQueueKey          = "queue"
	LoggingRunStatusKey      = "run_status"
	LoggingRunTagKey         = "tag"
)
