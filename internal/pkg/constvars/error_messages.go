package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":     "is required",
	"email":        "must be a valid email",
	"email_format": "must be a valid email",
	"min":          "must be at least %s characters",
	"max":          "must be no more than %s characters",
	"oneof":        "must be one of: %s",
	"phone":        "must be a valid phone number",
	"date_any":     "must be a valid date",
	"dive":         "is invalid",
	"gte":          "must be greater than or equal to %s",
	"lte":          "must be less than or equal to %s",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
	"gte":   true,
	"lte":   true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "cannot process request"
	ErrClientSomethingWrongWithApplication = "something went wrong with the application"
	ErrClientNotFound                      = "resource not found"
	ErrClientWorkflowAlreadyRunning        = "workflow already running for tenant"
	ErrClientUpstreamFailure               = "healthcare api request failed"
	ErrClientUnknownError                  = "Unknown error"
	ErrClientServerLongRespond             = "server took too long to respond"
)

// Error messages for developers
const (
	ErrDevCreateHTTPRequest        = "failed to create http request"
	ErrDevSendHTTPRequest          = "failed to send http request"
	ErrDevReadResponseBody         = "failed to read response body"
	ErrDevDecodeResponse           = "failed to decode %s response"
	ErrDevCannotMarshalJSON        = "failed to marshal json"
	ErrDevCannotParseJSON          = "failed to parse json"
	ErrDevValidationFailed         = "input validation failed"
	ErrDevMissingAccessToken       = "Login failed - no access token received"
	ErrDevInvalidEnvironment       = "unknown environment %q"
	ErrDevWorkflowLocked           = "workflow lock for tenant %s is held by another run"
	ErrDevWorkflowStepFailed       = "workflow step %q failed"
	ErrDevVerificationFailed       = "verification failed: %s"
	ErrDevRunNotFound              = "run %s not found"
	ErrDevInvalidQueryParam        = "invalid query parameter %s"
	ErrDevMongoDBInsertDocument    = "failed to insert document"
	ErrDevMongoDBUpdateDocument    = "failed to update document"
	ErrDevMongoDBFindDocument      = "failed to find document"
	ErrDevMongoDBIterateDocuments  = "failed to iterate documents"
	ErrDevRedisGetData             = "failed to get redis data with key %s"
	ErrDevRedisSetData             = "failed to set redis data"
	ErrDevRedisDeleteData          = "failed to delete redis data"
	ErrDevRedisUnlock              = "lock %s not owned by this client"
	ErrDevMinioCreateObject        = "failed to create object in bucket %s"
	ErrDevMinioCreateBucket        = "failed to create bucket %s"
	ErrDevRabbitMQPublishMessage   = "failed to publish message to queue %s"
	ErrDevRabbitMQMessageNotAcked  = "message not confirmed by broker"
	ErrDevRabbitMQConfirmModeOff   = "channel is not in confirm mode"
	ErrDevServerProcess            = "server failed to process request"
	ErrDevServerDeadlineExceeded   = "server deadline exceeded"
	ErrDevMissingRequestID         = "request id missing from context"
	ErrDevResponseEmptyBody        = "Empty response body"
	ErrDevResponseInvalidJSON      = "Invalid JSON response"
	ErrDevUnknownAPIResponseFormat = "HTTP %d: %s"
)
