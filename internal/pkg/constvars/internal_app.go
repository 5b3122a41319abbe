package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_RUN_ID_KEY               ContextKey = "run_id"
)

const (
	EnvironmentStage = "stage"
	EnvironmentDev   = "dev"
)

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)

const (
	RequestIDPrefix       = "req_"
	RequestIDRandomLength = 9
)

const (
	MongoCollectionWorkflowRuns = "workflow_runs"
	RunEventsQueueName          = "workflow_run_events"
	RunReportObjectKeyFormat    = "runs/%s/%s/%s.json"
	RedisTokenKeyFormat         = "ecare:token:%s:%s"
	RedisWorkflowLockKeyFormat  = "ecare:workflow:lock:%s"
)

const (
	RunStatusRunning = "running"
	RunStatusPassed  = "passed"
	RunStatusFailed  = "failed"
	RunStatusSkipped = "skipped"
)

const (
	DefaultPage            = 0
	DefaultPageSize        = 20
	DefaultRunsListLimit   = 20
	MaxRunsListLimit       = 100
	HealthStatusOK         = "ok"
	URLParamRunID          = "run_id"
	QueryParamLimit        = "limit"
	QueryParamPage         = "page"
	QueryParamSize         = "size"
	QueryParamSearch       = "search"
	EcareSuccessCodeEntity = "ENTITY"
)

// run bookkeeping operations
const (
	OperationCreateRun       = "create run record"
	OperationUploadReport    = "upload report"
	OperationUpdateRun       = "update run record"
	OperationPublishRunEvent = "publish run event"
)

const (
	ScheduledTagPrefix       = "sched"
	ScheduledTagRandomLength = 12
)
