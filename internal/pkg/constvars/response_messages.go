package constvars

const (
	HealthCheckSuccessMessage  = "service is healthy"
	TriggerRunSuccessMessage   = "workflow run accepted"
	GetRunsSuccessMessage      = "get workflow runs successfully"
	GetRunSuccessMessage       = "get workflow run successfully"
	WorkflowRunPassedMessage   = "Complete Healthcare API Workflow Executed Successfully"
	WorkflowRunFailedMessage   = "Error in workflow execution"
	LoginVerifiedMessage       = "Bearer token captured successfully"
	LoginCachedMessage         = "Bearer token loaded from cache"
	RunBookkeepingFailedFormat = "failed to %s for run"
)
