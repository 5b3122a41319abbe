package requests

type LoginCredentials struct {
	Username string `json:"username" validate:"required,email_format"`
	Password string `json:"password" validate:"required"`
}

// Login is the body posted to the login endpoint.
type Login struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	XTenantID string `json:"xTENANTID"`
}
