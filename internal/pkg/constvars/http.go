package constvars

const (
	MethodGet  = "GET"
	MethodPost = "POST"
)

const (
	MIMEApplicationJSON = "application/json"
	MIMEAcceptAny       = "application/json, text/plain, */*"
)

const (
	StatusOK                  = 200
	StatusCreated             = 201
	StatusAccepted            = 202
	StatusBadRequest          = 400
	StatusUnauthorized        = 401
	StatusNotFound            = 404
	StatusConflict            = 409
	StatusUnprocessableEntity = 422
	StatusTooManyRequests     = 429
	StatusInternalServerError = 500
	StatusBadGateway          = 502
	StatusServiceUnavailable  = 503
	StatusGatewayTimeout      = 504

	// first status past the 5xx class
	StatusServerErrorUpperBound = 600
)

const (
	HeaderAccept          = "Accept"
	HeaderAcceptLanguage  = "Accept-Language"
	HeaderAuthorization   = "Authorization"
	HeaderConnection      = "Connection"
	HeaderContentType     = "Content-Type"
	HeaderOrigin          = "Origin"
	HeaderReferer         = "Referer"
	HeaderUserAgent       = "User-Agent"
	HeaderXRequestID      = "X-Request-ID"
	HeaderXTenantID       = "X-TENANT-ID"
	HeaderSecFetchDest    = "Sec-Fetch-Dest"
	HeaderSecFetchMode    = "Sec-Fetch-Mode"
	HeaderSecFetchSite    = "Sec-Fetch-Site"
	HeaderSecCHUA         = "sec-ch-ua"
	HeaderSecCHUAMobile   = "sec-ch-ua-mobile"
	HeaderSecCHUAPlatform = "sec-ch-ua-platform"
)

const (
	AuthorizationBearerPrefix = "Bearer "
)
