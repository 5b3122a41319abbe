package transport

import (
	"ecare-automation/internal/pkg/constvars"
	"fmt"
	"net/http"
)

// Headers reproduces the header set the provider web application sends.
// Authorization is only present when includeAuth is set and a token is held.
func (c *Client) Headers(includeAuth bool, requestID string) http.Header {
	headers := http.Header{}
	headers.Set(constvars.HeaderAccept, constvars.MIMEAcceptAny)
	headers.Set(constvars.HeaderAcceptLanguage, constvars.BrowserAcceptLanguage)
	headers.Set(constvars.HeaderConnection, constvars.BrowserConnection)
	headers.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	headers.Set(constvars.HeaderOrigin, fmt.Sprintf(constvars.TenantOriginFormat, c.tenantID))
	headers.Set(constvars.HeaderReferer, fmt.Sprintf(constvars.TenantRefererFormat, c.tenantID))
	headers.Set(constvars.HeaderSecFetchDest, constvars.BrowserSecFetchDest)
	headers.Set(constvars.HeaderSecFetchMode, constvars.BrowserSecFetchMode)
	headers.Set(constvars.HeaderSecFetchSite, constvars.BrowserSecFetchSite)
	headers.Set(constvars.HeaderUserAgent, constvars.BrowserUserAgent)
	headers.Set(constvars.HeaderSecCHUA, constvars.BrowserSecCHUA)
	headers.Set(constvars.HeaderSecCHUAMobile, constvars.BrowserSecCHUAMobile)
	headers.Set(constvars.HeaderSecCHUAPlatform, constvars.BrowserSecCHUAPlatform)
	// net/http canonicalizes to X-Tenant-Id; keep the exact spelling the API documents
	headers[constvars.HeaderXTenantID] = []string{c.tenantID}
	headers.Set(constvars.HeaderXRequestID, requestID)

	if token := c.BearerToken(); includeAuth && token != "" {
		headers.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+token)
	}
	return headers
}
