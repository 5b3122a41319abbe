package providers

import (
	"context"
	"ecare-automation/internal/app/services/ecare/transport"
	"ecare-automation/internal/pkg/dto/requests"
	"ecare-automation/internal/pkg/retry"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTransport(serverURL string) *transport.Client {
	client := transport.NewClient(transport.Options{
		BaseUrl:  serverURL,
		TenantID: "stage_aithinkitive",
		Retry:    retry.Policy{MaxAttempts: 1},
	}, zap.NewNop())
	client.SetBearerToken("token-abc")
	return client
}

func TestCreateProviderDetailed(t *testing.T) {
	var body string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		body = string(raw)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"success":true,"message":"Provider created","data":{"id":"prov-9","firstName":"Steven","lastName":"Miller"}}`))
	}))
	defer server.Close()

	client := NewProviderEcareClient(newTransport(server.URL), zap.NewNop())

	result, err := client.CreateProviderDetailed(context.Background(), &requests.CreateProvider{
		RoleType:  "PROVIDER",
		Role:      "PROVIDER",
		FirstName: "Steven",
		LastName:  "Miller",
		Email:     "saurabh.kale+steven@medarch.com",
	})
	require.NoError(t, err)

	assert.Equal(t, "prov-9", result.Data.ID)
	assert.Contains(t, body, `"specialities":null`)
	assert.Contains(t, body, `"admin_access":false`)
}

func TestFindProviders(t *testing.T) {
	var path, rawQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path, rawQuery = r.URL.Path, r.URL.RawQuery
		w.Write([]byte(`{"success":true,"message":"ok","data":[{"id":"prov-9","firstName":"Steven","lastName":"Miller"},{"id":"prov-2","firstName":"Ann","lastName":"Lee"}]}`))
	}))
	defer server.Close()

	client := NewProviderEcareClient(newTransport(server.URL), zap.NewNop())

	result, err := client.FindProviders(context.Background(), 0, 20)
	require.NoError(t, err)

	assert.Equal(t, "/provider", path)
	assert.Equal(t, "page=0&size=20", rawQuery)
	require.Len(t, result.Data, 2)
	assert.Equal(t, "Steven", result.Data[0].FirstName)
}
