package patients

import (
	"context"
	"ecare-automation/internal/app/services/ecare/transport"
	"ecare-automation/internal/pkg/dto/requests"
	"ecare-automation/internal/pkg/exceptions"
	"ecare-automation/internal/pkg/retry"
	"errors"
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

func TestCreatePatient(t *testing.T) {
	var method, path, auth, body string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method, path, auth = r.Method, r.URL.Path, r.Header.Get("Authorization")
		raw, _ := io.ReadAll(r.Body)
		body = string(raw)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"success":true,"message":"Patient created","data":{"id":"pat-1","firstName":"Samuel","lastName":"Peterson"}}`))
	}))
	defer server.Close()

	client := NewPatientEcareClient(newTransport(server.URL), zap.NewNop())

	result, err := client.CreatePatient(context.Background(), &requests.Patient{
		FirstName: "Samuel",
		LastName:  "Peterson",
		Gender:    "MALE",
		BirthDate: "1994-08-16",
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, method)
	assert.Equal(t, "/patient", path)
	assert.Equal(t, "Bearer token-abc", auth)
	assert.Contains(t, body, `"firstName":"Samuel"`)
	assert.True(t, result.Success)
	assert.Equal(t, "pat-1", result.Data.ID)
}

func TestFindPatients(t *testing.T) {
	var rawQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		w.Write([]byte(`{"success":true,"message":"ok","data":[{"id":"pat-1","firstName":"Samuel","lastName":"Peterson"}]}`))
	}))
	defer server.Close()

	client := NewPatientEcareClient(newTransport(server.URL), zap.NewNop())

	t.Run("Search Is Encoded", func(t *testing.T) {
		result, err := client.FindPatients(context.Background(), 0, 20, "Samuel Peterson")
		require.NoError(t, err)

		assert.Equal(t, "page=0&search=Samuel+Peterson&size=20", rawQuery)
		require.Len(t, result.Data, 1)
		assert.Equal(t, "Peterson", result.Data[0].LastName)
	})

	t.Run("Search Omitted When Empty", func(t *testing.T) {
		_, err := client.FindPatients(context.Background(), 2, 5, "")
		require.NoError(t, err)

		assert.Equal(t, "page=2&size=5", rawQuery)
	})
}

func TestCreatePatientUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"success":false,"message":"Invalid birth date"}`))
	}))
	defer server.Close()

	client := NewPatientEcareClient(newTransport(server.URL), zap.NewNop())

	result, err := client.CreatePatientDetailed(context.Background(), &requests.CreatePatient{FirstName: "Samuel", LastName: "Peterson"})
	require.Error(t, err)
	assert.Nil(t, result)

	var apiErr *exceptions.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "HTTP 400: Invalid birth date", apiErr.Message)
}
