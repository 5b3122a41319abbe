package ecare

import (
	"context"
	"ecare-automation/internal/app/config"
	"ecare-automation/internal/pkg/dto/requests"
	"ecare-automation/internal/pkg/exceptions"
	"ecare-automation/internal/pkg/retry"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockTokenCache struct {
	mock.Mock
}

func (m *MockTokenCache) Get(ctx context.Context, tenantID, username string) (string, error) {
	args := m.Called(ctx, tenantID, username)
	return args.String(0), args.Error(1)
}

func (m *MockTokenCache) Put(ctx context.Context, tenantID, username, token string) error {
	args := m.Called(ctx, tenantID, username, token)
	return args.Error(0)
}

func (m *MockTokenCache) Invalidate(ctx context.Context, tenantID, username string) error {
	args := m.Called(ctx, tenantID, username)
	return args.Error(0)
}

func testEnvironment(serverURL string) *config.Environment {
	return &config.Environment{
		Name:     "stage",
		BaseUrl:  serverURL,
		TenantID: "stage_aithinkitive",
		Credentials: config.Credentials{
			Username: "rose.gomez@jourrapide.com",
			Password: "Pass@123",
		},
		Timeouts: config.Timeouts{Request: 5 * time.Second},
		Retry:    retry.Policy{MaxAttempts: 1},
	}
}

func TestLogin(t *testing.T) {
	t.Run("Stores Access Token", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"code":"ENTITY","message":"Login successful","data":{"accessToken":"jwt-token"}}`))
		}))
		defer server.Close()

		client := NewHealthcareAPIClient(testEnvironment(server.URL), nil, nil, zap.NewNop(), Options{})
		assert.False(t, client.IsAuthenticated())

		response, err := client.Login(context.Background(), nil)
		require.NoError(t, err)

		assert.Equal(t, "ENTITY", response.Code)
		assert.True(t, client.IsAuthenticated())
		assert.Equal(t, "jwt-token", client.BearerToken())
	})

	t.Run("Missing Access Token", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"code":"ENTITY","message":"Login successful","data":{}}`))
		}))
		defer server.Close()

		client := NewHealthcareAPIClient(testEnvironment(server.URL), nil, nil, zap.NewNop(), Options{})

		_, err := client.Login(context.Background(), nil)
		require.Error(t, err)
		assert.Equal(t, "Login failed - no access token received", err.Error())
		assert.False(t, client.IsAuthenticated())
	})

	t.Run("Validation Runs Before Request", func(t *testing.T) {
		var hits int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&hits, 1)
		}))
		defer server.Close()

		client := NewHealthcareAPIClient(testEnvironment(server.URL), nil, nil, zap.NewNop(), Options{})

		_, err := client.Login(context.Background(), &requests.LoginCredentials{Username: "not-an-email", Password: "x"})
		require.Error(t, err)

		var validationErr *exceptions.ValidationError
		require.True(t, errors.As(err, &validationErr))
		assert.Equal(t, "username", validationErr.Field)
		assert.Equal(t, "username must be a valid email", validationErr.Message)
		assert.Zero(t, atomic.LoadInt32(&hits))
	})

	t.Run("Token Cache Hit Skips Request", func(t *testing.T) {
		var hits int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&hits, 1)
		}))
		defer server.Close()

		cache := new(MockTokenCache)
		cache.On("Get", mock.Anything, "stage_aithinkitive", "rose.gomez@jourrapide.com").Return("cached-token", nil)

		client := NewHealthcareAPIClient(testEnvironment(server.URL), nil, cache, zap.NewNop(), Options{})

		response, err := client.Login(context.Background(), nil)
		require.NoError(t, err)

		assert.Equal(t, "cached-token", response.Data.AccessToken)
		assert.Equal(t, "cached-token", client.BearerToken())
		assert.Zero(t, atomic.LoadInt32(&hits))
		cache.AssertExpectations(t)
	})

	t.Run("Token Cache Populated After Login", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"code":"ENTITY","data":{"accessToken":"fresh-token"}}`))
		}))
		defer server.Close()

		cache := new(MockTokenCache)
		cache.On("Get", mock.Anything, "stage_aithinkitive", "rose.gomez@jourrapide.com").Return("", nil)
		cache.On("Put", mock.Anything, "stage_aithinkitive", "rose.gomez@jourrapide.com", "fresh-token").Return(nil)

		client := NewHealthcareAPIClient(testEnvironment(server.URL), nil, cache, zap.NewNop(), Options{})

		_, err := client.Login(context.Background(), nil)
		require.NoError(t, err)
		cache.AssertExpectations(t)
	})
}

func TestResourceValidation(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer server.Close()

	client := NewHealthcareAPIClient(testEnvironment(server.URL), nil, nil, zap.NewNop(), Options{})
	ctx := context.Background()

	t.Run("Patient Missing First Name", func(t *testing.T) {
		_, err := client.CreatePatient(ctx, &requests.Patient{LastName: "Peterson", Gender: "MALE", BirthDate: "1994-08-16"})
		var validationErr *exceptions.ValidationError
		require.True(t, errors.As(err, &validationErr))
		assert.Equal(t, "firstName is required", validationErr.Message)
	})

	t.Run("Patient Invalid Phone", func(t *testing.T) {
		_, err := client.CreatePatient(ctx, &requests.Patient{FirstName: "Samuel", LastName: "Peterson", Gender: "MALE", BirthDate: "1994-08-16", Phone: "0123"})
		var validationErr *exceptions.ValidationError
		require.True(t, errors.As(err, &validationErr))
		assert.Equal(t, "phone", validationErr.Field)
	})

	t.Run("Provider Invalid Role", func(t *testing.T) {
		_, err := client.CreateProvider(ctx, &requests.Provider{FirstName: "Steven", LastName: "Miller", Email: "s@example.com", Role: "NURSE"})
		var validationErr *exceptions.ValidationError
		require.True(t, errors.As(err, &validationErr))
		assert.Equal(t, "role", validationErr.Field)
	})

	t.Run("Availability Without Slots", func(t *testing.T) {
		_, err := client.SetProviderAvailability(ctx, &requests.Availability{ProviderID: "prov-9"})
		var validationErr *exceptions.ValidationError
		require.True(t, errors.As(err, &validationErr))
		assert.Equal(t, "slots", validationErr.Field)
	})

	t.Run("Appointment Invalid Date", func(t *testing.T) {
		_, err := client.BookAppointment(ctx, &requests.Appointment{
			PatientID:           "pat-1",
			ProviderID:          "prov-9",
			AppointmentDateTime: "not-a-date",
			EndDateTime:         "2026-10-26T17:30:00Z",
			AppointmentType:     "VIRTUAL",
			ChiefComplaint:      "appointment test",
		})
		var validationErr *exceptions.ValidationError
		require.True(t, errors.As(err, &validationErr))
		assert.Equal(t, "appointmentDateTime", validationErr.Field)
	})

	t.Run("Availability Settings Need Provider", func(t *testing.T) {
		_, err := client.GetAvailabilitySettings(ctx, "")
		var validationErr *exceptions.ValidationError
		require.True(t, errors.As(err, &validationErr))
		assert.Equal(t, "providerId is required", validationErr.Message)
	})

	assert.Zero(t, atomic.LoadInt32(&hits))
}

func TestGetDefaultsPaging(t *testing.T) {
	var rawQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		w.Write([]byte(`{"success":true,"data":[]}`))
	}))
	defer server.Close()

	client := NewHealthcareAPIClient(testEnvironment(server.URL), nil, nil, zap.NewNop(), Options{})

	_, err := client.GetProviders(context.Background(), -1, 0)
	require.NoError(t, err)
	assert.Equal(t, "page=0&size=20", rawQuery)
}

func TestUnauthorizedInvalidatesCachedToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"success":false,"message":"Token expired"}`))
	}))
	defer server.Close()

	cache := new(MockTokenCache)
	cache.On("Invalidate", mock.Anything, "stage_aithinkitive", "rose.gomez@jourrapide.com").Return(nil)

	client := NewHealthcareAPIClient(testEnvironment(server.URL), nil, cache, zap.NewNop(), Options{})

	_, err := client.GetPatients(context.Background(), 0, 20, "")
	var apiErr *exceptions.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	cache.AssertExpectations(t)
}

func TestUnauthorizedInvalidatesTokenOfLoggedInUser(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"success":false,"message":"Token expired"}`))
	}))
	defer server.Close()

	cache := new(MockTokenCache)
	cache.On("Get", mock.Anything, "stage_aithinkitive", "ops@medarch.com").Return("ops-token", nil)
	cache.On("Invalidate", mock.Anything, "stage_aithinkitive", "ops@medarch.com").Return(nil)

	client := NewHealthcareAPIClient(testEnvironment(server.URL), nil, cache, zap.NewNop(), Options{})
	_, err := client.Login(context.Background(), &requests.LoginCredentials{Username: "ops@medarch.com", Password: "Secret@1"})
	require.NoError(t, err)

	_, err = client.GetProviders(context.Background(), 0, 20)
	require.Error(t, err)

	cache.AssertExpectations(t)
	cache.AssertNotCalled(t, "Invalidate", mock.Anything, "stage_aithinkitive", "rose.gomez@jourrapide.com")
}
