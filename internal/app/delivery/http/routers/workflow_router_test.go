package routers

import (
	"bytes"
	"context"
	"ecare-automation/internal/app/config"
	"ecare-automation/internal/app/delivery/http/controllers"
	"ecare-automation/internal/app/delivery/http/middlewares"
	"ecare-automation/internal/app/models"
	"ecare-automation/internal/pkg/constvars"
	"ecare-automation/internal/pkg/dto/requests"
	"ecare-automation/internal/pkg/dto/responses"
	"ecare-automation/internal/pkg/exceptions"
	"ecare-automation/internal/pkg/utils"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockWorkflowUsecase struct {
	mock.Mock
}

func (m *MockWorkflowUsecase) Execute(ctx context.Context, input *models.RunInput) (*models.Run, error) {
	args := m.Called(ctx, input)
	run, _ := args.Get(0).(*models.Run)
	return run, args.Error(1)
}

func (m *MockWorkflowUsecase) VerifyLogin(ctx context.Context, environment string) (*responses.LoginVerified, error) {
	args := m.Called(ctx, environment)
	login, _ := args.Get(0).(*responses.LoginVerified)
	return login, args.Error(1)
}

func (m *MockWorkflowUsecase) StartRun(ctx context.Context, request *requests.TriggerRun) (*responses.RunAccepted, error) {
	args := m.Called(ctx, request)
	accepted, _ := args.Get(0).(*responses.RunAccepted)
	return accepted, args.Error(1)
}

func (m *MockWorkflowUsecase) FindRun(ctx context.Context, runID string) (*models.Run, error) {
	args := m.Called(ctx, runID)
	run, _ := args.Get(0).(*models.Run)
	return run, args.Error(1)
}

func (m *MockWorkflowUsecase) FindRecentRuns(ctx context.Context, limit int) ([]models.Run, error) {
	args := m.Called(ctx, limit)
	runs, _ := args.Get(0).([]models.Run)
	return runs, args.Error(1)
}

func (m *MockWorkflowUsecase) Wait() {
	m.Called()
}

type envelope struct {
	Success    bool                  `json:"success"`
	Message    string                `json:"message"`
	Data       json.RawMessage       `json:"data"`
	Pagination *responses.Pagination `json:"pagination"`
}

func newWorkflowRouter(usecase *MockWorkflowUsecase) *chi.Mux {
	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		App: config.App{
			EndpointPrefix:            "/api",
			Version:                   "v1",
			CorsAllowedOrigins:        "*",
			MaxRequests:               1000,
			MaxTimeRequestsPerSeconds: 1,
		},
	}
	router := chi.NewRouter()
	SetupRoutes(router, internalConfig, middlewares.NewMiddlewares(logger, internalConfig), nil, controllers.NewWorkflowController(logger, usecase))
	return router
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) envelope {
	t.Helper()
	var body envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func TestWorkflowRouter(t *testing.T) {
	t.Run("Health Returns Ok", func(t *testing.T) {
		router := newWorkflowRouter(new(MockWorkflowUsecase))

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.NotEmpty(t, rr.Header().Get(constvars.HeaderXRequestID))
		body := decodeEnvelope(t, rr)
		assert.True(t, body.Success)
		assert.JSONEq(t, `{"status":"ok"}`, string(body.Data))
	})

	t.Run("Client Request ID Is Echoed", func(t *testing.T) {
		router := newWorkflowRouter(new(MockWorkflowUsecase))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
		req.Header.Set(constvars.HeaderXRequestID, "req_client_1")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, "req_client_1", rr.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("Trigger Run Accepted", func(t *testing.T) {
		usecase := new(MockWorkflowUsecase)
		router := newWorkflowRouter(usecase)

		usecase.On("StartRun", mock.Anything, &requests.TriggerRun{Environment: "dev", SkipVerification: true}).
			Run(func(args mock.Arguments) {
				ctx := args.Get(0).(context.Context)
				assert.Equal(t, "req_trigger", utils.GetRequestID(ctx))
			}).
			Return(&responses.RunAccepted{RunID: "run-1", Environment: "dev", TenantID: "dev_aithinkitive"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/workflow/runs", bytes.NewBufferString(`{"environment":"dev","skip_verification":true}`))
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
		req.Header.Set(constvars.HeaderXRequestID, "req_trigger")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusAccepted, rr.Code)
		body := decodeEnvelope(t, rr)
		assert.Equal(t, constvars.TriggerRunSuccessMessage, body.Message)
		assert.JSONEq(t, `{"run_id":"run-1","environment":"dev","tenant_id":"dev_aithinkitive"}`, string(body.Data))
		usecase.AssertExpectations(t)
	})

	t.Run("Trigger Run Without Body Uses Defaults", func(t *testing.T) {
		usecase := new(MockWorkflowUsecase)
		router := newWorkflowRouter(usecase)

		usecase.On("StartRun", mock.Anything, &requests.TriggerRun{}).
			Return(&responses.RunAccepted{RunID: "run-2", Environment: "stage", TenantID: "stage_aithinkitive"}, nil)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/v1/workflow/runs", nil))

		assert.Equal(t, http.StatusAccepted, rr.Code)
		usecase.AssertExpectations(t)
	})

	t.Run("Trigger Run Invalid JSON", func(t *testing.T) {
		usecase := new(MockWorkflowUsecase)
		router := newWorkflowRouter(usecase)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/v1/workflow/runs", bytes.NewBufferString(`{"environment": stage}`)))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		usecase.AssertNotCalled(t, "StartRun", mock.Anything, mock.Anything)
	})

	t.Run("Trigger Run While Locked", func(t *testing.T) {
		usecase := new(MockWorkflowUsecase)
		router := newWorkflowRouter(usecase)

		usecase.On("StartRun", mock.Anything, mock.Anything).
			Return(nil, exceptions.ErrWorkflowAlreadyRunning(nil, "stage_aithinkitive"))

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/v1/workflow/runs", bytes.NewBufferString(`{}`)))

		assert.Equal(t, http.StatusConflict, rr.Code)
		body := decodeEnvelope(t, rr)
		assert.False(t, body.Success)
		assert.Equal(t, constvars.ErrClientWorkflowAlreadyRunning, body.Message)
	})

	t.Run("List Runs Passes Limit", func(t *testing.T) {
		usecase := new(MockWorkflowUsecase)
		router := newWorkflowRouter(usecase)

		usecase.On("FindRecentRuns", mock.Anything, 5).
			Return([]models.Run{{ID: "run-1", Status: constvars.RunStatusPassed}}, nil)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/workflow/runs?limit=5", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		body := decodeEnvelope(t, rr)
		var runs []models.Run
		require.NoError(t, json.Unmarshal(body.Data, &runs))
		require.Len(t, runs, 1)
		assert.Equal(t, "run-1", runs[0].ID)
		assert.Equal(t, &responses.Pagination{Total: 1, Page: 0, PageSize: 5}, body.Pagination)
		usecase.AssertExpectations(t)
	})

	t.Run("List Runs Reports Capped Page Size", func(t *testing.T) {
		usecase := new(MockWorkflowUsecase)
		router := newWorkflowRouter(usecase)

		usecase.On("FindRecentRuns", mock.Anything, 500).Return([]models.Run{}, nil)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/workflow/runs?limit=500", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, constvars.MaxRunsListLimit, decodeEnvelope(t, rr).Pagination.PageSize)
	})

	t.Run("List Runs Rejects Bad Limit", func(t *testing.T) {
		usecase := new(MockWorkflowUsecase)
		router := newWorkflowRouter(usecase)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/workflow/runs?limit=abc", nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		usecase.AssertNotCalled(t, "FindRecentRuns", mock.Anything, mock.Anything)
	})

	t.Run("Get Run Found", func(t *testing.T) {
		usecase := new(MockWorkflowUsecase)
		router := newWorkflowRouter(usecase)

		usecase.On("FindRun", mock.Anything, "run-9").
			Return(&models.Run{ID: "run-9", Status: constvars.RunStatusFailed, FailedStep: "Create Provider"}, nil)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/workflow/runs/run-9", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		var run models.Run
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, rr).Data, &run))
		assert.Equal(t, "Create Provider", run.FailedStep)
	})

	t.Run("Get Run Not Found", func(t *testing.T) {
		usecase := new(MockWorkflowUsecase)
		router := newWorkflowRouter(usecase)

		usecase.On("FindRun", mock.Anything, "missing").
			Return(nil, exceptions.ErrRunNotFound(nil, "missing"))

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/workflow/runs/missing", nil))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Panic Is Recovered", func(t *testing.T) {
		usecase := new(MockWorkflowUsecase)
		router := newWorkflowRouter(usecase)

		usecase.On("FindRun", mock.Anything, "boom").
			Run(func(mock.Arguments) { panic("boom") })

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/workflow/runs/boom", nil))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestRoutePrefix(t *testing.T) {
	assert.Equal(t, "/api", routePrefix("/api"))
	assert.Equal(t, "/api", routePrefix("api/"))
	assert.Equal(t, "/v1", routePrefix("v1"))
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, allowedOrigins(" https://a.example, https://b.example "))
	assert.Equal(t, []string{"*"}, allowedOrigins(""))
}
