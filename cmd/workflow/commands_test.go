package main

import (
	"bytes"
	"context"
	"ecare-automation/internal/app/contracts"
	"ecare-automation/internal/app/models"
	"ecare-automation/internal/pkg/constvars"
	"ecare-automation/internal/pkg/dto/requests"
	"ecare-automation/internal/pkg/dto/responses"
	"ecare-automation/internal/pkg/exceptions"
	"errors"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
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

func execute(t *testing.T, usecase *MockWorkflowUsecase, args ...string) (string, bool, error) {
	t.Helper()
	closed := false
	setup := func(ctx context.Context) (contracts.WorkflowUsecase, func(), error) {
		return usecase, func() { closed = true }, nil
	}

	cmd := newRootCmd(setup)
	stdout := new(bytes.Buffer)
	cmd.SetOut(stdout)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), closed, err
}

func TestRunCommand(t *testing.T) {
	t.Run("Passed Run Prints Summary", func(t *testing.T) {
		usecase := new(MockWorkflowUsecase)
		usecase.On("Execute", mock.Anything, &models.RunInput{Environment: "dev", Tag: "42", SkipVerification: true}).
			Return(&models.Run{ID: "run-1", Environment: "dev", Status: constvars.RunStatusPassed, AppointmentID: "apt-1"}, nil)

		out, closed, err := execute(t, usecase, "run", "--env", "dev", "--tag", "42", "--skip-verification")

		require.NoError(t, err)
		assert.True(t, closed)
		var summary responses.RunSummary
		require.NoError(t, json.Unmarshal([]byte(out), &summary))
		assert.Equal(t, "run-1", summary.RunID)
		assert.Equal(t, "apt-1", summary.AppointmentID)
		assert.Equal(t, constvars.RunStatusPassed, summary.Status)
		usecase.AssertExpectations(t)
	})

	t.Run("Failed Run Returns Error After Summary", func(t *testing.T) {
		usecase := new(MockWorkflowUsecase)
		usecase.On("Execute", mock.Anything, mock.Anything).
			Return(&models.Run{ID: "run-2", Status: constvars.RunStatusFailed, FailedStep: "Book Appointment"}, nil)

		out, _, err := execute(t, usecase, "run")

		assert.ErrorIs(t, err, errRunFailed)
		assert.Contains(t, out, `"failed_step": "Book Appointment"`)
	})

	t.Run("Unknown Environment Rejected", func(t *testing.T) {
		usecase := new(MockWorkflowUsecase)

		_, closed, err := execute(t, usecase, "run", "--env", "qa")

		assert.ErrorContains(t, err, `unknown environment "qa"`)
		assert.False(t, closed)
		usecase.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
	})

	t.Run("Lock Held Is Reported", func(t *testing.T) {
		usecase := new(MockWorkflowUsecase)
		usecase.On("Execute", mock.Anything, mock.Anything).
			Return(nil, exceptions.ErrWorkflowAlreadyRunning(nil, "stage_aithinkitive"))

		out, _, err := execute(t, usecase, "run")

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
		assert.Empty(t, out)
	})
}

func TestLoginCommand(t *testing.T) {
	t.Run("Prints Verification Message", func(t *testing.T) {
		usecase := new(MockWorkflowUsecase)
		usecase.On("VerifyLogin", mock.Anything, "stage").
			Return(&responses.LoginVerified{Environment: "stage", TenantID: "stage_aithinkitive", Code: constvars.EcareSuccessCodeEntity}, nil)

		out, _, err := execute(t, usecase, "login", "--env", "stage")

		require.NoError(t, err)
		assert.Equal(t, "Bearer token captured successfully (environment stage, tenant stage_aithinkitive)\n", out)
	})

	t.Run("Unknown Environment Rejected Before Setup", func(t *testing.T) {
		usecase := new(MockWorkflowUsecase)

		_, closed, err := execute(t, usecase, "login", "--env", "prod")

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.False(t, closed)
		usecase.AssertNotCalled(t, "VerifyLogin", mock.Anything, mock.Anything)
	})

	t.Run("Propagates Failure", func(t *testing.T) {
		usecase := new(MockWorkflowUsecase)
		usecase.On("VerifyLogin", mock.Anything, "").
			Return(nil, exceptions.ErrMissingAccessToken(nil))

		_, _, err := execute(t, usecase, "login")

		assert.Error(t, err)
	})
}

func TestVersionCommand(t *testing.T) {
	out, closed, err := execute(t, new(MockWorkflowUsecase), "version")

	require.NoError(t, err)
	assert.False(t, closed)
	assert.Contains(t, out, "Version: develop")
}
