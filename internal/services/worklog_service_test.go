package services

import (
	"context"
	"testing"

	"worklog-billing/internal/errors"
	"worklog-billing/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListWorkLogs(t *testing.T) {
	repo := newMockRepository()
	freelancer := repo.addFreelancer("Alice", 50)
	wl := repo.addWorkLog("Task", &freelancer.ID, march(10))
	repo.addHours(wl.ID, 2)
	repo.addHours(wl.ID, 3)

	svc := NewWorkLogService(repo)
	views, err := svc.ListWorkLogs(context.Background(), validation.WorkLogFilters{})
	require.NoError(t, err)
	require.Len(t, views, 1)

	view := views[0]
	assert.Equal(t, wl.ID, view.ID)
	assert.Equal(t, "Task", view.TaskName)
	require.NotNil(t, view.FreelancerName)
	assert.Equal(t, "Alice", *view.FreelancerName)
	assert.Equal(t, 50.0, view.HourlyRate)
	assert.Equal(t, 5.0, view.TotalHours)
	assert.Equal(t, 250.0, view.EarnedAmount)
	assert.Equal(t, "pending", view.Status)
}

func TestListWorkLogs_NoFreelancer(t *testing.T) {
	repo := newMockRepository()
	wl := repo.addWorkLog("Orphan", nil, march(10))
	repo.addHours(wl.ID, 8)

	svc := NewWorkLogService(repo)
	views, err := svc.ListWorkLogs(context.Background(), validation.WorkLogFilters{})
	require.NoError(t, err)
	require.Len(t, views, 1)

	// Hours accumulate but a missing freelancer earns nothing
	assert.Equal(t, 8.0, views[0].TotalHours)
	assert.Equal(t, 0.0, views[0].EarnedAmount)
	assert.Nil(t, views[0].FreelancerName)
	assert.Equal(t, 0.0, views[0].HourlyRate)
}

func TestListWorkLogs_Filters(t *testing.T) {
	repo := newMockRepository()
	alice := repo.addFreelancer("Alice", 50)
	bob := repo.addFreelancer("Bob", 40)
	repo.addWorkLog("Alice early", &alice.ID, march(5))
	repo.addWorkLog("Alice late", &alice.ID, march(20))
	repo.addWorkLog("Bob task", &bob.ID, march(20))

	svc := NewWorkLogService(repo)

	window := marchWindow(15, 31)
	views, err := svc.ListWorkLogs(context.Background(), validation.WorkLogFilters{
		DateFrom:     &window.Start,
		DateTo:       &window.End,
		FreelancerID: &alice.ID,
	})
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Alice late", views[0].TaskName)
}

func TestListWorkLogs_Empty(t *testing.T) {
	repo := newMockRepository()

	svc := NewWorkLogService(repo)
	views, err := svc.ListWorkLogs(context.Background(), validation.WorkLogFilters{})
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestGetWorkLogDetail(t *testing.T) {
	repo := newMockRepository()
	freelancer := repo.addFreelancer("Alice", 50)
	wl := repo.addWorkLog("Task", &freelancer.ID, march(10))
	repo.addHours(wl.ID, 2)
	repo.addHours(wl.ID, 3)

	svc := NewWorkLogService(repo)
	detail, err := svc.GetWorkLogDetail(context.Background(), wl.ID)
	require.NoError(t, err)

	assert.Equal(t, wl.ID, detail.ID)
	assert.Equal(t, 5.0, detail.TotalHours)
	assert.Equal(t, 250.0, detail.EarnedAmount)
	require.Len(t, detail.TimeEntries, 2)
	require.NotNil(t, detail.TimeEntries[0].Hours)
	assert.Equal(t, 2.0, *detail.TimeEntries[0].Hours)
	assert.Equal(t, 3.0, *detail.TimeEntries[1].Hours)
}

func TestGetWorkLogDetail_NotFound(t *testing.T) {
	repo := newMockRepository()

	svc := NewWorkLogService(repo)
	_, err := svc.GetWorkLogDetail(context.Background(), 404)
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
}

func TestGetWorkLogDetail_InvalidID(t *testing.T) {
	repo := newMockRepository()

	svc := NewWorkLogService(repo)
	_, err := svc.GetWorkLogDetail(context.Background(), -1)
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
}

func TestListWorkLogs_StoreError(t *testing.T) {
	repo := newMockRepository()
	repo.listErr = assert.AnError

	svc := NewWorkLogService(repo)
	_, err := svc.ListWorkLogs(context.Background(), validation.WorkLogFilters{})
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestListFreelancers(t *testing.T) {
	repo := newMockRepository()
	repo.addFreelancer("Alice", 50)
	repo.addFreelancer("Bob", 40)

	svc := NewFreelancerService(repo)
	freelancers, err := svc.ListFreelancers(context.Background())
	require.NoError(t, err)
	require.Len(t, freelancers, 2)
	assert.Equal(t, "Alice", freelancers[0].Name)
	assert.Equal(t, 40.0, freelancers[1].HourlyRate)
}
