package leave

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/atlashr/timecore-backend-go/internal/config"
	"github.com/atlashr/timecore-backend-go/internal/domain/leave"
	"github.com/atlashr/timecore-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, stages int) (leave.Service, leave.LeaveType) {
	t.Helper()

	typeRepo := memory.NewLeaveTypeRepository()
	requestRepo := memory.NewLeaveRequestRepository()
	svc := NewLeaveService(typeRepo, requestRepo, config.EngineConfig{LeaveApprovalStages: 3})

	lt, err := typeRepo.Create(context.Background(), leave.LeaveType{
		Name:              "annual leave",
		IsActive:          true,
		AllowHalfDay:      true,
		MinDaysPerRequest: 0.5,
		MaxDaysPerRequest: 30,
		ApprovalStages:    stages,
	})
	require.NoError(t, err)
	return svc, lt
}

func createPending(t *testing.T, svc leave.Service, lt leave.LeaveType) leave.LeaveRequestResponse {
	t.Helper()

	resp, err := svc.Create(context.Background(), leave.CreateLeaveRequestRequest{
		EmployeeID:  "emp-1",
		LeaveTypeID: lt.ID,
		StartDate:   "2025-01-06",
		EndDate:     "2025-01-10",
		Reason:      "family trip",
	})
	require.NoError(t, err)
	require.Equal(t, string(leave.StatusPending), resp.Status)
	return resp
}

func TestCreateComputesTotalDays(t *testing.T) {
	svc, lt := newTestService(t, 3)

	resp := createPending(t, svc, lt)
	assert.Equal(t, 5.0, resp.TotalDays)
}

func TestCreateHalfDayTotal(t *testing.T) {
	svc, lt := newTestService(t, 3)

	resp, err := svc.Create(context.Background(), leave.CreateLeaveRequestRequest{
		EmployeeID:   "emp-2",
		LeaveTypeID:  lt.ID,
		StartDate:    "2025-01-06",
		EndDate:      "2025-01-10",
		StartHalfDay: true,
		Reason:       "moving day",
	})
	require.NoError(t, err)
	assert.Equal(t, 4.5, resp.TotalDays)
}

func TestCreateRejectsOutOfBounds(t *testing.T) {
	svc, lt := newTestService(t, 3)

	_, err := svc.Create(context.Background(), leave.CreateLeaveRequestRequest{
		EmployeeID:  "emp-1",
		LeaveTypeID: lt.ID,
		StartDate:   "2025-01-01",
		EndDate:     "2025-03-01",
		Reason:      "sabbatical",
	})
	assert.ErrorIs(t, err, leave.ErrDaysOutOfBounds)
}

func TestCreateRejectsOverlap(t *testing.T) {
	svc, lt := newTestService(t, 3)
	createPending(t, svc, lt)

	_, err := svc.Create(context.Background(), leave.CreateLeaveRequestRequest{
		EmployeeID:  "emp-1",
		LeaveTypeID: lt.ID,
		StartDate:   "2025-01-08",
		EndDate:     "2025-01-12",
		Reason:      "second trip",
	})
	assert.ErrorIs(t, err, leave.ErrOverlappingLeave)
}

func TestApproveFullChain(t *testing.T) {
	svc, lt := newTestService(t, 3)
	req := createPending(t, svc, lt)
	ctx := context.Background()

	resp, err := svc.Approve(ctx, leave.ApproveRequest{ID: req.ID, Stage: "n1", ApproverID: "mgr-1", Comment: "ok"})
	require.NoError(t, err)
	assert.Equal(t, string(leave.StatusApprovedN1), resp.Status)
	require.NotNil(t, resp.N1)
	assert.Equal(t, "mgr-1", resp.N1.ApproverID)

	resp, err = svc.Approve(ctx, leave.ApproveRequest{ID: req.ID, Stage: "n2", ApproverID: "mgr-2", Comment: "ok"})
	require.NoError(t, err)
	assert.Equal(t, string(leave.StatusApprovedN2), resp.Status)

	resp, err = svc.Approve(ctx, leave.ApproveRequest{ID: req.ID, Stage: "hr", ApproverID: "hr-1", Comment: "ok"})
	require.NoError(t, err)
	assert.Equal(t, string(leave.StatusApprovedHR), resp.Status)

	// Terminal: a further approval fails.
	_, err = svc.Approve(ctx, leave.ApproveRequest{ID: req.ID, Stage: "hr", ApproverID: "hr-2", Comment: "again"})
	assert.ErrorIs(t, err, leave.ErrInvalidStateTransition)
}

func TestApproveSkippingStageFails(t *testing.T) {
	svc, lt := newTestService(t, 3)
	req := createPending(t, svc, lt)

	_, err := svc.Approve(context.Background(), leave.ApproveRequest{
		ID: req.ID, Stage: "n2", ApproverID: "mgr-2", Comment: "skipping ahead",
	})
	require.ErrorIs(t, err, leave.ErrInvalidStateTransition)

	var ste *leave.StateTransitionError
	require.True(t, errors.As(err, &ste))
	assert.Equal(t, leave.StatusPending, ste.Actual)
}

func TestApproveRequiresComment(t *testing.T) {
	svc, lt := newTestService(t, 3)
	req := createPending(t, svc, lt)

	_, err := svc.Approve(context.Background(), leave.ApproveRequest{ID: req.ID, Stage: "n1", ApproverID: "mgr-1"})
	require.Error(t, err)

	// The request is untouched by the failed call.
	got, err := svc.Get(context.Background(), req.ID)
	require.NoError(t, err)
	assert.Equal(t, string(leave.StatusPending), got.Status)
	assert.Nil(t, got.N1)
}

func TestTwoStageChainTerminatesApproved(t *testing.T) {
	svc, lt := newTestService(t, 2)
	req := createPending(t, svc, lt)
	ctx := context.Background()

	resp, err := svc.Approve(ctx, leave.ApproveRequest{ID: req.ID, Stage: "n1", ApproverID: "mgr-1", Comment: "ok"})
	require.NoError(t, err)
	assert.Equal(t, string(leave.StatusApprovedN1), resp.Status)

	resp, err = svc.Approve(ctx, leave.ApproveRequest{ID: req.ID, Stage: "hr", ApproverID: "hr-1", Comment: "ok"})
	require.NoError(t, err)
	assert.Equal(t, string(leave.StatusApproved), resp.Status)
}

func TestSingleStageChain(t *testing.T) {
	svc, lt := newTestService(t, 1)
	req := createPending(t, svc, lt)

	resp, err := svc.Approve(context.Background(), leave.ApproveRequest{ID: req.ID, ApproverID: "hr-1", Comment: "ok"})
	require.NoError(t, err)
	assert.Equal(t, string(leave.StatusApproved), resp.Status)

	// N1 is not part of a single-stage chain.
	req2 := createPendingFor(t, svc, lt, "emp-9")
	_, err = svc.Approve(context.Background(), leave.ApproveRequest{ID: req2.ID, Stage: "n1", ApproverID: "mgr-1", Comment: "ok"})
	assert.ErrorIs(t, err, leave.ErrInvalidStateTransition)
}

func createPendingFor(t *testing.T, svc leave.Service, lt leave.LeaveType, employeeID string) leave.LeaveRequestResponse {
	t.Helper()

	resp, err := svc.Create(context.Background(), leave.CreateLeaveRequestRequest{
		EmployeeID:  employeeID,
		LeaveTypeID: lt.ID,
		StartDate:   "2025-02-03",
		EndDate:     "2025-02-05",
		Reason:      "errand",
	})
	require.NoError(t, err)
	return resp
}

func TestRejectKeepsPriorApprovals(t *testing.T) {
	svc, lt := newTestService(t, 3)
	req := createPending(t, svc, lt)
	ctx := context.Background()

	_, err := svc.Approve(ctx, leave.ApproveRequest{ID: req.ID, Stage: "n1", ApproverID: "mgr-1", Comment: "ok"})
	require.NoError(t, err)

	resp, err := svc.Reject(ctx, leave.RejectRequest{ID: req.ID, ApproverID: "hr-1", Reason: "quota exhausted"})
	require.NoError(t, err)
	assert.Equal(t, string(leave.StatusRejected), resp.Status)
	require.NotNil(t, resp.N1)
	assert.Equal(t, "mgr-1", resp.N1.ApproverID)
	require.NotNil(t, resp.RejectionReason)
	assert.Equal(t, "quota exhausted", *resp.RejectionReason)

	// Rejection is terminal.
	_, err = svc.Reject(ctx, leave.RejectRequest{ID: req.ID, ApproverID: "hr-2", Reason: "again"})
	assert.ErrorIs(t, err, leave.ErrInvalidStateTransition)
}

func TestConcurrentSameStageApprovalsExactlyOneWins(t *testing.T) {
	svc, lt := newTestService(t, 3)
	req := createPending(t, svc, lt)
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Approve(ctx, leave.ApproveRequest{
				ID: req.ID, Stage: "n1", ApproverID: "mgr-" + string(rune('a'+i)), Comment: "ok",
			})
		}(i)
	}
	wg.Wait()

	var successes, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, leave.ErrConflict) || errors.Is(err, leave.ErrInvalidStateTransition):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, conflicts)

	got, err := svc.Get(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, string(leave.StatusApprovedN1), got.Status)
	require.NotNil(t, got.N1)
}
