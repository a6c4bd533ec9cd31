package overtime

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/atlashr/timecore-backend-go/internal/domain/overtime"
	"github.com/atlashr/timecore-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPendingRequest(t *testing.T, svc overtime.Service) overtime.OvertimeRequestResponse {
	t.Helper()

	resp, err := svc.Create(context.Background(), overtime.CreateOvertimeRequestRequest{
		EmployeeID: "emp-1",
		Date:       "2025-03-10",
		StartTime:  "18:00",
		EndTime:    "20:30",
		Reason:     "release deployment",
		Priority:   "high",
	})
	require.NoError(t, err)
	return resp
}

func TestCreateDerivesEstimatedHours(t *testing.T) {
	svc := NewOvertimeService(memory.NewOvertimeRepository())

	resp := newPendingRequest(t, svc)
	assert.Equal(t, 2.5, resp.EstimatedHours)
	assert.Equal(t, string(overtime.StatusPending), resp.Status)
}

func TestCreateRejectsInvertedTimes(t *testing.T) {
	svc := NewOvertimeService(memory.NewOvertimeRepository())

	_, err := svc.Create(context.Background(), overtime.CreateOvertimeRequestRequest{
		EmployeeID: "emp-1",
		Date:       "2025-03-10",
		StartTime:  "20:00",
		EndTime:    "18:00",
		Reason:     "time travel",
	})
	require.Error(t, err)
}

func TestApproveKeepsEstimatedHours(t *testing.T) {
	svc := NewOvertimeService(memory.NewOvertimeRepository())
	req := newPendingRequest(t, svc)

	resp, err := svc.Approve(context.Background(), overtime.DecideRequest{
		ID: req.ID, Comment: "approved for release", ActorID: "mgr-1",
	})
	require.NoError(t, err)
	assert.Equal(t, string(overtime.StatusApproved), resp.Status)
	assert.Equal(t, 2.5, resp.EstimatedHours)
	require.NotNil(t, resp.DecidedBy)
	assert.Equal(t, "mgr-1", *resp.DecidedBy)
}

func TestDecisionsAreTerminal(t *testing.T) {
	tests := []struct {
		name   string
		decide func(svc overtime.Service, id string) error
		status overtime.Status
	}{
		{
			name: "rejected",
			decide: func(svc overtime.Service, id string) error {
				_, err := svc.Reject(context.Background(), overtime.DecideRequest{ID: id, Comment: "no budget", ActorID: "mgr-1"})
				return err
			},
			status: overtime.StatusRejected,
		},
		{
			name: "cancelled",
			decide: func(svc overtime.Service, id string) error {
				_, err := svc.Cancel(context.Background(), overtime.DecideRequest{ID: id, Comment: "not needed", ActorID: "emp-1"})
				return err
			},
			status: overtime.StatusCancelled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewOvertimeService(memory.NewOvertimeRepository())
			req := newPendingRequest(t, svc)

			require.NoError(t, tt.decide(svc, req.ID))

			got, err := svc.Get(context.Background(), req.ID)
			require.NoError(t, err)
			assert.Equal(t, string(tt.status), got.Status)

			_, err = svc.Approve(context.Background(), overtime.DecideRequest{ID: req.ID, Comment: "late", ActorID: "mgr-2"})
			require.ErrorIs(t, err, overtime.ErrInvalidStateTransition)

			var ste *overtime.StateTransitionError
			require.True(t, errors.As(err, &ste))
			assert.Equal(t, tt.status, ste.Actual)
		})
	}
}

func TestDecisionRequiresComment(t *testing.T) {
	svc := NewOvertimeService(memory.NewOvertimeRepository())
	req := newPendingRequest(t, svc)

	_, err := svc.Reject(context.Background(), overtime.DecideRequest{ID: req.ID, ActorID: "mgr-1"})
	require.Error(t, err)

	got, err := svc.Get(context.Background(), req.ID)
	require.NoError(t, err)
	assert.Equal(t, string(overtime.StatusPending), got.Status)
}

func TestCancelNeedsNoComment(t *testing.T) {
	svc := NewOvertimeService(memory.NewOvertimeRepository())
	req := newPendingRequest(t, svc)

	resp, err := svc.Cancel(context.Background(), overtime.DecideRequest{ID: req.ID, ActorID: "emp-1"})
	require.NoError(t, err)
	assert.Equal(t, string(overtime.StatusCancelled), resp.Status)
	assert.Nil(t, resp.DecisionComment)
	require.NotNil(t, resp.DecidedBy)
	assert.Equal(t, "emp-1", *resp.DecidedBy)
}

func TestConcurrentDecisionsExactlyOneWins(t *testing.T) {
	svc := NewOvertimeService(memory.NewOvertimeRepository())
	req := newPendingRequest(t, svc)
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make([]error, 2)
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, errs[0] = svc.Approve(ctx, overtime.DecideRequest{ID: req.ID, Comment: "ok", ActorID: "mgr-1"})
	}()
	go func() {
		defer wg.Done()
		_, errs[1] = svc.Reject(ctx, overtime.DecideRequest{ID: req.ID, Comment: "no", ActorID: "mgr-2"})
	}()
	wg.Wait()

	var successes, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, overtime.ErrConflict) || errors.Is(err, overtime.ErrInvalidStateTransition):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, conflicts)
}
