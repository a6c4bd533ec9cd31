package recovery

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/atlashr/timecore-backend-go/internal/config"
	"github.com/atlashr/timecore-backend-go/internal/domain/recovery"
	"github.com/atlashr/timecore-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, totalHours string) (recovery.Service, string) {
	t.Helper()

	store := memory.NewRecoveryStore()
	svc := NewRecoveryService(store, store, config.EngineConfig{MinDeclarationNoteLen: 1})

	period, err := svc.CreatePeriod(context.Background(), &recovery.CreatePeriodRequest{
		Name:                "august bridge",
		StartDate:           "2025-08-01",
		EndDate:             "2025-08-31",
		TotalHoursToRecover: totalHours,
	})
	require.NoError(t, err)
	require.Equal(t, totalHours, period.HoursRemaining)
	return svc, period.ID
}

func TestDeclareDrawsDownRemainingHours(t *testing.T) {
	svc, periodID := newTestService(t, "60")
	ctx := context.Background()

	first, err := svc.Declare(ctx, &recovery.DeclareRequest{
		PeriodID: periodID, Date: "2025-08-04", Hours: "40",
	})
	require.NoError(t, err)
	assert.Equal(t, "20", first.PeriodHoursRemaining)

	_, err = svc.Declare(ctx, &recovery.DeclareRequest{
		PeriodID: periodID, Date: "2025-08-05", Hours: "25",
	})
	require.ErrorIs(t, err, recovery.ErrInsufficientRemainingHours)

	var ihe *recovery.InsufficientHoursError
	require.True(t, errors.As(err, &ihe))
	assert.Equal(t, "20", ihe.Remaining.String())

	second, err := svc.Declare(ctx, &recovery.DeclareRequest{
		PeriodID: periodID, Date: "2025-08-05", Hours: "20",
	})
	require.NoError(t, err)
	assert.Equal(t, "0", second.PeriodHoursRemaining)
}

func TestDayOffDeclarationLeavesDebtUntouched(t *testing.T) {
	svc, periodID := newTestService(t, "60")

	resp, err := svc.Declare(context.Background(), &recovery.DeclareRequest{
		PeriodID: periodID, Date: "2025-08-06", IsDayOff: true,
	})
	require.NoError(t, err)
	assert.True(t, resp.IsDayOff)
	assert.Equal(t, "0", resp.HoursToRecover)
	assert.Equal(t, "60", resp.PeriodHoursRemaining)
}

func TestDeclareRejectsNonPositiveHours(t *testing.T) {
	svc, periodID := newTestService(t, "60")

	for _, hours := range []string{"0", "-5", "garbage", ""} {
		_, err := svc.Declare(context.Background(), &recovery.DeclareRequest{
			PeriodID: periodID, Date: "2025-08-04", Hours: hours,
		})
		assert.Error(t, err, "hours=%q", hours)
	}
}

func TestUpdateExcludesOwnContribution(t *testing.T) {
	svc, periodID := newTestService(t, "60")
	ctx := context.Background()

	decl, err := svc.Declare(ctx, &recovery.DeclareRequest{
		PeriodID: periodID, Date: "2025-08-04", Hours: "40",
	})
	require.NoError(t, err)

	// 60 total, own 40 excluded: up to 60 is allowed again.
	hours := "55"
	updated, err := svc.UpdateDeclaration(ctx, &recovery.UpdateDeclarationRequest{
		ID: decl.ID, Hours: &hours,
	})
	require.NoError(t, err)
	assert.Equal(t, "55", updated.HoursToRecover)
	assert.Equal(t, "5", updated.PeriodHoursRemaining)

	tooMuch := "65"
	_, err = svc.UpdateDeclaration(ctx, &recovery.UpdateDeclarationRequest{
		ID: decl.ID, Hours: &tooMuch,
	})
	assert.ErrorIs(t, err, recovery.ErrInsufficientRemainingHours)
}

func TestUpdateDayOffHoursFails(t *testing.T) {
	svc, periodID := newTestService(t, "60")
	ctx := context.Background()

	decl, err := svc.Declare(ctx, &recovery.DeclareRequest{
		PeriodID: periodID, Date: "2025-08-06", IsDayOff: true,
	})
	require.NoError(t, err)

	hours := "8"
	_, err = svc.UpdateDeclaration(ctx, &recovery.UpdateDeclarationRequest{
		ID: decl.ID, Hours: &hours,
	})
	assert.ErrorIs(t, err, recovery.ErrDayOffDeclaration)
}

func TestConcurrentDeclarationsNeverOverbook(t *testing.T) {
	svc, periodID := newTestService(t, "60")
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Declare(ctx, &recovery.DeclareRequest{
				PeriodID: periodID, Date: "2025-08-04", Hours: "40",
			})
		}(i)
	}
	wg.Wait()

	var successes, insufficient int
	for _, err := range errs {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, recovery.ErrInsufficientRemainingHours):
			insufficient++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, insufficient)
}
