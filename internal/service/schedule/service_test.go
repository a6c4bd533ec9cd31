package schedule

import (
	"context"
	"testing"

	"github.com/atlashr/timecore-backend-go/internal/domain/schedule"
	"github.com/atlashr/timecore-backend-go/internal/pkg/validator"
	"github.com/atlashr/timecore-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weekdays(start, end string) []schedule.DayWindowRequest {
	var days []schedule.DayWindowRequest
	for wd := 1; wd <= 5; wd++ {
		days = append(days, schedule.DayWindowRequest{Weekday: wd, Start: start, End: end})
	}
	return days
}

func TestCreateValidatesWindows(t *testing.T) {
	svc := NewWorkScheduleService(memory.NewWorkScheduleRepository())

	_, err := svc.Create(context.Background(), schedule.CreateWorkScheduleRequest{
		Name: "broken",
		Days: []schedule.DayWindowRequest{{Weekday: 1, Start: "18:00", End: "09:00"}},
	})
	require.Error(t, err)

	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestActivateKeepsSingleActiveSchedule(t *testing.T) {
	repo := memory.NewWorkScheduleRepository()
	svc := NewWorkScheduleService(repo)
	ctx := context.Background()

	first, err := svc.Create(ctx, schedule.CreateWorkScheduleRequest{
		Name: "standard week",
		Days: weekdays("09:00", "18:00"),
	})
	require.NoError(t, err)
	second, err := svc.Create(ctx, schedule.CreateWorkScheduleRequest{
		Name: "summer hours",
		Days: weekdays("08:00", "15:00"),
	})
	require.NoError(t, err)

	_, err = repo.GetActive(ctx)
	assert.ErrorIs(t, err, schedule.ErrNoActiveSchedule)

	activated, err := svc.Activate(ctx, first.ID)
	require.NoError(t, err)
	assert.True(t, activated.IsActive)

	activated, err = svc.Activate(ctx, second.ID)
	require.NoError(t, err)
	assert.True(t, activated.IsActive)

	// The previous schedule was deactivated in the same step.
	old, err := svc.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.False(t, old.IsActive)

	active, err := repo.GetActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.ID, active.ID)
}

func TestActivateUnknownScheduleFails(t *testing.T) {
	svc := NewWorkScheduleService(memory.NewWorkScheduleRepository())

	_, err := svc.Activate(context.Background(), "missing-id")
	assert.ErrorIs(t, err, schedule.ErrWorkScheduleNotFound)
}
