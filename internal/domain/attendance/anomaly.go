package attendance

import (
	"github.com/atlashr/timecore-backend-go/internal/domain/schedule"
)

// Detect classifies a record against the anomaly rules. Rules are evaluated
// in a fixed precedence order and only the first match is reported, so a
// record carries at most one anomaly type at a time.
//
// maxDailyMinutes is the configured daily ceiling for excessive_hours.
func Detect(rec Record, day schedule.DaySchedule, maxDailyMinutes int) *AnomalyType {
	if rec.Status.ImpliesPresence() {
		if rec.CheckIn == nil {
			return anomalyPtr(AnomalyMissingCheckIn)
		}
		if rec.CheckOut == nil {
			return anomalyPtr(AnomalyMissingCheckOut)
		}
	}

	if rec.WorkedMinutes != nil && maxDailyMinutes > 0 && *rec.WorkedMinutes > maxDailyMinutes {
		return anomalyPtr(AnomalyExcessiveHours)
	}

	p := ClassifyPunctuality(rec.CheckIn, rec.CheckOut, rec.Date, day)
	if p.Late && rec.Status == StatusPresent {
		return anomalyPtr(AnomalyLateWithoutStatus)
	}
	if p.EarlyLeave && rec.Status == StatusPresent {
		return anomalyPtr(AnomalyEarlyDeparture)
	}

	if !day.IsWorkingDay() && !rec.Status.IsNonWorkingContext() && (rec.CheckIn != nil || rec.CheckOut != nil) {
		return anomalyPtr(AnomalyWeekendWorkUnplanned)
	}

	return nil
}

func anomalyPtr(t AnomalyType) *AnomalyType {
	return &t
}
