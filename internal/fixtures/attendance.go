package fixtures

import (
	"fmt"
	"hash/fnv"
	"math/rand"
	"time"

	"github.com/jpkn-sabah/attendance-backend-go/internal/domain/attendance"
)

// AttendanceHistoryDays is how far back the synthetic history reaches.
const AttendanceHistoryDays = 30

// AttendanceFor generates synthetic history for one employee over the given
// number of days ending at end. The PRNG is seeded per (employee, date), so a
// partial seed plus a retry regenerates identical rows and the (employee_id,
// date) upsert sees them as duplicates.
func AttendanceFor(employeeCode string, days int, end time.Time) []attendance.Record {
	var records []attendance.Record
	endDay := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)

	for i := days - 1; i >= 0; i-- {
		date := endDay.AddDate(0, 0, -i)
		rng := rand.New(rand.NewSource(daySeed(employeeCode, date)))

		// Weekends are mostly skipped
		if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
			if rng.Float64() > 0.1 {
				continue
			}
		}

		rec := attendance.Record{
			Date:     date,
			Location: "Main Office",
		}

		switch roll := rng.Float64(); {
		case roll > 0.95:
			rec.Status = attendance.StatusAbsent
		case roll > 0.92:
			rec.Status = attendance.StatusMedicalLeave
			rec.Notes = strPtr("Medical Certificate submitted")
		case roll > 0.88:
			rec.Status = attendance.StatusOnLeave
			rec.Notes = strPtr("Annual Leave")
		default:
			isLate := rng.Float64() > 0.85
			rec.Status = attendance.StatusPresent
			if isLate {
				rec.Status = attendance.StatusLate
			}

			clockInHour := 8
			if isLate {
				clockInHour = 8 + rng.Intn(2)
			}
			clockInMinute := rng.Intn(60)
			clockOutHour := 17 + rng.Intn(3)
			clockOutMinute := rng.Intn(60)

			rec.ClockIn = strPtr(fmt.Sprintf("%02d:%02d", clockInHour, clockInMinute))
			rec.ClockOut = strPtr(fmt.Sprintf("%02d:%02d", clockOutHour, clockOutMinute))

			hours := float64(clockOutHour-clockInHour) + float64(clockOutMinute-clockInMinute)/60
			if hours < 0 {
				hours = 0
			}
			rec.HoursWorked = roundTenth(hours)
			if rec.HoursWorked > 8 {
				rec.OvertimeHours = roundTenth(rec.HoursWorked - 8)
			}
		}

		records = append(records, rec)
	}

	return records
}

func daySeed(employeeCode string, date time.Time) int64 {
	h := fnv.New64a()
	h.Write([]byte(employeeCode))
	h.Write([]byte(date.Format("2006-01-02")))
	return int64(h.Sum64())
}

func roundTenth(f float64) float64 {
	return float64(int(f*10+0.5)) / 10
}

func strPtr(s string) *string { return &s }
