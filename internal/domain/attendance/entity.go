package attendance

import "time"

// Record is one employee's attendance outcome for one calendar day.
// At most one record exists per (employee, date).
type Record struct {
	ID            string
	EmployeeID    string // references employees.id, not the SG code
	Date          time.Time
	ClockIn       *string // "HH:MM"
	ClockOut      *string
	Status        Status
	HoursWorked   float64
	OvertimeHours float64
	Location      string
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Status string

const (
	StatusPresent      Status = "Present"
	StatusLate         Status = "Late"
	StatusAbsent       Status = "Absent"
	StatusMedicalLeave Status = "Medical Leave"
	StatusOnLeave      Status = "On Leave"
	StatusHoliday      Status = "Holiday"
)

// LeaveStatuses are the status buckets counted as leave in history queries.
var LeaveStatuses = []Status{StatusOnLeave, StatusMedicalLeave}

// IsLeave reports whether the record's status is any leave bucket.
func (r Record) IsLeave() bool {
	for _, s := range LeaveStatuses {
		if r.Status == s {
			return true
		}
	}
	return false
}
