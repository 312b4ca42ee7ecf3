package attendance

// Response is the wire shape for an attendance record.
type Response struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	Date          string  `json:"date"`
	ClockIn       *string `json:"clock_in"`
	ClockOut      *string `json:"clock_out"`
	Status        Status  `json:"status"`
	HoursWorked   float64 `json:"hours_worked"`
	OvertimeHours float64 `json:"overtime_hours"`
	Location      string  `json:"location"`
	Notes         *string `json:"notes,omitempty"`
}

func ToResponse(r Record) Response {
	return Response{
		ID:            r.ID,
		EmployeeID:    r.EmployeeID,
		Date:          r.Date.Format("2006-01-02"),
		ClockIn:       r.ClockIn,
		ClockOut:      r.ClockOut,
		Status:        r.Status,
		HoursWorked:   r.HoursWorked,
		OvertimeHours: r.OvertimeHours,
		Location:      r.Location,
		Notes:         r.Notes,
	}
}

func ToResponseList(records []Record) []Response {
	out := make([]Response, len(records))
	for i, r := range records {
		out[i] = ToResponse(r)
	}
	return out
}
