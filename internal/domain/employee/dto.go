package employee

import "time"

// Response is the wire shape for an employee profile.
type Response struct {
	ID             string                   `json:"id"`
	EmployeeID     string                   `json:"employee_id"`
	Name           string                   `json:"name"`
	DepartmentCode string                   `json:"department_code"`
	Position       string                   `json:"position"`
	Grade          string                   `json:"grade"`
	Email          string                   `json:"email"`
	Phone          string                   `json:"phone"`
	JoinDate       string                   `json:"join_date"`
	Nationality    Nationality              `json:"nationality"`
	Religion       Religion                 `json:"religion"`
	Gender         Gender                   `json:"gender"`
	NativeStatus   NativeStatus             `json:"native_status"`
	EducationLevel EducationLevel           `json:"education_level"`
	Salary         float64                  `json:"salary"`
	Status         Status                   `json:"status"`
	Supervisor     string                   `json:"supervisor"`
	WorkLocation   string                   `json:"work_location"`
	YearsOfService int                      `json:"years_of_service"`
	Emergency      EmergencyContactResponse `json:"emergency_contact"`
}

type EmergencyContactResponse struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	Phone        string `json:"phone"`
}

func ToResponse(e Employee, now time.Time) Response {
	return Response{
		ID:             e.ID,
		EmployeeID:     e.EmployeeID,
		Name:           e.Name,
		DepartmentCode: e.DepartmentCode,
		Position:       e.Position,
		Grade:          e.Grade,
		Email:          e.Email,
		Phone:          e.Phone,
		JoinDate:       e.JoinDate.Format("2006-01-02"),
		Nationality:    e.Nationality,
		Religion:       e.Religion,
		Gender:         e.Gender,
		NativeStatus:   e.NativeStatus,
		EducationLevel: e.EducationLevel,
		Salary:         e.Salary,
		Status:         e.Status,
		Supervisor:     e.Supervisor,
		WorkLocation:   e.WorkLocation,
		YearsOfService: e.YearsOfService(now),
		Emergency: EmergencyContactResponse{
			Name:         e.Emergency.Name,
			Relationship: e.Emergency.Relationship,
			Phone:        e.Emergency.Phone,
		},
	}
}

func ToResponseList(employees []Employee, now time.Time) []Response {
	out := make([]Response, len(employees))
	for i, e := range employees {
		out[i] = ToResponse(e, now)
	}
	return out
}
