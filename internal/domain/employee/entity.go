package employee

import "time"

type Employee struct {
	ID             string
	EmployeeID     string // natural key, SG followed by six digits
	Name           string
	DepartmentCode string
	Position       string
	Grade          string
	Email          string
	Phone          string
	JoinDate       time.Time
	Nationality    Nationality
	Religion       Religion
	Gender         Gender
	NativeStatus   NativeStatus
	EducationLevel EducationLevel
	Salary         float64
	Status         Status
	Supervisor     string
	WorkLocation   string
	Emergency      EmergencyContact
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type EmergencyContact struct {
	Name         string
	Relationship string
	Phone        string
}

type Status string

const (
	StatusActive   Status = "Active"
	StatusOnLeave  Status = "On Leave"
	StatusInactive Status = "Inactive"
)

type Gender string

const (
	Male   Gender = "Male"
	Female Gender = "Female"
)

type Nationality string

const (
	Malaysian    Nationality = "Malaysian"
	NonMalaysian Nationality = "Non-Malaysian"
)

type Religion string

const (
	ReligionIslam     Religion = "Islam"
	ReligionChristian Religion = "Christian"
	ReligionBuddhist  Religion = "Buddhist"
	ReligionHindu     Religion = "Hindu"
	ReligionOthers    Religion = "Others"
)

type NativeStatus string

const (
	NativeBumiputera    NativeStatus = "Bumiputera"
	NativeNonBumiputera NativeStatus = "Non-Bumiputera"
)

type EducationLevel string

const (
	EducationDegree  EducationLevel = "Degree"
	EducationDiploma EducationLevel = "Diploma"
	EducationSPM     EducationLevel = "SPM"
	EducationSTPM    EducationLevel = "STPM"
	EducationOthers  EducationLevel = "Others"
)

// YearsOfService counts whole calendar years since the join date.
func (e Employee) YearsOfService(now time.Time) int {
	years := now.Year() - e.JoinDate.Year()
	if years < 0 {
		return 0
	}
	return years
}
