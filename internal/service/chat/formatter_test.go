package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jpkn-sabah/attendance-backend-go/internal/domain/employee"
	"github.com/jpkn-sabah/attendance-backend-go/internal/domain/stats"
)

func TestGroupThousands(t *testing.T) {
	assert.Equal(t, "0", groupThousands(0))
	assert.Equal(t, "999", groupThousands(999))
	assert.Equal(t, "1,000", groupThousands(1000))
	assert.Equal(t, "45,231", groupThousands(45231))
	assert.Equal(t, "1,234,567", groupThousands(1234567))
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "RM3,500", formatMoney(3500))
	assert.Equal(t, "RM0", formatMoney(0))
	// Cents are dropped, matching the dashboard's whole-ringgit display.
	assert.Equal(t, "RM4,200", formatMoney(4200.75))
}

func TestSalaryDistributionBuckets(t *testing.T) {
	salaries := []float64{2500, 3000, 4999, 5000, 7999, 8000, 12000}
	text := formatSalaryAnalysis(stats.EmployeeStatistics{}, salaries)

	assert.Contains(t, text, "Below RM3,000: 1 employees")
	assert.Contains(t, text, "RM3,000 - RM5,000: 2 employees")
	assert.Contains(t, text, "RM5,000 - RM8,000: 2 employees")
	assert.Contains(t, text, "Above RM8,000: 2 employees")
}

func TestCountGrades(t *testing.T) {
	employees := []employee.Employee{
		{Grade: "Gred 41"},
		{Grade: "Gred 29"},
		{Grade: "Gred 41"},
		{Grade: "JUSA C"},
	}

	grades := countGrades(employees)
	assert.Equal(t, []gradeCount{
		{Grade: "Gred 41", Count: 2},
		{Grade: "Gred 29", Count: 1},
		{Grade: "JUSA C", Count: 1},
	}, grades, "grades keep first-seen order")
}
