package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpkn-sabah/attendance-backend-go/internal/domain/attendance"
	"github.com/jpkn-sabah/attendance-backend-go/internal/domain/employee"
)

func makeEmployee(position string, status employee.Status, salary float64) employee.Employee {
	return employee.Employee{
		Position:       position,
		Status:         status,
		Salary:         salary,
		Nationality:    employee.Malaysian,
		Religion:       employee.ReligionIslam,
		Gender:         employee.Male,
		EducationLevel: employee.EducationDegree,
	}
}

func TestAggregateEmployees(t *testing.T) {
	t.Run("empty set yields zero salary figures", func(t *testing.T) {
		out := AggregateEmployees(nil, 5)

		assert.Equal(t, 0, out.TotalEmployees)
		assert.Equal(t, float64(0), out.AvgSalary)
		assert.Equal(t, float64(0), out.MinSalary)
		assert.Equal(t, float64(0), out.MaxSalary)
		assert.Empty(t, out.TopPositions)
		assert.Empty(t, out.Demographics.Nationality)
	})

	t.Run("status counts and salary range", func(t *testing.T) {
		employees := []employee.Employee{
			makeEmployee("Clerk", employee.StatusActive, 3000),
			makeEmployee("Clerk", employee.StatusOnLeave, 5000),
			makeEmployee("Officer", employee.StatusInactive, 7000),
		}

		out := AggregateEmployees(employees, 5)

		assert.Equal(t, 3, out.TotalEmployees)
		assert.Equal(t, 1, out.ActiveEmployees)
		assert.Equal(t, 1, out.OnLeave)
		assert.Equal(t, 1, out.Inactive)
		assert.Equal(t, float64(5000), out.AvgSalary)
		assert.Equal(t, float64(3000), out.MinSalary)
		assert.Equal(t, float64(7000), out.MaxSalary)
	})

	t.Run("average salary is rounded to whole ringgit", func(t *testing.T) {
		employees := []employee.Employee{
			makeEmployee("Clerk", employee.StatusActive, 1000),
			makeEmployee("Clerk", employee.StatusActive, 1001),
		}

		out := AggregateEmployees(employees, 5)
		assert.Equal(t, float64(1001), out.AvgSalary) // 1000.5 rounds up
	})

	t.Run("demographics omit absent categories", func(t *testing.T) {
		employees := []employee.Employee{
			makeEmployee("Clerk", employee.StatusActive, 3000),
		}

		out := AggregateEmployees(employees, 5)

		assert.Equal(t, map[string]int{string(employee.Malaysian): 1}, out.Demographics.Nationality)
		_, hasNonMalaysian := out.Demographics.Nationality[string(employee.NonMalaysian)]
		assert.False(t, hasNonMalaysian)
	})

	t.Run("top positions sort by count, ties by first seen", func(t *testing.T) {
		employees := []employee.Employee{
			makeEmployee("Officer", employee.StatusActive, 3000),
			makeEmployee("Clerk", employee.StatusActive, 3000),
			makeEmployee("Clerk", employee.StatusActive, 3000),
			makeEmployee("Engineer", employee.StatusActive, 3000),
		}

		out := AggregateEmployees(employees, 5)

		require.Len(t, out.TopPositions, 3)
		assert.Equal(t, "Clerk", out.TopPositions[0].Position)
		assert.Equal(t, 2, out.TopPositions[0].Count)
		// Officer and Engineer both count 1; Officer appeared first.
		assert.Equal(t, "Officer", out.TopPositions[1].Position)
		assert.Equal(t, "Engineer", out.TopPositions[2].Position)
	})

	t.Run("top positions truncate to n", func(t *testing.T) {
		employees := []employee.Employee{
			makeEmployee("A", employee.StatusActive, 1),
			makeEmployee("B", employee.StatusActive, 1),
			makeEmployee("C", employee.StatusActive, 1),
		}

		out := AggregateEmployees(employees, 2)
		assert.Len(t, out.TopPositions, 2)
	})
}

func TestAggregateToday(t *testing.T) {
	recordsWithStatus := func(statuses ...attendance.Status) []attendance.Record {
		out := make([]attendance.Record, len(statuses))
		for i, s := range statuses {
			out[i] = attendance.Record{Status: s}
		}
		return out
	}

	t.Run("buckets by status", func(t *testing.T) {
		records := recordsWithStatus(
			attendance.StatusPresent,
			attendance.StatusPresent,
			attendance.StatusLate,
			attendance.StatusAbsent,
			attendance.StatusMedicalLeave,
			attendance.StatusOnLeave,
			attendance.StatusHoliday,
		)

		out := AggregateToday(records, 10)

		assert.Equal(t, 7, out.Total)
		assert.Equal(t, 2, out.Present)
		assert.Equal(t, 1, out.Late)
		assert.Equal(t, 1, out.Absent)
		assert.Equal(t, 1, out.OnMedicalLeave)
		assert.Equal(t, 1, out.OnLeave)
		assert.Equal(t, 1, out.Holiday)
		assert.Equal(t, 3, out.NotCheckedIn)
		assert.Equal(t, 10, out.TotalEmployees)
	})

	t.Run("not checked in never goes negative", func(t *testing.T) {
		records := recordsWithStatus(attendance.StatusPresent, attendance.StatusPresent)

		out := AggregateToday(records, 1)
		assert.Equal(t, 0, out.NotCheckedIn)
	})

	t.Run("empty day", func(t *testing.T) {
		out := AggregateToday(nil, 4)

		assert.Equal(t, 0, out.Total)
		assert.Equal(t, 4, out.NotCheckedIn)
	})
}
