package stats

import (
	"math"
	"sort"

	"github.com/jpkn-sabah/attendance-backend-go/internal/domain/attendance"
	"github.com/jpkn-sabah/attendance-backend-go/internal/domain/employee"
	"github.com/jpkn-sabah/attendance-backend-go/internal/domain/stats"
)

// AggregateEmployees computes the statistics snapshot for a set of employees.
// Pure function: identical input sets produce identical output. An empty set
// yields zeroes for the salary figures, never a division by zero.
func AggregateEmployees(employees []employee.Employee, topN int) stats.EmployeeStatistics {
	out := stats.EmployeeStatistics{
		TotalEmployees: len(employees),
		TopPositions:   []stats.PositionCount{},
		Demographics: stats.Demographics{
			Nationality: make(map[string]int),
			Religion:    make(map[string]int),
			Gender:      make(map[string]int),
			Education:   make(map[string]int),
		},
	}

	if len(employees) == 0 {
		return out
	}

	var salarySum float64
	minSalary := math.MaxFloat64
	maxSalary := -math.MaxFloat64

	positionCounts := make(map[string]int)
	positionFirstSeen := make(map[string]int)

	for i, e := range employees {
		switch e.Status {
		case employee.StatusActive:
			out.ActiveEmployees++
		case employee.StatusOnLeave:
			out.OnLeave++
		case employee.StatusInactive:
			out.Inactive++
		}

		salarySum += e.Salary
		if e.Salary < minSalary {
			minSalary = e.Salary
		}
		if e.Salary > maxSalary {
			maxSalary = e.Salary
		}

		if _, seen := positionFirstSeen[e.Position]; !seen {
			positionFirstSeen[e.Position] = i
		}
		positionCounts[e.Position]++

		out.Demographics.Nationality[string(e.Nationality)]++
		out.Demographics.Religion[string(e.Religion)]++
		out.Demographics.Gender[string(e.Gender)]++
		out.Demographics.Education[string(e.EducationLevel)]++
	}

	out.AvgSalary = math.Round(salarySum / float64(len(employees)))
	out.MinSalary = minSalary
	out.MaxSalary = maxSalary
	out.TopPositions = topPositions(positionCounts, positionFirstSeen, topN)

	return out
}

// topPositions sorts positions by descending count; ties keep the order the
// positions first appeared in the input set.
func topPositions(counts map[string]int, firstSeen map[string]int, n int) []stats.PositionCount {
	out := make([]stats.PositionCount, 0, len(counts))
	for pos, count := range counts {
		out = append(out, stats.PositionCount{Position: pos, Count: count})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return firstSeen[out[i].Position] < firstSeen[out[j].Position]
	})
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// AggregateToday buckets one day's records by status. totalEmployees is
// supplied independently of the record set so that employees with no record
// count as not checked in rather than disappearing.
func AggregateToday(records []attendance.Record, totalEmployees int) stats.TodayAttendanceStats {
	out := stats.TodayAttendanceStats{
		Total:          len(records),
		TotalEmployees: totalEmployees,
	}

	for _, r := range records {
		switch r.Status {
		case attendance.StatusPresent:
			out.Present++
		case attendance.StatusLate:
			out.Late++
		case attendance.StatusAbsent:
			out.Absent++
		case attendance.StatusMedicalLeave:
			out.OnMedicalLeave++
		case attendance.StatusOnLeave:
			out.OnLeave++
		case attendance.StatusHoliday:
			out.Holiday++
		}
	}

	if n := totalEmployees - len(records); n > 0 {
		out.NotCheckedIn = n
	}

	return out
}
