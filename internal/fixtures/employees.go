package fixtures

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/jpkn-sabah/attendance-backend-go/internal/domain/employee"
)

// employeeSeed fixes the PRNG so the generated dataset is identical on every
// run. Idempotent seeding depends on the natural keys being stable, and the
// tests depend on the attribute values being stable too.
const employeeSeed = 7741

const employeeCount = 50

var names = []string{
	"Ahmad Bin Abdullah", "Siti Nurhaliza Binti Mohamed", "Lim Wei Ming", "Tan Mei Ling",
	"Rajesh Kumar", "Priya Devi", "Wong Kar Wai", "Lee Siew Lan", "Muhammad Farid",
	"Nurul Ain Binti Hassan", "Chen Wei Jie", "Kavitha Devi", "Mohd Rizal Bin Omar",
	"Sarah Lim", "Raj Kumar Singh", "Amy Tan", "Azman Bin Ismail", "Linda Wong",
	"Suresh Kumar", "Mei Lin Tan", "Hafiz Bin Rahman", "Jessica Lim", "Kumar Raj",
	"Lily Chen", "Ismail Bin Ahmad", "Grace Wong", "Ravi Kumar", "Stephanie Tan",
	"Zulkifli Bin Hassan", "Michelle Lim", "Deepak Kumar", "Cindy Wong", "Faizal Bin Omar",
	"Jennifer Tan", "Sanjay Kumar", "Vivian Lim", "Rashid Bin Ali", "Karen Wong",
	"Vikram Singh", "Jasmine Tan", "Nazri Bin Yusof", "Samantha Lim", "Arjun Kumar",
	"Crystal Wong", "Hakim Bin Razak", "Melissa Tan", "Kiran Singh", "Wendy Lim",
	"Azhar Bin Mahmud", "Chloe Tan",
}

var positions = []string{
	"Pegawai Tadbir", "Penolong Pegawai Tadbir", "Pembantu Tadbir", "Jurutera",
	"Penolong Jurutera", "Pembantu Jurutera", "Akauntan", "Penolong Akauntan",
	"Pembantu Akauntan", "Pegawai IT", "Pembantu IT", "Setiausaha", "Pemandu",
	"Kerani", "Pengawal Keselamatan", "Pembantu Am", "Pegawai Penyelidik",
	"Pegawai Perhubungan Awam", "Pegawai Sumber Manusia", "Pegawai Kewangan",
}

var grades = []string{
	"JUSA C", "Gred 54", "Gred 52", "Gred 48", "Gred 44", "Gred 41", "Gred 38",
	"Gred 32", "Gred 29", "Gred 27", "Gred 22", "Gred 19", "Gred 17", "Gred 11",
}

var workLocations = []string{
	"Kompleks Pentadbiran Kerajaan Negeri", "Wisma Innoprise", "Menara Tun Mustapha",
	"Kompleks Karamunsing", "Pejabat Daerah", "Balai Raya", "Pusat Khidmat Rakyat",
}

var relationships = []string{"Spouse", "Parent", "Sibling", "Child"}

// Employees generates the fixed 50-employee seed dataset. Successive calls
// return equal values.
func Employees() []employee.Employee {
	rng := rand.New(rand.NewSource(employeeSeed))
	deptCodes := []string{"11D", "33J", "25B", "280", "490", "190"}

	out := make([]employee.Employee, 0, employeeCount)
	for i := 0; i < employeeCount; i++ {
		name := names[i%len(names)]
		isMalaysian := rng.Float64() > 0.1
		isMale := rng.Float64() > 0.45
		isBumiputera := rng.Float64() > 0.35
		hasDegree := rng.Float64() > 0.6

		nationality := employee.Malaysian
		if !isMalaysian {
			nationality = employee.NonMalaysian
		}

		gender := employee.Female
		if isMale {
			gender = employee.Male
		}

		var religion employee.Religion
		if isBumiputera {
			if rng.Float64() > 0.2 {
				religion = employee.ReligionIslam
			} else {
				religion = employee.ReligionChristian
			}
		} else {
			religion = []employee.Religion{
				employee.ReligionChristian, employee.ReligionBuddhist, employee.ReligionHindu,
			}[rng.Intn(3)]
		}

		nativeStatus := employee.NativeNonBumiputera
		if isBumiputera {
			nativeStatus = employee.NativeBumiputera
		}

		education := employee.EducationDegree
		if !hasDegree {
			education = []employee.EducationLevel{
				employee.EducationDiploma, employee.EducationSPM, employee.EducationSTPM,
			}[rng.Intn(3)]
		}

		status := employee.StatusActive
		if rng.Float64() <= 0.05 {
			if rng.Float64() > 0.5 {
				status = employee.StatusOnLeave
			} else {
				status = employee.StatusInactive
			}
		}

		joinDate := time.Date(
			2010+rng.Intn(14), time.Month(rng.Intn(12)+1), rng.Intn(28)+1,
			0, 0, 0, 0, time.UTC,
		)

		out = append(out, employee.Employee{
			EmployeeID:     fmt.Sprintf("SG%06d", i+1),
			Name:           name,
			DepartmentCode: deptCodes[rng.Intn(len(deptCodes))],
			Position:       positions[rng.Intn(len(positions))],
			Grade:          grades[rng.Intn(len(grades))],
			Email:          emailFor(name),
			Phone:          phoneNumber(rng),
			JoinDate:       joinDate,
			Nationality:    nationality,
			Religion:       religion,
			Gender:         gender,
			NativeStatus:   nativeStatus,
			EducationLevel: education,
			Salary:         float64(2500 + rng.Intn(8001)),
			Status:         status,
			Supervisor:     names[rng.Intn(len(names))],
			WorkLocation:   workLocations[rng.Intn(len(workLocations))],
			Emergency: employee.EmergencyContact{
				Name:         names[rng.Intn(len(names))],
				Relationship: relationships[rng.Intn(len(relationships))],
				Phone:        phoneNumber(rng),
			},
		})
	}
	return out
}

func emailFor(name string) string {
	local := strings.ToLower(name)
	local = strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' {
			return r
		}
		return '.'
	}, local)
	return local + "@sabah.gov.my"
}

func phoneNumber(rng *rand.Rand) string {
	prefix := "01"
	if rng.Intn(2) == 0 {
		prefix = "08"
	}
	return fmt.Sprintf("+6%s%08d", prefix, rng.Intn(90000000)+10000000)
}
