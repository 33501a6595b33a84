package constants

// Departments offered by the college. Every student, fee structure and
// concession is scoped to exactly one of these.
const (
	DepartmentBA  = "B.A."
	DepartmentBSc = "B.Sc."
	DepartmentBEd = "B.Ed."
)

var Departments = []string{DepartmentBA, DepartmentBSc, DepartmentBEd}

// CourseDurations maps a department to its course length in years.
var CourseDurations = map[string]int{
	DepartmentBA:  3,
	DepartmentBSc: 3,
	DepartmentBEd: 2,
}

func IsValidDepartment(d string) bool {
	_, ok := CourseDurations[d]
	return ok
}
