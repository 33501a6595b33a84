package constants

const (
	RoleAdmin   = "admin"
	RoleFaculty = "faculty"
	RoleStudent = "student"
)

var Roles = []string{RoleAdmin, RoleFaculty, RoleStudent}

func IsValidRole(r string) bool {
	switch r {
	case RoleAdmin, RoleFaculty, RoleStudent:
		return true
	}
	return false
}
