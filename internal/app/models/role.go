package models

// RoleType defines the user role type
type RoleType string

const (
	RoleAdmin      RoleType = "admin"
	RoleInstructor RoleType = "instructor"
	RoleStudent    RoleType = "student"
)

// Role IDs as seeded at startup. The roles table is a fixed enumeration
// and is never mutated after seeding.
const (
	RoleAdminID      int64 = 1
	RoleInstructorID int64 = 2
	RoleStudentID    int64 = 3
)

// Role defines the role model based on the 'roles' table
type Role struct {
	ID   int64    `json:"id" db:"id"`
	Name RoleType `json:"name" db:"name"`
}

// IsValid reports whether the role type is one of the seeded roles.
func (r RoleType) IsValid() bool {
	switch r {
	case RoleAdmin, RoleInstructor, RoleStudent:
		return true
	}
	return false
}

// RoleTypeForID maps a seeded role ID back to its role type.
// Returns an empty RoleType for unknown IDs.
func RoleTypeForID(id int64) RoleType {
	switch id {
	case RoleAdminID:
		return RoleAdmin
	case RoleInstructorID:
		return RoleInstructor
	case RoleStudentID:
		return RoleStudent
	}
	return ""
}
