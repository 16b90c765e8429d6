package models

// User defines the user model based on the 'users' table
type User struct {
	ID                     int64    `json:"id" db:"id" example:"1"`
	FirstName              string   `json:"first_name" db:"first_name" example:"John"`
	LastName               string   `json:"last_name" db:"last_name" example:"Doe"`
	Username               string   `json:"username" db:"username" example:"jdoe"` // Unique across users
	Password               string   `json:"-" db:"password"`                      // bcrypt hash, excluded from JSON
	GPA                    *float64 `json:"gpa,omitempty" db:"gpa" example:"3.4"`
	AcademicYear           *string  `json:"academic_year,omitempty" db:"academic_year" example:"3rd"`
	GithubLink             *string  `json:"github_link,omitempty" db:"github_link"`
	LinkedinLink           *string  `json:"linkedin_link,omitempty" db:"linkedin_link"`
	WebsiteLink            *string  `json:"website_link,omitempty" db:"website_link"`
	ProfilePictureLink     *string  `json:"profile_picture_link,omitempty" db:"profile_picture_link"`
	CVLink                 *string  `json:"cv_link,omitempty" db:"cv_link"`
	Email                  *string  `json:"email,omitempty" db:"email"`
	PhoneNumber            *string  `json:"phone_number,omitempty" db:"phone_number"`
	Description            *string  `json:"description,omitempty" db:"description"`
	RoleID                 int64    `json:"role_id" db:"role_id"`
	InternshipTimePeriodID *int64   `json:"internship_time_period_id,omitempty" db:"internship_time_period_id"`
	Role                   *Role    `json:"role,omitempty"` // Relation, no db tag
}

// RoleType returns the seeded role type for the user's role_id.
func (u *User) RoleType() RoleType {
	return RoleTypeForID(u.RoleID)
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.RoleID == RoleAdminID
}
