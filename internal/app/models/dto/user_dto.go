package dto

// EditProfileRequest is the body for PUT /users/edit_profile.
// All fields are optional; absent fields are left untouched. The id,
// username and role can never be changed through this endpoint.
type EditProfileRequest struct {
	FirstName              *string  `json:"first_name,omitempty"`
	LastName               *string  `json:"last_name,omitempty"`
	GPA                    *float64 `json:"gpa,omitempty"`
	AcademicYear           *string  `json:"academic_year,omitempty"`
	GithubLink             *string  `json:"github_link,omitempty"`
	LinkedinLink           *string  `json:"linkedin_link,omitempty"`
	WebsiteLink            *string  `json:"website_link,omitempty"`
	Email                  *string  `json:"email,omitempty"`
	PhoneNumber            *string  `json:"phone_number,omitempty"`
	Description            *string  `json:"description,omitempty"`
	InternshipTimePeriodID *int64   `json:"internship_time_period_id,omitempty"`
}

// ChangeRoleRequest is the body for PUT /admin/change_role/:username.
type ChangeRoleRequest struct {
	RoleID int64 `json:"role_id" binding:"required" example:"2"`
}
