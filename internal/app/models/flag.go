package models

// Flag defines a user's report that an internship listing is invalid or
// inappropriate, based on the 'flags' table. At most one flag exists per
// (user, internship) pair, enforced by a unique constraint.
type Flag struct {
	ID           int64   `json:"id" db:"id"`
	UserID       int64   `json:"user_id" db:"user_id"`
	InternshipID int64   `json:"internship_id" db:"internship_id"`
	Reason       *string `json:"reason,omitempty" db:"reason"`
}

// Favorite defines a user's bookmark of an internship listing, based on the
// 'favorites' table. Same uniqueness rule as flags.
type Favorite struct {
	ID           int64 `json:"id" db:"id"`
	UserID       int64 `json:"user_id" db:"user_id"`
	InternshipID int64 `json:"internship_id" db:"internship_id"`
}
