package dto

// RegisterRequest is the body for POST /users/register.
type RegisterRequest struct {
	FirstName string `json:"first_name" binding:"required" example:"John"`
	LastName  string `json:"last_name" binding:"required" example:"Doe"`
	Username  string `json:"username" binding:"required" example:"jdoe"`
	Password  string `json:"password" binding:"required,min=8" example:"hardpass1"`
}

// LoginRequest is the body for POST /users/login.
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"jdoe"`
	Password string `json:"password" binding:"required" example:"hardpass1"`
}
