package dto

// MessageResponse is the standard body for mutation results and errors.
type MessageResponse struct {
	Message string `json:"message" example:"User created successfully"`
}

// NewMessageResponse creates a standard message body.
func NewMessageResponse(message string) MessageResponse {
	return MessageResponse{Message: message}
}

// LoginResponse carries the issued access token.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

// CurrentUserResponse identifies the authenticated caller.
type CurrentUserResponse struct {
	LoggedInAs int64 `json:"logged_in_as" example:"1"`
}
