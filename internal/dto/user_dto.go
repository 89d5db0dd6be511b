package dto

// CreateUserRequest is the POST /users payload from the login screen.
type CreateUserRequest struct {
	Name string `json:"name"`
}

type CreateUserResponse struct {
	UserID uint `json:"userId"`
}

// ExistingDataResponse reports whether the user already logged anything today.
type ExistingDataResponse struct {
	Exists bool `json:"exists"`
}
