package dto

// RegisterUser is the input shape of a registration. Identity and creation
// time are always assigned by the server.
type RegisterUser struct {
	Username string `json:"username" validate:"required,min=3,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}
