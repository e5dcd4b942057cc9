package dto

// RegisterRequest entrada para registro público.
type RegisterRequest struct {
	FirstName string `json:"first_name" validate:"required,min=1,max=100"`
	LastName  string `json:"last_name" validate:"required,min=1,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	Role      string `json:"role" validate:"omitempty,oneof=admin manager worker provider"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida de login. Los tokens viajan SOLO en cookies,
// nunca en el cuerpo.
type LoginResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}
