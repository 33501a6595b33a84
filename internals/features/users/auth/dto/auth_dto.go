package dto

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=admin faculty student"`
}

type RegisterRequest struct {
	FullName    string  `json:"full_name" validate:"required,min=3,max=100"`
	Email       string  `json:"email" validate:"required,email"`
	Password    string  `json:"password" validate:"required,min=6"`
	Role        string  `json:"role" validate:"required,oneof=admin faculty student"`
	Designation *string `json:"designation,omitempty" validate:"omitempty,max=60"`
	Phone       *string `json:"phone,omitempty" validate:"omitempty,max=20"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

type UserResponse struct {
	UserID      string  `json:"user_id"`
	FullName    string  `json:"full_name"`
	Email       string  `json:"email"`
	Role        string  `json:"role"`
	Designation *string `json:"designation,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	IsActive    bool    `json:"is_active"`
}
