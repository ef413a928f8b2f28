package models

// Address holds the profile address components.
type Address struct {
	Street   string `json:"street"`
	Ward     string `json:"ward"`
	District string `json:"district"`
	Province string `json:"province"`
}

// User is the backend-owned account record as the gateway reads it.
type User struct {
	ID       int64   `json:"id"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	FullName string  `json:"fullName"`
	Phone    string  `json:"phone"`
	Role     string  `json:"role"`
	Active   bool    `json:"active"`
	PlanID   *int64  `json:"planId,omitempty"`
	Address  Address `json:"address"`
}

// ProfileUpdate carries editable profile fields.
type ProfileUpdate struct {
	FullName string  `json:"fullName"`
	Phone    string  `json:"phone"`
	Address  Address `json:"address"`
}

// PasswordChange is the change-password form.
type PasswordChange struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}
