package dto

// LoginUserDTO is the upsert-on-login body. Email is the logical key; name
// and photo just refresh the stored profile.
type LoginUserDTO struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name"`
	PhotoURL string `json:"photoURL"`
}

type UpdateRoleDTO struct {
	Role string `json:"role" binding:"required"`
}
