package dto

// UpdateProfileRequest payload for profile updates. Email is the only
// mutable field.
type UpdateProfileRequest struct {
	Email string `json:"email"`
}
