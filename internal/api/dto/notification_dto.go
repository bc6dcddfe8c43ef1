package dto

// SendNotificationRequest payload for the stub send endpoint.
type SendNotificationRequest struct {
	UserID  int64  `json:"user_id"`
	Message string `json:"message"`
}
