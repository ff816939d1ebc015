package model

type Auth struct {
	TokenID   string `json:"token_id,omitempty" validate:"required"`
	ProfileID int64  `json:"profile_id,omitempty"`
	OTP       string `json:"otp,omitempty"`
	Status    string `json:"status,omitempty"`
}
