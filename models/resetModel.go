package models

import "time"

// ResetChallenge is a pending password reset for one email address.
// Only the digest of the one-time code is kept.
type ResetChallenge struct {
	Email      string    `json:"email"`
	CodeDigest string    `json:"codeDigest"`
	ExpiresAt  time.Time `json:"expiresAt"`
	Attempts   int       `json:"attempts"`
}

func (c ResetChallenge) Expired(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}

type ForgotPasswordData struct {
	Email string `json:"email" binding:"required"`
}

type ResetPasswordData struct {
	Email    string `json:"email" binding:"required"`
	Code     string `json:"code" binding:"required"`
	Password string `json:"password" binding:"required"`
}
