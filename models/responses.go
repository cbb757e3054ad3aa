package models

import "time"

// ErrorResponse is the body returned for every failed command.
// UserMessage is always safe to show to the end user.
type ErrorResponse struct {
	UserMessage string `json:"UserMessage"`
}

// PasswordResetMessage is the payload a delivery plugin sends to the
// principal so they can redeem the token.
type PasswordResetMessage struct {
	UserName             string            `json:"UserName"`
	Token                string            `json:"Token"`
	AdditionalClientInfo map[string]string `json:"AdditionalClientInfo,omitempty"`
	IssuedAt             time.Time         `json:"IssuedAt"`
}
