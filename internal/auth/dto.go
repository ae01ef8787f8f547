package auth

import "github.com/Joaolrm/racha-do-mes-fe/internal/session"

// LoginRequest represents the request body for logging in
type LoginRequest struct {
	EmailOrPhone string `json:"emailOrPhone"`
	Password     string `json:"password"`
}

// RegisterRequest represents the request body for creating an account.
// Email and phone are each optional, but at least one must be present.
type RegisterRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Password    string `json:"password"`
}

// Response is the backend's answer to both login and register
type Response struct {
	AccessToken string       `json:"access_token"`
	User        session.User `json:"user"`
}
