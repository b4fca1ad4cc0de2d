package dto

import (
	"time"

	"cineverse/internal/microservices/http-api/models"
)

// Data Transfer Objects for authentication requests and responses

// SignupRequest: payload for user registration
// field presence is validated by the service so the message stays "All fields are required"
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest: payload for user login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse: public user fields, never the password hash
type UserResponse struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// SignupResponse: response payload after successful registration
type SignupResponse struct {
	Message string       `json:"message"`
	ID      string       `json:"id"`
	Name    string       `json:"name"`
	Email   string       `json:"email"`
	User    UserResponse `json:"user"`
}

// LoginResponse: response payload after successful authentication
type LoginResponse struct {
	Message   string       `json:"message"`
	Token     string       `json:"token"`
	ExpiresIn int64        `json:"expiresIn"` // seconds
	User      UserResponse `json:"user"`
}

// VerifyResponse: result of checking a session token
type VerifyResponse struct {
	Valid bool          `json:"valid"`
	User  *ClaimsPayload `json:"user,omitempty"`
}

// ClaimsPayload mirrors the identity fields embedded in the token
type ClaimsPayload struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

// FromUserModel keeps only the public fields
func FromUserModel(user *models.User) UserResponse {
	return UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}
}

// FromUserModelWithCreated also exposes the signup time (profile view)
func FromUserModelWithCreated(user *models.User) UserResponse {
	resp := FromUserModel(user)
	created := user.CreatedAt
	resp.CreatedAt = &created
	return resp
}
