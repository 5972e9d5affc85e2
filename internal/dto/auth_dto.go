package dto

import "github.com/google/uuid"

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=100"`
	Nickname string `json:"nickname" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SocialLoginRequest carries a provider ID already verified by the mobile
// client's SDK flow. Provider is one of google, kakao, apple.
type SocialLoginRequest struct {
	Provider   string `json:"provider" validate:"required,oneof=google kakao apple"`
	ProviderID string `json:"provider_id" validate:"required"`
	Nickname   string `json:"nickname" validate:"omitempty,max=100"`
	Email      string `json:"email" validate:"omitempty,email"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type AuthResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Nickname string    `json:"nickname"`
	Email    *string   `json:"email"`
}
