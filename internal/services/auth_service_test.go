package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ansdud923/fairytale-app/internal/config"
	"github.com/ansdud923/fairytale-app/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestProviderColumn(t *testing.T) {
	tests := []struct {
		provider string
		column   string
		wantErr  bool
	}{
		{"google", "google_id", false},
		{"kakao", "kakao_id", false},
		{"apple", "apple_id", false},
		{"Google", "google_id", false},
		{"facebook", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		column, err := providerColumn(tt.provider)
		if tt.wantErr {
			assert.Error(t, err, tt.provider)
			continue
		}
		assert.NoError(t, err)
		assert.Equal(t, tt.column, column)
	}
}

func TestHashToken(t *testing.T) {
	a := hashToken("some-refresh-token")
	b := hashToken("some-refresh-token")
	c := hashToken("another-token")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64) // hex-encoded sha256
}

func TestLoginUnknownUser(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAuthService(db, &config.Config{JWTSecret: "test-secret"})

	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := svc.Login(&dto.LoginRequest{Username: "ghost", Password: "whatever"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginWrongPassword(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAuthService(db, &config.Config{JWTSecret: "test-secret"})

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	assert.NoError(t, err)

	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "hashed_password"}).
			AddRow(uuid.New().String(), "alice", string(hash)))

	_, err = svc.Login(&dto.LoginRequest{Username: "alice", Password: "battery-staple"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSocialLoginUnknownProvider(t *testing.T) {
	db, _ := newMockDB(t)
	svc := NewAuthService(db, &config.Config{JWTSecret: "test-secret"})

	_, err := svc.SocialLogin(&dto.SocialLoginRequest{Provider: "myspace", ProviderID: "123"})
	assert.Error(t, err)
}

func TestRefreshUnknownToken(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAuthService(db, &config.Config{JWTSecret: "test-secret"})

	mock.ExpectQuery(`SELECT \* FROM "refresh_tokens"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: "bogus"})
	assert.ErrorIs(t, err, ErrInvalidToken)
}
