package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/prathyu116/NGO-RESOURCE-CLIENT/config"
	"github.com/prathyu116/NGO-RESOURCE-CLIENT/datastore"
	"github.com/prathyu116/NGO-RESOURCE-CLIENT/models"
	"github.com/prathyu116/NGO-RESOURCE-CLIENT/session"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type AuthService struct {
	client   *datastore.Client
	sessions *session.Store
	logger   *logrus.Logger
}

func NewAuthService(client *datastore.Client, sessions *session.Store, logger *logrus.Logger) *AuthService {
	return &AuthService{client: client, sessions: sessions, logger: logger}
}

// Login checks the credentials against the remote users collection. The
// upstream contract is a plaintext match filter; only the minimal profile
// is kept afterwards, never the password.
func (s *AuthService) Login(ctx context.Context, email, password string) (models.User, string, error) {
	query := url.Values{
		"email":    {email},
		"password": {password},
	}

	var matches []struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := s.client.Get(ctx, "/users", query, &matches); err != nil {
		return models.User{}, "", fmt.Errorf("checking credentials: %w", err)
	}
	if len(matches) == 0 {
		return models.User{}, "", ErrInvalidCredentials
	}

	user := models.User{
		ID:    matches[0].ID,
		Email: matches[0].Email,
		Name:  matches[0].Name,
	}

	if err := s.sessions.SaveUser(ctx, user); err != nil {
		return models.User{}, "", err
	}

	token, err := s.issueToken(user)
	if err != nil {
		return models.User{}, "", err
	}

	s.logger.WithFields(logrus.Fields{"user_id": user.ID, "email": user.Email}).Info("user logged in")
	return user, token, nil
}

// Logout clears the persisted profile.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.sessions.Clear(ctx)
}

// CurrentUser returns the persisted profile, or nil when nobody is logged
// in.
func (s *AuthService) CurrentUser(ctx context.Context) (*models.User, error) {
	return s.sessions.CurrentUser(ctx)
}

func (s *AuthService) issueToken(user models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":    user.ID,
		"email":      user.Email,
		"name":       user.Name,
		"session_id": uuid.NewString(),
		"exp":        time.Now().Add(time.Duration(config.JWTExpiration) * time.Second).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(config.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}
