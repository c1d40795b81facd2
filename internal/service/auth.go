package service

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"shoply_back_end/internal/apperr"
	"shoply_back_end/internal/models"
	"shoply_back_end/internal/repository"
	"shoply_back_end/internal/utils"
)

// AuthService : inscription, connexion et vérification de token.
type AuthService struct {
	users    repository.UserRepository
	secret   string
	tokenTTL time.Duration
}

func NewAuthService(users repository.UserRepository, secret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{users: users, secret: secret, tokenTTL: tokenTTL}
}

// Session : données renvoyées à la connexion. Le token est celui émis à
// l'inscription, jamais ré-émis.
type Session struct {
	ID    primitive.ObjectID `json:"id"`
	Name  string             `json:"name"`
	Token string             `json:"token"`
	Email string             `json:"email"`
	Role  string             `json:"role"`
}

func (s *AuthService) Register(ctx context.Context, name, email, password string) error {
	if name == "" || email == "" || password == "" {
		return apperr.Validation("Field is missing")
	}

	_, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return apperr.Conflict("User already has an account")
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	token, err := utils.GenerateToken(email, s.secret, s.tokenTTL)
	if err != nil {
		return err
	}

	return s.users.Insert(ctx, &models.User{
		Name:     name,
		Email:    email,
		Password: hashed,
		Token:    token,
		Role:     "user",
	})
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*Session, error) {
	if email == "" || password == "" {
		return nil, apperr.Validation("Field is missing")
	}

	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.NotFound("User not registered")
	}
	if err != nil {
		return nil, err
	}

	if !utils.CheckPassword(password, user.Password) {
		return nil, apperr.Auth("Password is wrong")
	}

	return &Session{
		ID:    user.ID,
		Name:  user.Name,
		Token: user.Token,
		Email: user.Email,
		Role:  user.Role,
	}, nil
}

// VerifyToken décode le token et renvoie l'email embarqué. L'identité n'est
// jamais mise en cache : les consommateurs relisent l'utilisateur en base à
// chaque appel.
func (s *AuthService) VerifyToken(token string) (string, error) {
	if token == "" {
		return "", apperr.Auth("Token is missing")
	}
	email, err := utils.ParseToken(token, s.secret)
	if err != nil {
		return "", apperr.Auth("Invalid or expired token")
	}
	return email, nil
}
