package auth

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

type UserRepository interface {
	InsertUser(ctx context.Context, user User) (User, error)
	GetUserByID(ctx context.Context, id string) (User, error)
	GetUserByEmail(ctx context.Context, email string) (User, error)
}

type Service struct {
	repo   UserRepository
	tokens *TokenIssuer
}

func NewService(repo UserRepository, tokens *TokenIssuer) *Service {
	return &Service{repo: repo, tokens: tokens}
}

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	UserType string `json:"userType"`
}

// Session is what signup and login hand back to the client: a bearer token
// plus the public view of the account.
type Session struct {
	Token string    `json:"token"`
	User  Principal `json:"user"`
}

func (s *Service) Signup(ctx context.Context, req SignupRequest) (Session, error) {
	for _, field := range []string{req.Name, req.Email, req.Password, req.Phone} {
		if len(strings.TrimSpace(field)) == 0 {
			return Session{}, ErrMissingFields
		}
	}

	role, ok := ParseRole(req.UserType)

	if !ok {
		return Session{}, ErrMissingFields
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)

	if err != nil {
		return Session{}, err
	}

	user, err := s.repo.InsertUser(ctx, User{
		Name:         req.Name,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		Phone:        req.Phone,
		Role:         role,
	})

	if err != nil {
		return Session{}, err
	}

	return s.newSession(user)
}

func (s *Service) Login(ctx context.Context, email, password string) (Session, error) {
	if len(strings.TrimSpace(email)) == 0 || len(password) == 0 {
		return Session{}, ErrMissingFields
	}

	user, err := s.repo.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))

	if errors.Is(err, ErrUserNotFound) {
		return Session{}, ErrInvalidCredentials
	}

	if err != nil {
		return Session{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return Session{}, ErrInvalidCredentials
	}

	return s.newSession(user)
}

// Resolve turns a bearer token into the authenticated principal. Fails with
// ErrInvalidToken when the token does not verify and ErrUserNotFound when
// the account behind a valid token no longer exists.
func (s *Service) Resolve(ctx context.Context, token string) (Principal, error) {
	userID, err := s.tokens.Verify(token)

	if err != nil {
		return Principal{}, err
	}

	user, err := s.repo.GetUserByID(ctx, userID)

	if err != nil {
		return Principal{}, err
	}

	return user.Principal(), nil
}

func (s *Service) newSession(user User) (Session, error) {
	token, err := s.tokens.Issue(user.ID)

	if err != nil {
		return Session{}, err
	}

	return Session{Token: token, User: user.Principal()}, nil
}
