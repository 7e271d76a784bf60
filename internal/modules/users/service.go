package users

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

// Store is what the service needs from persistence; *Repo satisfies it.
type Store interface {
	FindByEmail(ctx context.Context, email string) (User, error)
	FindByID(ctx context.Context, id string) (User, error)
	Insert(ctx context.Context, u User) error
	UpdateProfile(ctx context.Context, id string, patch bson.M) error
}

type Service struct {
	repo   Store
	tokens *Tokens
}

func NewService(repo Store, tokens *Tokens) *Service {
	return &Service{repo: repo, tokens: tokens}
}

type AuthResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (AuthResult, error) {
	email := strings.ToLower(in.Email)

	_, err := s.repo.FindByEmail(ctx, email)
	if err == nil {
		return AuthResult{}, ErrEmailTaken
	}
	if !errors.Is(err, ErrUserNotFound) {
		return AuthResult{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResult{}, err
	}

	u := User{
		ID:        uuid.NewString(),
		Email:     email,
		Password:  string(hash),
		Name:      in.Name,
		Phone:     in.Phone,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, u); err != nil {
		return AuthResult{}, err
	}

	token, err := s.tokens.Issue(u.ID, u.Email)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{Token: token, User: u}, nil
}

func (s *Service) Login(ctx context.Context, in LoginInput) (AuthResult, error) {
	u, err := s.repo.FindByEmail(ctx, strings.ToLower(in.Email))
	if errors.Is(err, ErrUserNotFound) {
		return AuthResult{}, ErrInvalidCredentials
	}
	if err != nil {
		return AuthResult{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(in.Password)) != nil {
		return AuthResult{}, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(u.ID, u.Email)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{Token: token, User: u}, nil
}

func (s *Service) ByID(ctx context.Context, id string) (User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) UpdateProfile(ctx context.Context, id string, in ProfileUpdate) (User, error) {
	patch := bson.M{}
	if in.Name != "" {
		patch["name"] = in.Name
	}
	if in.Phone != "" {
		patch["phone"] = in.Phone
	}
	if in.Address != "" {
		patch["address"] = in.Address
	}
	if err := s.repo.UpdateProfile(ctx, id, patch); err != nil {
		return User{}, err
	}
	return s.repo.FindByID(ctx, id)
}
