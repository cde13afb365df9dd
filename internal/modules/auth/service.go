package auth

import (
	"context"
	"errors"
	"strings"

	"paintpro/internal/domain"
	"paintpro/internal/pkg/validator"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Service struct {
	users  UserRepository
	tokens TokenIssuer
}

func NewService(users UserRepository, tokens TokenIssuer) *Service {
	return &Service{users: users, tokens: tokens}
}

// RegisterCustomer creates a customer principal. Vendors register
// through the vendor registry, admins are seeded.
func (s *Service) RegisterCustomer(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	if errs := validator.Validate(req); errs != nil {
		return nil, ErrValidation
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleCustomer,
		Name:         req.Name,
		Phone:        req.Phone,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Login authenticates any principal (customer, vendor, admin) and
// issues a role-tagged token. The role claim is the only role source
// downstream; nothing is inferred from which identifiers a caller
// happens to hold.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	if errs := validator.Validate(req); errs != nil {
		return nil, ErrValidation
	}

	u, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(u.ID, string(u.Role))
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		Token:  token,
		UserID: u.ID,
		Role:   string(u.Role),
		Name:   u.Name,
	}, nil
}
