package services

import (
	"context"

	"github.com/pkg/errors"
	"github.com/tuyendunghub/job-board/internal/entities"
	"github.com/tuyendunghub/job-board/internal/repositories"
	"github.com/tuyendunghub/job-board/pkg/jwt"
)

type adminRepository interface {
	GetByUsername(ctx context.Context, username string) (*entities.Admin, error)
}

type passwordChecker interface {
	Check(password, hash string) bool
}

type AuthService struct {
	admins adminRepository
	tokens *jwt.Manager
	hasher passwordChecker
}

func NewAuthService(admins adminRepository, tokens *jwt.Manager, hasher passwordChecker) *AuthService {
	return &AuthService{admins: admins, tokens: tokens, hasher: hasher}
}

// Login exchanges valid credentials for a signed bearer token.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *entities.Admin, error) {

	admin, err := s.admins.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", nil, ErrAccountNotFound
		}
		return "", nil, err
	}

	if !s.hasher.Check(password, admin.Password) {
		return "", nil, ErrWrongPassword
	}

	token, err := s.tokens.Generate(admin.ID, admin.Username)
	if err != nil {
		return "", nil, errors.Wrap(err, "failed to sign token")
	}

	return token, admin, nil
}
