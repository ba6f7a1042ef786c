package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/cedbrasil/enrolld/internal/core/ports"
	"github.com/cedbrasil/enrolld/pkg/apperror"
)

// OperatorAuthService authenticates the single configured operator account
// used by the inspection and recovery API.
type OperatorAuthService struct {
	username     string
	passwordHash string // argon2id encoded
	hashSvc      ports.HashService
	tokenSvc     ports.TokenService
}

// NewOperatorAuthService creates the service.
func NewOperatorAuthService(username, passwordHash string, hashSvc ports.HashService, tokenSvc ports.TokenService) *OperatorAuthService {
	return &OperatorAuthService{
		username:     username,
		passwordHash: passwordHash,
		hashSvc:      hashSvc,
		tokenSvc:     tokenSvc,
	}
}

// Login validates credentials and returns a JWT token.
func (s *OperatorAuthService) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	if subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) != 1 {
		// Burn a verification anyway to keep timing uniform.
		_, _ = s.hashSvc.Verify(password, s.passwordHash)
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	valid, err := s.hashSvc.Verify(password, s.passwordHash)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("verify password: %w", err))
	}
	if !valid {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	token, expiry, err := s.tokenSvc.Generate(username)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("generate token: %w", err))
	}

	return token, expiry, nil
}
