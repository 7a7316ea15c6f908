package authservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/hexenjaeger/clanledger/pkg/auth"
	"github.com/hexenjaeger/clanledger/pkg/clients"
	"go.uber.org/zap"
)

const sessionTTL = 24 * time.Hour

type Service struct {
	verifyURL  string
	client     clients.HTTPClientI
	jwtService auth.JWTServiceInterface
}

func New(verifyURL string, client clients.HTTPClientI, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		verifyURL:  verifyURL,
		client:     client,
		jwtService: jwtService,
	}
}

var (
	ErrAuthDisabled     = errors.New("auth gate is disabled")
	ErrNotAuthenticated = errors.New("token not authenticated")
	ErrAuthUnavailable  = errors.New("verification service unavailable")
)

type verifyResponse struct {
	Authenticated bool   `json:"authenticated"`
	User          string `json:"user"`
	FullAccess    bool   `json:"fullAccess"`
}

type Session struct {
	Token      string
	User       string
	FullAccess bool
}

// Exchange verifies an externally issued token against the configured
// verification endpoint and mints a local session token. One attempt,
// no retry: a connectivity failure is surfaced and the caller retriggers.
func (s *Service) Exchange(ctx context.Context, token string) (*Session, error) {
	if s.verifyURL == "" {
		return nil, ErrAuthDisabled
	}

	headers := http.Header{}
	headers.Set("Authorization", "Bearer "+token)

	statusCode, respBody, _, err := s.client.Get(s.verifyURL, headers)
	if err != nil {
		zap.L().Error("verification call failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrAuthUnavailable, err)
	}
	if statusCode != http.StatusOK {
		zap.L().Info("verification rejected", zap.Int("status", statusCode))
		return nil, ErrNotAuthenticated
	}

	var verified verifyResponse
	if err := json.Unmarshal(respBody, &verified); err != nil {
		zap.L().Error("can't parse verification response", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrAuthUnavailable, err)
	}
	if !verified.Authenticated || verified.User == "" {
		return nil, ErrNotAuthenticated
	}

	sessionToken, err := s.jwtService.GenerateJWT(verified.User, verified.FullAccess, time.Now().Add(sessionTTL))
	if err != nil {
		zap.L().Error("can't generate session token", zap.Error(err))
		return nil, err
	}

	zap.L().Info("session issued", zap.String("user", verified.User), zap.Bool("full_access", verified.FullAccess))
	return &Session{
		Token:      sessionToken,
		User:       verified.User,
		FullAccess: verified.FullAccess,
	}, nil
}
