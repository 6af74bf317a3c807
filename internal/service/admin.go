package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/mdshopp/storefront/pkg/hash"
	"github.com/mdshopp/storefront/pkg/kvstore"
	"github.com/mdshopp/storefront/pkg/logging"
	"github.com/mdshopp/storefront/pkg/tokens"
)

// AdminSessionKey holds "true" while the admin is logged in.
const AdminSessionKey = "admin_logged_in"

// AdminService guards the back office with a single configured credential
// pair. The session flag lives in storage so it survives a restart.
type AdminService struct {
	Store        kvstore.Store
	Username     string
	PasswordHash string
	JWTSecret    []byte
	SessionTTL   time.Duration
}

type LoginResult struct {
	AccessToken string
	AccessExp   time.Time
}

func NewAdminService(store kvstore.Store, username, password string, secret []byte, ttl time.Duration) (*AdminService, error) {
	pwHash, err := hash.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}
	return &AdminService{
		Store:        store,
		Username:     username,
		PasswordHash: pwHash,
		JWTSecret:    secret,
		SessionTTL:   ttl,
	}, nil
}

func (s *AdminService) CreateAccessToken(subject string, exp time.Time) (string, error) {
	return tokens.NewAccessToken(tokens.RoleAdmin, subject, exp, s.JWTSecret)
}

// Login opens the admin session when both values match exactly.
func (s *AdminService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	l := logging.FromContext(ctx).With("svc", "admin.login")

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.Username)) == 1
	passOK := hash.CheckPassword(s.PasswordHash, password)
	if !userOK || !passOK {
		l.Warn("login_failed", "status", 401)
		return nil, ErrInvalidCredentials
	}

	if err := s.Store.Set(ctx, AdminSessionKey, "true"); err != nil {
		l.Error("login_failed", "status", 500, "reason", "cannot persist session flag", "error", err)
		return nil, err
	}

	exp := time.Now().Add(s.SessionTTL)
	token, err := s.CreateAccessToken(username, exp)
	if err != nil {
		l.Error("login_failed", "status", 500, "reason", "cannot sign access token", "error", err)
		return nil, err
	}

	l.Info("login_success")
	return &LoginResult{AccessToken: token, AccessExp: exp}, nil
}

func (s *AdminService) Logout(ctx context.Context) error {
	return s.Store.Delete(ctx, AdminSessionKey)
}

func (s *AdminService) LoggedIn(ctx context.Context) (bool, error) {
	v, found, err := s.Store.Get(ctx, AdminSessionKey)
	if err != nil {
		return false, err
	}
	return found && v == "true", nil
}
