package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/admin-dashboard/internal/auth"
	"github.com/spec-kit/admin-dashboard/internal/blobstore"
	"github.com/spec-kit/admin-dashboard/internal/config"
	"github.com/spec-kit/admin-dashboard/internal/domain"
	"github.com/spec-kit/admin-dashboard/internal/observability"
	apperrors "github.com/spec-kit/admin-dashboard/pkg/util/errorutil"
)

// SessionKeySuffix names the blob store entry holding the session record.
const SessionKeySuffix = "session"

// AdminRole is the role granted to the fixed dashboard credential.
const AdminRole = "Admin"

// AuthService validates the admin credential and manages the persisted
// session record.
type AuthService struct {
	blobs      blobstore.Store
	sessionKey string
	adminUser  string
	adminHash  string
	tokenMgr   *auth.TokenManager
	logger     *zap.Logger
}

// NewAuthService builds the service. When no precomputed hash is configured
// the plaintext credential is hashed once at startup so login always runs a
// bcrypt comparison.
func NewAuthService(cfg config.Config, blobs blobstore.Store, logger *zap.Logger) (*AuthService, error) {
	hash := cfg.Auth.AdminPasswordHash
	if hash == "" {
		var err error
		hash, err = auth.HashPassword(cfg.Auth.AdminPassword, cfg.Auth.BcryptCost)
		if err != nil {
			return nil, err
		}
	}
	return &AuthService{
		blobs:      blobs,
		sessionKey: cfg.Store.KeyPrefix + SessionKeySuffix,
		adminUser:  cfg.Auth.AdminUsername,
		adminHash:  hash,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		logger:     logger,
	}, nil
}

// TokenManager exposes the manager for the HTTP auth middleware.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

// Login validates the credential pair. On success the session record is
// persisted and an access token issued; on failure any prior session is
// left untouched.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.Session, string, time.Time, error) {
	ctx, span := observability.StartSpan(ctx, "auth.login")
	defer span.End()

	if username != s.adminUser || auth.ComparePassword(s.adminHash, password) != nil {
		observability.LoginAttemptsTotal.WithLabelValues("failure").Inc()
		return nil, "", time.Time{}, apperrors.NewInvalidCredentials()
	}

	session := &domain.Session{Username: username, Role: AdminRole}
	blob, err := json.Marshal(session)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}
	if err := s.blobs.Set(ctx, s.sessionKey, blob); err != nil {
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}

	token, expiresAt, err := s.tokenMgr.GenerateToken(session.Username, session.Role)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}

	observability.LoginAttemptsTotal.WithLabelValues("success").Inc()
	s.logger.Info("admin logged in", zap.String("username", username))
	return session, token, expiresAt, nil
}

// Logout removes the stored session. Calling it with no session present is
// a no-op.
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.blobs.Remove(ctx, s.sessionKey); err != nil {
		return apperrors.NewInternalError(err)
	}
	return nil
}

// Restore reads the persisted session at startup. A malformed entry is
// cleared and reported as absent rather than surfaced as an error.
func (s *AuthService) Restore(ctx context.Context) (*domain.Session, error) {
	blob, err := s.blobs.Get(ctx, s.sessionKey)
	if errors.Is(err, blobstore.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	var session domain.Session
	if err := json.Unmarshal(blob, &session); err != nil || session.Username == "" {
		s.logger.Warn("malformed session record, clearing", zap.Error(err))
		_ = s.blobs.Remove(ctx, s.sessionKey)
		return nil, nil
	}
	return &session, nil
}
