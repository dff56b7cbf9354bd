package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/halouxiaoyu/survey_backend/config"
	"github.com/halouxiaoyu/survey_backend/internal/repo"
	entadmin "github.com/halouxiaoyu/survey_backend/internal/repo/admin"
	entsess "github.com/halouxiaoyu/survey_backend/internal/repo/adminsession"
	pasetotoken "github.com/halouxiaoyu/survey_backend/pkg/paseto"
	"github.com/halouxiaoyu/survey_backend/pkg/util/password"
)

// redisKeySession returns the Redis key for a session.
func redisKeySession(sessionID string) string { return "session:" + sessionID }

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type LoginRequest struct {
	Username  string
	Password  string
	UserAgent string
	IPAddress string
}

type ChangePasswordRequest struct {
	OldPassword string
	NewPassword string
}

type AuthTokens struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64 // seconds until access token expires
	AdminID      uuid.UUID
	Role         string
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Login(ctx context.Context, req LoginRequest) (*AuthTokens, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*AuthTokens, error)
	Logout(ctx context.Context, sessionID uuid.UUID) error
	ChangePassword(ctx context.Context, adminID uuid.UUID, req ChangePasswordRequest) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type authService struct {
	db     *repo.Client
	rdb    *redis.Client
	paseto *pasetotoken.Manager
	cfg    *config.Config
}

func New(
	db *repo.Client,
	rdb *redis.Client,
	paseto *pasetotoken.Manager,
	cfg *config.Config,
) Service {
	return &authService{
		db:     db,
		rdb:    rdb,
		paseto: paseto,
		cfg:    cfg,
	}
}

// ---------------------------------------------------------------------------
// Login
// ---------------------------------------------------------------------------

func (s *authService) Login(ctx context.Context, req LoginRequest) (*AuthTokens, error) {
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return nil, ErrInvalidCredentials
	}

	admin, err := s.db.Admin.Query().
		Where(entadmin.Username(req.Username), entadmin.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find admin: %w", err)
	}

	if !admin.IsActive {
		return nil, ErrAccountDisabled
	}

	if err := password.Verify(admin.PasswordHash, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	// Transparent hash upgrade when argon2 parameters changed since the
	// hash was created.
	if password.NeedsRehash(admin.PasswordHash) {
		if newHash, err := password.Hash(req.Password); err == nil {
			if _, err := s.db.Admin.UpdateOne(admin).SetPasswordHash(newHash).Save(ctx); err != nil {
				slog.Warn("password rehash not persisted", "admin_id", admin.ID, "error", err)
			}
		}
	}

	if _, err := s.db.Admin.UpdateOne(admin).SetLastLoginAt(time.Now()).Save(ctx); err != nil {
		slog.Warn("last login not persisted", "admin_id", admin.ID, "error", err)
	}

	return s.createSession(ctx, admin, req.UserAgent, req.IPAddress)
}

// ---------------------------------------------------------------------------
// RefreshTokens
// ---------------------------------------------------------------------------

func (s *authService) RefreshTokens(ctx context.Context, refreshToken string) (*AuthTokens, error) {
	claims, err := s.paseto.Verify(refreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.Type != pasetotoken.TokenTypeRefresh || claims.SessionID == nil {
		return nil, ErrInvalidToken
	}

	sessionKey := redisKeySession(claims.SessionID.String())

	if err := s.rdb.Get(ctx, sessionKey).Err(); err == redis.Nil {
		return nil, ErrSessionNotFound
	} else if err != nil {
		return nil, fmt.Errorf("redis get session: %w", err)
	}

	// Extend the session sliding window.
	refreshTTL := time.Duration(s.cfg.Authentication.Paseto.RefreshTTLDays) * 24 * time.Hour
	s.rdb.Expire(ctx, sessionKey, refreshTTL)

	s.db.AdminSession.Update().
		Where(entsess.SessionID(claims.SessionID.String())).
		SetLastUsedAt(time.Now()).
		Save(ctx)

	accessTTL := time.Duration(s.cfg.Authentication.Paseto.AccessTTLMinutes) * time.Minute
	accessToken, err := s.paseto.IssueAccess(claims.AdminID, claims.Role, claims.SessionID)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}

	return &AuthTokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken, // unchanged until logout
		ExpiresIn:    int64(accessTTL.Seconds()),
		AdminID:      claims.AdminID,
		Role:         claims.Role,
	}, nil
}

// ---------------------------------------------------------------------------
// Logout
// ---------------------------------------------------------------------------

func (s *authService) Logout(ctx context.Context, sessionID uuid.UUID) error {
	deleted, err := s.rdb.Del(ctx, redisKeySession(sessionID.String())).Result()
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if deleted == 0 {
		slog.Debug("logout: session not found in Redis (already expired)", "session_id", sessionID)
	}

	// Mark revoked in DB (best-effort; not critical path)
	s.db.AdminSession.Update().
		Where(entsess.SessionID(sessionID.String()), entsess.RevokedAtIsNil()).
		SetRevokedAt(time.Now()).
		Save(ctx)

	return nil
}

// ---------------------------------------------------------------------------
// ChangePassword
// ---------------------------------------------------------------------------

func (s *authService) ChangePassword(ctx context.Context, adminID uuid.UUID, req ChangePasswordRequest) error {
	if len(req.NewPassword) < 8 {
		return ErrPasswordTooShort
	}

	admin, err := s.db.Admin.Get(ctx, adminID)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrAdminNotFound
		}
		return fmt.Errorf("get admin: %w", err)
	}

	if err := password.Verify(admin.PasswordHash, req.OldPassword); err != nil {
		return ErrWrongPassword
	}

	newHash, err := password.Hash(req.NewPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	err = s.db.Admin.UpdateOne(admin).
		SetPasswordHash(newHash).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (s *authService) createSession(ctx context.Context, admin *repo.Admin, userAgent, ipAddress string) (*AuthTokens, error) {
	sessionID := uuid.Must(uuid.NewV7())
	role := string(admin.Role)

	refreshTTL := time.Duration(s.cfg.Authentication.Paseto.RefreshTTLDays) * 24 * time.Hour
	accessTTL := time.Duration(s.cfg.Authentication.Paseto.AccessTTLMinutes) * time.Minute

	sessionKey := redisKeySession(sessionID.String())
	if err := s.rdb.Set(ctx, sessionKey, admin.ID.String(), refreshTTL).Err(); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	access, err := s.paseto.IssueAccess(admin.ID, role, &sessionID)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}
	refresh, err := s.paseto.IssueRefresh(admin.ID, role, &sessionID)
	if err != nil {
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}

	// Persist session record to DB (audit, best-effort)
	c := s.db.AdminSession.Create().
		SetAdminID(admin.ID).
		SetSessionID(sessionID.String()).
		SetRefreshTokenHash(hashToken(refresh)).
		SetExpiresAt(time.Now().Add(refreshTTL))
	if userAgent != "" {
		c = c.SetUserAgent(userAgent)
	}
	if ipAddress != "" {
		c = c.SetIPAddress(ipAddress)
	}
	c.Save(ctx)

	return &AuthTokens{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(accessTTL.Seconds()),
		AdminID:      admin.ID,
		Role:         role,
	}, nil
}

// hashToken stores only a SHA-256 digest of refresh tokens, never the
// token itself.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
