package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/Gicotto/MyTaskApp/internal/repository"
	"github.com/Gicotto/MyTaskApp/models"
)

var (
	// ErrInvalidCredentials covers both unknown usernames and wrong
	// passwords so the login form does not reveal which one failed.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrDuplicateUsername is returned when registering a username that
	// is already taken.
	ErrDuplicateUsername = errors.New("username already exists")

	// ErrInvalidSession is returned for tokens that are malformed,
	// expired, tampered with or revoked.
	ErrInvalidSession = errors.New("invalid or expired session")
)

// Identity is the auth context resolved once per request from the
// session token: who the user is and which permissions the session
// carries. Handlers receive it explicitly instead of reading any
// ambient state.
type Identity struct {
	UserID      uint
	Username    string
	Permissions []string
}

// HasPermission reports whether the session carries the named need.
func (id *Identity) HasPermission(name string) bool {
	for _, p := range id.Permissions {
		if p == name {
			return true
		}
	}
	return false
}

// sessionClaims is the JWT payload stored in the auth_token cookie.
// Permissions are captured at login time: the session carries the role
// set the user had when it was established.
type sessionClaims struct {
	UserID      uint     `json:"user_id"`
	Username    string   `json:"username"`
	Permissions []string `json:"perms"`
	jwt.RegisteredClaims
}

// Service implements login, registration and session token handling.
type Service struct {
	users  repository.UserRepository
	roles  repository.RoleRepository
	secret []byte
	ttl    time.Duration
	rdb    *redis.Client // optional, enables server-side revocation on logout
}

func NewService(users repository.UserRepository, roles repository.RoleRepository, secret []byte, ttl time.Duration, rdb *redis.Client) *Service {
	return &Service{users: users, roles: roles, secret: secret, ttl: ttl, rdb: rdb}
}

// TTL returns the configured session lifetime.
func (s *Service) TTL() time.Duration { return s.ttl }

// Login checks the credentials against the stored bcrypt hash and, on
// success, returns a signed session token.
func (s *Service) Login(username, password string) (string, error) {
	user, err := s.users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if !user.CheckPassword(password) {
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	claims := sessionClaims{
		UserID:      user.ID,
		Username:    user.Username,
		Permissions: user.PermissionNames(),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Register creates a new user with the given role names attached.
// Role names that do not resolve to a seeded role are dropped silently.
func (s *Service) Register(username, password string, roleNames []string) (*models.User, error) {
	if _, err := s.users.FindByUsername(username); err == nil {
		return nil, ErrDuplicateUsername
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	user := models.User{Username: username}
	if err := user.SetPassword(password); err != nil {
		return nil, err
	}

	roles, err := s.roles.FindByNames(roleNames)
	if err != nil {
		return nil, err
	}
	user.Roles = roles

	if err := s.users.Create(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Authenticate verifies a session token and returns the Identity it
// carries. Revoked sessions are rejected when Redis is configured.
func (s *Service) Authenticate(ctx context.Context, tokenStr string) (*Identity, error) {
	claims, err := s.parse(tokenStr)
	if err != nil {
		return nil, err
	}

	if s.rdb != nil {
		revoked, err := s.rdb.Exists(ctx, revocationKey(claims.ID)).Result()
		if err != nil {
			slog.Error("Redis EXISTS command failed", "error", err)
		} else if revoked > 0 {
			return nil, ErrInvalidSession
		}
	}

	return &Identity{
		UserID:      claims.UserID,
		Username:    claims.Username,
		Permissions: claims.Permissions,
	}, nil
}

// Logout revokes the token's session id until the token would have
// expired anyway. Idempotent: bad, expired or already revoked tokens
// are ignored.
func (s *Service) Logout(ctx context.Context, tokenStr string) {
	if s.rdb == nil || tokenStr == "" {
		return
	}
	claims, err := s.parse(tokenStr)
	if err != nil {
		return
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return
	}
	if err := s.rdb.Set(ctx, revocationKey(claims.ID), "1", ttl).Err(); err != nil {
		slog.Error("Failed to revoke session", "error", err, "jti", claims.ID)
	}
}

func (s *Service) parse(tokenStr string) (*sessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &sessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidSession
	}
	claims, ok := token.Claims.(*sessionClaims)
	if !ok {
		return nil, ErrInvalidSession
	}
	return claims, nil
}

func revocationKey(jti string) string {
	return fmt.Sprintf("session:%s:revoked", jti)
}
