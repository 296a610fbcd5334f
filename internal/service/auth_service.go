package service

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/portfolio/internal/db"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ErrInvalidCredentials is returned for an unknown user or a wrong password.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService checks admin credentials against the bcrypt hashes in users.
type AuthService struct {
	db *gorm.DB
}

func NewAuthService(gdb *gorm.DB) *AuthService {
	return &AuthService{db: gdb}
}

// Authenticate returns the user matching username and password.
func (s *AuthService) Authenticate(username, password string) (*db.User, error) {
	var user db.User
	if err := s.db.Where("username = ?", strings.TrimSpace(username)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, storeError("find user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// LoginLimiter counts failed logins per client key inside a sliding window.
type LoginLimiter struct {
	mu       sync.Mutex
	attempts *cache.Cache
	max      int
	window   time.Duration
}

// NewLoginLimiter allows max failures per window. max <= 0 disables limiting.
func NewLoginLimiter(max int, window time.Duration) *LoginLimiter {
	if window <= 0 {
		window = 15 * time.Minute
	}
	return &LoginLimiter{
		attempts: cache.New(window, 2*window),
		max:      max,
		window:   window,
	}
}

// Allowed reports whether key may attempt another login.
func (l *LoginLimiter) Allowed(key string) bool {
	if l.max <= 0 {
		return true
	}
	count, found := l.attempts.Get(key)
	if !found {
		return true
	}
	return count.(int) < l.max
}

// Fail records one failed attempt for key.
func (l *LoginLimiter) Fail(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, found := l.attempts.Get(key); !found {
		l.attempts.Set(key, 1, l.window)
		return
	}
	_ = l.attempts.Increment(key, 1)
}

// Reset clears the counter after a successful login.
func (l *LoginLimiter) Reset(key string) {
	l.attempts.Delete(key)
}
