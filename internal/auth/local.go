package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/jairomatosve/voyagedesigner/internal/models"
)

// SessionTTL is how long a self-issued token stays valid.
const SessionTTL = 7 * 24 * time.Hour

// LocalProvider stores bcrypt-hashed users and opaque session tokens in
// Postgres. Expired sessions are deleted the first time they are touched.
type LocalProvider struct {
	DB *gorm.DB
}

func (p *LocalProvider) Register(ctx context.Context, creds Credentials) (*models.User, string, error) {
	email := strings.TrimSpace(strings.ToLower(creds.Email))
	if email == "" || creds.Password == "" {
		return nil, "", ErrMissingFields
	}

	name := creds.Name
	if name == "" {
		name = strings.SplitN(email, "@", 2)[0]
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := models.User{
		Email:       email,
		Password:    string(hash),
		DisplayName: name,
	}
	if err := p.DB.WithContext(ctx).Create(&user).Error; err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, "", ErrEmailTaken
		}
		return nil, "", err
	}

	token, err := p.issueSession(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

func (p *LocalProvider) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, "", ErrMissingFields
	}

	var user models.User
	if err := p.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	// Reject before touching the sessions table; a failed login must never
	// leave a session behind.
	if err := verifyPassword(user.Password, password); err != nil {
		return nil, "", err
	}

	token, err := p.issueSession(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

func (p *LocalProvider) Logout(ctx context.Context, token string) error {
	return p.DB.WithContext(ctx).Where("token = ?", token).Delete(&models.Session{}).Error
}

func (p *LocalProvider) Authenticate(ctx context.Context, token string) (uint, error) {
	if token == "" {
		return 0, ErrInvalidToken
	}

	var session models.Session
	if err := p.DB.WithContext(ctx).Where("token = ?", token).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrInvalidToken
		}
		return 0, err
	}

	if sessionExpired(session, time.Now()) {
		p.DB.WithContext(ctx).Delete(&session)
		return 0, ErrInvalidToken
	}
	return session.UserID, nil
}

// verifyPassword compares a stored bcrypt hash against a login attempt.
func verifyPassword(hash, password string) error {
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return ErrInvalidCredentials
	}
	return nil
}

func sessionExpired(s models.Session, now time.Time) bool {
	return now.After(s.ExpiresAt)
}

func (p *LocalProvider) issueSession(ctx context.Context, userID uint) (string, error) {
	token, err := newSessionToken()
	if err != nil {
		return "", err
	}
	session := models.Session{
		Token:     token,
		UserID:    userID,
		ExpiresAt: time.Now().Add(SessionTTL),
	}
	if err := p.DB.WithContext(ctx).Create(&session).Error; err != nil {
		return "", err
	}
	return token, nil
}

// newSessionToken returns 32 random bytes hex encoded.
func newSessionToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
