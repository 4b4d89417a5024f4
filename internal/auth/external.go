package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/jairomatosve/voyagedesigner/internal/models"
)

// ExternalProvider validates HS256 JWTs minted by an external identity
// provider. It never issues tokens itself; register, login and logout are
// all handled upstream. Profile rows are provisioned lazily on the first
// authenticated request.
type ExternalProvider struct {
	DB     *gorm.DB
	secret []byte
}

func NewExternalProvider(db *gorm.DB, secret []byte) *ExternalProvider {
	return &ExternalProvider{DB: db, secret: secret}
}

func (p *ExternalProvider) Register(context.Context, Credentials) (*models.User, string, error) {
	return nil, "", ErrNotSupported
}

func (p *ExternalProvider) Login(context.Context, string, string) (*models.User, string, error) {
	return nil, "", ErrNotSupported
}

func (p *ExternalProvider) Logout(context.Context, string) error {
	return ErrNotSupported
}

func (p *ExternalProvider) Authenticate(ctx context.Context, token string) (uint, error) {
	email, name, err := p.verify(token)
	if err != nil {
		return 0, err
	}

	var user models.User
	err = p.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = models.User{Email: email, DisplayName: name}
		err = p.DB.WithContext(ctx).Create(&user).Error
	}
	if err != nil {
		return 0, err
	}
	return user.ID, nil
}

// verify checks the signature and expiry and extracts the email (and
// optional display name) claims.
func (p *ExternalProvider) verify(tokenStr string) (email, name string, err error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return p.secret, nil
	})
	if err != nil || !token.Valid {
		return "", "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", ErrInvalidToken
	}
	email, _ = claims["email"].(string)
	if email == "" {
		email, _ = claims["sub"].(string)
	}
	if email == "" {
		return "", "", ErrInvalidToken
	}
	name, _ = claims["name"].(string)
	return email, name, nil
}
