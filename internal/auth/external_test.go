package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signToken(t *testing.T, secret []byte, claims jwt.MapClaims, method jwt.SigningMethod) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(secret)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return s
}

func TestExternalVerify(t *testing.T) {
	secret := []byte("test-secret")
	p := NewExternalProvider(nil, secret)

	token := signToken(t, secret, jwt.MapClaims{
		"email": "traveler@example.com",
		"name":  "Traveler",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}, jwt.SigningMethodHS256)

	email, name, err := p.verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if email != "traveler@example.com" || name != "Traveler" {
		t.Errorf("got %q %q", email, name)
	}
}

func TestExternalVerifySubFallback(t *testing.T) {
	secret := []byte("test-secret")
	p := NewExternalProvider(nil, secret)

	token := signToken(t, secret, jwt.MapClaims{
		"sub": "traveler@example.com",
		"exp": time.Now().Add(time.Hour).Unix(),
	}, jwt.SigningMethodHS256)

	email, _, err := p.verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if email != "traveler@example.com" {
		t.Errorf("email = %q", email)
	}
}

func TestExternalVerifyRejections(t *testing.T) {
	secret := []byte("test-secret")
	p := NewExternalProvider(nil, secret)

	expired := signToken(t, secret, jwt.MapClaims{
		"email": "traveler@example.com",
		"exp":   time.Now().Add(-time.Hour).Unix(),
	}, jwt.SigningMethodHS256)

	wrongKey := signToken(t, []byte("other-secret"), jwt.MapClaims{
		"email": "traveler@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}, jwt.SigningMethodHS256)

	noIdentity := signToken(t, secret, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}, jwt.SigningMethodHS256)

	for name, token := range map[string]string{
		"expired":     expired,
		"wrong key":   wrongKey,
		"no identity": noIdentity,
		"garbage":     "not.a.jwt",
	} {
		if _, _, err := p.verify(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("%s: err = %v, want ErrInvalidToken", name, err)
		}
	}
}

func TestExternalProviderRefusesLocalFlows(t *testing.T) {
	p := NewExternalProvider(nil, []byte("s"))
	if _, _, err := p.Register(nil, Credentials{}); !errors.Is(err, ErrNotSupported) {
		t.Errorf("Register err = %v", err)
	}
	if _, _, err := p.Login(nil, "a@b.c", "pw"); !errors.Is(err, ErrNotSupported) {
		t.Errorf("Login err = %v", err)
	}
	if err := p.Logout(nil, "tok"); !errors.Is(err, ErrNotSupported) {
		t.Errorf("Logout err = %v", err)
	}
}
