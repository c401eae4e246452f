package auth // package auth provides password hashing and session token helpers

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens
)

// Session is the authenticated identity carried by the browser cookie.
// Email is the identity key, Name the display name, and SID a random
// per-login id that namespaces the server-side selection state (the
// pending theater/showtime between the booking and seating steps).
type Session struct {
	Email string
	Name  string
	SID   string
}

// ErrInvalidToken is returned by ParseSessionToken for any token that
// fails signature, expiry or claim checks. Callers treat it as "not
// logged in" and redirect to the login page.
var ErrInvalidToken = errors.New("invalid session token")

// NewSessionToken builds and signs an HS256 JWT for a logged-in user.
// The JWT carries the subject (sub = email), the display name, a fresh
// random session id (sid), expiration (exp) and issued at (iat). The
// token is stored in an HttpOnly cookie rather than an Authorization
// header because this application is server-rendered.
func NewSessionToken(secret string, s Session, ttlMin int) (string, time.Time, error) {
	exp := time.Now().UTC().Add(time.Duration(ttlMin) * time.Minute)
	claims := jwt.MapClaims{
		"sub":  s.Email,
		"name": s.Name,
		"sid":  s.SID,
		"exp":  exp.Unix(),
		"iat":  time.Now().UTC().Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// ParseSessionToken validates a session token and extracts the identity
// claims. Tokens signed with a different method or secret, expired
// tokens and tokens missing the subject claim are all rejected with
// ErrInvalidToken.
func ParseSessionToken(secret, raw string) (Session, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		// Type assert the signing method to HMAC; reject others.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return Session{}, ErrInvalidToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return Session{}, ErrInvalidToken
	}
	var s Session
	if v, ok := claims["sub"].(string); ok {
		s.Email = v
	}
	if v, ok := claims["name"].(string); ok {
		s.Name = v
	}
	if v, ok := claims["sid"].(string); ok {
		s.SID = v
	}
	if s.Email == "" {
		return Session{}, ErrInvalidToken
	}
	return s, nil
}

// NewSessionID returns a hex-encoded string generated from 16 bytes of
// cryptographically secure random data. It namespaces per-login state
// in the selection store.
func NewSessionID() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
