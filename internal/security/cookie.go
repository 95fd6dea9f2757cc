// Package security signs and reads the browser session cookie. The cookie
// carries only the session ID; identity and token live server-side.
package security

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/carelink/portal-gateway/internal/domain"
)

const (
	cookieName       = "portal_session"
	secureCookieName = "__Host-portal_session"
)

type CookieCodec struct {
	secret []byte
	issuer string
	ttl    time.Duration
	secure bool
}

func NewCookieCodec(secret, issuer string, ttl time.Duration, secure bool) *CookieCodec {
	return &CookieCodec{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		secure: secure,
	}
}

type sessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

func (c *CookieCodec) name() string {
	if c.secure {
		return secureCookieName
	}
	return cookieName
}

func (c *CookieCodec) sign(sid string) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		SessionID: sid,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    c.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(c.secret)
	if err != nil {
		return "", domain.ErrCookieSignFailed(err)
	}
	return signed, nil
}

func (c *CookieCodec) verify(value string) (string, error) {
	parsed, err := jwt.ParseWithClaims(value, &sessionClaims{}, func(t *jwt.Token) (any, error) {
		// prevent alg confusion
		if t.Method != jwt.SigningMethodHS256 {
			return nil, domain.ErrCookieInvalid()
		}
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", domain.ErrCookieInvalid()
	}

	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok || !parsed.Valid || claims.SessionID == "" {
		return "", domain.ErrCookieInvalid()
	}
	return claims.SessionID, nil
}

// Set writes the signed session cookie.
func (c *CookieCodec) Set(w http.ResponseWriter, sid string) error {
	signed, err := c.sign(sid)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     c.name(),
		Value:    signed,
		Path:     "/",
		MaxAge:   int(c.ttl / time.Second),
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Clear expires the cookie.
func (c *CookieCodec) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.name(),
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Read extracts the session ID from the request cookie. Absent or tampered
// cookies read as empty: the request proceeds anonymously.
func (c *CookieCodec) Read(r *http.Request) string {
	cookie, err := r.Cookie(c.name())
	if err != nil {
		return ""
	}
	sid, err := c.verify(cookie.Value)
	if err != nil {
		return ""
	}
	return sid
}
