package security

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCodec() *CookieCodec {
	return NewCookieCodec("test-secret-test-secret-32bytes!", "portal", time.Hour, false)
}

func requestWithCookie(t *testing.T, codec *CookieCodec, setFn func(w http.ResponseWriter)) *http.Request {
	t.Helper()
	rec := httptest.NewRecorder()
	setFn(rec)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestCookie_RoundTrip(t *testing.T) {
	codec := newCodec()
	req := requestWithCookie(t, codec, func(w http.ResponseWriter) {
		require.NoError(t, codec.Set(w, "sid-1"))
	})
	assert.Equal(t, "sid-1", codec.Read(req))
}

func TestCookie_AbsentReadsEmpty(t *testing.T) {
	codec := newCodec()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, codec.Read(req))
}

func TestCookie_TamperedReadsEmpty(t *testing.T) {
	codec := newCodec()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "portal_session", Value: "garbage"})
	assert.Empty(t, codec.Read(req))
}

func TestCookie_WrongSecretReadsEmpty(t *testing.T) {
	other := NewCookieCodec("a-completely-different-secret!!!", "portal", time.Hour, false)
	req := requestWithCookie(t, other, func(w http.ResponseWriter) {
		require.NoError(t, other.Set(w, "sid-1"))
	})
	assert.Empty(t, newCodec().Read(req))
}

func TestCookie_RejectsUnsignedToken(t *testing.T) {
	codec := newCodec()
	tok := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sid": "sid-1"})
	unsigned, err := tok.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "portal_session", Value: unsigned})
	assert.Empty(t, codec.Read(req))
}

func TestCookie_SecureUsesHostPrefix(t *testing.T) {
	codec := NewCookieCodec("test-secret-test-secret-32bytes!", "portal", time.Hour, true)
	rec := httptest.NewRecorder()
	require.NoError(t, codec.Set(rec, "sid-1"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "__Host-portal_session", cookies[0].Name)
	assert.True(t, cookies[0].Secure)
	assert.True(t, cookies[0].HttpOnly)
}

func TestCookie_ClearExpires(t *testing.T) {
	codec := newCodec()
	rec := httptest.NewRecorder()
	codec.Clear(rec)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Less(t, cookies[0].MaxAge, 0)
}
