package auth

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/totegamma/longrest/core"
	"github.com/totegamma/longrest/internal/testutil"
	"github.com/totegamma/longrest/x/util"
)

const (
	testSecret   = "0b2a4d6c8e1f3a5b7c9d0e2f4a6b8c0d"
	testAudience = "longrest"
	User1ID      = "user-1"
)

func sign(t *testing.T, method jwt.SigningMethod, key interface{}, claims jwt.Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	if !assert.NoError(t, err) {
		t.FailNow()
	}
	return token
}

func validClaims() jwt.RegisteredClaims {
	return jwt.RegisteredClaims{
		Subject:   User1ID,
		Audience:  jwt.ClaimStrings{testAudience},
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
}

func TestValidate(t *testing.T) {
	s := NewService(core.Config{JWTSecret: testSecret, Audience: testAudience})
	ctx := context.Background()

	principal, err := s.Validate(ctx, sign(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims()))
	if assert.NoError(t, err) {
		assert.Equal(t, User1ID, principal.UserID)
	}

	_, err = s.Validate(ctx, sign(t, jwt.SigningMethodHS256, []byte("another-secret"), validClaims()))
	assert.Error(t, err)

	_, err = s.Validate(ctx, sign(t, jwt.SigningMethodHS512, []byte(testSecret), validClaims()))
	assert.Error(t, err)

	expired := validClaims()
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
	_, err = s.Validate(ctx, sign(t, jwt.SigningMethodHS256, []byte(testSecret), expired))
	assert.Error(t, err)

	foreign := validClaims()
	foreign.Audience = jwt.ClaimStrings{"elsewhere"}
	_, err = s.Validate(ctx, sign(t, jwt.SigningMethodHS256, []byte(testSecret), foreign))
	assert.Error(t, err)

	anonymous := validClaims()
	anonymous.Subject = ""
	_, err = s.Validate(ctx, sign(t, jwt.SigningMethodHS256, []byte(testSecret), anonymous))
	assert.Error(t, err)
}

func TestIdentifyIdentity(t *testing.T) {
	checker := testutil.SetupMockTraceProvider()

	s := NewService(core.Config{JWTSecret: testSecret, Audience: testAudience})

	c, req, _, traceID := testutil.CreateHttpRequest()
	req.Header.Set("Authorization", "Bearer "+sign(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims()))

	var seen core.Principal
	h := s.IdentifyIdentity(func(c echo.Context) error {
		seen = util.Principal(c.Request().Context())
		return nil
	})

	err := h(c)
	if assert.NoError(t, err) {
		assert.Equal(t, User1ID, seen.UserID)
		assert.Equal(t, User1ID, c.Get(core.RequesterIdCtxKey))
	}

	testutil.PrintSpans(checker.GetSpans(), traceID)
}

func TestIdentifyIdentityInvalidToken(t *testing.T) {
	s := NewService(core.Config{JWTSecret: testSecret})

	c, req, _, _ := testutil.CreateHttpRequest()
	req.Header.Set("Authorization", "Bearer not-a-token")

	var seen core.Principal
	h := s.IdentifyIdentity(func(c echo.Context) error {
		seen = util.Principal(c.Request().Context())
		return nil
	})

	err := h(c)
	if assert.NoError(t, err) {
		assert.True(t, seen.IsAnonymous())
		assert.Nil(t, c.Get(core.RequesterIdCtxKey))
	}
}

func TestRestrictKnown(t *testing.T) {
	c, _, rec, _ := testutil.CreateHttpRequest()

	called := false
	h := Restrict(ISKNOWN)(func(c echo.Context) error {
		called = true
		return nil
	})

	err := h(c)
	assert.NoError(t, err)
	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	c, _, rec, _ = testutil.CreateHttpRequest()
	c.Set(core.RequesterIdCtxKey, User1ID)

	err = h(c)
	assert.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}
