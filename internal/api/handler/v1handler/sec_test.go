package v1handler_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"homoglyph/internal/api/handler/v1handler"
	"homoglyph/pkg/domain"
	"homoglyph/pkg/serrors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// helper to generate an RSA key pair and return the private key and PEM-encoded public key.
func genRSAKeys(tb testing.TB) (*rsa.PrivateKey, string) {
	tb.Helper()
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(tb, err, "failed to generate RSA key")
	pubASN1, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(tb, err, "failed to marshal public key")
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubASN1})

	return priv, string(pubPEM)
}

func newSecHandlerForTest(t *testing.T, opts *v1handler.SecHandlerOptions) *v1handler.SecHandler {
	t.Helper()
	sh, err := v1handler.NewSecHandler(opts)
	require.NoError(t, err, "NewSecHandler failed")

	return sh
}

func signJWTRS256(tb testing.TB, priv *rsa.PrivateKey, claims jwt.RegisteredClaims) string {
	tb.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	signed, err := token.SignedString(priv)
	require.NoError(tb, err, "failed to sign token")

	return signed
}

func validClaims(sub string) jwt.RegisteredClaims {
	now := time.Now()

	return jwt.RegisteredClaims{
		Subject:   sub,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		NotBefore: jwt.NewNumericDate(now),
	}
}

func TestHandleBearerAuth_ValidToken(t *testing.T) {
	priv, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, &v1handler.SecHandlerOptions{PublicKey: pubPEM})

	uid := uuid.New()
	ctx, err := sh.HandleBearerAuth(context.Background(), signJWTRS256(t, priv, validClaims(uid.String())))
	require.NoError(t, err)
	require.Equal(t, domain.UserID(uid), v1handler.GetUserIDFromContext(ctx))
}

func TestHandleBearerAuth_Rejected(t *testing.T) {
	priv, pubPEM := genRSAKeys(t)
	privOther, _ := genRSAKeys(t)
	now := time.Now()

	expired := validClaims(uuid.NewString())
	expired.IssuedAt = jwt.NewNumericDate(now.Add(-2 * time.Hour))
	expired.NotBefore = expired.IssuedAt
	expired.ExpiresAt = jwt.NewNumericDate(now.Add(-time.Hour))

	noExpiry := validClaims(uuid.NewString())
	noExpiry.ExpiresAt = nil

	hs256, err := jwt.NewWithClaims(jwt.SigningMethodHS256, validClaims(uuid.NewString())).SignedString([]byte("secret"))
	require.NoError(t, err)

	wrongIssuer := validClaims(uuid.NewString())
	wrongIssuer.Issuer = "someone-else"

	tests := []struct {
		name   string
		issuer string
		token  string
	}{
		{"invalid signature", "", signJWTRS256(t, privOther, validClaims(uuid.NewString()))},
		{"expired", "", signJWTRS256(t, priv, expired)},
		{"no expiry", "", signJWTRS256(t, priv, noExpiry)},
		{"invalid subject", "", signJWTRS256(t, priv, validClaims("not-a-uuid"))},
		{"wrong algorithm", "", hs256},
		{"wrong issuer", "homoglyph", signJWTRS256(t, priv, wrongIssuer)},
		{"garbage", "", "not.a.jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sh := newSecHandlerForTest(t, &v1handler.SecHandlerOptions{PublicKey: pubPEM, Issuer: tt.issuer})

			_, err := sh.HandleBearerAuth(context.Background(), tt.token)
			require.ErrorIs(t, err, serrors.ErrUnauthorized)
		})
	}
}

func TestHandleBearerAuth_MatchingIssuer(t *testing.T) {
	priv, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, &v1handler.SecHandlerOptions{PublicKey: pubPEM, Issuer: "homoglyph"})

	claims := validClaims(uuid.NewString())
	claims.Issuer = "homoglyph"
	_, err := sh.HandleBearerAuth(context.Background(), signJWTRS256(t, priv, claims))
	require.NoError(t, err)
}

func TestHandleBearerAuth_NotConfigured(t *testing.T) {
	priv, _ := genRSAKeys(t)
	sh := newSecHandlerForTest(t, nil)

	_, err := sh.HandleBearerAuth(context.Background(), signJWTRS256(t, priv, validClaims(uuid.NewString())))
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestNewSecHandler_InvalidKey(t *testing.T) {
	_, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{PublicKey: "not a pem"})
	require.Error(t, err)
}

func TestSecHandler_Middleware(t *testing.T) {
	priv, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, &v1handler.SecHandlerOptions{PublicKey: pubPEM})
	uid := uuid.New()
	token := signJWTRS256(t, priv, validClaims(uid.String()))

	var seen domain.UserID
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = v1handler.GetUserIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	tests := []struct {
		name     string
		required bool
		header   string
		status   int
		user     domain.UserID
	}{
		{"optional anonymous", false, "", http.StatusNoContent, domain.UserID{}},
		{"required anonymous", true, "", http.StatusUnauthorized, domain.UserID{}},
		{"valid token", true, "Bearer " + token, http.StatusNoContent, domain.UserID(uid)},
		{"lower case scheme", false, "bearer " + token, http.StatusNoContent, domain.UserID(uid)},
		{"basic auth", false, "Basic dXNlcjpwYXNz", http.StatusUnauthorized, domain.UserID{}},
		{"invalid token on optional route", false, "Bearer nope", http.StatusUnauthorized, domain.UserID{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen = domain.UserID{}
			req := httptest.NewRequest(http.MethodPost, "/v1/shorten", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			sh.Middleware(tt.required)(next).ServeHTTP(rec, req)

			require.Equal(t, tt.status, rec.Code)
			require.Equal(t, tt.user, seen)
			if tt.status == http.StatusUnauthorized {
				require.JSONEq(t, `"UNAUTHORIZED"`, jsonField(t, rec.Body.Bytes(), "code"))
			}
		})
	}
}
