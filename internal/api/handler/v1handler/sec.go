package v1handler

import (
	"context"
	"crypto/rsa"
	"fmt"
	"homoglyph/internal/config"
	"homoglyph/pkg/domain"
	"homoglyph/pkg/serrors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// CtxKey is a string-based type used for storing values in request contexts.
type CtxKey string

// UserIDKey is the context key under which the authenticated user is stored.
const UserIDKey CtxKey = "UserID"

// SecHandlerOptions configure bearer token verification.
type SecHandlerOptions struct {
	// PublicKey is the PEM encoded RSA key tokens are verified with. When
	// empty, every token is rejected and only anonymous access works.
	PublicKey string
	// Issuer, when set, must match the iss claim.
	Issuer string
}

// NewSecHandlerOptions constructs SecHandlerOptions from the provided application config.
func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{
		PublicKey: cfg.JWT.PublicKey,
		Issuer:    cfg.JWT.Issuer,
	}
}

// SecHandler verifies RS256 bearer tokens whose subject is a user ID.
type SecHandler struct {
	publicKey *rsa.PublicKey
	parser    *jwt.Parser
}

func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if opts == nil {
		opts = &SecHandlerOptions{}
	}
	if opts.Issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(opts.Issuer))
	}

	sh := &SecHandler{parser: jwt.NewParser(parserOpts...)}
	if opts.PublicKey == "" {
		return sh, nil
	}

	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}
	sh.publicKey = key

	return sh, nil
}

// HandleBearerAuth validates token and stores its subject in the returned context.
func (s *SecHandler) HandleBearerAuth(ctx context.Context, token string) (context.Context, error) {
	if s.publicKey == nil {
		return ctx, serrors.With(serrors.ErrUnauthorized, "bearer authentication is not configured")
	}

	var claims jwt.RegisteredClaims
	if _, err := s.parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.publicKey, nil
	}); err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token subject")
	}

	return context.WithValue(ctx, UserIDKey, domain.UserID(id)), nil
}

// Middleware authenticates requests carrying an Authorization header. Requests
// without one pass through anonymously unless required is set. A header that
// is present but invalid is always rejected.
func (s *SecHandler) Middleware(required bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			header := r.Header.Get("Authorization")
			if header == "" {
				if required {
					writeError(ctx, w, serrors.With(serrors.ErrUnauthorized, "missing bearer token"))

					return
				}
				next.ServeHTTP(w, r)

				return
			}

			scheme, token, ok := strings.Cut(header, " ")
			if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
				writeError(ctx, w, serrors.With(serrors.ErrUnauthorized, "malformed authorization header"))

				return
			}

			ctx, err := s.HandleBearerAuth(ctx, strings.TrimSpace(token))
			if err != nil {
				writeError(ctx, w, err)

				return
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserIDFromContext returns the authenticated user, or the anonymous user.
func GetUserIDFromContext(ctx context.Context) domain.UserID {
	id, _ := ctx.Value(UserIDKey).(domain.UserID)

	return id
}
