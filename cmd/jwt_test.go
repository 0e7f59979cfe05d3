package main

import (
	"context"
	"homoglyph/internal/api/handler/v1handler"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestWriteKeyPair_SignedTokenVerifies(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jwt.pem")
	require.NoError(t, writeKeyPair(path))

	// never overwrite an existing key
	require.Error(t, writeKeyPair(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	key, err := jwt.ParseRSAPrivateKeyFromPEM(raw)
	require.NoError(t, err)

	pub, err := os.ReadFile(path + ".pub")
	require.NoError(t, err)
	sec, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{PublicKey: string(pub), Issuer: appName})
	require.NoError(t, err)

	userID := uuid.New()
	token, err := signToken(key, userID.String(), appName, time.Now(), time.Hour)
	require.NoError(t, err)

	ctx, err := sec.HandleBearerAuth(context.Background(), token)
	require.NoError(t, err)
	require.Equal(t, userID.String(), v1handler.GetUserIDFromContext(ctx).String())

	expired, err := signToken(key, userID.String(), appName, time.Now().Add(-2*time.Hour), time.Hour)
	require.NoError(t, err)
	_, err = sec.HandleBearerAuth(context.Background(), expired)
	require.Error(t, err)
}
