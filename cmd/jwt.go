package main

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"homoglyph/pkg/logger"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const rsaKeyBits = 2048

// JWTCommand signs an RS256 token for a user ID, the credential the shortener
// routes expect. With --generate-key it first creates the key pair, writing
// the public half next to the private key with a .pub suffix.
func JWTCommand() *cobra.Command {
	var (
		subject, issuer, keyPath string
		ttl                      time.Duration
		generate                 bool
	)

	cmd := &cobra.Command{
		Use:   "jwt",
		Short: "Generates JWT token for given user ID",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			if generate {
				if err := writeKeyPair(keyPath); err != nil {
					logger.Fatal(ctx, "could not generate RSA key pair", zap.Error(err))
				}
				logger.Info(ctx, "generated RSA key pair",
					zap.String("private", keyPath), zap.String("public", keyPath+".pub"))
			}

			raw, err := os.ReadFile(keyPath)
			if err != nil {
				logger.Fatal(ctx, "could not read RSA private key", zap.Error(err))
			}
			key, err := jwt.ParseRSAPrivateKeyFromPEM(raw)
			if err != nil {
				logger.Fatal(ctx, "could not parse RSA private key", zap.Error(err))
			}

			signed, err := signToken(key, subject, issuer, time.Now(), ttl)
			if err != nil {
				logger.Fatal(ctx, "could not sign JWT", zap.Error(err))
			}

			fmt.Println(signed) //nolint: forbidigo
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "JWT subject (user ID)")
	cmd.Flags().StringVar(&issuer, "issuer", appName, "JWT issuer, must match jwt.issuer of the server")
	cmd.Flags().StringVar(&keyPath, "private-key", "", "Path to the PEM encoded RSA private key")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "Token TTL (e.g., 30s, 15m, 1h)")
	cmd.Flags().BoolVar(&generate, "generate-key", false, "Create a new key pair at --private-key before signing")
	_ = cmd.MarkFlagRequired("subject")
	_ = cmd.MarkFlagRequired("private-key")

	return cmd
}

func signToken(key *rsa.PrivateKey, subject, issuer string, now time.Time, ttl time.Duration) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    issuer,
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	if err != nil {
		return "", fmt.Errorf("could not sign token: %w", err)
	}

	return signed, nil
}

// writeKeyPair refuses to overwrite an existing private key.
func writeKeyPair(path string) error {
	key, err := rsa.GenerateKey(rand.Reader, rsaKeyBits)
	if err != nil {
		return fmt.Errorf("could not generate key: %w", err)
	}

	pub, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		return fmt.Errorf("could not encode public key: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return fmt.Errorf("could not create private key file: %w", err)
	}
	defer f.Close()

	if err := pem.Encode(f, &pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)}); err != nil {
		return fmt.Errorf("could not write private key: %w", err)
	}

	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pub})
	if err := os.WriteFile(path+".pub", pubPEM, 0o644); err != nil { //nolint: gosec
		return fmt.Errorf("could not write public key: %w", err)
	}

	return nil
}
