// Package auth resolves bearer tokens to user identities.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"github.com/mindease/mindease/backend/internal/config"
)

// ErrInvalidToken is returned for missing, expired or malformed tokens.
var ErrInvalidToken = errors.New("invalid identity token")

// AnonymousUserID identifies requests when verification is disabled.
const AnonymousUserID = "anonymous"

// Verifier turns an opaque bearer token into a user id.
type Verifier interface {
	Verify(ctx context.Context, token string) (string, error)
}

// FirebaseVerifier validates Firebase ID tokens via the Admin SDK.
type FirebaseVerifier struct {
	client *fbauth.Client
}

// NewFirebaseVerifier initializes the Admin SDK from the configured
// service-account credentials.
func NewFirebaseVerifier(ctx context.Context, cfg config.AuthConfig) (*FirebaseVerifier, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase auth client: %w", err)
	}

	return &FirebaseVerifier{client: client}, nil
}

// Verify checks the ID token signature and returns the subject uid.
func (v *FirebaseVerifier) Verify(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrInvalidToken
	}

	decoded, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		log.Printf("[auth] token rejected: %v", err)
		return "", ErrInvalidToken
	}
	return decoded.UID, nil
}

// AnonymousVerifier accepts every request as the anonymous user. Used when
// no identity-provider credentials are configured, matching the hosted
// deployment's degraded mode.
type AnonymousVerifier struct{}

// Verify maps any token, including none, to the anonymous user id.
func (AnonymousVerifier) Verify(_ context.Context, _ string) (string, error) {
	return AnonymousUserID, nil
}
