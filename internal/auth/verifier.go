package auth

import "context"

// TokenVerifier resolves a bearer token to the identity provider's stable user ID.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (string, error)
}
