package auth

import (
	"context"
	"fmt"

	"github.com/lestrrat-go/jwx/v2/jwk"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// JWKSVerifier validates ID tokens against the identity provider's published
// key set. This is the production path for Firebase-style bearer tokens.
type JWKSVerifier struct {
	jwksURL  string
	issuer   string
	audience string
	cache    *jwk.Cache
}

func NewJWKSVerifier(ctx context.Context, jwksURL, issuer, audience string) (*JWKSVerifier, error) {
	cache := jwk.NewCache(ctx)
	if err := cache.Register(jwksURL); err != nil {
		return nil, fmt.Errorf("register jwks url: %w", err)
	}
	return &JWKSVerifier{
		jwksURL:  jwksURL,
		issuer:   issuer,
		audience: audience,
		cache:    cache,
	}, nil
}

func (v *JWKSVerifier) Verify(ctx context.Context, token string) (string, error) {
	keyset, err := v.cache.Get(ctx, v.jwksURL)
	if err != nil {
		return "", fmt.Errorf("fetch jwks: %w", err)
	}

	opts := []jwt.ParseOption{jwt.WithKeySet(keyset), jwt.WithValidate(true)}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}
	if v.audience != "" {
		opts = append(opts, jwt.WithAudience(v.audience))
	}

	t, err := jwt.ParseString(token, opts...)
	if err != nil {
		return "", fmt.Errorf("parse/validate id token: %w", err)
	}

	sub := t.Subject()
	if sub == "" {
		return "", fmt.Errorf("id token has no subject")
	}
	return sub, nil
}
