package jwt

import "fmt"

// New creates a new JWT manager with an HS256 symmetric key.
func New(cfg Config) (*Manager, error) {
	if len(cfg.SecretKey) < 32 {
		return nil, fmt.Errorf("secret key must be at least 32 characters long, got %d", len(cfg.SecretKey))
	}

	return &Manager{
		secretKey: []byte(cfg.SecretKey),
		issuer:    cfg.Issuer,
		audience:  cfg.Audience,
		ttl:       cfg.TTL,
	}, nil
}
