package scope

// Manager verifies and mints HS256 service tokens.
// Implementations are safe for concurrent use.
type Manager interface {
	Verify(token string) (Payload, error)
	CreateToken(payload Payload) (string, error)
}

// New creates a new scope Manager with the provided secret key.
func New(secretKey string) (Manager, error) {
	if secretKey == "" {
		return nil, ErrEmptySecret
	}
	return &implManager{secretKey: []byte(secretKey)}, nil
}
