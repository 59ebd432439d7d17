package scope

import "time"

const (
	// TokenExpirationDuration is the lifetime of tokens minted by CreateToken.
	TokenExpirationDuration = time.Hour * 24 * 7
)
