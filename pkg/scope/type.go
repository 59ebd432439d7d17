package scope

import "github.com/golang-jwt/jwt"

// Payload represents the JWT token claims.
type Payload struct {
	jwt.StandardClaims
	UserID         string `json:"sub"`
	EnvironmentID  string `json:"environmentId"`
	OrganizationID string `json:"organizationId"`
	Role           string `json:"role"`
}

type implManager struct {
	secretKey []byte
}
