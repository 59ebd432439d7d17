package model

// RoleService marks tokens minted for trigger-producing services.
const RoleService = "SERVICE"

// Scope is the authenticated caller of an API request. Environment and
// organization bound every topic lookup and feature flag check.
type Scope struct {
	UserID         string `json:"user_id"`
	EnvironmentID  string `json:"environment_id"`
	OrganizationID string `json:"organization_id"`
	Role           string `json:"role"`
	JTI            string `json:"jti"`
}

// HasTenant reports whether both environment and organization are set.
func (s Scope) HasTenant() bool {
	return s.EnvironmentID != "" && s.OrganizationID != ""
}
