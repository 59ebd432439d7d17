package featureflag

// Input scopes a flag evaluation.
type Input struct {
	EnvironmentID  string
	OrganizationID string
	UserID         string
}

// Key is a feature flag name.
type Key string

const (
	KeyIsTopicNotificationEnabled Key = "is-topic-notification-enabled"
)
