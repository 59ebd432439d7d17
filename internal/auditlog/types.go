package auditlog

import "time"

// Code identifies what an entry is about.
type Code string

const (
	CodeTopicSubscribersFetched Code = "topic_subscribers_fetched"
	CodeTopicSubscribersFailed  Code = "topic_subscribers_failed"
)

// Status is the outcome recorded by an entry.
type Status string

const (
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
)

// Entry is one execution log record.
type Entry struct {
	EnvironmentID  string
	OrganizationID string
	TopicKey       string
	TransactionID  string
	UserID         string
	Code           Code
	Status         Status
	Text           string
	Raw            map[string]any
	CreatedAt      time.Time
}
