package model

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Subscriber is the canonical recipient record handed to the delivery
// pipeline. SubscriberID is its only identity; every other field is carried
// through as supplied by the caller, including fields listed in Extra.
type Subscriber struct {
	SubscriberID string         `json:"subscriberId"`
	Email        string         `json:"email,omitempty"`
	FirstName    string         `json:"firstName,omitempty"`
	LastName     string         `json:"lastName,omitempty"`
	Phone        string         `json:"phone,omitempty"`
	Avatar       string         `json:"avatar,omitempty"`
	Locale       string         `json:"locale,omitempty"`
	Data         map[string]any `json:"data,omitempty"`

	// Extra holds payload fields not declared above, verbatim.
	Extra map[string]json.RawMessage `json:"-"`
}

var subscriberFieldNames = []string{
	"subscriberId",
	"email",
	"firstName",
	"lastName",
	"phone",
	"avatar",
	"locale",
	"data",
}

// subscriberFields has the fields of Subscriber without its JSON methods.
type subscriberFields Subscriber

// NewSubscriber builds a Subscriber carrying only an identifier.
func NewSubscriber(subscriberID string) Subscriber {
	return Subscriber{SubscriberID: subscriberID}
}

func (s *Subscriber) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	var fields subscriberFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return err
	}
	for k := range all {
		if isSubscriberField(k) {
			delete(all, k)
		}
	}

	fields.Extra = nil
	if len(all) > 0 {
		fields.Extra = all
	}
	*s = Subscriber(fields)
	return nil
}

func (s Subscriber) MarshalJSON() ([]byte, error) {
	b, err := json.Marshal(subscriberFields(s))
	if err != nil || len(s.Extra) == 0 {
		return b, err
	}

	var all map[string]json.RawMessage
	if err := json.Unmarshal(b, &all); err != nil {
		return nil, err
	}
	for k, v := range s.Extra {
		if _, ok := all[k]; !ok {
			all[k] = v
		}
	}
	return json.Marshal(all)
}

// isSubscriberField matches the way encoding/json binds keys to fields.
func isSubscriberField(key string) bool {
	for _, name := range subscriberFieldNames {
		if strings.EqualFold(key, name) {
			return true
		}
	}
	return false
}
