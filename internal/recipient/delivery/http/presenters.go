package http

import (
	"bytes"
	"encoding/json"

	"recipient-srv/internal/model"
	"recipient-srv/internal/recipient"
)

// --- Request DTOs ---

// recipientList accepts either one recipient or an array of them. Entries
// that match no known shape decode to RecipientKindUnknown and are rejected
// by the use case with their index.
type recipientList []model.Recipient

func (l *recipientList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*l = nil
		return nil
	}

	if len(data) > 0 && data[0] == '[' {
		var raws []json.RawMessage
		if err := json.Unmarshal(data, &raws); err != nil {
			return err
		}
		res := make(recipientList, len(raws))
		for i, raw := range raws {
			res[i] = decodeRecipient(raw)
		}
		*l = res
		return nil
	}

	*l = recipientList{decodeRecipient(data)}
	return nil
}

type topicMarker struct {
	Type     json.RawMessage `json:"type"`
	TopicKey json.RawMessage `json:"topicKey"`
}

// isTopic is true only for the exact string marker; a missing or non-string
// "type" means a direct subscriber.
func (m topicMarker) isTopic() bool {
	var typ string
	return json.Unmarshal(m.Type, &typ) == nil && typ == model.RecipientTypeTopic
}

// key returns the topic key, or "" when absent or not a string.
func (m topicMarker) key() string {
	var key string
	if json.Unmarshal(m.TopicKey, &key) != nil {
		return ""
	}
	return key
}

func decodeRecipient(raw json.RawMessage) model.Recipient {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return model.Recipient{}
	}

	switch raw[0] {
	case '"':
		var id string
		if err := json.Unmarshal(raw, &id); err != nil {
			return model.Recipient{}
		}
		return model.NewSubscriberIDRecipient(id)
	case '{':
		var marker topicMarker
		if err := json.Unmarshal(raw, &marker); err != nil {
			return model.Recipient{}
		}
		if marker.isTopic() {
			return model.NewTopicRecipient(marker.key())
		}
		var sub model.Subscriber
		if err := json.Unmarshal(raw, &sub); err != nil {
			return model.Recipient{}
		}
		return model.NewSubscriberRecipient(sub)
	default:
		return model.Recipient{}
	}
}

// actorReq accepts a bare subscriber id or a subscriber object.
type actorReq struct {
	model.Subscriber
}

func (a *actorReq) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return err
		}
		a.Subscriber = model.NewSubscriber(id)
		return nil
	}
	if len(data) > 0 && data[0] == '{' {
		return json.Unmarshal(data, &a.Subscriber)
	}
	return errInvalidActor
}

type resolveReq struct {
	To            recipientList `json:"to"`
	Actor         *actorReq     `json:"actor"`
	TransactionID string        `json:"transactionId"`
}

func (r resolveReq) validate() error {
	if r.To == nil {
		return errMissingTo
	}
	if r.Actor != nil && r.Actor.SubscriberID == "" {
		return errInvalidActor
	}
	return nil
}

func (r resolveReq) toInput(sc model.Scope) recipient.ResolveInput {
	input := recipient.ResolveInput{
		Context: recipient.ResolutionContext{
			EnvironmentID:  sc.EnvironmentID,
			OrganizationID: sc.OrganizationID,
			UserID:         sc.UserID,
			TransactionID:  r.TransactionID,
		},
		Recipients: r.To,
	}
	if r.Actor != nil {
		actor := r.Actor.Subscriber
		input.Actor = &actor
	}
	return input
}

// --- Response DTOs ---

type resolveResp struct {
	TransactionID string             `json:"transaction_id"`
	Subscribers   []model.Subscriber `json:"subscribers"`
}

func (h *Handler) newResolveResp(transactionID string, o recipient.ResolveOutput) resolveResp {
	subs := o.Subscribers
	if subs == nil {
		subs = []model.Subscriber{}
	}
	return resolveResp{
		TransactionID: transactionID,
		Subscribers:   subs,
	}
}
