package types

import (
	"encoding/json"
	"net/url"
)

// Subscriber is a subscription record: EMAIL, MERGE_* custom fields,
// TIMEZONE, cid, status, etc.
type Subscriber = Record

type SubscriptionsPage struct {
	Total         int64        `json:"total"`
	Start         int64        `json:"start"`
	Limit         int64        `json:"limit"`
	Subscriptions []Subscriber `json:"subscriptions"`
}

// UnmarshalJSON accepts both the paged object and a bare array
// of subscribers, which older Mailtrain versions return.
func (p *SubscriptionsPage) UnmarshalJSON(data []byte) error {
	if isJsonArray(data) {
		var subs []Subscriber
		if err := json.Unmarshal(data, &subs); err != nil {
			return err
		}
		*p = SubscriptionsPage{
			Total:         int64(len(subs)),
			Limit:         int64(len(subs)),
			Subscriptions: subs,
		}
		return nil
	}
	type page SubscriptionsPage
	var res page
	if err := json.Unmarshal(data, &res); err != nil {
		return err
	}
	*p = SubscriptionsPage(res)
	return nil
}

type SubscribeRequest struct {
	ListId string
	Email  string

	// FirstName and LastName are sent as MERGE_FIRST_NAME
	// and MERGE_LAST_NAME when not empty.
	FirstName string
	LastName  string

	// Subscriber's timezone, e.g. "Europe/Tallinn", "PST" or "UTC".
	// The server defaults to "UTC" when not set.
	Timezone string

	// Subscribe the address even if it previously unsubscribed.
	// NewSubscribeRequest sets it to true.
	ForceSubscribe bool

	// Send a confirmation email instead of subscribing right away.
	RequireConfirmation bool

	// Custom field values keyed by merge tag, e.g. MERGE_COMPANY.
	// Use "yes"/"no" for option group values
	// (checkboxes, radios, drop downs).
	Fields map[string]string
}

// NewSubscribeRequest returns a request with the defaults Mailtrain
// documents: forced subscription, no confirmation email.
func NewSubscribeRequest(listId, email string) SubscribeRequest {
	return SubscribeRequest{
		ListId:         listId,
		Email:          email,
		ForceSubscribe: true,
	}
}

func (r SubscribeRequest) Form() url.Values {
	form := url.Values{}
	for k, v := range r.Fields {
		form.Set(k, v)
	}
	form.Set("EMAIL", r.Email)
	if r.FirstName != "" {
		form.Set("MERGE_FIRST_NAME", r.FirstName)
	}
	if r.LastName != "" {
		form.Set("MERGE_LAST_NAME", r.LastName)
	}
	if r.Timezone != "" {
		form.Set("TIMEZONE", r.Timezone)
	}
	if r.ForceSubscribe {
		form.Set("FORCE_SUBSCRIBE", yes)
	}
	if r.RequireConfirmation {
		form.Set("REQUIRE_CONFIRMATION", yes)
	}
	return form
}

// EmailForm is the body of the unsubscribe, delete and blacklist calls.
func EmailForm(email string) url.Values {
	return url.Values{"EMAIL": {email}}
}
