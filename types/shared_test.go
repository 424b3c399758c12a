package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelope_ErrorMessage(t *testing.T) {
	testCases := []struct {
		name   string
		body   string
		expect string
	}{
		{"no error key", `{"data": {}}`, ""},
		{"null error", `{"data": {}, "error": null}`, ""},
		{"false error", `{"error": false}`, ""},
		{"string error", `{"error": "List not found"}`, "List not found"},
		{"empty string error", `{"error": ""}`, ""},
		{"object with message", `{"error": {"message": "Permission denied", "code": 403}}`, "Permission denied"},
		{"object without message", `{"error": {"code": 500}}`, `{"code": 500}`},
		{"number", `{"error": 42}`, "42"},
		{"zero", `{"error": 0}`, ""},
		{"empty object", `{"data": {"id": 1}, "error": {}}`, ""},
		{"empty array", `{"data": {"id": 1}, "error": []}`, ""},
		{"non-empty array", `{"error": ["bad email"]}`, `["bad email"]`},
		{"true", `{"error": true}`, "true"},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			var env Envelope
			require.NoError(t, json.Unmarshal([]byte(tt.body), &env))
			assert.Equal(t, tt.expect, env.ErrorMessage())
		})
	}
}

func TestRecord_String(t *testing.T) {
	var r Record
	require.NoError(t, json.Unmarshal([]byte(`{
		"id": 12,
		"cid": "Hkj1vCoJb",
		"email": "user@example.com",
		"status": 1.5,
		"MERGE_NULL": null,
		"active": true
	}`), &r))

	assert.Equal(t, "12", r.Id())
	assert.Equal(t, "Hkj1vCoJb", r.String("cid"))
	assert.Equal(t, "user@example.com", r.String("email"))
	assert.Equal(t, "1.5", r.String("status"))
	assert.Equal(t, "", r.String("MERGE_NULL"))
	assert.Equal(t, "", r.String("missing"))
	assert.Equal(t, "true", r.String("active"))

	var empty Record
	assert.Equal(t, "", empty.Id())
}

func TestSubscriptionsPage_UnmarshalJSON(t *testing.T) {
	var page SubscriptionsPage
	require.NoError(t, json.Unmarshal([]byte(`{
		"total": 3, "start": 1, "limit": 2,
		"subscriptions": [{"email": "a@example.com"}, {"email": "b@example.com"}]
	}`), &page))
	assert.Equal(t, int64(3), page.Total)
	assert.Equal(t, int64(1), page.Start)
	assert.Equal(t, int64(2), page.Limit)
	require.Len(t, page.Subscriptions, 2)
	assert.Equal(t, "b@example.com", page.Subscriptions[1].String("email"))

	var bare SubscriptionsPage
	require.NoError(t, json.Unmarshal([]byte(` [{"email": "a@example.com"}]`), &bare))
	assert.Equal(t, int64(1), bare.Total)
	assert.Equal(t, int64(0), bare.Start)
	assert.Equal(t, int64(1), bare.Limit)
	assert.Equal(t, "a@example.com", bare.Subscriptions[0].String("email"))

	var bad SubscriptionsPage
	assert.Error(t, json.Unmarshal([]byte(`[1, 2]`), &bad))
}

func TestBlacklistPage_UnmarshalJSON(t *testing.T) {
	var page BlacklistPage
	require.NoError(t, json.Unmarshal([]byte(`{"total": 10, "start": 0, "limit": 1, "emails": ["a@example.com"]}`), &page))
	assert.Equal(t, BlacklistPage{Total: 10, Limit: 1, Emails: []string{"a@example.com"}}, page)

	var bare BlacklistPage
	require.NoError(t, json.Unmarshal([]byte(`["a@example.com", "b@example.com"]`), &bare))
	assert.Equal(t, BlacklistPage{Total: 2, Limit: 2, Emails: []string{"a@example.com", "b@example.com"}}, bare)
}
