package models

import (
	"encoding/json"
	"testing"
)

func TestPaymentLinkDecodeSparse(t *testing.T) {
	raw := `{"id":"plink_1","status":"created"}`

	var link PaymentLink
	if err := json.Unmarshal([]byte(raw), &link); err != nil {
		t.Fatalf("sparse record should decode: %v", err)
	}
	if link.ID != "plink_1" || link.Status != StatusCreated {
		t.Errorf("unexpected decode: %+v", link)
	}
	if link.Amount != nil || link.CreatedAt != nil || link.Customer != nil {
		t.Errorf("absent fields should stay nil: %+v", link)
	}
}

func TestNotesUnmarshal(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want map[string]string
	}{
		{"object", `{"project":"alpha","batch":"7"}`, map[string]string{"project": "alpha", "batch": "7"}},
		{"empty array", `[]`, nil},
		{"null", `null`, nil},
		{"numeric value", `{"attempt":3}`, map[string]string{"attempt": "3"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var n Notes
			if err := json.Unmarshal([]byte(tc.raw), &n); err != nil {
				t.Fatalf("unmarshal %s: %v", tc.raw, err)
			}
			if len(n) != len(tc.want) {
				t.Fatalf("got %v want %v", n, tc.want)
			}
			for k, v := range tc.want {
				if n[k] != v {
					t.Errorf("key %q: got %q want %q", k, n[k], v)
				}
			}
		})
	}
}

func TestRemindersUnmarshal(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{`{"status":"sent"}`, "sent"},
		{`[]`, ""},
		{`null`, ""},
		{`"weird"`, ""},
	}

	for _, tc := range cases {
		var r Reminders
		if err := json.Unmarshal([]byte(tc.raw), &r); err != nil {
			t.Fatalf("unmarshal %s: %v", tc.raw, err)
		}
		if r.Status != tc.want {
			t.Errorf("%s: got %q want %q", tc.raw, r.Status, tc.want)
		}
	}
}
