package models

import (
	"encoding/json"
	"strings"
)

// Payment link status lifecycle as reported by the API.
const (
	StatusCreated       = "created"
	StatusIssued        = "issued"
	StatusPending       = "pending"
	StatusPaid          = "paid"
	StatusCancelled     = "cancelled"
	StatusExpired       = "expired"
	StatusPartiallyPaid = "partially_paid"
)

// PaymentLink is one raw record from the payment_links collection.
// Every field the API may omit is a pointer or zero-valued so a sparse
// record decodes without error; defaults are applied at normalization.
type PaymentLink struct {
	ID                    string        `json:"id"`
	CreatedAt             *int64        `json:"created_at"`
	UpdatedAt             *int64        `json:"updated_at"`
	CancelledAt           *int64        `json:"cancelled_at"`
	ExpireBy              *int64        `json:"expire_by"`
	ExpiredAt             *int64        `json:"expired_at"`
	Amount                *int64        `json:"amount"`
	AmountPaid            *int64        `json:"amount_paid"`
	FirstMinPartialAmount *int64        `json:"first_min_partial_amount"`
	Status                string        `json:"status"`
	Currency              string        `json:"currency"`
	Description           string        `json:"description"`
	ReferenceID           string        `json:"reference_id"`
	ShortURL              string        `json:"short_url"`
	OrderID               string        `json:"order_id"`
	UserID                string        `json:"user_id"`
	UPILink               bool          `json:"upi_link"`
	WhatsAppLink          bool          `json:"whatsapp_link"`
	AcceptPartial         bool          `json:"accept_partial"`
	ReminderEnable        bool          `json:"reminder_enable"`
	Customer              *Customer     `json:"customer"`
	Payments              []LinkPayment `json:"payments"`
	Notes                 Notes         `json:"notes"`
	Reminders             Reminders     `json:"reminders"`
}

type Customer struct {
	Email   string `json:"email"`
	Contact string `json:"contact"`
}

// LinkPayment is one entry of a link's nested payments array.
type LinkPayment struct {
	PaymentID string `json:"payment_id"`
	Amount    *int64 `json:"amount"`
	Method    string `json:"method"`
	Status    string `json:"status"`
	CreatedAt *int64 `json:"created_at"`
}

// Notes is the arbitrary key→value mapping attached to a link. The API
// serializes an empty mapping as [] and a populated one as an object,
// so a plain map field would fail on the empty case.
type Notes map[string]string

func (n *Notes) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" || strings.HasPrefix(trimmed, "[") {
		*n = nil
		return nil
	}
	m := map[string]string{}
	if err := json.Unmarshal(data, &m); err != nil {
		// Values are occasionally numbers; retry loosely.
		loose := map[string]any{}
		if err2 := json.Unmarshal(data, &loose); err2 != nil {
			return err
		}
		for k, v := range loose {
			if s, ok := v.(string); ok {
				m[k] = s
			} else {
				b, _ := json.Marshal(v)
				m[k] = string(b)
			}
		}
	}
	*n = m
	return nil
}

// Reminders is reported either as an object carrying a status, as an
// empty array, or as null. Only the status string is retained.
type Reminders struct {
	Status string `json:"status"`
}

func (r *Reminders) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" || strings.HasPrefix(trimmed, "[") {
		r.Status = ""
		return nil
	}
	type plain Reminders
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		r.Status = ""
		return nil
	}
	r.Status = p.Status
	return nil
}
