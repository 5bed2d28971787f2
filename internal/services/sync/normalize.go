package sync

import (
	"strconv"

	"paylink_sync/internal/models"
)

// Header is the fixed 26-column schema of the primary worksheet.
// Normalize emits cells in exactly this order.
func Header() []string {
	return []string{
		"ID", "Created At (UTC)", "Updated At (UTC)", "Amount (₹)", "Amount Paid (₹)",
		"Status", "Currency", "Description", "Reference ID", "Short URL",
		"UPI Link", "WhatsApp Link", "Accept Partial", "First Min Partial Amount (₹)",
		"Customer Email", "Customer Contact", "Order ID", "User ID",
		"Cancelled At (UTC)", "Expire By (UTC)", "Expired At (UTC)",
		"Reminder Enable", "Reminder Status", "Payments Count",
		"Payments Details", "Notes",
	}
}

// Normalize flattens one raw record into a row matching Header. Pure:
// no I/O, deterministic, and total — every optional or nested field
// missing upstream lands as its defined default, never an error.
func Normalize(link models.PaymentLink) []string {
	var email, contact string
	if link.Customer != nil {
		email = link.Customer.Email
		contact = link.Customer.Contact
	}

	return []string{
		link.ID,
		formatTimestamp(link.CreatedAt),
		formatTimestamp(link.UpdatedAt),
		formatAmount(link.Amount),
		formatAmount(link.AmountPaid),
		link.Status,
		link.Currency,
		link.Description,
		link.ReferenceID,
		link.ShortURL,
		yesNo(link.UPILink),
		yesNo(link.WhatsAppLink),
		yesNo(link.AcceptPartial),
		formatAmount(link.FirstMinPartialAmount),
		email,
		contact,
		link.OrderID,
		link.UserID,
		formatTimestamp(link.CancelledAt),
		formatTimestamp(link.ExpireBy),
		formatTimestamp(link.ExpiredAt),
		yesNo(link.ReminderEnable),
		link.Reminders.Status,
		strconv.Itoa(len(link.Payments)),
		paymentsSummary(link.Payments),
		notesSummary(link.Notes),
	}
}
