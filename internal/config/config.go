package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config carries every recognized environment option. Sync and report
// need different subsets, so validation is split per pipeline.
type Config struct {
	APIKeyID     string `validate:"required"`
	APIKeySecret string `validate:"required"`

	SheetID            string `validate:"required"`
	ServiceAccountFile string `validate:"required"`
	SheetTab           string
	ReportTab          string

	EmailSender     string
	EmailPassword   string
	ReportRecipient string
	SMTPHost        string
	SMTPPort        int

	ReportRefPrefix string
	Debug           bool
}

func Init() *Config {
	_ = godotenv.Load()

	port, err := strconv.Atoi(getenv("SMTP_PORT", "587"))
	if err != nil {
		port = 587
	}

	return &Config{
		APIKeyID:     os.Getenv("RAZORPAY_KEY_ID"),
		APIKeySecret: os.Getenv("RAZORPAY_KEY_SECRET"),

		SheetID:            os.Getenv("GOOGLE_SHEET_ID"),
		ServiceAccountFile: getenv("GOOGLE_SERVICE_ACCOUNT_FILE", "service_account.json"),
		SheetTab:           getenv("SHEET_TAB", "Payment Links"),
		ReportTab:          getenv("REPORT_TAB", "Partial Payments"),

		EmailSender:     os.Getenv("EMAIL_SENDER"),
		EmailPassword:   os.Getenv("EMAIL_PASSWORD"),
		ReportRecipient: os.Getenv("REPORT_RECIPIENT"),
		SMTPHost:        getenv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:        port,

		ReportRefPrefix: getenv("REPORT_REF_PREFIX", "July"),
		Debug:           isTruthy(os.Getenv("DEBUG")),
	}
}

// ValidateSync checks everything the sync pipeline needs before any
// network call is made.
func (c *Config) ValidateSync() error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("missing configuration (check .env): %w", err)
	}
	if _, err := os.Stat(c.ServiceAccountFile); err != nil {
		return fmt.Errorf("service account file %q: %w", c.ServiceAccountFile, err)
	}
	return nil
}

// ValidateReport checks the sheet settings and, when the notifier will
// run, the mail settings. Sender, password and recipient must be
// printable ASCII: anything else would be silently mis-encoded at the
// SMTP layer, so it is rejected before any connection attempt.
func (c *Config) ValidateReport(withEmail bool) error {
	var errs []error

	if c.SheetID == "" {
		errs = append(errs, errors.New("GOOGLE_SHEET_ID is not set"))
	}
	if _, err := os.Stat(c.ServiceAccountFile); err != nil {
		errs = append(errs, fmt.Errorf("service account file %q: %w", c.ServiceAccountFile, err))
	}

	if withEmail {
		errs = append(errs, c.ValidateMail()...)
	}

	return errors.Join(errs...)
}

func (c *Config) ValidateMail() []error {
	var errs []error

	v := validator.New()
	if err := v.Var(c.EmailSender, "required,email"); err != nil {
		errs = append(errs, fmt.Errorf("EMAIL_SENDER %q is not a valid address", c.EmailSender))
	}
	if err := v.Var(c.ReportRecipient, "required,email"); err != nil {
		errs = append(errs, fmt.Errorf("REPORT_RECIPIENT %q is not a valid address", c.ReportRecipient))
	}
	if c.EmailPassword == "" {
		errs = append(errs, errors.New("EMAIL_PASSWORD is not set"))
	}

	for _, check := range []struct {
		name string
		val  string
	}{
		{"EMAIL_SENDER", c.EmailSender},
		{"EMAIL_PASSWORD", c.EmailPassword},
		{"REPORT_RECIPIENT", c.ReportRecipient},
	} {
		if !printableASCII(check.val) {
			errs = append(errs, fmt.Errorf("%s contains non-ASCII characters", check.name))
		}
	}

	return errs
}

func printableASCII(s string) bool {
	for _, r := range s {
		if r < 0x20 || r > 0x7e {
			return false
		}
	}
	return true
}

func isTruthy(s string) bool {
	switch s {
	case "true", "True", "TRUE", "1", "yes", "Yes":
		return true
	}
	return false
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
