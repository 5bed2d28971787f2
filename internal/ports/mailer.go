package ports

type Mailer interface {
	Send(subject, body string) error
	// SelfTest dials, authenticates and sends a fixed test message
	// without touching the rest of the pipeline.
	SelfTest() error
}
