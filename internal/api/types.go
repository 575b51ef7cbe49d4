package api

// Wire types for the 1secmail JSON API. Field names mirror the service
// responses exactly.

// MessageSummary is one entry of a getMessages response.
type MessageSummary struct {
	ID      int    `json:"id"`
	From    string `json:"from"`
	Subject string `json:"subject"`
	Date    string `json:"date"`
}

// Message is a readMessage response.
type Message struct {
	ID          int          `json:"id"`
	From        string       `json:"from"`
	Subject     string       `json:"subject"`
	Date        string       `json:"date"`
	Body        string       `json:"body"`
	TextBody    string       `json:"textBody"`
	HTMLBody    string       `json:"htmlBody"`
	Attachments []Attachment `json:"attachments"`
}

// Attachment is one entry of a message's attachments list.
type Attachment struct {
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
	Size        int    `json:"size"`
}

// DateLayout is the timestamp format used by the service,
// e.g. "2021-06-13 12:45:48". Timestamps carry no zone information.
const DateLayout = "2006-01-02 15:04:05"
