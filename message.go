package tempmail

import (
	"time"

	"github.com/cubicbyte/tempmail-go/internal/api"
)

// MessageSummary is an inbox listing entry. It carries the message
// envelope without the body; use Mailbox.GetMessage to fetch the full
// message.
type MessageSummary struct {
	ID      int
	From    string
	Subject string
	Date    time.Time
}

// Message is a fully fetched message. It is a pure data struct;
// operations that talk to the service, such as downloading an
// attachment, live on Mailbox.
type Message struct {
	ID      int
	From    string
	Subject string
	Date    time.Time

	// Body is the content the service considers primary, usually the
	// HTML part when one exists and the text part otherwise.
	Body     string
	TextBody string
	HTMLBody string

	// Attachments are lazy references; no content is fetched until
	// explicitly downloaded.
	Attachments []Attachment
}

// Attachment is a reference to an attachment on a message. Downloading
// returns the raw bytes; content is never cached.
type Attachment struct {
	Filename    string
	ContentType string
	Size        int
}

// parseDate converts a service timestamp. The service reports naive
// local timestamps; they are interpreted as UTC.
func parseDate(raw string) (time.Time, error) {
	t, err := time.Parse(api.DateLayout, raw)
	if err != nil {
		return time.Time{}, &ParseError{Op: "date", Err: err}
	}
	return t, nil
}

func summaryFromAPI(s *api.MessageSummary) (*MessageSummary, error) {
	date, err := parseDate(s.Date)
	if err != nil {
		return nil, err
	}
	return &MessageSummary{
		ID:      s.ID,
		From:    s.From,
		Subject: s.Subject,
		Date:    date,
	}, nil
}

func messageFromAPI(m *api.Message) (*Message, error) {
	date, err := parseDate(m.Date)
	if err != nil {
		return nil, err
	}

	attachments := make([]Attachment, 0, len(m.Attachments))
	for _, a := range m.Attachments {
		attachments = append(attachments, Attachment{
			Filename:    a.Filename,
			ContentType: a.ContentType,
			Size:        a.Size,
		})
	}

	return &Message{
		ID:          m.ID,
		From:        m.From,
		Subject:     m.Subject,
		Date:        date,
		Body:        m.Body,
		TextBody:    m.TextBody,
		HTMLBody:    m.HTMLBody,
		Attachments: attachments,
	}, nil
}
