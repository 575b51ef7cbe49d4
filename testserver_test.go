package tempmail

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"
)

// fakeAttachment mirrors the service's attachment wire format.
type fakeAttachment struct {
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
	Size        int    `json:"size"`
}

// fakeMessage mirrors the service's readMessage wire format.
type fakeMessage struct {
	ID          int              `json:"id"`
	From        string           `json:"from"`
	Subject     string           `json:"subject"`
	Date        string           `json:"date"`
	Body        string           `json:"body"`
	TextBody    string           `json:"textBody"`
	HTMLBody    string           `json:"htmlBody"`
	Attachments []fakeAttachment `json:"attachments"`
}

// fakeService emulates the 1secmail ?action= API for tests.
type fakeService struct {
	mu          sync.Mutex
	domains     []string
	messages    map[string][]fakeMessage // keyed by login@domain
	attachments map[int]map[string][]byte

	listCalls     int
	readCalls     int
	downloadCalls int

	// failList makes getMessages respond with this status when nonzero.
	failList int
}

func newFakeService() *fakeService {
	return &fakeService{
		domains:     []string{"1secmail.com", "1secmail.org", "1secmail.net"},
		messages:    make(map[string][]fakeMessage),
		attachments: make(map[int]map[string][]byte),
	}
}

func (f *fakeService) addMessage(address string, msg fakeMessage) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages[address] = append(f.messages[address], msg)
}

func (f *fakeService) addAttachment(messageID int, filename string, content []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.attachments[messageID] == nil {
		f.attachments[messageID] = make(map[string][]byte)
	}
	f.attachments[messageID][filename] = content
}

func (f *fakeService) listCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listCalls
}

func (f *fakeService) readCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.readCalls
}

func (f *fakeService) downloadCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.downloadCalls
}

func (f *fakeService) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()

		q := r.URL.Query()
		address := q.Get("login") + "@" + q.Get("domain")

		switch q.Get("action") {
		case "getDomainList":
			json.NewEncoder(w).Encode(f.domains)

		case "genRandomMailbox":
			json.NewEncoder(w).Encode([]string{"generated" + "@" + f.domains[0]})

		case "getMessages":
			if f.failList != 0 {
				w.WriteHeader(f.failList)
				return
			}
			f.listCalls++
			type summary struct {
				ID      int    `json:"id"`
				From    string `json:"from"`
				Subject string `json:"subject"`
				Date    string `json:"date"`
			}
			summaries := make([]summary, 0, len(f.messages[address]))
			for _, m := range f.messages[address] {
				summaries = append(summaries, summary{ID: m.ID, From: m.From, Subject: m.Subject, Date: m.Date})
			}
			json.NewEncoder(w).Encode(summaries)

		case "readMessage":
			f.readCalls++
			id, _ := strconv.Atoi(q.Get("id"))
			for _, m := range f.messages[address] {
				if m.ID == id {
					json.NewEncoder(w).Encode(m)
					return
				}
			}
			w.Write([]byte("Message not found"))

		case "download":
			f.downloadCalls++
			id, _ := strconv.Atoi(q.Get("id"))
			files, ok := f.attachments[id]
			if !ok {
				w.Write([]byte("Message not found"))
				return
			}
			content, ok := files[q.Get("file")]
			if !ok {
				w.Write([]byte("File not found"))
				return
			}
			w.Write(content)

		default:
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte("Bad request"))
		}
	}
}

// newTestClient starts a fake service and returns a client pointed at
// it with a short poll interval suitable for tests.
func newTestClient(t *testing.T, f *fakeService, opts ...Option) *Client {
	t.Helper()

	server := httptest.NewServer(f.handler())
	t.Cleanup(server.Close)

	opts = append([]Option{
		WithBaseURL(server.URL),
		WithDefaultPollInterval(10 * time.Millisecond),
	}, opts...)

	return New(opts...)
}

// testDate is a fixture timestamp in the service's format.
const testDate = "2021-06-13 12:45:48"
