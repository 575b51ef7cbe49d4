package tempmail

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestCreateMailbox_RandomAddress(t *testing.T) {
	t.Parallel()
	client := newTestClient(t, newFakeService())

	mailbox, err := client.CreateMailbox(context.Background())
	if err != nil {
		t.Fatalf("CreateMailbox() error = %v", err)
	}

	if len(mailbox.Login()) != loginLength {
		t.Errorf("Login() length = %d, want %d", len(mailbox.Login()), loginLength)
	}
	for _, r := range mailbox.Login() {
		if r < 'a' || r > 'z' {
			t.Errorf("Login() = %q, want lowercase letters only", mailbox.Login())
			break
		}
	}
	if !strings.HasPrefix(mailbox.Domain(), "1secmail.") {
		t.Errorf("Domain() = %q, want one of the allowed domains", mailbox.Domain())
	}
	if mailbox.Address() != mailbox.Login()+"@"+mailbox.Domain() {
		t.Errorf("Address() = %q, want login@domain", mailbox.Address())
	}
}

func TestCreateMailbox_WithAddress(t *testing.T) {
	t.Parallel()
	client := newTestClient(t, newFakeService())

	mailbox, err := client.CreateMailbox(context.Background(), WithAddress("qwerty123@1secmail.com"))
	if err != nil {
		t.Fatalf("CreateMailbox() error = %v", err)
	}

	if mailbox.Login() != "qwerty123" {
		t.Errorf("Login() = %q, want qwerty123", mailbox.Login())
	}
	if mailbox.Domain() != "1secmail.com" {
		t.Errorf("Domain() = %q, want 1secmail.com", mailbox.Domain())
	}
	if got := mailbox.String(); got != "qwerty123@1secmail.com" {
		t.Errorf("String() = %q, want qwerty123@1secmail.com", got)
	}
}

func TestCreateMailbox_MalformedAddress(t *testing.T) {
	t.Parallel()
	client := newTestClient(t, newFakeService())

	for _, address := range []string{"no-at-sign", "@1secmail.com", "login@"} {
		if _, err := client.CreateMailbox(context.Background(), WithAddress(address)); err == nil {
			t.Errorf("CreateMailbox(WithAddress(%q)) should return error", address)
		}
	}
}

func TestCreateMailbox_WithLoginAndDomain(t *testing.T) {
	t.Parallel()
	client := newTestClient(t, newFakeService())

	mailbox, err := client.CreateMailbox(context.Background(),
		WithLogin("myname"),
		WithDomain("1secmail.org"),
	)
	if err != nil {
		t.Fatalf("CreateMailbox() error = %v", err)
	}
	if mailbox.Address() != "myname@1secmail.org" {
		t.Errorf("Address() = %q, want myname@1secmail.org", mailbox.Address())
	}
}

func TestCreateMailbox_InvalidDomain(t *testing.T) {
	t.Parallel()
	client := newTestClient(t, newFakeService())

	_, err := client.CreateMailbox(context.Background(), WithDomain("gmail.com"))
	if !errors.Is(err, ErrInvalidDomain) {
		t.Fatalf("CreateMailbox() error = %v, want ErrInvalidDomain", err)
	}
}

func TestCreateMailbox_ServerGenerated(t *testing.T) {
	t.Parallel()
	client := newTestClient(t, newFakeService())

	mailbox, err := client.CreateMailbox(context.Background(), WithServerGenerated())
	if err != nil {
		t.Fatalf("CreateMailbox() error = %v", err)
	}
	if mailbox.Login() != "generated" {
		t.Errorf("Login() = %q, want generated", mailbox.Login())
	}
	if mailbox.Domain() != "1secmail.com" {
		t.Errorf("Domain() = %q, want 1secmail.com", mailbox.Domain())
	}
}

func TestDomains_CachedAcrossCalls(t *testing.T) {
	t.Parallel()
	client := newTestClient(t, newFakeService())
	ctx := context.Background()

	first, err := client.Domains(ctx)
	if err != nil {
		t.Fatalf("Domains() error = %v", err)
	}
	if len(first) != 3 {
		t.Fatalf("len(domains) = %d, want 3", len(first))
	}

	// Creating mailboxes must reuse the cached list; mutating the
	// returned slice must not corrupt the cache.
	first[0] = "mutated"

	second, err := client.Domains(ctx)
	if err != nil {
		t.Fatalf("Domains() error = %v", err)
	}
	if second[0] != "1secmail.com" {
		t.Errorf("domains[0] = %q, want 1secmail.com (cache must be isolated)", second[0])
	}
}

func TestRandomLogin(t *testing.T) {
	t.Parallel()
	login := randomLogin(loginLength)
	if len(login) != loginLength {
		t.Fatalf("len(login) = %d, want %d", len(login), loginLength)
	}
	for _, r := range login {
		if r < 'a' || r > 'z' {
			t.Fatalf("login = %q, want lowercase letters only", login)
		}
	}
}
