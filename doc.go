// Package tempmail provides a Go client for the 1secmail disposable
// email service: it generates throwaway addresses, lists inbox
// messages, fetches bodies and attachments, and polls for new mail
// until a matching message arrives or a timeout elapses.
//
// Basic usage:
//
//	client := tempmail.New()
//
//	mailbox, err := client.CreateMailbox(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Address:", mailbox.Address())
//
//	// ... request some email ...
//
//	msg, err := mailbox.WaitForMessage(ctx,
//	    tempmail.WithWaitTimeout(2*time.Minute),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Subject:", msg.Subject)
package tempmail
