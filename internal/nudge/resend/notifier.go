package resend

import (
	"fmt"
	"strings"

	"github.com/resend/resend-go/v2"
)

// Notifier delivers nudges by email through Resend.
type Notifier struct {
	APIKey string
	From   string
	To     string
}

func (n *Notifier) SendNudge(habitNames []string) error {
	var b strings.Builder
	b.WriteString("<p>These streaks expire at midnight:</p><ul>")
	for _, name := range habitNames {
		b.WriteString("<li>" + name + "</li>")
	}
	b.WriteString("</ul>")

	client := resend.NewClient(n.APIKey)
	_, err := client.Emails.Send(&resend.SendEmailRequest{
		From:    n.From,
		To:      []string{n.To},
		Subject: fmt.Sprintf("streaks: %d habit(s) need a completion today", len(habitNames)),
		Html:    b.String(),
	})
	return err
}
