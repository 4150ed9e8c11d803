package mail

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"

	"go.uber.org/zap"

	"github.com/ManuelReschke/StudioSite/app/models"
	"github.com/ManuelReschke/StudioSite/internal/pkg/logger"
)

var contactTemplate = template.Must(template.New("contact").Parse(`<h2>New contact request</h2>
<table>
<tr><td>Name</td><td>{{.Name}}</td></tr>
<tr><td>Email</td><td>{{.Email}}</td></tr>
<tr><td>Service</td><td>{{.Service}}</td></tr>
{{if .Company}}<tr><td>Company</td><td>{{.Company}}</td></tr>{{end}}
{{if .Phone}}<tr><td>Phone</td><td>{{.Phone}}</td></tr>{{end}}
{{if .Budget}}<tr><td>Budget</td><td>{{.Budget}}</td></tr>{{end}}
{{if .Timeline}}<tr><td>Timeline</td><td>{{.Timeline}}</td></tr>{{end}}
{{if .QuoteUUID}}<tr><td>Quote</td><td>{{.QuoteUUID}}</td></tr>{{end}}
</table>
<p>{{.Message}}</p>
`))

// Notifier tells the studio about new leads.
type Notifier struct {
	sender Sender
	to     string
}

func NewNotifier(sender Sender, to string) *Notifier {
	return &Notifier{sender: sender, to: to}
}

// RenderContactRequest returns the subject and HTML body for a lead.
func RenderContactRequest(req *models.ContactRequest) (string, string, error) {
	var buf bytes.Buffer
	if err := contactTemplate.Execute(&buf, req); err != nil {
		return "", "", fmt.Errorf("render contact mail: %w", err)
	}
	return fmt.Sprintf("New contact request: %s (%s)", req.Name, req.Service), buf.String(), nil
}

// NotifyContactRequest sends the lead mail. A missing recipient or SMTP
// configuration is logged and skipped.
func (n *Notifier) NotifyContactRequest(req *models.ContactRequest) error {
	if n == nil || n.to == "" {
		logger.L().Info("contact notification skipped, no recipient configured")
		return nil
	}

	subject, body, err := RenderContactRequest(req)
	if err != nil {
		return err
	}

	err = n.sender.Send(n.to, subject, body)
	if errors.Is(err, ErrNotConfigured) {
		logger.L().Info("contact notification skipped, smtp not configured")
		return nil
	}
	return err
}

// NotifyContactRequestAsync sends the lead mail in the background.
func (n *Notifier) NotifyContactRequestAsync(req *models.ContactRequest) {
	go func() {
		if err := n.NotifyContactRequest(req); err != nil {
			logger.L().Error("contact notification failed", zap.Uint("lead_id", req.ID), zap.Error(err))
		}
	}()
}
