// Package notify delivers selection status changes to customers over the
// configured transport.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/polkiloo/servicebooking/internal/domain/model"
)

// Notifier delivers status changes. Close releases transport resources.
type Notifier interface {
	NotifyStatusChange(ctx context.Context, change model.StatusChange) error
	Close() error
}

// Message is a rendered customer email.
type Message struct {
	Subject string
	HTML    string
}

var statusEmail = template.Must(template.New("status").Parse(`<p>Dear {{.Name}},</p>
<p>We wanted to inform you that the status of your Service <strong>#{{.ID}}</strong> has been updated to:</p>
<h3 style="color: #007bff;">{{.Status}}</h3>
{{if .Completed}}<p>Thank you for using our services. Your Service has been completed successfully!</p>{{else}}<p>You will be notified as it progresses further.</p>{{end}}
<br/>
<p>Regards,<br/>Your Store Team</p>
`))

// ComposeStatusEmail renders the customer email for change.
func ComposeStatusEmail(change model.StatusChange) (Message, error) {
	name := strings.TrimSpace(change.Name)
	if name == "" {
		name = "Customer"
	}
	var body bytes.Buffer
	err := statusEmail.Execute(&body, struct {
		Name      string
		ID        string
		Status    string
		Completed bool
	}{
		Name:      name,
		ID:        change.SelectionID.String(),
		Status:    strings.ToUpper(string(change.Status)),
		Completed: change.Status == model.SelectionStatusCompleted,
	})
	if err != nil {
		return Message{}, fmt.Errorf("render status email: %w", err)
	}
	return Message{
		Subject: fmt.Sprintf("Your Service #%s Status Updated", change.SelectionID),
		HTML:    body.String(),
	}, nil
}

// statusEvent is the wire form published by webhook, AMQP and Kafka notifiers.
type statusEvent struct {
	SelectionID string    `json:"selectionId"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	Status      string    `json:"status"`
	ChangedAt   time.Time `json:"changedAt"`
	Subject     string    `json:"subject"`
}

func encodeEvent(change model.StatusChange) ([]byte, error) {
	msg, err := ComposeStatusEmail(change)
	if err != nil {
		return nil, err
	}
	return json.Marshal(statusEvent{
		SelectionID: change.SelectionID.String(),
		Email:       change.Email,
		Name:        change.Name,
		Status:      string(change.Status),
		ChangedAt:   change.ChangedAt,
		Subject:     msg.Subject,
	})
}

func routingKey(status model.SelectionStatus) string {
	return "selection.status." + strings.ToLower(string(status))
}
