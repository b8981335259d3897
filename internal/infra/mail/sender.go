package mail

import (
	"bytes"
	"fmt"
	"path/filepath"
	"text/template"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/dthstore/dthstore-api/internal/entity"
)

func NewSender(host string, port int, user, password, from string) *Sender {
	return &Sender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

// Configured reports whether an SMTP server was provided at all.
func (s *Sender) Configured() bool {
	return s != nil && s.Host != ""
}

// SendLeadAlert mails the admin a formatted lead card.
func (s *Sender) SendLeadAlert(to string, lead *entity.Lead) error {
	data := LeadAlertData{
		Name:     lead.Name,
		Mobile:   lead.Mobile,
		Location: lead.Location,
		Service:  string(lead.ServiceType),
		Operator: string(lead.Operator),
		Source:   string(lead.Source),
		Time:     time.UnixMilli(lead.CreatedAt).Format("02 Jan 2006, 3:04 PM"),
	}

	tmplPath := filepath.Join("templates", "lead_alert.html")
	t, err := template.ParseFiles(tmplPath)
	if err != nil {
		return fmt.Errorf("failed to read mail template: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to render mail template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("🔔 New Lead: %s - %s", lead.Name, lead.ServiceType))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send SMTP mail: %w", err)
	}

	return nil
}
