// Package mailer sends shipment notification emails. It is optional: when no
// SMTP host is configured the mailer is nil and callers skip it.
package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/prathyu116/NGO-RESOURCE-CLIENT/config"
	"github.com/prathyu116/NGO-RESOURCE-CLIENT/models"
)

type Mailer struct {
	host       string
	port       int
	sender     string
	password   string
	recipients []string
}

// NewFromConfig builds a mailer from the loaded config, or nil when SMTP is
// not configured.
func NewFromConfig() *Mailer {
	if config.SMTPHost == "" || len(config.NotifyEmails) == 0 {
		return nil
	}
	return &Mailer{
		host:       config.SMTPHost,
		port:       config.SMTPPort,
		sender:     config.SMTPSender,
		password:   config.SMTPPassword,
		recipients: config.NotifyEmails,
	}
}

// SendShipmentDelivered notifies the configured recipients that a shipment
// reached its destination.
func (m *Mailer) SendShipmentDelivered(record models.LogisticsRecord) error {
	subject := "📦 Shipment delivered: " + record.ItemName

	body := fmt.Sprintf(`
		<html>
			<body>
				<h3>Shipment delivered</h3>
				<p>Item: <strong>%s</strong> (%s)</p>
				<p>Quantity: <strong>%d</strong></p>
				<p>Destination: <strong>%s</strong></p>
				<p>This is an auto-generated email. Please do not reply to this email or its recipients.</p>
			</body>
		</html>
	`, record.ItemName, record.Category, record.QuantityShipped, record.Destination)

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.sender)
	msg.SetHeader("To", m.recipients...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	dialer := gomail.NewDialer(m.host, m.port, m.sender, m.password)
	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("sending shipment notification: %w", err)
	}
	return nil
}
