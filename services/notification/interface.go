package notification

import (
	"context"
	"fmt"
	"net/smtp"

	"salonbook/models"
)

// NotificationService delivers a notification for a committed appointment.
// Delivery is best-effort: the booking flow never waits on it and never rolls
// back over a failure.
type NotificationService interface {
	SendAppointmentNotification(ctx context.Context, appt models.Appointment) error
}

// EmailNotificationService is the production implementation. It emails the
// salon owner about every new booking via plain SMTP.
type EmailNotificationService struct {
	Addr      string // host:port of the SMTP relay
	From      string
	To        string // salon owner's address
	SalonName string
}

func NewEmailNotificationService(host, port, from, to, salonName string) (*EmailNotificationService, error) {
	if host == "" || port == "" || to == "" {
		return nil, fmt.Errorf("notification service initialization error: SMTP host, port and recipient are required")
	}
	if from == "" {
		from = "no-reply@salonbook.local"
	}
	return &EmailNotificationService{
		Addr:      host + ":" + port,
		From:      from,
		To:        to,
		SalonName: salonName,
	}, nil
}

// SendAppointmentNotification renders the localized notification and sends it.
func (s *EmailNotificationService) SendAppointmentNotification(ctx context.Context, appt models.Appointment) error {
	subject, body := RenderAppointmentMessage(appt, s.SalonName)

	msg := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s\r\n",
		s.From, s.To, subject, body,
	)
	if err := smtp.SendMail(s.Addr, nil, s.From, []string{s.To}, []byte(msg)); err != nil {
		return fmt.Errorf("SendAppointmentNotification: failed to send email for appointment %s: %w", appt.ID, err)
	}
	return nil
}
