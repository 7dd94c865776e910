package service

import (
	"context"
	"fmt"

	"equiptrack-backend/internal/utils"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// emailService delivers operational notices through SendGrid. Borrowers are
// identified by RFID only, so borrower-facing notices go to the admin
// mailbox for the kiosk attendant to relay.
type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
	adminTo   string
}

func NewEmailService(apiKey, fromEmail, fromName, adminTo string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
		adminTo:   adminTo,
	}
}

func (s *emailService) send(subject, body string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail("Equipment Admin", s.adminTo)

	message := mail.NewSingleEmail(from, subject, recipient, body, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func (s *emailService) SendPenaltyNotice(ctx context.Context, borrowerRFID, equipmentName string, amountCents int64, daysOverdue int32) error {
	subject := fmt.Sprintf("Penalty recorded for %s", equipmentName)
	body := fmt.Sprintf(
		"A penalty of %s has been recorded against borrower %s for %s.",
		utils.FormatCents(amountCents), borrowerRFID, equipmentName)
	if daysOverdue > 0 {
		body += fmt.Sprintf(" The item is %d day(s) overdue.", daysOverdue)
	}
	return s.send(subject, body)
}

func (s *emailService) SendRejectionNotice(ctx context.Context, borrowerRFID, equipmentName, reason string) error {
	subject := fmt.Sprintf("Borrow request rejected: %s", equipmentName)
	body := fmt.Sprintf(
		"The borrow request by %s for %s was rejected.\n\nReason: %s",
		borrowerRFID, equipmentName, reason)
	return s.send(subject, body)
}

func (s *emailService) SendLowStockAlert(ctx context.Context, equipmentName string, available, minimum int32) error {
	subject := fmt.Sprintf("Stock alert: %s", equipmentName)
	body := fmt.Sprintf(
		"%s has %d unit(s) available; the minimum stock level is %d.",
		equipmentName, available, minimum)
	return s.send(subject, body)
}

func (s *emailService) SendOverdueReminder(ctx context.Context, borrowerRFID, equipmentName string, daysOverdue int32) error {
	subject := fmt.Sprintf("Overdue: %s", equipmentName)
	body := fmt.Sprintf(
		"Borrower %s has not returned %s; it is %d day(s) overdue.",
		borrowerRFID, equipmentName, daysOverdue)
	return s.send(subject, body)
}
