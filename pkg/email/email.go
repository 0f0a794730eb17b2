package email

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"
	"mime/multipart"
	"net/smtp"
	"net/textproto"
)

// EmailConfig holds SMTP configuration
type EmailConfig struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromName     string
	FromEmail    string
}

// EmailService handles email sending
type EmailService struct {
	config EmailConfig
}

// NewEmailService creates a new email service
func NewEmailService(config EmailConfig) *EmailService {
	return &EmailService{config: config}
}

// IsConfigured returns true if an SMTP host has been set.
func (s *EmailService) IsConfigured() bool {
	return s.config.SMTPHost != ""
}

// InvoiceEmail describes an invoice delivery to a customer.
type InvoiceEmail struct {
	To            string
	CustomerName  string
	InvoiceNumber string
	InvoiceDate   string
	TotalAmount   string
	GarageName    string

	// PDF attachment
	Filename string
	PDF      []byte
}

// SendInvoiceEmail sends an invoice to the customer with the PDF attached
func (s *EmailService) SendInvoiceEmail(in InvoiceEmail) error {
	htmlContent, err := s.renderInvoiceEmail(in)
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	subject := fmt.Sprintf("Invoice %s from %s", in.InvoiceNumber, in.GarageName)
	message, err := s.buildEmailWithAttachment(in.To, subject, htmlContent, in.Filename, in.PDF)
	if err != nil {
		return fmt.Errorf("failed to build email: %w", err)
	}

	return s.sendEmail(in.To, message)
}

// sendEmail sends an email using SMTP
func (s *EmailService) sendEmail(to string, message []byte) error {
	addr := fmt.Sprintf("%s:%d", s.config.SMTPHost, s.config.SMTPPort)

	// Gmail requires TLS authentication
	auth := smtp.PlainAuth("", s.config.SMTPUsername, s.config.SMTPPassword, s.config.SMTPHost)

	err := smtp.SendMail(addr, auth, s.config.FromEmail, []string{to}, message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// buildEmailWithAttachment builds a multipart/mixed message carrying an
// HTML body and one PDF attachment.
func (s *EmailService) buildEmailWithAttachment(to, subject, htmlBody, filename string, attachment []byte) ([]byte, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	headers := fmt.Sprintf(
		"From: %s <%s>\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: multipart/mixed; boundary=%q\r\n"+
			"\r\n",
		s.config.FromName,
		s.config.FromEmail,
		to,
		subject,
		writer.Boundary(),
	)
	buf2 := bytes.NewBufferString(headers)

	bodyHeader := textproto.MIMEHeader{}
	bodyHeader.Set("Content-Type", `text/html; charset="UTF-8"`)
	bodyPart, err := writer.CreatePart(bodyHeader)
	if err != nil {
		return nil, err
	}
	if _, err := bodyPart.Write([]byte(htmlBody)); err != nil {
		return nil, err
	}

	attachHeader := textproto.MIMEHeader{}
	attachHeader.Set("Content-Type", "application/pdf")
	attachHeader.Set("Content-Transfer-Encoding", "base64")
	attachHeader.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	attachPart, err := writer.CreatePart(attachHeader)
	if err != nil {
		return nil, err
	}

	encoded := base64.StdEncoding.EncodeToString(attachment)
	// Fold base64 at 76 characters per RFC 2045
	for len(encoded) > 76 {
		if _, err := attachPart.Write([]byte(encoded[:76] + "\r\n")); err != nil {
			return nil, err
		}
		encoded = encoded[76:]
	}
	if _, err := attachPart.Write([]byte(encoded + "\r\n")); err != nil {
		return nil, err
	}

	if err := writer.Close(); err != nil {
		return nil, err
	}

	buf2.Write(buf.Bytes())
	return buf2.Bytes(), nil
}

// renderInvoiceEmail renders the invoice email template
func (s *EmailService) renderInvoiceEmail(in InvoiceEmail) (string, error) {
	tmpl, err := template.New("invoice").Parse(invoiceEmailTemplate)
	if err != nil {
		return "", err
	}

	data := struct {
		CustomerName  string
		InvoiceNumber string
		InvoiceDate   string
		TotalAmount   string
		GarageName    string
	}{
		CustomerName:  in.CustomerName,
		InvoiceNumber: in.InvoiceNumber,
		InvoiceDate:   in.InvoiceDate,
		TotalAmount:   in.TotalAmount,
		GarageName:    in.GarageName,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// invoiceEmailTemplate is the HTML template for invoice delivery emails
const invoiceEmailTemplate = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Your Invoice</title>
</head>
<body style="margin: 0; padding: 0; font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; background-color: #f4f7fa;">
    <table role="presentation" style="width: 100%; border-collapse: collapse;">
        <tr>
            <td style="padding: 40px 0;">
                <table role="presentation" style="max-width: 600px; margin: 0 auto; background-color: #ffffff; border-radius: 12px; overflow: hidden; box-shadow: 0 4px 6px rgba(0, 0, 0, 0.1);">
                    <!-- Header -->
                    <tr>
                        <td style="background: linear-gradient(135deg, #1e3c72 0%, #2a5298 100%); padding: 40px 30px; text-align: center;">
                            <h1 style="color: #ffffff; margin: 0; font-size: 28px; font-weight: 600;">{{.GarageName}}</h1>
                        </td>
                    </tr>

                    <!-- Content -->
                    <tr>
                        <td style="padding: 40px 30px;">
                            <h2 style="color: #1a1a2e; margin: 0 0 20px 0; font-size: 24px; font-weight: 600;">Invoice {{.InvoiceNumber}}</h2>

                            <p style="color: #4a5568; font-size: 16px; line-height: 1.6; margin: 0 0 20px 0;">
                                Dear {{.CustomerName}},
                            </p>

                            <p style="color: #4a5568; font-size: 16px; line-height: 1.6; margin: 0 0 20px 0;">
                                Thank you for choosing us for your vehicle service. Please find your invoice attached to this email.
                            </p>

                            <table role="presentation" style="width: 100%; border-collapse: collapse; margin: 0 0 30px 0; background-color: #f8fafc; border-radius: 8px;">
                                <tr>
                                    <td style="padding: 20px;">
                                        <p style="color: #718096; font-size: 14px; margin: 0 0 5px 0;">Invoice Number</p>
                                        <p style="color: #1a1a2e; font-size: 16px; font-weight: 600; margin: 0 0 15px 0;">{{.InvoiceNumber}}</p>
                                        <p style="color: #718096; font-size: 14px; margin: 0 0 5px 0;">Invoice Date</p>
                                        <p style="color: #1a1a2e; font-size: 16px; font-weight: 600; margin: 0 0 15px 0;">{{.InvoiceDate}}</p>
                                        <p style="color: #718096; font-size: 14px; margin: 0 0 5px 0;">Total Amount</p>
                                        <p style="color: #1a1a2e; font-size: 20px; font-weight: 700; margin: 0;">Rs. {{.TotalAmount}}</p>
                                    </td>
                                </tr>
                            </table>

                            <p style="color: #718096; font-size: 14px; line-height: 1.6; margin: 0;">
                                If you have any questions about this invoice, simply reply to this email.
                            </p>
                        </td>
                    </tr>

                    <!-- Footer -->
                    <tr>
                        <td style="background-color: #f8fafc; padding: 30px; text-align: center; border-top: 1px solid #e2e8f0;">
                            <p style="color: #a0aec0; font-size: 14px; margin: 0 0 10px 0;">
                                This email was sent by {{.GarageName}}
                            </p>
                            <p style="color: #cbd5e0; font-size: 12px; margin: 0;">
                                Thank you for your business.
                            </p>
                        </td>
                    </tr>
                </table>
            </td>
        </tr>
    </table>
</body>
</html>
`
