// Package notify delivers price alert emails over SMTP.
package notify

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/smtp"

	"eurocompare/internal/marketplace"
	"eurocompare/internal/platform/models"

	"github.com/rs/zerolog"
)

// Config is the SMTP delivery configuration. Delivery is disabled when
// host or sender are missing.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Enabled reports whether the configuration is complete enough to send.
func (c Config) Enabled() bool {
	return c.Host != "" && c.From != ""
}

var alertBody = template.Must(template.New("alert").Parse(`<!doctype html>
<html>
  <body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
    <h1>Price alert</h1>
    <p>The product you are watching dropped below your target price.</p>
    {{if .ProductImage}}<img src="{{.ProductImage}}" alt="{{.ProductName}}" style="width: 150px; height: 150px; object-fit: contain;">{{end}}
    <h2>{{.ProductName}}</h2>
    <table>
      <tr><td>Target price:</td><td>{{printf "%.2f" .TargetPrice}}&euro;</td></tr>
      <tr><td>Current price:</td><td><strong>{{printf "%.2f" .CurrentPrice}}&euro;</strong></td></tr>
      <tr><td>You save:</td><td><strong>{{printf "%.2f" .Savings}}&euro;</strong></td></tr>
    </table>
    <p><a href="{{.ProductURL}}">Buy now on {{.CountryName}} {{.Flag}}</a></p>
    <p style="color: #718096; font-size: 0.9rem;">
      This alert has been deactivated now that it fired. Create a new one to keep watching the price.
    </p>
  </body>
</html>`))

type alertMail struct {
	ProductName  string
	ProductImage string
	TargetPrice  float64
	CurrentPrice float64
	Savings      float64
	ProductURL   string
	CountryName  string
	Flag         string
}

// EmailNotifier sends alert emails over SMTP. With an incomplete
// configuration it logs and drops every mail instead of failing, so
// alerts still get claimed in development setups.
type EmailNotifier struct {
	config Config
	logger zerolog.Logger
	send   func(addr string, auth smtp.Auth, from string, to []string, msg []byte) error
}

// NewEmailNotifier returns new EmailNotifier.
func NewEmailNotifier(config Config, logger zerolog.Logger) *EmailNotifier {
	return &EmailNotifier{
		config: config,
		logger: logger,
		send:   smtp.SendMail,
	}
}

// Send delivers the triggered alert to its owner.
func (e *EmailNotifier) Send(ctx context.Context, alert models.PriceAlert, currentPrice, savings float64) error {
	if !e.config.Enabled() {
		e.logger.Warn().
			Int64("alertID", alert.ID).
			Str("email", alert.Email).
			Msg("email delivery disabled, dropping alert notification")
		return nil
	}

	body, err := e.renderBody(alert, currentPrice, savings)
	if err != nil {
		return fmt.Errorf("can't render alert mail: %w", err)
	}

	subject := fmt.Sprintf("Price alert - %s", alert.ProductName)
	msg := buildMessage(e.config.From, alert.Email, subject, body)

	addr := fmt.Sprintf("%s:%d", e.config.Host, e.config.Port)
	var auth smtp.Auth
	if e.config.Username != "" && e.config.Password != "" {
		auth = smtp.PlainAuth("", e.config.Username, e.config.Password, e.config.Host)
	}

	if err := e.send(addr, auth, e.config.From, []string{alert.Email}, msg); err != nil {
		return fmt.Errorf("can't send alert mail: %w", err)
	}

	return nil
}

func (e *EmailNotifier) renderBody(alert models.PriceAlert, currentPrice, savings float64) (string, error) {
	var buf bytes.Buffer
	err := alertBody.Execute(&buf, alertMail{
		ProductName:  alert.ProductName,
		ProductImage: alert.ProductImage,
		TargetPrice:  alert.TargetPrice,
		CurrentPrice: currentPrice,
		Savings:      savings,
		ProductURL:   marketplace.ProductURL(alert.ASIN, alert.Country),
		CountryName:  alert.Country.Name(),
		Flag:         alert.Country.Flag(),
	})
	if err != nil {
		return "", err
	}

	return buf.String(), nil
}

func buildMessage(from, to, subject, body string) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "From: %s\r\n", from)
	fmt.Fprintf(&buf, "To: %s\r\n", to)
	fmt.Fprintf(&buf, "Subject: %s\r\n", subject)
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	buf.WriteString("\r\n")
	buf.WriteString(body)

	return buf.Bytes()
}
