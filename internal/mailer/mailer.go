package mailer

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"

	"github.com/GlebRadaev/erpfinance/internal/config"
	"github.com/GlebRadaev/erpfinance/internal/domain"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

//go:embed templates/*.html
var templatesFS embed.FS

const (
	TemplateGreetings = "greetings.html"
	TemplateDisabled  = "disabled.html"
)

// Sender is the SMTP transport. *gomail.Dialer satisfies it.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type Mailer struct {
	sender    Sender
	from      string
	loginURL  string
	templates *template.Template
}

func New(cfg *config.Config) (*Mailer, error) {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)
	return NewWithSender(dialer, cfg.MailFrom, cfg.LoginURL)
}

func NewWithSender(sender Sender, from, loginURL string) (*Mailer, error) {
	templates, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("can't parse mail templates: %w", err)
	}
	return &Mailer{
		sender:    sender,
		from:      from,
		loginURL:  loginURL,
		templates: templates,
	}, nil
}

// Send renders name with vars and delivers it to a single recipient.
func (m *Mailer) Send(ctx context.Context, to, subject, name string, vars map[string]any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var body bytes.Buffer
	if err := m.templates.ExecuteTemplate(&body, name, vars); err != nil {
		return fmt.Errorf("can't render %s: %w", name, err)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body.String())

	if err := m.sender.DialAndSend(msg); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrDelivery, err)
	}
	zap.L().Debug("mail sent", zap.String("to", to), zap.String("template", name))
	return nil
}

func (m *Mailer) SendWelcome(ctx context.Context, to, username, role string) error {
	return m.Send(ctx, to, "Welcome to FinanceERP", TemplateGreetings, m.accountVars(username, role))
}

func (m *Mailer) SendDisabled(ctx context.Context, to, username, role string) error {
	return m.Send(ctx, to, "Your FinanceERP account has been disabled", TemplateDisabled, m.accountVars(username, role))
}

func (m *Mailer) accountVars(username, role string) map[string]any {
	return map[string]any{
		"Username": username,
		"Role":     role,
		"LoginURL": m.loginURL,
	}
}
