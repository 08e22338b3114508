package mailer

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/GlebRadaev/erpfinance/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type fakeSender struct {
	messages []*gomail.Message
	err      error
}

func (f *fakeSender) DialAndSend(m ...*gomail.Message) error {
	if f.err != nil {
		return f.err
	}
	f.messages = append(f.messages, m...)
	return nil
}

func render(t *testing.T, m *gomail.Message) string {
	var buf bytes.Buffer
	_, err := m.WriteTo(&buf)
	require.NoError(t, err)
	return buf.String()
}

func TestSendWelcome(t *testing.T) {
	sender := &fakeSender{}
	m, err := NewWithSender(sender, "no-reply@financierp.com", "http://localhost:5174/login")
	require.NoError(t, err)

	require.NoError(t, m.SendWelcome(context.Background(), "alice@example.com", "alice", "EMPLOYEE"))
	require.Len(t, sender.messages, 1)

	msg := sender.messages[0]
	assert.Equal(t, []string{"alice@example.com"}, msg.GetHeader("To"))
	assert.Equal(t, []string{"Welcome to FinanceERP"}, msg.GetHeader("Subject"))
	body := render(t, msg)
	assert.Contains(t, body, "alice")
	assert.Contains(t, body, "EMPLOYEE")
	assert.Contains(t, body, "http://localhost:5174/login")
}

func TestSendDisabled(t *testing.T) {
	sender := &fakeSender{}
	m, err := NewWithSender(sender, "no-reply@financierp.com", "")
	require.NoError(t, err)

	require.NoError(t, m.SendDisabled(context.Background(), "bob@example.com", "bob", "MANAGER"))
	require.Len(t, sender.messages, 1)
	assert.Contains(t, render(t, sender.messages[0]), "has been disabled")
}

func TestSend(t *testing.T) {
	tests := []struct {
		name        string
		template    string
		sender      *fakeSender
		ctx         func() context.Context
		expectError error
	}{
		{
			name:     "Workflow template",
			template: "expense_denied.html",
			sender:   &fakeSender{},
			ctx:      context.Background,
		},
		{
			name:     "Unknown template",
			template: "missing.html",
			sender:   &fakeSender{},
			ctx:      context.Background,
		},
		{
			name:        "Transport failure",
			template:    "expense_approved.html",
			sender:      &fakeSender{err: errors.New("connection refused")},
			ctx:         context.Background,
			expectError: domain.ErrDelivery,
		},
		{
			name:     "Canceled context",
			template: "expense_approved.html",
			sender:   &fakeSender{},
			ctx: func() context.Context {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				return ctx
			},
			expectError: context.Canceled,
		},
	}

	vars := map[string]any{"Username": "alice", "ExpenseID": 5, "Title": "Hotel", "Amount": "300.00", "Reviewer": "acc", "Reason": "duplicate"}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewWithSender(tt.sender, "no-reply@financierp.com", "")
			require.NoError(t, err)

			err = m.Send(tt.ctx(), "alice@example.com", "Subject", tt.template, vars)
			switch {
			case tt.template == "missing.html":
				assert.Error(t, err)
				assert.Empty(t, tt.sender.messages)
			case tt.expectError != nil:
				assert.ErrorIs(t, err, tt.expectError)
			default:
				assert.NoError(t, err)
				require.Len(t, tt.sender.messages, 1)
				assert.Contains(t, render(t, tt.sender.messages[0]), "duplicate")
			}
		})
	}
}
