package utils

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/smtp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSMTPMailerSend(t *testing.T) {
	m := NewSMTPMailer(SMTPConfig{
		From:     "shop@example.com",
		Password: "secret",
		Host:     "smtp.example.com",
		Address:  "smtp.example.com:587",
	})

	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte
	m.send = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
		return nil
	}

	require.NoError(t, m.Send(context.Background(), "user@example.com", "Hello", "Body text"))
	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.Equal(t, "shop@example.com", gotFrom)
	assert.Equal(t, []string{"user@example.com"}, gotTo)
	assert.Contains(t, string(gotMsg), "Subject: Hello\r\n")
	assert.True(t, strings.HasSuffix(string(gotMsg), "\r\n\r\nBody text"))

	m.send = func(string, smtp.Auth, string, []string, []byte) error { return errors.New("refused") }
	assert.ErrorContains(t, m.Send(context.Background(), "user@example.com", "Hello", "Body"), "refused")
}

func TestHTTPMailerSend(t *testing.T) {
	var payload map[string]any
	var auth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&payload)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	m := NewHTTPMailer(server.URL, "api-key", "shop@example.com")
	require.NoError(t, m.Send(context.Background(), "user@example.com", "Hi", "Text"))

	assert.Equal(t, "Bearer api-key", auth)
	assert.Equal(t, "shop@example.com", payload["from"])
	assert.Equal(t, []any{"user@example.com"}, payload["to"])
	assert.Equal(t, "Hi", payload["subject"])
	assert.Equal(t, "Text", payload["text"])
}

func TestHTTPMailerReportsRelayErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	m := NewHTTPMailer(server.URL, "api-key", "shop@example.com")
	err := m.Send(context.Background(), "user@example.com", "Hi", "Text")
	assert.ErrorContains(t, err, "429")
}
