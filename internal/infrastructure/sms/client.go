package sms

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/lanzy-lanzy/tailoring/internal/infrastructure/config"
)

// Common errors
var (
	ErrMissingAPIKey = errors.New("sms: api key not configured")
	ErrInvalidPhone  = errors.New("sms: invalid phone number")
)

// Client sends SMS through the Semaphore HTTP API
type Client struct {
	apiKey     string
	senderName string
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a Semaphore SMS client from configuration
func NewClient(cfg config.SMSConfig, logger *zap.Logger) *Client {
	return &Client{
		apiKey:     cfg.APIKey,
		senderName: cfg.SenderName,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger.Named("sms"),
	}
}

// Configured reports whether the client has an API key to send with
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// Send delivers a message to a Philippine mobile number and returns the
// provider's raw response body.
func (c *Client) Send(ctx context.Context, phoneNumber, message string) (string, error) {
	if !c.Configured() {
		return "", ErrMissingAPIKey
	}

	normalized, err := NormalizePhone(phoneNumber)
	if err != nil {
		return "", err
	}

	form := url.Values{}
	form.Set("apikey", c.apiKey)
	form.Set("number", normalized)
	form.Set("message", message)
	if c.senderName != "" {
		form.Set("sendername", c.senderName)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/messages", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("sms: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("sms: send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("sms: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("SMS provider returned non-2xx status",
			zap.Int("status", resp.StatusCode),
			zap.String("number", normalized),
		)
		return string(body), fmt.Errorf("sms: provider returned status %d", resp.StatusCode)
	}

	c.logger.Info("SMS sent",
		zap.String("number", normalized),
		zap.Int("message_length", len(message)),
	)
	return string(body), nil
}

// NormalizePhone converts a local Philippine mobile number to the
// international format the provider expects. "0917 123-4567" becomes
// "639171234567". Numbers already in 63 format pass through.
func NormalizePhone(phoneNumber string) (string, error) {
	cleaned := strings.NewReplacer(" ", "", "-", "").Replace(strings.TrimSpace(phoneNumber))
	if cleaned == "" {
		return "", ErrInvalidPhone
	}

	cleaned = strings.TrimPrefix(cleaned, "+")

	for _, r := range cleaned {
		if r < '0' || r > '9' {
			return "", ErrInvalidPhone
		}
	}

	switch {
	case strings.HasPrefix(cleaned, "0") && len(cleaned) == 11:
		return "63" + cleaned[1:], nil
	case strings.HasPrefix(cleaned, "63") && len(cleaned) == 12:
		return cleaned, nil
	default:
		return "", ErrInvalidPhone
	}
}
