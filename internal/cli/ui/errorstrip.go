package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/mattn/go-runewidth"

	"github.com/Shivansh-2508/PGT-Portal/internal/domain"
)

const maxErrorWidth = 200

// ErrorMessage turns any error produced by the login flow into the single
// human-readable line shown in the error strip.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	var reqErr *domain.RequestError
	if errors.As(err, &reqErr) {
		return requestErrorMessage(reqErr)
	}

	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return domainErr.UserMessage()
	}

	if errors.Is(err, domain.ErrSubmitInFlight) {
		return "Login already in progress"
	}

	return err.Error()
}

func requestErrorMessage(e *domain.RequestError) string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("Network Error: %v", e.Err)
	}

	if e.StatusCode >= 200 && e.StatusCode < 300 {
		return "Unexpected response from server"
	}

	if msg := bodyMessage(e.Body); msg != "" {
		return runewidth.Truncate(msg, maxErrorWidth, "…")
	}

	return fmt.Sprintf("Request failed with status code %d", e.StatusCode)
}

// bodyMessage extracts a message from a JSON string, a JSON object with a
// message/error/msg field, or plain text.
func bodyMessage(body []byte) string {
	text := strings.TrimSpace(string(body))
	if text == "" {
		return ""
	}

	var v any
	if err := sonic.Unmarshal(body, &v); err != nil {
		return text
	}

	switch val := v.(type) {
	case string:
		return val
	case map[string]any:
		for _, key := range []string{"message", "error", "msg"} {
			if s, ok := val[key].(string); ok && s != "" {
				return s
			}
		}
	}
	return text
}

// RenderErrorStrip renders the error strip, or "" when err is nil
func RenderErrorStrip(err error) string {
	msg := ErrorMessage(err)
	if msg == "" {
		return ""
	}
	return Styles.ErrorStrip.Render(msg)
}
