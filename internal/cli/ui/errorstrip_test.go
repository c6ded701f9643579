package ui

import (
	"errors"
	"testing"

	"github.com/Shivansh-2508/PGT-Portal/internal/domain"
)

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "validation", err: domain.NewValidationError(domain.MsgSelectUserType), want: "Select User Type"},
		{name: "json message field", err: &domain.RequestError{StatusCode: 401, Body: []byte(`{"message":"Invalid credentials"}`)}, want: "Invalid credentials"},
		{name: "json error field", err: &domain.RequestError{StatusCode: 400, Body: []byte(`{"error":"Missing username"}`)}, want: "Missing username"},
		{name: "json string", err: &domain.RequestError{StatusCode: 404, Body: []byte(`"User not found"`)}, want: "User not found"},
		{name: "plain text", err: &domain.RequestError{StatusCode: 500, Body: []byte("Internal Server Error\n")}, want: "Internal Server Error"},
		{name: "empty body", err: &domain.RequestError{StatusCode: 502}, want: "Request failed with status code 502"},
		{name: "transport", err: &domain.RequestError{Err: errors.New("connection refused")}, want: "Network Error: connection refused"},
		{name: "bad success body", err: &domain.RequestError{StatusCode: 200, Body: []byte("[]"), Err: errors.New("not an object")}, want: "Unexpected response from server"},
		{name: "in flight", err: domain.ErrSubmitInFlight, want: "Login already in progress"},
		{name: "other", err: errors.New("boom"), want: "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ErrorMessage(tt.err); got != tt.want {
				t.Errorf("ErrorMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}
