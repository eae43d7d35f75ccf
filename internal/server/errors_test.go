package server

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"email already exists", &ErrEmailAlreadyExists{Email: "a@b.com"}, http.StatusConflict},
		{"invalid credentials", &ErrInvalidCredentials{}, http.StatusUnauthorized},
		{"user not found", &ErrUserNotFound{UserID: userID}, http.StatusNotFound},
		{"unknown error", fmt.Errorf("something broke"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestErrInvalidCredentials_GenericMessage(t *testing.T) {
	err := &ErrInvalidCredentials{}
	// The message must not reveal whether the email exists.
	assert.Equal(t, "invalid email or password", err.Error())
	assert.NotContains(t, err.Error(), "@")
}

func TestErrEmailAlreadyExists_Message(t *testing.T) {
	err := &ErrEmailAlreadyExists{Email: "taken@example.com"}
	assert.Contains(t, err.Error(), "taken@example.com")
}

func TestErrUserNotFound_Message(t *testing.T) {
	userID := uuid.New()
	err := &ErrUserNotFound{UserID: userID}
	assert.Contains(t, err.Error(), userID.String())
}
