package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
)

// Kind classifies a failed API call.
type Kind int

const (
	// KindNetwork means the request produced no HTTP response at all.
	KindNetwork Kind = iota
	// KindAuth is a 401 after the silent refresh retry was exhausted.
	KindAuth
	// KindValidation is any other 4xx, usually carrying a field-level message.
	KindValidation
	// KindServer is a 5xx.
	KindServer
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindAuth:
		return "auth"
	case KindValidation:
		return "validation"
	case KindServer:
		return "server"
	}
	return "unknown"
}

// Error is the single failure shape every API call normalizes into.
// Code and Message come from the server's {"error":{"code","message"}}
// envelope when present, otherwise generic values are filled in.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Status  int
}

func (e *Error) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("api error (%d %s): %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("api error (%s): %s", e.Code, e.Message)
}

// newStatusError builds an *Error from an HTTP error response body.
func newStatusError(status int, body []byte) *Error {
	e := &Error{Status: status}

	switch {
	case status == http.StatusUnauthorized:
		e.Kind = KindAuth
	case status >= 500:
		e.Kind = KindServer
	default:
		e.Kind = KindValidation
	}

	e.Code = gjson.GetBytes(body, "error.code").String()
	e.Message = gjson.GetBytes(body, "error.message").String()
	if e.Code == "" {
		e.Code = "HTTP_" + fmt.Sprint(status)
	}
	if e.Message == "" {
		e.Message = strings.TrimSpace(http.StatusText(status))
	}
	return e
}

// newNetworkError wraps a transport failure (connection refused, timeout,
// DNS) that never yielded a response.
func newNetworkError(err error) *Error {
	return &Error{
		Kind:    KindNetwork,
		Code:    "NETWORK_ERROR",
		Message: err.Error(),
	}
}
