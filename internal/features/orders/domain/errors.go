package domain

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

var (
	// ErrTransport is wrapped by every failure to build, send or complete a request,
	// including non-2xx answers (see APIError).
	ErrTransport = errors.New("opensea transport error")
	// ErrDecode is wrapped when a response body is not the expected JSON envelope.
	ErrDecode = errors.New("opensea decode error")
	// ErrOrderNotFound is matched by OrderNotFoundError.
	ErrOrderNotFound = errors.New("order not found")
)

// OrderNotFoundError is returned by a single-order lookup that matched nothing.
type OrderNotFoundError struct {
	Contract common.Address
	TokenID  string
}

func (e *OrderNotFoundError) Error() string {
	return fmt.Sprintf("order not found (token: %s, id: %s)", strings.ToLower(e.Contract.Hex()), e.TokenID)
}

// Is reports whether target is ErrOrderNotFound.
func (e *OrderNotFoundError) Is(target error) bool {
	return target == ErrOrderNotFound
}

// APIError is a non-2xx answer from the API. Body holds at most the first
// MaxErrorBody bytes of the response.
type APIError struct {
	StatusCode int
	Body       string
}

// MaxErrorBody bounds how much of an error response is kept.
const MaxErrorBody = 4096

func (e *APIError) Error() string {
	msg := fmt.Sprintf("opensea API returned status %d (%s)", e.StatusCode, http.StatusText(e.StatusCode))
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

func (e *APIError) Unwrap() error {
	return ErrTransport
}
