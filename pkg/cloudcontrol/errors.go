package cloudcontrol

import (
	"encoding/json"
	"errors"
	"fmt"
)

// API-level response codes. These classify failures independently of the HTTP
// status code that carries them.
const (
	ResponseCodeOK               = "OK"
	ResponseCodeInProgress       = "IN_PROGRESS"
	ResponseCodeResourceNotFound = "RESOURCE_NOT_FOUND"
	ResponseCodeResourceBusy     = "RESOURCE_BUSY"
	ResponseCodeInvalidInputData = "INVALID_INPUT_DATA"
	ResponseCodeUnauthorized     = "UNAUTHORIZED"
	ResponseCodeUnexpectedError  = "UNEXPECTED_ERROR"
)

// NameValuePair is an entry in an APIResponse info list.
type NameValuePair struct {
	Name  string `json:"name"  yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// APIResponse is the structured envelope the API returns for failed requests
// and for asynchronous edit operations.
type APIResponse struct {
	Operation    string          `json:"operation"      yaml:"operation"`
	ResponseCode string          `json:"responseCode"   yaml:"responseCode"`
	Message      string          `json:"message"        yaml:"message"`
	Info         []NameValuePair `json:"info,omitempty" yaml:"info,omitempty"`
	RequestID    string          `json:"requestId"      yaml:"requestId"`
}

// InfoValue returns the value of the named info entry, or "" if absent.
func (r *APIResponse) InfoValue(name string) string {
	for _, pair := range r.Info {
		if pair.Name == name {
			return pair.Value
		}
	}

	return ""
}

// ParseAPIResponse parses an APIResponse envelope from JSON.
func ParseAPIResponse(data []byte) (*APIResponse, error) {
	var response APIResponse

	err := json.Unmarshal(data, &response)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal API response: %w", err)
	}

	return &response, nil
}

// APIError is a non-success response from the API, carrying the API-level
// response code and message together with the HTTP status that delivered it.
type APIError struct {
	Operation    string
	ResponseCode string
	Message      string
	Info         []NameValuePair
	StatusCode   int
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s (HTTP %d)", e.ResponseCode, e.Message, e.StatusCode)
}

// Static errors for argument validation and lifecycle misuse.
var (
	ErrConfigRequired      = errors.New("config is required")
	ErrBaseAddressRequired = errors.New("base address is required")
	ErrCredentialsRequired = errors.New("user name and password are required")
	ErrClientClosed        = errors.New("client is closed")
)

// IsNotFound reports whether err is an APIError with the RESOURCE_NOT_FOUND
// response code. Single-resource lookups already translate that code into a
// nil result, so this helper mostly matters for edit operations.
func IsNotFound(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.ResponseCode == ResponseCodeResourceNotFound
	}

	return false
}

// IsUnauthorized reports whether err is an APIError with the UNAUTHORIZED
// response code.
func IsUnauthorized(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.ResponseCode == ResponseCodeUnauthorized
	}

	return false
}
