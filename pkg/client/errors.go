package client

import (
	"encoding/json"
	"fmt"
	"strings"
)

// APIError is returned for responses with a non-2xx status.
type APIError struct {
	Endpoint   string
	StatusCode int
	Message    string
	Type       string
	Code       string
	Body       string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: status=%d type=%s: %s", e.Endpoint, e.StatusCode, e.Type, e.Message)
	}
	return fmt.Sprintf("%s: status=%d body=%s", e.Endpoint, e.StatusCode, e.Body)
}

type errorEnvelope struct {
	Error *struct {
		Message string      `json:"message"`
		Type    string      `json:"type"`
		Code    interface{} `json:"code"`
	} `json:"error"`
}

func newAPIError(endpoint string, statusCode int, body []byte) *APIError {
	apiErr := &APIError{
		Endpoint:   endpoint,
		StatusCode: statusCode,
		Body:       strings.TrimSpace(string(body)),
	}

	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != nil {
		apiErr.Message = envelope.Error.Message
		apiErr.Type = envelope.Error.Type
		if envelope.Error.Code != nil {
			apiErr.Code = fmt.Sprint(envelope.Error.Code)
		}
	}

	return apiErr
}
