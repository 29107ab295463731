package client

import (
	"strings"

	"github.com/google/uuid"
)

const (
	defaultUserAgent = "llm-sdk-go"

	headerRequestID    = "X-Client-Request-Id"
	headerOrganization = "OpenAI-Organization"
	headerProject      = "OpenAI-Project"
)

// HeaderBuilder produces the non-auth headers sent with every request.
// Authorization is attached by the transport.
type HeaderBuilder struct {
	userAgent    string
	organization string
	project      string

	requestIDGenerator func() string
}

func NewHeaderBuilder(userAgent, organization, project string) *HeaderBuilder {
	userAgent = strings.TrimSpace(userAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	return &HeaderBuilder{
		userAgent:          userAgent,
		organization:       strings.TrimSpace(organization),
		project:            strings.TrimSpace(project),
		requestIDGenerator: uuid.NewString,
	}
}

// Build returns the headers for one request and the request id it carries.
func (b *HeaderBuilder) Build() (map[string]string, string) {
	requestID := b.requestIDGenerator()

	headers := map[string]string{
		"Content-Type":  "application/json",
		"Accept":        "application/json",
		"User-Agent":    b.userAgent,
		headerRequestID: requestID,
	}
	if b.organization != "" {
		headers[headerOrganization] = b.organization
	}
	if b.project != "" {
		headers[headerProject] = b.project
	}

	return headers, requestID
}
