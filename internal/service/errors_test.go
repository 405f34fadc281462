package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyUpstreamError(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantKind ErrorKind
	}{
		{"quota keyword", "generativelanguage: quota exhausted for project", ErrKindQuota},
		{"exceeded keyword", "request limit exceeded", ErrKindQuota},
		{"http 429", "googleapi: Error 429: RESOURCE_EXHAUSTED", ErrKindQuota},
		{"rate limit", "rate limit hit, slow down", ErrKindRateLimit},
		{"api key", "API key not valid. Please pass a valid API key.", ErrKindAuth},
		{"http 401", "googleapi: Error 401: unauthenticated", ErrKindAuth},
		{"http 403", "googleapi: Error 403: permission denied", ErrKindAuth},
		{"anything else", "connection reset by peer", ErrKindUpstream},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			genErr := classifyUpstreamError(errors.New(tt.input))
			assert.Equal(t, tt.wantKind, genErr.Kind)
			assert.NotEmpty(t, genErr.Message)
		})
	}
}

func TestClassifyUpstreamError_QuotaMessages(t *testing.T) {
	withRetry := classifyUpstreamError(errors.New("quota exceeded, retry in 30 seconds"))
	assert.Equal(t, ErrKindQuota, withRetry.Kind)
	assert.Contains(t, withRetry.Message, "daily limit")
	assert.NotContains(t, withRetry.Message, "free tier")

	withoutRetry := classifyUpstreamError(errors.New("quota exhausted"))
	assert.Equal(t, ErrKindQuota, withoutRetry.Kind)
	assert.Contains(t, withoutRetry.Message, "free tier")
}

func TestClassifyUpstreamError_UpstreamKeepsOriginalText(t *testing.T) {
	genErr := classifyUpstreamError(errors.New("connection reset by peer"))
	assert.Equal(t, "Gemini API error: connection reset by peer", genErr.Message)
}

func TestErrorKindString(t *testing.T) {
	assert.Equal(t, "quota", ErrKindQuota.String())
	assert.Equal(t, "rate_limit", ErrKindRateLimit.String())
	assert.Equal(t, "auth", ErrKindAuth.String())
	assert.Equal(t, "malformed", ErrKindMalformed.String())
	assert.Equal(t, "incomplete", ErrKindIncomplete.String())
	assert.Equal(t, "not_configured", ErrKindNotConfigured.String())
	assert.Equal(t, "upstream", ErrKindUpstream.String())
}
