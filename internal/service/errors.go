package service

import (
	"errors"
	"strings"
)

// ErrorKind is the closed classification of generation failures. HTTP status
// mapping lives in the delivery layer.
type ErrorKind int

const (
	ErrKindUpstream ErrorKind = iota
	ErrKindNotConfigured
	ErrKindQuota
	ErrKindRateLimit
	ErrKindAuth
	ErrKindMalformed
	ErrKindIncomplete
)

func (k ErrorKind) String() string {
	switch k {
	case ErrKindNotConfigured:
		return "not_configured"
	case ErrKindQuota:
		return "quota"
	case ErrKindRateLimit:
		return "rate_limit"
	case ErrKindAuth:
		return "auth"
	case ErrKindMalformed:
		return "malformed"
	case ErrKindIncomplete:
		return "incomplete"
	default:
		return "upstream"
	}
}

type GenerationError struct {
	Kind    ErrorKind
	Message string
}

func (e *GenerationError) Error() string {
	return e.Message
}

// ErrStoreNotConfigured is returned by history reads when no persistence
// collaborator was wired at startup.
var ErrStoreNotConfigured = errors.New("Firebase not configured")

// classifyUpstreamError maps a raw upstream error to a GenerationError by
// substring inspection of its message. The upstream API exposes no structured
// error codes, so human-readable text is all there is to match on.
func classifyUpstreamError(err error) *GenerationError {
	msg := err.Error()
	lower := strings.ToLower(msg)

	switch {
	case strings.Contains(msg, "429") || strings.Contains(lower, "quota") || strings.Contains(lower, "exceeded"):
		if strings.Contains(lower, "retry") || strings.Contains(lower, "seconds") {
			return &GenerationError{
				Kind:    ErrKindQuota,
				Message: "API quota exceeded. You've reached the daily limit. Please try again tomorrow or upgrade your API plan.",
			}
		}
		return &GenerationError{
			Kind:    ErrKindQuota,
			Message: "API quota exceeded. You've reached the daily limit (20 requests/day on free tier). Please try again tomorrow or upgrade your API plan.",
		}
	case strings.Contains(lower, "rate limit"):
		return &GenerationError{
			Kind:    ErrKindRateLimit,
			Message: "API rate limit exceeded. Please wait a moment and try again.",
		}
	case strings.Contains(lower, "api key") || strings.Contains(msg, "401") || strings.Contains(msg, "403"):
		return &GenerationError{
			Kind:    ErrKindAuth,
			Message: "Invalid or missing Gemini API key. Please check your API configuration.",
		}
	default:
		return &GenerationError{
			Kind:    ErrKindUpstream,
			Message: "Gemini API error: " + msg,
		}
	}
}
