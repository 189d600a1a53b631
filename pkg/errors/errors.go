package errors

import (
	"errors"
	"fmt"
)

// UpstreamError is returned when a downstream API answers with a non-2xx status.
type UpstreamError struct {
	Service    string
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s API error %d: %s", e.Service, e.StatusCode, e.Body)
}

// NetworkError is returned when a downstream API could not be reached.
type NetworkError struct {
	Service string
	Err     error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error contacting %s: %v", e.Service, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ConfigError is returned when a required credential or setting is missing.
type ConfigError struct {
	Key string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s not set", e.Key)
}

// ValidationError describes a malformed or incomplete request.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewUpstream builds an UpstreamError.
func NewUpstream(service string, statusCode int, body []byte) error {
	return &UpstreamError{Service: service, StatusCode: statusCode, Body: string(body)}
}

// NewNetwork builds a NetworkError.
func NewNetwork(service string, err error) error {
	return &NetworkError{Service: service, Err: err}
}

// NewConfig builds a ConfigError for the given setting.
func NewConfig(key string) error {
	return &ConfigError{Key: key}
}

// NewValidation builds a ValidationError.
func NewValidation(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// AsUpstream reports whether err wraps an UpstreamError.
func AsUpstream(err error) (*UpstreamError, bool) {
	var target *UpstreamError
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}

// AsNetwork reports whether err wraps a NetworkError.
func AsNetwork(err error) (*NetworkError, bool) {
	var target *NetworkError
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}

// AsConfig reports whether err wraps a ConfigError.
func AsConfig(err error) (*ConfigError, bool) {
	var target *ConfigError
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}

// AsValidation reports whether err wraps a ValidationError.
func AsValidation(err error) (*ValidationError, bool) {
	var target *ValidationError
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}
