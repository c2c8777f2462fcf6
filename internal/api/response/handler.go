// Package response classifies raw HTTP results against the API's status
// contract and decodes bodies into typed values.
package response

import (
	"encoding/json"
	"fmt"
	"net/http"

	"nutritrack/internal/api/apierror"
	"nutritrack/internal/api/wire"
	"nutritrack/internal/logging"
)

// Result is everything one completed call produced: the request identity for
// logging, the response metadata and body, and any transport-level error.
// Status 0 with a nil Err means no response metadata arrived at all.
type Result struct {
	Method string
	URL    string
	Status int
	Header http.Header
	Body   []byte
	Err    error
}

type Handler struct {
	log logging.Logger
}

func NewHandler(log logging.Logger) *Handler {
	return &Handler{log: log}
}

// Validate classifies the result's status against the API contract and
// returns the matching error, or nil for 2xx. One log line per call.
func (h *Handler) Validate(in Result) error {
	err := h.check(in)
	h.logOutcome(in, err)
	return err
}

// Decode validates the status, then decodes the body into T. An absent or
// empty body on a passing status is an invalid response, not a decode error.
func Decode[T any](h *Handler, in Result) (T, error) {
	var zero T

	if err := h.check(in); err != nil {
		h.logOutcome(in, err)
		return zero, err
	}

	out, err := decodeBody[T](in)
	h.logOutcome(in, err)
	if err != nil {
		return zero, err
	}
	return out, nil
}

// DecodeWrapped behaves like Decode but additionally unwraps the generic
// success envelope: a false success field becomes a validation error using
// the envelope's error then message text; a true one must carry data.
func DecodeWrapped[T any](h *Handler, in Result) (T, error) {
	var zero T

	if err := h.check(in); err != nil {
		h.logOutcome(in, err)
		return zero, err
	}

	env, err := decodeBody[wire.Envelope[T]](in)
	if err != nil {
		h.logOutcome(in, err)
		return zero, err
	}

	if !env.Success {
		err := apierror.NewValidation(env.FailureReason())
		h.logOutcome(in, err)
		return zero, err
	}
	if env.Data == nil {
		err := apierror.NewInvalidResponse("envelope has no data")
		h.logOutcome(in, err)
		return zero, err
	}

	h.logOutcome(in, nil)
	return *env.Data, nil
}

// check applies the failure conditions in contract order, short-circuiting
// at the first hit. No decoding happens here.
func (h *Handler) check(in Result) error {
	if in.Err != nil {
		return apierror.NewNetwork(in.Err)
	}
	if in.Status == 0 {
		return apierror.NewInvalidResponse("no response metadata")
	}

	switch s := in.Status; {
	case s >= 200 && s <= 299:
		return nil
	case s == http.StatusUnauthorized:
		return apierror.NewUnauthorized()
	case s == http.StatusForbidden:
		return apierror.NewForbidden()
	case s == http.StatusNotFound:
		return apierror.NewNotFound()
	case s >= 400 && s <= 499:
		return apierror.NewValidation(fmt.Sprintf("request rejected with status %d", s))
	case s >= 500 && s <= 599:
		return apierror.NewServer(s)
	default:
		return apierror.NewUnknown(s)
	}
}

func decodeBody[T any](in Result) (T, error) {
	var out T

	if len(in.Body) == 0 {
		return out, apierror.NewInvalidResponse("empty body")
	}
	if err := json.Unmarshal(in.Body, &out); err != nil {
		return out, apierror.NewDecoding(err)
	}
	return out, nil
}

// logOutcome is diagnostic only; severity follows the outcome.
func (h *Handler) logOutcome(in Result, err error) {
	fields := []any{
		"method", in.Method,
		"url", in.URL,
		"status", in.Status,
		"bytes", len(in.Body),
	}

	switch {
	case err == nil:
		h.log.Debug("api call completed", fields...)
	case apierror.IsUnauthorized(err), apierror.IsForbidden(err),
		apierror.IsNotFound(err), apierror.IsValidation(err):
		h.log.Warn("api call rejected", append(fields, "error", err)...)
	default:
		h.log.Error("api call failed", append(fields, "error", err)...)
	}
}
