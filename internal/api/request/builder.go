// Package request turns an endpoint plus call options into a fully
// configured, immutable outbound request value. No network I/O happens here.
package request

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"reflect"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/go-querystring/query"
	"github.com/google/uuid"

	"nutritrack/internal/api/endpoint"
	"nutritrack/internal/config"
)

var (
	// ErrInvalidEndpoint means the base URL and path could not form a well-formed URL.
	ErrInvalidEndpoint = errors.New("invalid endpoint")
	// ErrEncoding means the payload or query could not be serialized to the wire encoding.
	ErrEncoding = errors.New("encoding failed")
)

// Request is the immutable outbound request value handed to the transport.
// Built once per call, never mutated, never reused.
type Request struct {
	Method  string
	URL     string
	Header  http.Header
	Body    []byte
	Timeout time.Duration
}

// Config describes one call. The zero value of SkipAuth means authentication
// is required, matching the API's default.
type Config struct {
	Endpoint endpoint.Endpoint

	// Payload is JSON-encoded into the request body when non-nil. Structs
	// carrying `validate` tags are checked before encoding.
	Payload any

	// Query is appended to the URL only on GET requests. Either url.Values
	// or a struct with `url` tags.
	Query any

	// Headers overwrite default headers on key collision.
	Headers map[string]string

	// SkipAuth disables the Authorization header for public endpoints.
	SkipAuth bool

	// Token is the bearer token to attach. A required-auth call with an
	// empty token builds a request with no Authorization header; supplying
	// the token is the caller's responsibility.
	Token string

	// Timeout overrides the default request timeout when positive.
	Timeout time.Duration
}

// Raw builds an ad-hoc endpoint for a path and verb not yet in the catalog.
func Raw(method, path string) endpoint.Endpoint {
	return endpoint.Endpoint{Method: method, Path: path}
}

// Builder constructs requests against one environment's API root.
type Builder struct {
	baseURL        string
	info           config.ClientInfo
	defaultTimeout time.Duration
	validate       *validator.Validate
}

func NewBuilder(env config.Environment, api config.APIConfig, info config.ClientInfo) *Builder {
	origin := api.BaseURL
	if origin == "" {
		origin = env.BaseURL()
	}
	return &Builder{
		baseURL:        origin + "/api/" + api.Version,
		info:           info,
		defaultTimeout: api.RequestTimeout,
		validate:       validator.New(),
	}
}

// BaseURL returns the versioned API root requests are built against.
func (b *Builder) BaseURL() string {
	return b.baseURL
}

// Build assembles the outbound request for one call.
func (b *Builder) Build(cfg Config) (Request, error) {
	if cfg.Endpoint.Method == "" || cfg.Endpoint.Path == "" {
		return Request{}, fmt.Errorf("%w: empty method or path", ErrInvalidEndpoint)
	}

	u, err := url.Parse(b.baseURL + cfg.Endpoint.Path)
	if err != nil {
		return Request{}, fmt.Errorf("%w: %q: %v", ErrInvalidEndpoint, b.baseURL+cfg.Endpoint.Path, err)
	}

	if cfg.Endpoint.Method == http.MethodGet && cfg.Query != nil {
		vals, err := queryValues(cfg.Query)
		if err != nil {
			return Request{}, fmt.Errorf("%w: encode query: %v", ErrEncoding, err)
		}
		if len(vals) > 0 {
			u.RawQuery = vals.Encode()
		}
	}

	var body []byte
	if cfg.Payload != nil {
		if err := b.validatePayload(cfg.Payload); err != nil {
			return Request{}, fmt.Errorf("%w: validate payload: %v", ErrEncoding, err)
		}
		body, err = json.Marshal(cfg.Payload)
		if err != nil {
			return Request{}, fmt.Errorf("%w: marshal payload: %v", ErrEncoding, err)
		}
	}

	h := http.Header{}
	h.Set("Content-Type", "application/json")
	h.Set("Accept", "application/json")
	h.Set("X-App-Version", b.info.AppVersion)
	h.Set("X-Build-Number", b.info.BuildNumber)
	h.Set("X-Platform", b.info.Platform)
	h.Set("X-OS-Version", b.info.OSVersion)
	h.Set("X-Request-ID", uuid.NewString())

	if !cfg.SkipAuth && cfg.Token != "" {
		h.Set("Authorization", "Bearer "+cfg.Token)
	}

	// Custom headers win on collision.
	for k, v := range cfg.Headers {
		h.Set(k, v)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = b.defaultTimeout
	}

	return Request{
		Method:  cfg.Endpoint.Method,
		URL:     u.String(),
		Header:  h,
		Body:    body,
		Timeout: timeout,
	}, nil
}

// validatePayload runs struct validation when the payload is a (pointer to)
// struct; other payload kinds pass through untouched.
func (b *Builder) validatePayload(payload any) error {
	rv := reflect.ValueOf(payload)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}
	return b.validate.Struct(rv.Interface())
}

func queryValues(q any) (url.Values, error) {
	if vals, ok := q.(url.Values); ok {
		return vals, nil
	}
	return query.Values(q)
}
