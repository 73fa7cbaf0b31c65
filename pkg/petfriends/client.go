/*
Copyright 2026 the PetFriends E2E Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package petfriends

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"go.uber.org/zap"
)

const (
	// DefaultBaseURL is the public PetFriends deployment.
	DefaultBaseURL = "https://petfriends.skillfactory.ru"

	// DefaultTimeout bounds a single request.
	DefaultTimeout = 30 * time.Second

	authKeyHeader = "auth_key"
	photoField    = "pet_photo"
)

// Option configures an APIClient.
type Option func(*APIClient)

// WithTimeout overrides the per request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *APIClient) {
		c.timeout = timeout
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(logger *zap.Logger) Option {
	return func(c *APIClient) {
		c.logger = logger
	}
}

// WithRequestLogging logs every request and, optionally, every response body.
func WithRequestLogging(requests, responses bool) Option {
	return func(c *APIClient) {
		c.logRequests = requests
		c.logResponses = responses
	}
}

// WithContractValidation checks every response against the bundled API
// description.
func WithContractValidation() Option {
	return func(c *APIClient) {
		c.validate = true
	}
}

// APIClient talks to the PetFriends REST API.
type APIClient struct {
	baseURL      string
	client       *resty.Client
	endpoints    *Endpoints
	logger       *zap.Logger
	timeout      time.Duration
	logRequests  bool
	logResponses bool
	validate     bool
	validator    *ContractValidator
}

// Ensure the client satisfies the interface used by fixtures.
var _ PetFriends = &APIClient{}

// NewAPIClient returns a client for the service at baseURL.
func NewAPIClient(baseURL string, options ...Option) (*APIClient, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := &APIClient{
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		endpoints: NewEndpoints(),
		logger:    zap.NewNop(),
		timeout:   DefaultTimeout,
	}

	for _, o := range options {
		o(c)
	}

	if c.validate {
		validator, err := NewContractValidator()
		if err != nil {
			return nil, err
		}

		c.validator = validator
	}

	c.client = resty.New().
		SetBaseURL(c.baseURL).
		SetTimeout(c.timeout).
		SetLogger(c.logger.Sugar())

	return c, nil
}

// BaseURL returns the service root the client talks to.
func (c *APIClient) BaseURL() string {
	return c.baseURL
}

// logError logs a failed request with its trace context.
func (c *APIClient) logError(method, path string, duration time.Duration, traceParent string, err error, context string) {
	c.logger.Error(context,
		zap.String("method", method),
		zap.String("path", path),
		zap.Duration("duration", duration),
		zap.String("trace_id", extractTraceID(traceParent)),
		zap.Error(err),
	)
}

// execute sends a prepared request and turns the response into a Result.
// Status codes are never treated as errors.
func execute[T any](ctx context.Context, c *APIClient, method, path string, prepare func(*resty.Request)) (*Result[T], error) {
	req := c.client.R().SetContext(ctx)

	// Add W3C Trace Context headers
	traceParent := createTraceParent()
	req.SetHeader("Traceparent", traceParent)
	req.SetHeader("Tracestate", "test-automation=ginkgo")
	req.SetHeader("Accept", "application/json")

	if prepare != nil {
		prepare(req)
	}

	start := time.Now()
	resp, err := req.Execute(method, path)
	duration := time.Since(start)

	if err != nil {
		c.logError(method, path, duration, traceParent, err, "http request failed")
		return nil, fmt.Errorf("%w: %s %s: %w", ErrTransport, method, path, err)
	}

	result := &Result[T]{
		StatusCode:  resp.StatusCode(),
		ContentType: resp.Header().Get("Content-Type"),
		Body:        resp.Body(),
	}

	if c.logRequests {
		c.logger.Info("request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", result.StatusCode),
			zap.Duration("duration", duration),
			zap.String("trace_id", extractTraceID(traceParent)),
		)
	}

	if c.logResponses && len(result.Body) > 0 {
		c.logger.Info("response body",
			zap.String("method", method),
			zap.String("path", path),
			zap.ByteString("body", result.Body),
		)
	}

	if isSuccess(result.StatusCode) && isJSON(result.ContentType) && len(bytes.TrimSpace(result.Body)) > 0 {
		if err := json.Unmarshal(result.Body, &result.Value); err != nil {
			c.logError(method, path, duration, traceParent, err, "decoding response body")
			return result, fmt.Errorf("%w: %s %s: %w", ErrDecode, method, path, err)
		}

		result.Decoded = true
	}

	if c.validator != nil && resp.Request != nil && resp.Request.RawRequest != nil {
		if err := c.validator.ValidateResponse(ctx, resp.Request.RawRequest, result.StatusCode, resp.Header(), result.Body); err != nil {
			c.logError(method, path, duration, traceParent, err, "contract validation failed")
			return result, fmt.Errorf("%w: %s %s: %w", ErrContract, method, path, err)
		}
	}

	return result, nil
}

func isSuccess(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}

func isJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}

// photoContentType guesses the upload MIME type from the file extension.
func photoContentType(path string) string {
	if t := mime.TypeByExtension(strings.ToLower(filepath.Ext(path))); t != "" {
		return t
	}

	return "application/octet-stream"
}

// openPhoto reads a local photo into memory so upload failures are reported
// before anything is sent.
func openPhoto(path string) (*resty.MultipartField, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPhoto, err)
	}

	var photo openapi_types.File

	photo.InitFromBytes(data, filepath.Base(path))

	reader, err := photo.Reader()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPhoto, err)
	}

	return &resty.MultipartField{
		Param:       photoField,
		FileName:    photo.Filename(),
		ContentType: photoContentType(photo.Filename()),
		Reader:      reader,
	}, nil
}

func (c *APIClient) GetAPIKey(ctx context.Context, email, password string) (*Result[AuthKey], error) {
	return execute[AuthKey](ctx, c, http.MethodGet, c.endpoints.APIKey(), func(r *resty.Request) {
		r.SetHeader("email", email)
		r.SetHeader("password", password)
	})
}

func (c *APIClient) ListPets(ctx context.Context, authKey string, filter PetFilter) (*Result[PetList], error) {
	return execute[PetList](ctx, c, http.MethodGet, c.endpoints.ListPets(), func(r *resty.Request) {
		r.SetHeader(authKeyHeader, authKey)
		r.SetQueryParam("filter", string(filter))
	})
}

func (c *APIClient) AddNewPet(ctx context.Context, authKey string, fields PetFields, photoPath string) (*Result[Pet], error) {
	photo, err := openPhoto(photoPath)
	if err != nil {
		return nil, err
	}

	return execute[Pet](ctx, c, http.MethodPost, c.endpoints.CreatePet(), func(r *resty.Request) {
		r.SetHeader(authKeyHeader, authKey)
		r.SetMultipartFormData(fields.formData())
		r.SetMultipartFields(photo)
	})
}

func (c *APIClient) AddNewPetWithoutPhoto(ctx context.Context, authKey string, fields PetFields) (*Result[Pet], error) {
	return execute[Pet](ctx, c, http.MethodPost, c.endpoints.CreatePetSimple(), func(r *resty.Request) {
		r.SetHeader(authKeyHeader, authKey)
		r.SetFormData(fields.formData())
	})
}

func (c *APIClient) UpdatePetInfo(ctx context.Context, authKey, petID string, fields PetFields) (*Result[Pet], error) {
	return execute[Pet](ctx, c, http.MethodPut, c.endpoints.UpdatePet(petID), func(r *resty.Request) {
		r.SetHeader(authKeyHeader, authKey)
		r.SetFormData(fields.formData())
	})
}

func (c *APIClient) DeletePet(ctx context.Context, authKey, petID string) (*Result[Empty], error) {
	return execute[Empty](ctx, c, http.MethodDelete, c.endpoints.DeletePet(petID), func(r *resty.Request) {
		r.SetHeader(authKeyHeader, authKey)
	})
}

func (c *APIClient) AddPhotoOfPet(ctx context.Context, authKey, petID, photoPath string) (*Result[Pet], error) {
	photo, err := openPhoto(photoPath)
	if err != nil {
		return nil, err
	}

	return execute[Pet](ctx, c, http.MethodPost, c.endpoints.SetPetPhoto(petID), func(r *resty.Request) {
		r.SetHeader(authKeyHeader, authKey)
		r.SetMultipartFields(photo)
	})
}
