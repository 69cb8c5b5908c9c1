/*
Copyright 2025-2026 the Bookstore QA Authors.

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

//nolint:err113 // dynamic errors acceptable in test code
package api

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/onsi/ginkgo/v2"
)

// APIClient issues raw HTTP exchanges against the bookstore API. Request
// bodies are literal JSON text rather than marshaled structs so that the
// malformed-payload scenarios reach the wire byte-for-byte. There is no
// retry and no pooling policy beyond the net/http defaults; the target is
// a remote demo service this suite does not control.
type APIClient struct {
	baseURL string
	client  *http.Client
	config  *TestConfig
}

func NewAPIClient(baseURL string) *APIClient {
	config := LoadTestConfig()
	if baseURL == "" {
		baseURL = config.BaseURL
	}

	return newAPIClientWithConfig(config, baseURL)
}

func NewAPIClientWithConfig(config *TestConfig) *APIClient {
	return newAPIClientWithConfig(config, config.BaseURL)
}

// common constructor logic.
func newAPIClientWithConfig(config *TestConfig, baseURL string) *APIClient {
	return &APIClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client: &http.Client{
			Timeout: config.RequestTimeout,
		},
		config: config,
	}
}

// Response is one side of an ephemeral HTTP exchange: status, content type
// and the unparsed body, plus JSON accessors for field assertions.
type Response struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

// IsJSON reports whether the response declared a JSON content type.
func (r *Response) IsJSON() bool {
	return strings.Contains(r.ContentType, "application/json")
}

// JSON decodes the body into a generic object. Fails for arrays; use
// JSONList for collection responses.
func (r *Response) JSON() (map[string]interface{}, error) {
	var object map[string]interface{}
	if err := json.Unmarshal(r.Body, &object); err != nil {
		return nil, fmt.Errorf("unmarshaling response body: %w", err)
	}

	return object, nil
}

// JSONList decodes the body into a generic list.
func (r *Response) JSONList() ([]map[string]interface{}, error) {
	var list []map[string]interface{}
	if err := json.Unmarshal(r.Body, &list); err != nil {
		return nil, fmt.Errorf("unmarshaling response body: %w", err)
	}

	return list, nil
}

// IDField extracts the numeric "id" field from the response body.
func (r *Response) IDField() (int, error) {
	object, err := r.JSON()
	if err != nil {
		return 0, err
	}

	id, ok := object["id"].(float64)
	if !ok {
		return 0, fmt.Errorf("response body has no numeric id field: %s", string(r.Body))
	}

	return int(id), nil
}

// logError logs a transport-level error with trace context.
func (c *APIClient) logError(method, path string, duration time.Duration, traceParent string, err error) {
	ginkgo.GinkgoWriter.Printf("[%s %s] ERROR duration=%s traceparent=%s error=%v\n", method, path, duration, traceParent, err)
	ginkgo.GinkgoWriter.Printf("TRACE CONTEXT: Use trace ID '%s' to search logs for this request\n", extractTraceID(traceParent))
}

// generateTraceID creates a new W3C trace ID.
// we are using this to create a new trace ID for each request so if an error occurs we can find the request in the logs.
func generateTraceID() string {
	bytes := make([]byte, 16)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// generateSpanID creates a new W3C span ID.
func generateSpanID() string {
	bytes := make([]byte, 8)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// createTraceParent creates a W3C traceparent header value.
func createTraceParent() string {
	traceID := generateTraceID()
	spanID := generateSpanID()

	return fmt.Sprintf("00-%s-%s-01", traceID, spanID)
}

// extractTraceID extracts the trace ID from a traceparent header value.
func extractTraceID(traceParent string) string {
	parts := strings.Split(traceParent, "-")
	if len(parts) >= 2 {
		return parts[1]
	}

	return traceParent
}

// Do performs one HTTP exchange. A non-empty body is sent verbatim with an
// application/json content type. Only transport-level problems are errors;
// status code and body expectations are the caller's assertions.
func (c *APIClient) Do(ctx context.Context, method, path, body string) (*Response, error) {
	fullURL := c.baseURL + path

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	// Add W3C Trace Context headers
	traceParent := createTraceParent()
	req.Header.Set("Traceparent", traceParent)
	req.Header.Set("Tracestate", "test-automation=ginkgo")

	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.logError(method, path, duration, traceParent, err)
		return nil, fmt.Errorf("http request failed: %w", err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logError(method, path, duration, traceParent, err)
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if c.config.LogRequests {
		ginkgo.GinkgoWriter.Printf("[%s %s] status=%d duration=%s traceparent=%s\n", method, path, resp.StatusCode, duration, traceParent)
	}

	if c.config.LogResponses && len(respBody) > 0 {
		ginkgo.GinkgoWriter.Printf("[%s %s] response body: %s\n", method, path, string(respBody))
	}

	return &Response{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        respBody,
	}, nil
}

// Get performs a GET exchange without a body.
func (c *APIClient) Get(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, http.MethodGet, path, "")
}

// Post performs a POST exchange with a literal JSON body.
func (c *APIClient) Post(ctx context.Context, path, body string) (*Response, error) {
	return c.Do(ctx, http.MethodPost, path, body)
}

// Put performs a PUT exchange with a literal JSON body.
func (c *APIClient) Put(ctx context.Context, path, body string) (*Response, error) {
	return c.Do(ctx, http.MethodPut, path, body)
}

// Delete performs a DELETE exchange without a body.
func (c *APIClient) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, http.MethodDelete, path, "")
}
