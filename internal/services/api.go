// Raw passthrough requests against the myFlix API
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/desertthunder/myflix/internal/shared"
)

// APIResponse represents a raw API response with status and body.
type APIResponse struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	IsJSON     bool
	JSONData   any
}

// OK reports whether the status is 2xx.
func (r *APIResponse) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Raw performs an arbitrary request and returns the response whatever its status.
//
// The session bearer token is attached when auth is set. Only transport
// failures are returned as errors.
func (c *Client) Raw(ctx context.Context, method, path string, data []byte, auth bool) (*APIResponse, error) {
	method = strings.ToUpper(method)

	var payload io.Reader
	if len(data) > 0 {
		if !json.Valid(data) {
			return nil, fmt.Errorf("request body is not valid JSON")
		}
		payload = bytes.NewReader(data)
	}

	requestID := shared.GenerateID()
	req, err := http.NewRequestWithContext(ctx, method, c.url(path), payload)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(req, requestID, payload != nil)

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter: %w", err)
		}
	}

	resp, err := c.client(auth).Do(req)
	if err != nil {
		c.logger.Error("raw request failed", "method", method, "path", path, "request_id", requestID, "err", err)
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.logger.Debug("raw request complete", "method", method, "path", path, "status", resp.StatusCode, "request_id", requestID)

	apiResp := &APIResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       body,
	}

	var jsonData any
	if err := json.Unmarshal(body, &jsonData); err == nil {
		apiResp.IsJSON = true
		apiResp.JSONData = jsonData
	}

	return apiResp, nil
}
