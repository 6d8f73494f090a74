package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"github.com/desertthunder/myflix/internal/session"
	"github.com/desertthunder/myflix/internal/shared"
)

// DefaultBaseURL is the public myFlix API.
const DefaultBaseURL = "https://filmquarry.herokuapp.com/"

const defaultUserAgent = "myflix-cli"

// Client implements [MovieService] over HTTP.
//
// Authenticated calls go through an [oauth2.Transport] whose token source
// reads the session on every request, so a login or logout is picked up
// without rebuilding the client.
type Client struct {
	baseURL   string
	session   session.Store
	anon      *http.Client
	authed    *http.Client
	limiter   *rate.Limiter
	userAgent string
	logger    *log.Logger
}

// ClientOpts configures a [Client]. Zero values select defaults.
type ClientOpts struct {
	BaseURL    string
	Session    session.Store
	HTTPClient *http.Client
	RateLimit  float64 // requests per second, 0 disables limiting
	UserAgent  string
	Timeout    time.Duration
	Logger     *log.Logger
}

// NewClient creates a new API client.
func NewClient(opts ClientOpts) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Session == nil {
		opts.Session = session.NewMemoryStore()
	}
	if opts.UserAgent == "" {
		opts.UserAgent = defaultUserAgent
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(io.Discard)
	}

	anon := opts.HTTPClient
	if anon == nil {
		anon = &http.Client{Timeout: opts.Timeout}
	}

	authed := &http.Client{
		Transport: &oauth2.Transport{
			Source: sessionTokenSource{store: opts.Session},
			Base:   anon.Transport,
		},
		Timeout:       anon.Timeout,
		CheckRedirect: anon.CheckRedirect,
		Jar:           anon.Jar,
	}

	var limiter *rate.Limiter
	if opts.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), 1)
	}

	return &Client{
		baseURL:   strings.TrimRight(opts.BaseURL, "/"),
		session:   opts.Session,
		anon:      anon,
		authed:    authed,
		limiter:   limiter,
		userAgent: opts.UserAgent,
		logger:    opts.Logger,
	}
}

// sessionTokenSource hands the current session token to [oauth2.Transport].
// An absent token yields an empty bearer value; requests are never blocked
// locally and the server decides.
type sessionTokenSource struct {
	store session.Store
}

func (s sessionTokenSource) Token() (*oauth2.Token, error) {
	return &oauth2.Token{AccessToken: s.store.Token(), TokenType: "Bearer"}, nil
}

// call describes one gateway request.
type call struct {
	op     Operation
	method string
	path   string
	auth   bool
	body   any
}

func (c *Client) url(path string) string {
	return c.baseURL + "/" + strings.TrimLeft(path, "/")
}

// do performs req and decodes a successful JSON body into result when result
// is non-nil. A success body that does not decode leaves result zero. Every
// failure is logged once here and returned as a [*RequestError].
func (c *Client) do(ctx context.Context, req call, result any) error {
	var payload io.Reader
	if req.body != nil {
		data, err := json.Marshal(req.body)
		if err != nil {
			return c.fail(req, "", 0, nil, fmt.Errorf("failed to encode request: %w", err))
		}
		payload = bytes.NewReader(data)
	}

	requestID := shared.GenerateID()
	httpReq, err := http.NewRequestWithContext(ctx, req.method, c.url(req.path), payload)
	if err != nil {
		return c.fail(req, requestID, 0, nil, fmt.Errorf("failed to create request: %w", err))
	}
	c.setHeaders(httpReq, requestID, req.body != nil)

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return c.fail(req, requestID, 0, nil, fmt.Errorf("rate limiter: %w", err))
		}
	}

	start := time.Now()
	resp, err := c.client(req.auth).Do(httpReq)
	if err != nil {
		return c.fail(req, requestID, 0, nil, fmt.Errorf("request failed: %w", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.fail(req, requestID, resp.StatusCode, nil, fmt.Errorf("failed to read response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.fail(req, requestID, resp.StatusCode, body, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	c.logger.Debug("request complete",
		"op", req.op, "method", req.method, "path", req.path,
		"status", resp.StatusCode, "elapsed", time.Since(start), "request_id", requestID)

	if result == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, result); err != nil {
		// A 2xx is a success whatever the body; callers get a zero result.
		c.logger.Warn("undecodable success body",
			"op", req.op, "status", resp.StatusCode, "body", string(body), "request_id", requestID, "err", err)
		reflect.ValueOf(result).Elem().SetZero()
	}
	return nil
}

func (c *Client) fail(req call, requestID string, status int, body []byte, cause error) error {
	c.logger.Error("request failed",
		"op", req.op, "method", req.method, "path", req.path,
		"status", status, "body", string(body), "request_id", requestID, "err", cause)
	return newRequestError(req.op, status, body, cause)
}

func (c *Client) client(auth bool) *http.Client {
	if auth {
		return c.authed
	}
	return c.anon
}

func (c *Client) setHeaders(req *http.Request, requestID string, hasBody bool) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", requestID)
	if hasBody {
		req.Header.Set("Content-Type", "application/json")
	}
}
