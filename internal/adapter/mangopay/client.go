// Package mangopay is the payment processor API client. It submits
// resources built by the service layer and never retries.
package mangopay

import (
	"context"
	"fmt"
	"strings"
	"time"

	"mangopay-sync/config"
	"mangopay-sync/internal/core/ports"
	"mangopay-sync/internal/core/resource"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

const (
	apiVersion = "v2.01"

	// Tokens are cached slightly shorter than they live.
	tokenExpiryMargin = time.Minute
)

// Client implements ports.RemoteClient over the processor REST API.
type Client struct {
	http       *resty.Client
	clientID   string
	passphrase string
	tokens     ports.TokenCache
	metrics    *Metrics
	log        zerolog.Logger
}

// NewClient creates a processor client. tokens and metrics may be nil;
// without a cache every call requests a fresh OAuth token.
func NewClient(cfg config.MangopayConfig, tokens ports.TokenCache, metrics *Metrics, log zerolog.Logger) *Client {
	http := resty.New().
		SetBaseURL(cfg.Endpoint()).
		SetHeader("Accept", "application/json")
	if cfg.Timeout > 0 {
		http.SetTimeout(cfg.Timeout)
	}
	return &Client{
		http:       http,
		clientID:   cfg.ClientID,
		passphrase: cfg.Passphrase,
		tokens:     tokens,
		metrics:    metrics,
		log:        log.With().Str("component", "mangopay").Logger(),
	}
}

var _ ports.RemoteClient = (*Client)(nil)

func (c *Client) Create(ctx context.Context, res resource.Resource) (*resource.Response, error) {
	rt, err := createRoute(res)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, res.Kind(), rt, res)
}

func (c *Client) Update(ctx context.Context, res resource.Resource) (*resource.Response, error) {
	rt, err := updateRoute(res)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, res.Kind(), rt, res)
}

func (c *Client) Fetch(ctx context.Context, kind resource.Kind, id string) (*resource.Response, error) {
	rt, err := fetchRoute(kind, id)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, kind, rt, nil)
}

func (c *Client) do(ctx context.Context, kind resource.Kind, rt route, body any) (*resource.Response, error) {
	token, err := c.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	var (
		out    resource.Response
		apiErr APIError
	)
	req := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetResult(&out).
		SetError(&apiErr)
	if body != nil {
		req.SetBody(body)
	}

	start := time.Now()
	resp, err := req.Execute(rt.method, c.clientPath(rt.path))
	if err != nil {
		c.metrics.ObserveRequest(string(kind), rt.method, "transport_error", time.Since(start))
		return nil, fmt.Errorf("mangopay %s %s: %w", rt.method, rt.path, err)
	}
	if resp.IsError() {
		c.metrics.ObserveRequest(string(kind), rt.method, "api_error", time.Since(start))
		apiErr.StatusCode = resp.StatusCode()
		c.log.Debug().
			Str("method", rt.method).
			Str("path", rt.path).
			Int("status", resp.StatusCode()).
			Str("type", apiErr.Type).
			Msg("processor rejected request")
		return nil, &apiErr
	}
	c.metrics.ObserveRequest(string(kind), rt.method, "ok", time.Since(start))
	return &out, nil
}

func (c *Client) clientPath(path string) string {
	return fmt.Sprintf("/%s/%s/%s", apiVersion, c.clientID, strings.TrimLeft(path, "/"))
}

type oauthToken struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

func (c *Client) tokenKey() string {
	return "mangopay:oauth:" + c.clientID
}

// accessToken returns a cached bearer token or requests a new one with
// the client credentials grant. Cache failures degrade to a fresh request.
func (c *Client) accessToken(ctx context.Context) (string, error) {
	if c.tokens != nil {
		token, err := c.tokens.Get(ctx, c.tokenKey())
		if err != nil {
			c.log.Warn().Err(err).Msg("token cache read failed, requesting a new token")
		} else if token != "" {
			c.metrics.IncrementToken("cache")
			return token, nil
		}
	}

	var (
		tok    oauthToken
		apiErr APIError
	)
	resp, err := c.http.R().
		SetContext(ctx).
		SetBasicAuth(c.clientID, c.passphrase).
		SetFormData(map[string]string{"grant_type": "client_credentials"}).
		SetResult(&tok).
		SetError(&apiErr).
		Post("/" + apiVersion + "/oauth/token")
	if err != nil {
		return "", fmt.Errorf("mangopay oauth: %w", err)
	}
	if resp.IsError() {
		apiErr.StatusCode = resp.StatusCode()
		return "", fmt.Errorf("mangopay oauth: %w", &apiErr)
	}
	if tok.AccessToken == "" {
		return "", fmt.Errorf("mangopay oauth: empty access token")
	}
	c.metrics.IncrementToken("remote")

	if c.tokens != nil {
		ttl := time.Duration(tok.ExpiresIn)*time.Second - tokenExpiryMargin
		if ttl > 0 {
			if err := c.tokens.Set(ctx, c.tokenKey(), tok.AccessToken, ttl); err != nil {
				c.log.Warn().Err(err).Msg("failed to cache access token")
			}
		}
	}
	return tok.AccessToken, nil
}
