package icontrol

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"lb-status/core/icontrol/models"
)

// Management API paths.
const (
	PathLogin        = "/mgmt/shared/authn/login"
	PathVirtual      = "/mgmt/tm/ltm/virtual"
	PathVirtualStats = "/mgmt/tm/ltm/virtual/stats"
	PathPool         = "/mgmt/tm/ltm/pool"
	PathPoolStats    = "/mgmt/tm/ltm/pool/stats"
	PathNode         = "/mgmt/tm/ltm/node"
	PathNodeStats    = "/mgmt/tm/ltm/node/stats"
)

// localhostPrefix is how the device spells its own address in reference links.
const localhostPrefix = "https://localhost"

const maxErrorBody = 512

// Client talks to the management API of one load balancer.
// It implements reconcile.Source.
type Client struct {
	cfg     Config
	baseURL string
	http    *http.Client

	mu    sync.RWMutex
	token string
}

// NewClient creates a client for host. Hosts without a scheme get https://.
func NewClient(cfg Config, host string) (*Client, error) {
	host = strings.TrimSpace(host)
	if host == "" {
		return nil, fmt.Errorf("gateway host is empty")
	}
	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		host = "https://" + host
	}
	u, err := url.Parse(host)
	if err != nil {
		return nil, fmt.Errorf("invalid gateway host %q: %w", host, err)
	}
	if cfg.Auth == "" {
		cfg.Auth = AuthToken
	}
	if !cfg.IsValidAuth() {
		return nil, fmt.Errorf("unsupported auth scheme %q", cfg.Auth)
	}

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
		// Management interfaces commonly use self-signed certificates.
		TLSClientConfig: &tls.Config{InsecureSkipVerify: !cfg.VerifySSL}, //nolint:gosec
	}

	return &Client{
		cfg:     cfg,
		baseURL: strings.TrimRight(u.Scheme+"://"+u.Host, "/"),
		http:    &http.Client{Transport: transport, Timeout: timeoutDuration},
	}, nil
}

// BaseURL returns the scheme and host requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Login obtains an auth token when token auth is configured.
// It is a no-op for basic auth.
func (c *Client) Login(ctx context.Context) error {
	if c.cfg.Auth == AuthBasic {
		return nil
	}

	body, err := json.Marshal(map[string]string{
		"username":          c.cfg.Username,
		"password":          c.cfg.Password,
		"loginProviderName": c.cfg.LoginProvider,
	})
	if err != nil {
		return err
	}

	var resp struct {
		Token struct {
			Token string `json:"token"`
		} `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, PathLogin, bytes.NewReader(body), &resp); err != nil {
		return fmt.Errorf("login failed: %w", err)
	}
	if resp.Token.Token == "" {
		return ErrNoToken
	}

	c.mu.Lock()
	c.token = resp.Token.Token
	c.mu.Unlock()
	return nil
}

// ListVirtuals returns the virtual server definitions.
func (c *Client) ListVirtuals(ctx context.Context) (*models.VirtualList, error) {
	return fetch[models.VirtualList](ctx, c, PathVirtual)
}

// VirtualStats returns the virtual server statistics.
func (c *Client) VirtualStats(ctx context.Context) (*models.Stats, error) {
	return fetch[models.Stats](ctx, c, PathVirtualStats)
}

// ListPools returns the pool definitions.
func (c *Client) ListPools(ctx context.Context) (*models.PoolList, error) {
	return fetch[models.PoolList](ctx, c, PathPool)
}

// PoolStats returns the pool statistics.
func (c *Client) PoolStats(ctx context.Context) (*models.Stats, error) {
	return fetch[models.Stats](ctx, c, PathPoolStats)
}

// ListPoolMembers returns the live member listing of pool.
func (c *Client) ListPoolMembers(ctx context.Context, pool models.Pool) (*models.MemberList, error) {
	return fetch[models.MemberList](ctx, c, MembersPath(pool))
}

// ListNodes returns the node definitions.
func (c *Client) ListNodes(ctx context.Context) (*models.NodeList, error) {
	return fetch[models.NodeList](ctx, c, PathNode)
}

// NodeStats returns the node statistics.
func (c *Client) NodeStats(ctx context.Context) (*models.Stats, error) {
	return fetch[models.Stats](ctx, c, PathNodeStats)
}

// MembersPath returns the request path of a pool's member listing. The
// members reference link is used when present, with its query and the
// device's self address removed; otherwise the path is built from the
// pool's fullPath.
func MembersPath(pool models.Pool) string {
	if link := pool.MembersReference.Link; link != "" {
		if i := strings.Index(link, "?"); i >= 0 {
			link = link[:i]
		}
		link = strings.TrimPrefix(link, localhostPrefix)
		if u, err := url.Parse(link); err == nil && u.Host != "" {
			link = u.Path
		}
		return link
	}

	fullPath := pool.FullPath
	if fullPath == "" {
		fullPath = "/Common/" + pool.Name
	}
	return PathPool + "/" + strings.ReplaceAll(fullPath, "/", "~") + "/members"
}

func fetch[T any](ctx context.Context, c *Client, path string) (*T, error) {
	var out T
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if path != PathLogin {
		switch c.cfg.Auth {
		case AuthBasic:
			req.SetBasicAuth(c.cfg.Username, c.cfg.Password)
		default:
			c.mu.RLock()
			token := c.token
			c.mu.RUnlock()
			if token != "" {
				req.Header.Set("X-F5-Auth-Token", token)
			}
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(snippet)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return nil
}
