package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"sort"

	"github.com/ziadkadry99/opspanel/internal/config"
)

// Health checks the API's liveness endpoint.
func (c *Client) Health(ctx context.Context) Result {
	return c.Call(ctx, config.EndpointHealth, CallOptions{Method: http.MethodGet})
}

// SubmitItem posts an item. A non-2xx answer is reported with its status and
// body text, whatever the body contains.
func (c *Client) SubmitItem(ctx context.Context, item Item) Result {
	res := c.Call(ctx, config.EndpointItems, CallOptions{Method: http.MethodPost, Body: item})
	if res.Status != 0 && (res.Status < 200 || res.Status >= 300) {
		res.OK = false
		res.Err = fmt.Sprintf("Server responded with %d: %s", res.Status, res.Raw)
	}
	return res
}

// CreateUser posts a new user.
func (c *Client) CreateUser(ctx context.Context, user UserRequest) Result {
	return c.Call(ctx, config.EndpointUser, CallOptions{Method: http.MethodPost, Body: user})
}

// ListUsers fetches every stored user.
func (c *Client) ListUsers(ctx context.Context) Result {
	return c.Call(ctx, config.EndpointUsers, CallOptions{Method: http.MethodGet})
}

// SetKey stores a key/value pair.
func (c *Client) SetKey(ctx context.Context, kv KeyValue) Result {
	return c.Call(ctx, config.EndpointSet, CallOptions{Method: http.MethodPost, Body: kv})
}

// TriggerFunc1 fires the first trigger endpoint.
func (c *Client) TriggerFunc1(ctx context.Context) Result {
	return c.Call(ctx, config.EndpointFunc1, CallOptions{Method: http.MethodGet})
}

// TriggerFunc2 fires the second trigger endpoint.
func (c *Client) TriggerFunc2(ctx context.Context) Result {
	return c.Call(ctx, config.EndpointFunc2, CallOptions{Method: http.MethodGet})
}

// Metrics fetches the metrics exposition as plain text.
func (c *Client) Metrics(ctx context.Context) Result {
	res := c.Fetch(ctx, config.EndpointMetrics, CallOptions{
		Method: http.MethodGet,
		Accept: "text/plain",
	})
	if !res.Failed() && !res.OK {
		res.Err = fmt.Sprintf("Server responded with %d: %s", res.Status, res.Raw)
	}
	return res
}

// MetricsURL returns the absolute metrics link.
func (c *Client) MetricsURL() (string, error) {
	return c.cfg.URL(config.EndpointMetrics)
}

// Links lists every configured endpoint with its absolute URL, known
// endpoints first in their display order.
func (c *Client) Links() []Link {
	seen := make(map[string]bool, len(c.cfg.Endpoints))
	var links []Link
	for _, name := range config.EndpointOrder {
		if u, err := c.cfg.URL(name); err == nil {
			links = append(links, Link{Name: name, URL: u})
			seen[name] = true
		}
	}
	extra := make([]string, 0)
	for name := range c.cfg.Endpoints {
		if !seen[name] {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	for _, name := range extra {
		u, _ := c.cfg.URL(name)
		links = append(links, Link{Name: name, URL: u})
	}
	return links
}
