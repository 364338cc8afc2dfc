// Package identity resolves a VCS account from an author email via the
// identity provider's public search API.
//
// The lookup is strictly best-effort: any network, rate-limit, or decode
// failure degrades to an empty account so the pipeline never blocks or
// aborts on it. It is never retried.
package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/webgen/cli/internal/output"
)

// DefaultEndpoint is the user search endpoint of the identity provider.
const DefaultEndpoint = "https://api.github.com/search/users"

// lookupTimeout bounds a single lookup request.
const lookupTimeout = 5 * time.Second

// Lookup queries accounts by email.
type Lookup struct {
	endpoint string
	client   *http.Client
}

// NewLookup creates a lookup against the default endpoint.
func NewLookup() *Lookup {
	return &Lookup{
		endpoint: DefaultEndpoint,
		client:   &http.Client{Timeout: lookupTimeout},
	}
}

// NewLookupWithEndpoint creates a lookup against a custom endpoint.
// Used by tests to point at a local server.
func NewLookupWithEndpoint(endpoint string) *Lookup {
	return &Lookup{
		endpoint: endpoint,
		client:   &http.Client{Timeout: lookupTimeout},
	}
}

type searchResult struct {
	Items []struct {
		Login string `json:"login"`
	} `json:"items"`
}

// AccountByEmail returns the account login registered for email, or ""
// when the email is empty, unknown, or the provider is unreachable.
func (l *Lookup) AccountByEmail(ctx context.Context, email string) string {
	if email == "" {
		return ""
	}

	q := url.Values{}
	q.Set("q", fmt.Sprintf("%s in:email", email))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.endpoint+"?"+q.Encode(), nil)
	if err != nil {
		output.Debug("account lookup skipped", "error", err)
		return ""
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := l.client.Do(req)
	if err != nil {
		output.Debug("account lookup failed", "email", email, "error", err)
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		output.Debug("account lookup rejected", "email", email, "status", resp.StatusCode)
		return ""
	}

	var result searchResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		output.Debug("account lookup decode failed", "email", email, "error", err)
		return ""
	}
	if len(result.Items) == 0 {
		return ""
	}
	return result.Items[0].Login
}
