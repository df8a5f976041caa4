package ledger

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
)

const requestTimeout = 30 * time.Second

// Client is a read-only client for the remote ledger REST API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient authenticates every request with apiKey as a bearer token.
func NewClient(ctx context.Context, baseURL, apiKey string) *Client {
	httpClient := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: apiKey,
		TokenType:   "Bearer",
	}))
	httpClient.Timeout = requestTimeout

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

func (c *Client) CurrentUser(ctx context.Context) (*User, error) {
	var resp currentUserResponse
	if err := c.get(ctx, "get_current_user", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

func (c *Client) ListGroups(ctx context.Context) ([]Group, error) {
	var resp groupsResponse
	if err := c.get(ctx, "get_groups", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Groups, nil
}

func (c *Client) ListFriends(ctx context.Context) ([]Friend, error) {
	var resp friendsResponse
	if err := c.get(ctx, "get_friends", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Friends, nil
}

// ListExpenses returns one page. A non-nil datedAfter limits results to
// expenses dated after that day.
func (c *Client) ListExpenses(ctx context.Context, offset, limit int, datedAfter *time.Time) ([]Expense, error) {
	query := url.Values{}
	query.Set("offset", strconv.Itoa(offset))
	query.Set("limit", strconv.Itoa(limit))
	if datedAfter != nil {
		query.Set("dated_after", datedAfter.Format(time.DateOnly))
	}

	var resp expensesResponse
	if err := c.get(ctx, "get_expenses", query, &resp); err != nil {
		return nil, err
	}
	return resp.Expenses, nil
}

func (c *Client) get(ctx context.Context, op string, query url.Values, out interface{}) error {
	endpoint := c.baseURL + "/" + op
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &TransportError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Err:        errors.Errorf("unexpected response: %s", strings.TrimSpace(string(body))),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &TransportError{Op: op, StatusCode: resp.StatusCode, Err: errors.Wrap(err, "decode")}
	}
	return nil
}
