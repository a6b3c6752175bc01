// Package api is the HTTP/JSON client for the remote Finance Manager
// API. All persistence, validation authority, and authentication live
// on the server; this package only shapes requests and decodes
// responses.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	requestTimeout = 10 * time.Second
	maxBodySize    = 1 << 20 // 1 MB
)

var (
	// ErrUnauthorized indicates the server rejected the credentials or
	// the session identity no longer exists.
	ErrUnauthorized = errors.New("api: unauthorized")
)

// serverError is the error envelope some endpoints return. The two
// field names cover both backend generations.
type serverError struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// MonthData is the result of a full month fetch.
type MonthData struct {
	Expenses []ExpenseRecord
	Incomes  []IncomeRecord
}

// Client talks to the remote API. Safe for concurrent use; each row's
// in-flight write gets its own request.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the given base URL, e.g.
// "http://localhost:8080". A trailing slash is tolerated.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:    &http.Client{},
	}
}

// Login authenticates and returns the session identity.
func (c *Client) Login(ctx context.Context, email, password string) (User, error) {
	body := map[string]string{"email": email, "senha": password}

	var user User
	if err := c.do(ctx, http.MethodPost, "/usuarios/login", body, &user); err != nil {
		return User{}, err
	}
	if user.ID == 0 {
		return User{}, errors.New("api: login response missing user id")
	}
	return user, nil
}

// Register creates a new account. The caller logs in separately.
func (c *Client) Register(ctx context.Context, name, email, password string) error {
	body := map[string]string{"nome": name, "email": email, "senha": password}
	return c.do(ctx, http.MethodPost, "/usuarios/register", body, nil)
}

// FetchMonth issues the expense and income reads for one month in
// parallel. Both must succeed; either failure fails the whole load and
// the caller resets to a blank ledger.
func (c *Client) FetchMonth(ctx context.Context, userID int64, month int) (MonthData, error) {
	var data MonthData

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		expenses, err := c.ListExpenses(ctx, userID, month)
		if err != nil {
			return err
		}
		data.Expenses = expenses
		return nil
	})
	g.Go(func() error {
		incomes, err := c.ListIncomes(ctx, userID, month)
		if err != nil {
			return err
		}
		data.Incomes = incomes
		return nil
	})

	if err := g.Wait(); err != nil {
		return MonthData{}, err
	}
	return data, nil
}

// ListExpenses returns the user's expenses for a 1-based month.
func (c *Client) ListExpenses(ctx context.Context, userID int64, month int) ([]ExpenseRecord, error) {
	var out []ExpenseRecord
	path := fmt.Sprintf("/usuarios/%d/despesas?mes=%d", userID, month)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListIncomes returns the user's incomes for a 1-based month.
func (c *Client) ListIncomes(ctx context.Context, userID int64, month int) ([]IncomeRecord, error) {
	var out []IncomeRecord
	path := fmt.Sprintf("/usuarios/%d/receitas?mes=%d", userID, month)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateExpense persists a new expense row.
func (c *Client) CreateExpense(ctx context.Context, userID int64, p ExpensePayload) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/usuarios/%d/despesas", userID), p, nil)
}

// UpdateExpense rewrites an existing expense row.
func (c *Client) UpdateExpense(ctx context.Context, userID, id int64, p ExpensePayload) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/usuarios/%d/despesas/%d", userID, id), p, nil)
}

// DeleteExpense removes a persisted expense row.
func (c *Client) DeleteExpense(ctx context.Context, userID, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/usuarios/%d/despesas/%d", userID, id), nil, nil)
}

// CreateIncome persists a new income row.
func (c *Client) CreateIncome(ctx context.Context, userID int64, p IncomePayload) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/usuarios/%d/receitas", userID), p, nil)
}

// UpdateIncome rewrites an existing income row.
func (c *Client) UpdateIncome(ctx context.Context, userID, id int64, p IncomePayload) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/usuarios/%d/receitas/%d", userID, id), p, nil)
}

// DeleteIncome removes a persisted income row.
func (c *Client) DeleteIncome(ctx context.Context, userID, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/usuarios/%d/receitas/%d", userID, id), nil, nil)
}

// do performs one request. A non-nil body is JSON-encoded; a non-nil
// out decodes the response body into it. Server-provided error
// messages are surfaced so the user sees what the backend rejected.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api: encoding request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("api: creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("api: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return fmt.Errorf("api: reading response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		if msg := extractMessage(raw); msg != "" {
			return fmt.Errorf("%w: %s", ErrUnauthorized, msg)
		}
		return ErrUnauthorized
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		if msg := extractMessage(raw); msg != "" {
			return errors.New(msg)
		}
		return fmt.Errorf("api: unexpected status %d", resp.StatusCode)
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("api: decoding response: %w", err)
		}
	}
	return nil
}

// extractMessage pulls the server's human-readable message out of an
// error body, if there is one.
func extractMessage(raw []byte) string {
	var se serverError
	if err := json.Unmarshal(raw, &se); err != nil {
		return ""
	}
	if se.Message != "" {
		return se.Message
	}
	return se.Error
}
