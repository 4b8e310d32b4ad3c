// Package remote talks to the hosted sync backend, a PostgREST-style REST
// surface over a single adoption-state table keyed by user. The client does
// one attempt per call; retry policy belongs to the caller, since a failed
// push stays in the local outbox anyway.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"rehoboam/internal/models"
)

// DefaultTable is the backend table holding adoption state rows.
const DefaultTable = "tech_tree_states"

// Config describes the sync backend connection.
type Config struct {
	BaseURL     string
	AnonKey     string
	AccessToken string
	Table       string
	Timeout     time.Duration
}

// Client provides access to the sync backend.
type Client struct {
	baseURL     string
	anonKey     string
	accessToken string
	table       string
	httpClient  *http.Client
}

// NewClient creates a sync client from cfg.
func NewClient(cfg Config) *Client {
	table := cfg.Table
	if table == "" {
		table = DefaultTable
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}

	return &Client{
		baseURL:     cfg.BaseURL,
		anonKey:     cfg.AnonKey,
		accessToken: cfg.AccessToken,
		table:       table,
		httpClient:  &http.Client{Timeout: timeout},
	}
}

// RestError is a structured error response from the backend.
type RestError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *RestError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("sync backend error %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("sync backend error %d: %s", e.StatusCode, e.Message)
}

// missingTableCode is returned by the backend when the state table has never
// been created for this project.
const missingTableCode = "PGRST205"

// SetupHint returns a human-readable remediation for errors the user can fix
// themselves, or an empty string.
func SetupHint(err error) string {
	var restErr *RestError
	if !errors.As(err, &restErr) {
		return ""
	}
	if restErr.Code == missingTableCode {
		return "The sync table does not exist yet. Create a " + DefaultTable + " table " +
			"with columns user_id, node_id, status, effective_year, effective_month, updated_at " +
			"and a unique constraint over (user_id, node_id, effective_year, effective_month)."
	}
	return ""
}

// stateRow is the backend's row shape for one adoption state record.
type stateRow struct {
	UserID         string `json:"user_id,omitempty"`
	NodeID         string `json:"node_id"`
	Status         string `json:"status"`
	EffectiveYear  *int   `json:"effective_year"`
	EffectiveMonth *int   `json:"effective_month"`
	UpdatedAt      string `json:"updated_at,omitempty"`
}

func (r stateRow) toState() models.TechTreeState {
	// Accepts fractional seconds, so a pushed timestamp survives the round
	// trip unchanged and merge tie-breaks stay stable.
	updatedAt, err := time.Parse(time.RFC3339, r.UpdatedAt)
	if err != nil {
		// Rows without a parseable timestamp lose tie-breaks gracefully.
		updatedAt = time.Now()
	}
	return models.TechTreeState{
		NodeID:         r.NodeID,
		Status:         models.TechTreeStatus(r.Status),
		EffectiveYear:  r.EffectiveYear,
		EffectiveMonth: r.EffectiveMonth,
		UpdatedAt:      updatedAt,
	}
}

// FetchStates retrieves the full remote adoption history for a user.
func (c *Client) FetchStates(ctx context.Context, userID string) ([]models.TechTreeState, error) {
	endpoint := fmt.Sprintf(
		"%s/rest/v1/%s?user_id=eq.%s&select=node_id,status,effective_year,effective_month,updated_at",
		c.baseURL, c.table, url.QueryEscape(userID),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch remote states: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.readError(resp)
	}

	var rows []stateRow
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("failed to decode remote states: %w", err)
	}

	states := make([]models.TechTreeState, 0, len(rows))
	for _, r := range rows {
		states = append(states, r.toState())
	}
	return states, nil
}

// UpsertStates pushes local records to the backend. The merge-duplicates
// preference makes repeated pushes of the same records safe.
func (c *Client) UpsertStates(ctx context.Context, userID string, states []models.TechTreeState) error {
	if len(states) == 0 {
		return nil
	}

	rows := make([]stateRow, 0, len(states))
	for _, s := range states {
		rows = append(rows, stateRow{
			UserID:         userID,
			NodeID:         s.NodeID,
			Status:         string(s.Status),
			EffectiveYear:  s.EffectiveYear,
			EffectiveMonth: s.EffectiveMonth,
			UpdatedAt:      s.UpdatedAt.UTC().Format(time.RFC3339Nano),
		})
	}

	body, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("failed to marshal state rows: %w", err)
	}

	endpoint := fmt.Sprintf("%s/rest/v1/%s", c.baseURL, c.table)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "return=minimal,resolution=merge-duplicates")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to push states: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusNoContent {
		return c.readError(resp)
	}
	return nil
}

// setHeaders applies backend auth. A session access token supersedes the
// anonymous key as the bearer credential.
func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("apikey", c.anonKey)
	token := c.accessToken
	if token == "" {
		token = c.anonKey
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
}

func (c *Client) readError(resp *http.Response) error {
	restErr := &RestError{StatusCode: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err == nil && len(body) > 0 {
		_ = json.Unmarshal(body, restErr)
		if restErr.Message == "" {
			restErr.Message = string(body)
		}
	}
	if restErr.Message == "" {
		restErr.Message = http.StatusText(resp.StatusCode)
	}
	return restErr
}
