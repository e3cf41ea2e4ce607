package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/KissOfTheVoid/parse-joinrpg/pkg/logger"

	"go.uber.org/zap"
)

// Character is one entry from the project character list. The remote service does
// not guarantee a schema beyond the identifier field, so entries stay untyped.
type Character map[string]interface{}

// ID extracts the character identifier. The service has returned it both as a
// JSON string and as a number; either is accepted. Returns "" when absent.
func (c Character) ID() string {
	switch v := c["characterId"].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	default:
		return ""
	}
}

// Config holds the endpoints and credentials for one API session
type Config struct {
	AuthURL   string
	LoginData map[string]string

	// CharactersURL contains a {projectId} placeholder.
	CharactersURL string
	// CharacterDetailsURL contains {projectId} and {characterId} placeholders.
	CharacterDetailsURL string

	ProjectID string
}

// Client talks to the remote character API over one shared HTTP session.
// Authenticate must succeed before any fetch call; the bearer token it obtains is
// attached to every subsequent request.
type Client struct {
	cfg        Config
	httpClient *http.Client
	logger     *logger.Logger
	token      string
}

// NewClient creates a new Client instance
func NewClient(cfg Config, l *logger.Logger) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{},
		logger:     l,
	}
}

// Authenticate exchanges the configured login payload for a bearer token
func (c *Client) Authenticate(ctx context.Context) error {
	form := url.Values{}
	for k, v := range c.cfg.LoginData {
		form.Set(k, v)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.AuthURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAuthFailed, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAuthFailed, err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error("authentication request rejected", ErrAuthFailed,
			zap.Int("status", resp.StatusCode), zap.ByteString("body", body))
		return fmt.Errorf("%w: status %d", ErrAuthFailed, resp.StatusCode)
	}

	var auth struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(body, &auth); err != nil {
		c.logger.Error("failed to decode authentication response", err, zap.ByteString("body", body))
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if auth.AccessToken == "" {
		c.logger.Error("authentication response carried no token", ErrTokenMissing, zap.ByteString("body", body))
		return ErrTokenMissing
	}

	c.token = auth.AccessToken
	return nil
}

// CharacterList fetches the character summaries for the configured project.
// An empty list is a valid result, not an error.
func (c *Client) CharacterList(ctx context.Context) ([]Character, error) {
	u := c.expand(c.cfg.CharactersURL, "")

	status, body, err := c.get(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	if status < 200 || status > 299 {
		c.logger.Error("character list request rejected", ErrFetchFailed,
			zap.Int("status", status), zap.ByteString("body", body))
		return nil, fmt.Errorf("%w: status %d", ErrFetchFailed, status)
	}

	var raw interface{}
	if err := json.Unmarshal(body, &raw); err != nil {
		c.logger.Error("failed to decode character list", err, zap.ByteString("body", body))
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedFormat, err)
	}
	items, ok := raw.([]interface{})
	if !ok {
		c.logger.Error("character list is not an array", ErrUnexpectedFormat, zap.ByteString("body", body))
		return nil, ErrUnexpectedFormat
	}

	characters := make([]Character, 0, len(items))
	for _, item := range items {
		// Non-object entries surface downstream as a missing identifier and
		// get skipped there with a warning.
		m, _ := item.(map[string]interface{})
		characters = append(characters, Character(m))
	}
	return characters, nil
}

// CharacterDetails fetches the detail record for one character. Failures here are
// per-item: the caller is expected to skip the character and keep going.
func (c *Client) CharacterDetails(ctx context.Context, characterID string) (map[string]interface{}, error) {
	u := c.expand(c.cfg.CharacterDetailsURL, characterID)

	status, body, err := c.get(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDetailFetch, err)
	}
	if status < 200 || status > 299 {
		return nil, fmt.Errorf("%w: status %d, body %s", ErrDetailFetch, status, body)
	}

	var detail map[string]interface{}
	if err := json.Unmarshal(body, &detail); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDetailDecode, err)
	}
	return detail, nil
}

// Close releases the underlying HTTP session
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// get issues an authenticated GET and returns the status code and full body
func (c *Client) get(ctx context.Context, u string) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, body, nil
}

func (c *Client) expand(template, characterID string) string {
	r := strings.NewReplacer(
		"{projectId}", c.cfg.ProjectID,
		"{characterId}", characterID,
	)
	return r.Replace(template)
}
