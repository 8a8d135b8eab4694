package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client talks to the REST api of a running daemon
type Client struct {
	BaseUrl  string
	Token    string
	Language string

	httpClient *http.Client
}

func NewClient(baseUrl string, token string, language string) *Client {
	return &Client{
		BaseUrl:  strings.TrimSuffix(baseUrl, "/"),
		Token:    token,
		Language: language,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *Client) Status(ctx context.Context) (result LimiterStatus, err error) {
	err = c.do(ctx, http.MethodGet, "/limiter/", &result)
	return result, err
}

func (c *Client) Toggle(ctx context.Context) (result ToggleResult, err error) {
	err = c.do(ctx, http.MethodPost, "/limiter/toggle/", &result)
	return result, err
}

func (c *Client) do(ctx context.Context, method string, path string, target any) error {
	u, err := url.Parse(c.BaseUrl + path)
	if err != nil {
		return fmt.Errorf("invalid api url: %w", err)
	}
	if c.Language != "" {
		query := u.Query()
		query.Set(queryParamLang, c.Language)
		u.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), nil)
	if err != nil {
		return err
	}
	if c.Token != "" {
		req.Header.Set(HeaderApiKey, c.Token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("unable to reach daemon at %s: %w", c.BaseUrl, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		result := Result{}
		if err := json.Unmarshal(body, &result); err == nil && result.Message != "" {
			return fmt.Errorf("%s: %s", result.Name, result.Message)
		}
		return fmt.Errorf("unexpected response status: %s", resp.Status)
	}
	return json.Unmarshal(body, target)
}
