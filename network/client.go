package network

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// SpHighScore is a single player result.
type SpHighScore struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// MpHighScore is a two player result; the team shares one score.
type MpHighScore struct {
	Player1 string `json:"player1"`
	Player2 string `json:"player2"`
	Score   int    `json:"score"`
}

// StatusError is returned when the score API answers with a non-2xx status.
type StatusError struct {
	Method string
	URL    string
	Code   int
	Body   string
}

func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.URL, e.Code, e.Body)
	}
	return fmt.Sprintf("%s %s: status %d", e.Method, e.URL, e.Code)
}

// HighScoreClient talks to the high score API. Requests are not retried.
type HighScoreClient struct {
	BaseURL string
	HTTP    *http.Client
}

func NewHighScoreClient(baseURL string, timeout time.Duration) *HighScoreClient {
	return &HighScoreClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: timeout},
	}
}

func (c *HighScoreClient) SubmitSingle(ctx context.Context, s SpHighScore) (SpHighScore, error) {
	var out SpHighScore
	err := c.do(ctx, http.MethodPost, "/sp-high-score", s, &out)
	return out, err
}

func (c *HighScoreClient) SubmitMulti(ctx context.Context, s MpHighScore) (MpHighScore, error) {
	var out MpHighScore
	err := c.do(ctx, http.MethodPost, "/mp-high-score", s, &out)
	return out, err
}

func (c *HighScoreClient) SingleScores(ctx context.Context) ([]SpHighScore, error) {
	var out []SpHighScore
	if err := c.do(ctx, http.MethodGet, "/sp-high-score", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HighScoreClient) MultiScores(ctx context.Context) ([]MpHighScore, error) {
	var out []MpHighScore
	if err := c.do(ctx, http.MethodGet, "/mp-high-score", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HighScoreClient) do(ctx context.Context, method, path string, body, out any) error {
	url := c.BaseURL + path

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s: %w", path, err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("build request %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	client := c.HTTP
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &StatusError{Method: method, URL: url, Code: resp.StatusCode, Body: strings.TrimSpace(string(msg))}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
