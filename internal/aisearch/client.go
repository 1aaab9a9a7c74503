package aisearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/spec-kit/roster-service/internal/config"
	"github.com/spec-kit/roster-service/internal/domain"
	apperrors "github.com/spec-kit/roster-service/pkg/util"
)

// Searcher submits a natural-language query over a record collection and
// returns the service's raw textual answer.
type Searcher interface {
	Search(ctx context.Context, records []domain.Employee, query string) (string, error)
}

// Client calls the Gemini generateContent endpoint. One attempt per
// invocation: transport failures are terminal and the user re-invokes
// manually. The timeout comes from the underlying http.Client.
type Client struct {
	cfg        config.GeminiConfig
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient builds the client from configuration.
func NewClient(cfg config.GeminiConfig, logger *zap.Logger) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout()},
		logger:     logger,
	}
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Search POSTs the instruction template interpolated with the full dataset
// and the query, and extracts the raw answer text from the response envelope.
func (c *Client) Search(ctx context.Context, records []domain.Employee, query string) (string, error) {
	prompt, err := BuildPrompt(records, query)
	if err != nil {
		return "", apperrors.NewInternalError(err)
	}

	reqBody := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			Temperature:     c.cfg.Temperature,
			TopK:            c.cfg.TopK,
			TopP:            c.cfg.TopP,
			MaxOutputTokens: c.cfg.MaxOutputTokens,
		},
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", apperrors.NewInternalError(err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.cfg.BaseURL, c.cfg.Model, c.cfg.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", apperrors.NewInternalError(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", apperrors.NewRequestError("search request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", apperrors.NewRequestError("failed to read search response", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := resp.Status
		var failure generateResponse
		if json.Unmarshal(body, &failure) == nil && failure.Error != nil && failure.Error.Message != "" {
			message = failure.Error.Message
		}
		c.logger.Warn("search request rejected",
			zap.Int("status", resp.StatusCode),
			zap.String("message", message))
		return "", apperrors.NewRequestError(
			fmt.Sprintf("API request failed: %d - %s", resp.StatusCode, message), nil)
	}

	var envelope generateResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return "", apperrors.NewRequestError("unexpected API response format", err)
	}
	if len(envelope.Candidates) == 0 || len(envelope.Candidates[0].Content.Parts) == 0 {
		return "", apperrors.NewRequestError("unexpected API response format", nil)
	}

	return envelope.Candidates[0].Content.Parts[0].Text, nil
}
