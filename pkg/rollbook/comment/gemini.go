package comment

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

	"github.com/kaptinlin/jsonrepair"
	"github.com/rs/zerolog"
	"github.com/ukaji3/rollbook-go/pkg/rollbook/models"
)

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	DefaultModel   = "gemini-2.0-flash"
)

// ClientConfig configures a Gemini client.
type ClientConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
	// HTTPClient overrides the transport. If nil, a client with Timeout is used.
	HTTPClient *http.Client
	Logger     *zerolog.Logger
}

// GeminiClient generates comments and reads grade tables through the
// Gemini generateContent REST endpoint.
type GeminiClient struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
	log     zerolog.Logger
}

// NewGeminiClient creates a client. A missing API key is reported on the
// first call, not here.
func NewGeminiClient(cfg ClientConfig) *GeminiClient {
	c := &GeminiClient{
		apiKey:  strings.TrimSpace(cfg.APIKey),
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		model:   cfg.Model,
		client:  cfg.HTTPClient,
		log:     zerolog.Nop(),
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.model == "" {
		c.model = DefaultModel
	}
	if c.client == nil {
		c.client = &http.Client{Timeout: cfg.Timeout}
	}
	if cfg.Logger != nil {
		c.log = *cfg.Logger
	}
	return c
}

// Generate returns comments keyed by record id for one batch.
// Items the model returns without an id or comment are ignored.
func (c *GeminiClient) Generate(ctx context.Context, records []models.Record, role models.Role, subject string) (map[string]string, error) {
	if len(records) == 0 {
		return map[string]string{}, nil
	}
	if subject == "" {
		subject = DefaultSubject
	}

	payload, err := Payload(records, role)
	if err != nil {
		return nil, fmt.Errorf("failed to encode records: %w", err)
	}

	req := generateContentRequest{
		Contents: []content{{Role: "user", Parts: []part{{Text: string(payload)}}}},
		SystemInstruction: &systemInstruction{
			Parts: []part{{Text: SystemPrompt(role, subject)}},
		},
		GenerationConfig: &generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   commentSchema,
		},
	}

	resp, err := c.generateContent(ctx, req)
	if err != nil {
		return nil, err
	}
	text := resp.text()
	if text == "" {
		return nil, fmt.Errorf("%w: empty response from model", ErrConnectivity)
	}

	var items []commentItem
	if err := decodeJSON(text, &items); err != nil {
		c.log.Warn().Err(err).Int("batch", len(records)).Msg("unparseable comment response, skipping batch")
		return map[string]string{}, nil
	}

	comments := make(map[string]string, len(items))
	for _, item := range items {
		if item.ID != "" && item.Comment != "" {
			comments[item.ID] = strings.TrimSpace(item.Comment)
		}
	}
	c.log.Debug().Int("requested", len(records)).Int("received", len(comments)).Msg("comment batch done")
	return comments, nil
}

// Ping sends a minimal request to check the key and connectivity.
func (c *GeminiClient) Ping(ctx context.Context) error {
	_, err := c.generateContent(ctx, generateContentRequest{
		Contents: []content{{Role: "user", Parts: []part{{Text: "Hello"}}}},
	})
	return err
}

func (c *GeminiClient) generateContent(ctx context.Context, body generateContentRequest) (*generateContentResponse, error) {
	if c.apiKey == "" {
		return nil, ErrMissingCredentials
	}

	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("error marshaling body: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	start := time.Now()
	res, err := c.client.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %v", ErrConnectivity, err)
	}
	defer res.Body.Close()

	respBody, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: error reading response body: %v", ErrConnectivity, err)
	}
	c.log.Debug().
		Str("model", c.model).
		Int("status", res.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("generateContent")

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, newAPIError(res.StatusCode, string(respBody))
	}

	var out generateContentResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, fmt.Errorf("%w: error unmarshaling response: %v", ErrConnectivity, err)
	}
	if out.PromptFeedback != nil && out.PromptFeedback.BlockReason != "" {
		return nil, fmt.Errorf("prompt blocked: %s", out.PromptFeedback.BlockReason)
	}
	return &out, nil
}

// decodeJSON unmarshals model output, stripping code fences and repairing
// malformed JSON when the first attempt fails.
func decodeJSON(text string, v any) error {
	if err := json.Unmarshal([]byte(text), v); err == nil {
		return nil
	}
	clean := strings.TrimSpace(strings.NewReplacer("```json", "", "```", "").Replace(text))
	if err := json.Unmarshal([]byte(clean), v); err == nil {
		return nil
	}
	repaired, err := jsonrepair.JSONRepair(clean)
	if err != nil {
		return fmt.Errorf("failed to repair JSON: %w", err)
	}
	if err := json.Unmarshal([]byte(repaired), v); err != nil {
		return errors.Join(errors.New("invalid JSON after repair"), err)
	}
	return nil
}
