package translator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"tafseel/backend/internal/config"
	"tafseel/backend/internal/models"
)

// LibreProvider talks to a LibreTranslate-compatible endpoint:
// POST {q, source, target, format: "text"} where q is a string or an array of
// strings, answered by {translatedText} or an array of such objects.
type LibreProvider struct {
	endpoint   string
	httpClient *http.Client
}

// NewLibreProvider creates a provider for the given endpoint URL. An empty
// endpoint falls back to the configured default.
func NewLibreProvider(endpoint string) *LibreProvider {
	if endpoint == "" {
		endpoint = config.DefaultTranslateEndpoint
	}
	return &LibreProvider{
		endpoint: endpoint,
		// Go has no platform default deadline, so a client timeout stands in
		// for one; callers additionally recover via the fallback path.
		httpClient: &http.Client{Timeout: config.TranslateTimeout},
	}
}

type libreRequest struct {
	Q      any    `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
}

type libreResult struct {
	TranslatedText string `json:"translatedText"`
}

// TranslateBatch issues one request covering every text. Non-2xx responses,
// malformed bodies, and length mismatches are all reported as errors; the
// Service layer turns them into the untranslated fallback.
func (p *LibreProvider) TranslateBatch(ctx context.Context, texts []string, source string, target models.Language) ([]string, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	body, err := json.Marshal(libreRequest{
		Q:      texts,
		Source: source,
		Target: string(target),
		Format: "text",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode translate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build translate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("translate request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("translate endpoint returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read translate response: %w", err)
	}

	// Batch responses are arrays; some deployments answer a single-element
	// batch with a bare object.
	var results []libreResult
	if err := json.Unmarshal(data, &results); err != nil {
		var single libreResult
		if err := json.Unmarshal(data, &single); err != nil {
			return nil, fmt.Errorf("malformed translate response: %w", err)
		}
		results = []libreResult{single}
	}

	if len(results) != len(texts) {
		return nil, fmt.Errorf("translate response has %d results for %d texts", len(results), len(texts))
	}

	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.TranslatedText
	}
	return out, nil
}
