package browser

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/Anikethb04/Project-IMDB/internal/models"
)

// APIClient calls the catalog server. It sets no timeout of its own: a hung
// request only ends when ctx is cancelled.
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewAPIClient creates a client for the server at baseURL.
func NewAPIClient(baseURL string, hc *http.Client) *APIClient {
	if hc == nil {
		hc = &http.Client{}
	}
	return &APIClient{baseURL: strings.TrimRight(baseURL, "/"), httpClient: hc}
}

// Movies fetches the mixed catalog list.
func (c *APIClient) Movies(ctx context.Context) ([]models.CatalogItem, error) {
	var out []models.CatalogItem
	err := c.get(ctx, "/api/movies", nil, &out)
	return out, err
}

// TrendingRegional fetches the regional trending list.
func (c *APIClient) TrendingRegional(ctx context.Context) ([]models.CatalogItem, error) {
	var out []models.CatalogItem
	err := c.get(ctx, "/api/trending-regional", nil, &out)
	return out, err
}

// Search runs a search for query.
func (c *APIClient) Search(ctx context.Context, query string) ([]models.CatalogItem, error) {
	var out []models.CatalogItem
	err := c.get(ctx, "/api/search", url.Values{"q": {query}}, &out)
	return out, err
}

// Detail fetches the detail record for one title.
func (c *APIClient) Detail(ctx context.Context, id, mediaType string) (*models.DetailRecord, error) {
	var out models.DetailRecord
	q := url.Values{}
	if mediaType != "" {
		q.Set("type", mediaType)
	}
	if err := c.get(ctx, "/api/movie/"+url.PathEscape(id), q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *APIClient) get(ctx context.Context, path string, query url.Values, dst any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("server returned %d for %s: %s", resp.StatusCode, path, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
