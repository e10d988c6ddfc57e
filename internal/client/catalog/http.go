package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/msurana/gemvault/internal/client/models"
	"github.com/msurana/gemvault/internal/common"
	"github.com/msurana/gemvault/internal/logging"
)

// HTTPClient implements Client over the catalog's REST/JSON API.
type HTTPClient struct {
	baseURL    string
	tokens     TokenSource
	httpClient *http.Client
	log        logging.Logger
}

// NewHTTPClient builds a catalog client for the given base URL. tokens may be
// nil for an unauthenticated catalog (useful in tests).
func NewHTTPClient(baseURL string, tokens TokenSource, timeout time.Duration, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		tokens:     tokens,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

func (c *HTTPClient) gemstoneURL(path string) string {
	return c.baseURL + "/gemstones" + path
}

func (c *HTTPClient) do(ctx context.Context, method, rawURL string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.tokens != nil {
		token, err := c.tokens.Token()
		if err != nil {
			return nil, fmt.Errorf("bearer token: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w: %w", common.ErrorTransport, err)
	}

	// A 401 means the credential is no longer accepted: drop it so the
	// session layer forces re-authentication.
	if resp.StatusCode == http.StatusUnauthorized && c.tokens != nil {
		c.log.Warn(ctx, "catalog rejected credential, clearing stored token")
		c.tokens.Invalidate()
	}

	return resp, nil
}

func (c *HTTPClient) doJSON(ctx context.Context, method, rawURL string, reqBody, respBody any) error {
	var body io.Reader
	if reqBody != nil {
		data, err := json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	resp, err := c.do(ctx, method, rawURL, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return decodeError(resp)
	}

	if respBody != nil {
		if err := json.NewDecoder(resp.Body).Decode(respBody); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}

	return nil
}

// listQuery encodes a Query as the catalog's URL parameters. Tags travel as a
// single comma-joined parameter in canonical (sorted) order.
func listQuery(q models.Query) url.Values {
	v := url.Values{}
	v.Set("page", strconv.Itoa(q.Page))
	v.Set("limit", strconv.Itoa(q.PageSize))
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.Category != "" {
		v.Set("category", q.Category)
	}
	if q.DateFrom != "" {
		v.Set("dateFrom", q.DateFrom)
	}
	if q.DateTo != "" {
		v.Set("dateTo", q.DateTo)
	}
	if tags := models.NormalizeTags(q.Tags); len(tags) > 0 {
		v.Set("tags", strings.Join(tags, ","))
	}
	if q.SortBy != "" {
		v.Set("sortBy", string(q.SortBy))
	}
	if q.SortOrder != "" {
		v.Set("sortOrder", string(q.SortOrder))
	}
	return v
}

// listResponse is the catalog's paginated list payload.
type listResponse struct {
	Items      []models.Gemstone `json:"items"`
	TotalItems int               `json:"totalItems"`
}

func (c *HTTPClient) List(ctx context.Context, q models.Query) (models.Page, error) {
	var resp listResponse
	rawURL := c.gemstoneURL("") + "?" + listQuery(q).Encode()
	if err := c.doJSON(ctx, http.MethodGet, rawURL, nil, &resp); err != nil {
		return models.Page{}, fmt.Errorf("list gemstones: %w", err)
	}

	items := resp.Items
	if items == nil {
		items = []models.Gemstone{}
	}

	return models.Page{
		Items:      items,
		TotalItems: resp.TotalItems,
		Page:       q.Page,
		PageSize:   q.PageSize,
	}, nil
}

func (c *HTTPClient) Get(ctx context.Context, id string) (*models.Gemstone, error) {
	var g models.Gemstone
	if err := c.doJSON(ctx, http.MethodGet, c.gemstoneURL("/"+url.PathEscape(id)), nil, &g); err != nil {
		return nil, fmt.Errorf("get gemstone %s: %w", id, err)
	}
	return &g, nil
}

func (c *HTTPClient) Create(ctx context.Context, g models.Gemstone) (*models.Gemstone, error) {
	var created models.Gemstone
	if err := c.doJSON(ctx, http.MethodPost, c.gemstoneURL(""), g, &created); err != nil {
		return nil, fmt.Errorf("create gemstone: %w", err)
	}
	return &created, nil
}

func (c *HTTPClient) Update(ctx context.Context, id string, patch models.GemstonePatch) (*models.Gemstone, error) {
	var updated models.Gemstone
	if err := c.doJSON(ctx, http.MethodPut, c.gemstoneURL("/"+url.PathEscape(id)), patch, &updated); err != nil {
		return nil, fmt.Errorf("update gemstone %s: %w", id, err)
	}
	return &updated, nil
}

func (c *HTTPClient) Delete(ctx context.Context, id string) error {
	if err := c.doJSON(ctx, http.MethodDelete, c.gemstoneURL("/"+url.PathEscape(id)), nil, nil); err != nil {
		return fmt.Errorf("delete gemstone %s: %w", id, err)
	}
	return nil
}
