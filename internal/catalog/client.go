// Package catalog talks to the external product source. It is a pure
// request/response client plus a small view-state loader; nothing here
// caches or mutates products.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/neotechlabs/storefront/internal/domain"
)

// Client fetches product records over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a catalog client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// FetchProducts returns the full product list.
func (c *Client) FetchProducts(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := c.get(ctx, "/products", &products, "Failed to fetch products"); err != nil {
		return nil, err
	}
	return products, nil
}

// FetchProductsByCategory returns the products in a single category.
func (c *Client) FetchProductsByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	var products []domain.Product
	path := "/products/category/" + url.PathEscape(category)
	if err := c.get(ctx, path, &products, "Failed to fetch products"); err != nil {
		return nil, err
	}
	return products, nil
}

// FetchProductByID returns a single product.
func (c *Client) FetchProductByID(ctx context.Context, id int) (*domain.Product, error) {
	var product domain.Product
	path := fmt.Sprintf("/products/%d", id)
	if err := c.get(ctx, path, &product, "Failed to fetch product"); err != nil {
		return nil, err
	}
	return &product, nil
}

// Categories returns the available category labels.
func (c *Client) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := c.get(ctx, "/products/categories", &categories, "Failed to fetch categories"); err != nil {
		return nil, err
	}
	return categories, nil
}

// get performs a GET request and decodes the JSON response. Transport
// and decode failures both surface as the given display message; the
// underlying error is kept for logging.
func (c *Client) get(ctx context.Context, path string, out any, message string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return domain.Internal(err, "catalog.fetch", "failed to build catalog request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.Unavailable(err, "catalog.fetch", message)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return domain.NotFound("catalog.fetch", "product", path)
	}
	if resp.StatusCode != http.StatusOK {
		return domain.Unavailable(fmt.Errorf("unexpected status %d", resp.StatusCode), "catalog.fetch", message)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return domain.Unavailable(err, "catalog.fetch", message)
	}

	return nil
}
