// Package directory provides the WordPress plugin directory API client.
package directory

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/go-querystring/query"

	"github.com/pixolin/wpplugin/pkg/logger"
)

// DefaultBaseURL is the plugin directory API endpoint.
const DefaultBaseURL = "https://api.wordpress.org/plugins/info/1.2/"

const (
	actionQueryPlugins      = "query_plugins"
	actionPluginInformation = "plugin_information"
)

// ErrPluginNotFound is returned when the directory has no plugin for a slug.
var ErrPluginNotFound = errors.New("plugin not found")

// Client defines the interface for plugin directory operations.
type Client interface {
	// Search queries the directory for plugins matching the term.
	Search(ctx context.Context, term string) (*SearchResult, error)

	// Info retrieves the full record for a single plugin by slug.
	Info(ctx context.Context, slug string) (*Plugin, error)
}

// HTTPClient implements Client against the live directory API.
type HTTPClient struct {
	baseURL string
	client  *http.Client
	logger  logger.Logger
}

// NewClient creates a directory client. An empty baseURL selects
// DefaultBaseURL, a nil log disables logging.
func NewClient(baseURL string, timeout time.Duration, log logger.Logger) *HTTPClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	if log == nil {
		log = logger.NewNoOpLogger()
	}

	return &HTTPClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		logger:  log,
	}
}

// searchRequest carries the query parameters of a query_plugins call.
type searchRequest struct {
	Action string `url:"action"`
	Search string `url:"request[search]"`
}

// infoRequest carries the query parameters of a plugin_information call.
type infoRequest struct {
	Action string `url:"action"`
	Slug   string `url:"request[slug]"`
}

// infoResponse wraps a plugin record with the error field the API sets
// on unknown slugs (still HTTP 200).
type infoResponse struct {
	Plugin

	Error string `json:"error,omitempty"`
}

// Search queries the directory for plugins matching the term.
func (c *HTTPClient) Search(ctx context.Context, term string) (*SearchResult, error) {
	params, err := query.Values(searchRequest{
		Action: actionQueryPlugins,
		Search: term,
	})
	if err != nil {
		return nil, errors.Wrap(err, "encoding search query")
	}

	var result SearchResult
	if err := c.get(ctx, params.Encode(), &result); err != nil {
		return nil, err
	}

	c.logger.Debug(
		"search finished",
		"term", term,
		"results", result.Info.Results,
		"page_plugins", len(result.Plugins),
	)

	return &result, nil
}

// Info retrieves the full record for a single plugin by slug.
func (c *HTTPClient) Info(ctx context.Context, slug string) (*Plugin, error) {
	params, err := query.Values(infoRequest{
		Action: actionPluginInformation,
		Slug:   slug,
	})
	if err != nil {
		return nil, errors.Wrap(err, "encoding info query")
	}

	var result infoResponse
	if err := c.get(ctx, params.Encode(), &result); err != nil {
		return nil, err
	}

	if result.Error != "" || result.Slug == "" {
		return nil, errors.Wrapf(ErrPluginNotFound, "%q", slug)
	}

	c.logger.Debug("info fetched", "slug", slug, "version", result.Version)

	return &result.Plugin, nil
}

// get performs one GET against the API and decodes the JSON body into v.
func (c *HTTPClient) get(ctx context.Context, rawQuery string, v any) error {
	url := c.baseURL + "?" + rawQuery

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.Wrap(err, "creating request")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "querying plugin directory")
	}
	defer resp.Body.Close() //nolint:errcheck // Best effort close

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("plugin directory returned HTTP %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return errors.Wrap(err, "decoding plugin directory response")
	}

	return nil
}
