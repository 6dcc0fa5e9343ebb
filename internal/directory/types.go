package directory

import "html"

// Plugin represents a single plugin record from the directory API.
// Text fields may contain HTML entities exactly as the API returns them.
type Plugin struct {
	Name             string `json:"name"`
	Slug             string `json:"slug"`
	Version          string `json:"version,omitempty"`
	Author           string `json:"author,omitempty"`
	Requires         string `json:"requires,omitempty"`
	Tested           string `json:"tested,omitempty"`
	RequiresPHP      string `json:"requires_php,omitempty"`
	Rating           int    `json:"rating,omitempty"`
	NumRatings       int    `json:"num_ratings,omitempty"`
	ActiveInstalls   int    `json:"active_installs,omitempty"`
	LastUpdated      string `json:"last_updated,omitempty"`
	Added            string `json:"added,omitempty"`
	Homepage         string `json:"homepage,omitempty"`
	DownloadLink     string `json:"download_link,omitempty"`
	ShortDescription string `json:"short_description,omitempty"`
}

// DecodedName returns the plugin name with HTML entities decoded.
func (p *Plugin) DecodedName() string {
	return html.UnescapeString(p.Name)
}

// StarRating converts the 0-100 rating to a 0-5 star scale.
func (p *Plugin) StarRating() float64 {
	const starScale = 20

	return float64(p.Rating) / starScale
}

// PageInfo describes the pagination block of a search response.
type PageInfo struct {
	Page    int `json:"page"`
	Pages   int `json:"pages"`
	Results int `json:"results"`
}

// SearchResult is the decoded response of a query_plugins request.
// Plugin order is preserved exactly as returned by the API.
type SearchResult struct {
	Info    PageInfo `json:"info"`
	Plugins []Plugin `json:"plugins"`
}
