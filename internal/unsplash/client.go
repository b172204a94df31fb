// Package unsplash is a minimal client for the Unsplash photo search
// endpoint: one operation, first result only.
package unsplash

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://api.unsplash.com"

type Client struct {
	AccessKey  string
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(accessKey string) *Client {
	return &Client{
		AccessKey:  accessKey,
		BaseURL:    defaultBaseURL,
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type searchResponse struct {
	Results []struct {
		URLs struct {
			Regular string `json:"regular"`
		} `json:"urls"`
	} `json:"results"`
}

// SearchPhoto returns the display URL of the first photo matching
// query, or "" when the search has no results. Transport and non-2xx
// failures are errors; an empty result set is not.
func (c *Client) SearchPhoto(query string) (string, error) {
	endpoint := fmt.Sprintf("%s/search/photos?query=%s&per_page=1", c.BaseURL, url.QueryEscape(query))

	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Client-ID "+c.AccessKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("searching photos: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("photo search returned status %d", resp.StatusCode)
	}

	var data searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", fmt.Errorf("decoding photo search response: %w", err)
	}
	if len(data.Results) == 0 {
		return "", nil
	}
	return data.Results[0].URLs.Regular, nil
}
