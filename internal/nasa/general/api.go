package general

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"

	"github.com/spacerocks/neofeed/internal/extractor/models"
	"github.com/spacerocks/neofeed/internal/nasa"
)

const (
	browsePath       = "/neo/rest/v1/neo/browse"
	maxErrorBodySize = 1 << 10 // 1 Kb
	retryWaitMin     = 500 * time.Millisecond
	retryWaitMax     = 30 * time.Second
)

// Verify interface compliance in compile time.
var _ nasa.API = (*NeoWsAPI)(nil)

// NeoWsAPI type is a client of Near Earth Object Web Service.
type NeoWsAPI struct {
	baseURL string
	apiKey  string
	client  *retryablehttp.Client
}

// NewNeoWsAPI creates NeoWsAPI object. Requests are retried only if cfg.RetryMax is positive.
func NewNeoWsAPI(cfg models.NASAConfig) nasa.API {
	client := retryablehttp.NewClient()
	client.Logger = nil
	client.RetryMax = cfg.RetryMax
	client.RetryWaitMin = retryWaitMin
	client.RetryWaitMax = retryWaitMax
	client.HTTPClient.Timeout = cfg.Timeout

	return &NeoWsAPI{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		client:  client,
	}
}

func (a *NeoWsAPI) GetBaseURL() string {
	return a.baseURL
}

// Browse requests one page of the near earth objects catalog.
func (a *NeoWsAPI) Browse(ctx context.Context, page, size int) (*nasa.BrowsePage, error) {
	requestURL, err := a.browseURL(page, size)
	if err != nil {
		return nil, err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, errors.New(err.Error())
	}

	req.Header.Set("Accept", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, errors.Errorf("failed to browse near earth objects page %d: %v", page, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))

		return nil, errors.Errorf(
			"failed to browse near earth objects page %d: unexpected status %d: %s",
			page, resp.StatusCode, strings.TrimSpace(string(body)),
		)
	}

	var result nasa.BrowsePage

	if err = json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, errors.WithMessagef(err, "failed to decode near earth objects page %d", page)
	}

	return &result, nil
}

func (a *NeoWsAPI) browseURL(page, size int) (string, error) {
	u, err := url.Parse(a.baseURL + browsePath)
	if err != nil {
		return "", errors.WithMessagef(err, "invalid base url %q", a.baseURL)
	}

	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))
	q.Set("api_key", a.apiKey)
	u.RawQuery = q.Encode()

	return u.String(), nil
}
