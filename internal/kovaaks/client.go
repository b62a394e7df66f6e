// Package kovaaks is a client for the KovaaK's webapp backend benchmark
// progress endpoint.
package kovaaks

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spboyer/benchrank/internal/models"
	"github.com/spboyer/benchrank/internal/validation"
)

const (
	// DefaultBaseURL is the production webapp backend.
	DefaultBaseURL = "https://kovaaks.com/webapp-backend"
	// DefaultTimeout applies when Options.HTTPClient is nil.
	DefaultTimeout = 30 * time.Second

	progressPath = "/benchmarks/player-progress-rank-benchmark"

	// The endpoint is always queried for a single fixed page.
	pageIndex = 0
	pageSize  = 100

	maxBodySize = 8 << 20
)

// Options configures a Client.
type Options struct {
	// BaseURL defaults to DefaultBaseURL.
	BaseURL string
	// HTTPClient defaults to a client with DefaultTimeout.
	HTTPClient *http.Client
	// StrictPayload validates successful bodies against the ranking schema
	// before decoding.
	StrictPayload bool
	Logger        *slog.Logger
}

// Client fetches benchmark progress for a player. It holds no per-request
// state and is safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	strict  bool
	logger  *slog.Logger
}

// NewClient creates a Client from opts.
func NewClient(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Client{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		http:    opts.HTTPClient,
		strict:  opts.StrictPayload,
		logger:  opts.Logger,
	}
}

// ProgressURL returns the request URL for benchmarkID and userID.
func (c *Client) ProgressURL(benchmarkID int, userID string) string {
	q := url.Values{}
	q.Set("benchmarkId", strconv.Itoa(benchmarkID))
	q.Set("steamId", userID)
	q.Set("page", strconv.Itoa(pageIndex))
	q.Set("max", strconv.Itoa(pageSize))
	return c.baseURL + progressPath + "?" + q.Encode()
}

// FetchProgress issues one GET for the player's progress on benchmarkID.
// Every failure is a *FetchError. There are no retries.
func (c *Client) FetchProgress(ctx context.Context, benchmarkID int, userID string) (*models.RankingResult, error) {
	reqURL := c.ProgressURL(benchmarkID, userID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &FetchError{Kind: FailureTransport, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("fetching benchmark progress", "benchmarkId", benchmarkID, "steamId", userID)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &FetchError{Kind: FailureTransport, Err: err}
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))
		return nil, &FetchError{Kind: FailureStatus, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, &FetchError{Kind: FailureTransport, StatusCode: resp.StatusCode, Status: resp.Status, Err: err}
	}

	result, err := decode(body, c.strict)
	if err != nil {
		var fe *FetchError
		if errors.As(err, &fe) {
			fe.StatusCode, fe.Status = resp.StatusCode, resp.Status
			return nil, fe
		}
		return nil, &FetchError{Kind: FailureDecode, StatusCode: resp.StatusCode, Status: resp.Status, Err: err}
	}

	result = result.Normalize()
	return &result, nil
}

// decode turns a response body into a RankingResult. Numbers are decoded
// from their generic JSON form so integral fields written as 1200.0 or 1.2e3
// are accepted; strict additionally checks the body against the ranking schema.
func decode(body []byte, strict bool) (models.RankingResult, error) {
	var result models.RankingResult

	doc, err := validation.ParseDocument(body, false)
	if err != nil {
		return result, &FetchError{Kind: FailureDecode, Err: err}
	}
	if strict {
		if errs := validation.ValidateRanking(doc); len(errs) > 0 {
			return result, &FetchError{Kind: FailureSchema, Violations: errs}
		}
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  &result,
	})
	if err != nil {
		return result, err
	}
	if err := dec.Decode(doc); err != nil {
		return result, &FetchError{Kind: FailureDecode, Err: err}
	}
	return result, nil
}
