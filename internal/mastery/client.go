package mastery

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/url"
	"strings"
	"time"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("masteryplot/mastery")

const (
	DefaultBaseURL = "https://championmastery.gg"
	DefaultRegion  = "EUW"
	DefaultTimeout = 30 * time.Second

	browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"
)

// Source is anything that can produce a player's mastery table.
type Source interface {
	Fetch(ctx context.Context, player, region string) (Table, error)
}

type ClientOptions struct {
	// BaseURL defaults to DefaultBaseURL.
	BaseURL string
	// Timeout defaults to DefaultTimeout.
	Timeout time.Duration
	// CloudflareBypass wraps the transport so requests look like they come
	// from a browser.
	CloudflareBypass bool
	UserAgent        string
}

type Client struct {
	http    *resty.Client
	baseURL string
}

func NewClient(opts ClientOptions) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = browserUserAgent
	}

	client := resty.New()
	client.SetTimeout(opts.Timeout)
	client.SetHeader("user-agent", opts.UserAgent)
	if opts.CloudflareBypass {
		client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	}

	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		slog.DebugContext(req.Context(), "start request", "method", req.Method, "url", req.URL)
		return nil
	})
	client.OnAfterResponse(func(_ *resty.Client, res *resty.Response) error {
		slog.DebugContext(
			res.Request.Context(), "request finished",
			"url", res.Request.URL,
			"status", res.StatusCode(),
			"duration", res.Time(),
		)
		return nil
	})
	client.OnError(func(req *resty.Request, err error) {
		slog.ErrorContext(req.Context(), "request failed", "url", req.URL, "err", err)
	})

	return &Client{
		http:    client,
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
	}
}

// EncodeSummoner returns the query string form of a player name: spaces
// become '+', everything outside of the unreserved set is percent encoded.
func EncodeSummoner(name string) string {
	return url.QueryEscape(name)
}

func ResolveRegion(region string) string {
	region = strings.TrimSpace(region)
	if region == "" {
		return DefaultRegion
	}
	return strings.ToUpper(region)
}

// SummonerURL builds the page url of a player, keeping the parameter order
// championmastery.gg links use.
func SummonerURL(baseURL, player, region string) string {
	return strings.TrimRight(baseURL, "/") +
		"/summoner?summoner=" + EncodeSummoner(player) +
		"&region=" + url.QueryEscape(ResolveRegion(region))
}

// Fetch downloads and parses the mastery table of a player. It issues exactly
// one request and does not retry.
func (c *Client) Fetch(ctx context.Context, player, region string) (Table, error) {
	ctx, span := tracer.Start(ctx, "client:Fetch")
	defer span.End()

	link := SummonerURL(c.baseURL, player, region)
	span.SetAttributes(
		attribute.String("player", player),
		attribute.String("url", link),
	)

	res, err := c.http.R().
		SetContext(ctx).
		Get(link)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch")
		return Table{}, &NetworkError{Player: player, URL: link, Err: err}
	}
	if res.StatusCode() >= 400 {
		span.SetStatus(codes.Error, "bad status")
		return Table{}, &NetworkError{Player: player, URL: link, Status: res.StatusCode()}
	}

	table, err := ParseTable(bytes.NewReader(res.Body()))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse table")
		var perr *ParseError
		if errors.As(err, &perr) {
			perr.Player = player
		}
		return Table{}, err
	}

	span.SetAttributes(attribute.Int("rows", len(table.Rows)))
	return table, nil
}
