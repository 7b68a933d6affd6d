package ergast

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"f1data-backend/lib/raceclock"
	"f1data-backend/lib/restyutil"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("collectors/ergast")

// DefaultBaseURL points at the public Ergast F1 API.
const DefaultBaseURL = "https://ergast.com/api/f1"

// firstSeasonYear is the first world championship on record.
const firstSeasonYear = 1950

// defaultPageLimit is merged into every request unless the caller
// supplies its own limit, the API defaults to 30 rows otherwise.
const defaultPageLimit = "1000"

const requestTimeout = time.Second * 30

// initial attempt plus maxRetries
const maxRetries = 2

var retryableStatus = map[int]bool{
	429: true,
	500: true,
	502: true,
	503: true,
	504: true,
}

type ClientOptions struct {
	// defaults to DefaultBaseURL
	BaseURL string
	// minimum spacing enforced after every successful request,
	// defaults to one second
	RateLimit time.Duration
	// wait before the first retry, doubled for the next one,
	// defaults to two seconds
	RetryWaitTime time.Duration
	// defaults to slog.Default()
	Logger *slog.Logger
	// optional raw HTTP dump, see restyutil
	InstrumentOutput restyutil.InstrumentOutput
}

// Client collects historical motorsport data from the Ergast API and
// normalizes the nested payloads into flat records. One Client keeps
// one connection pool; it is meant for sequential use by one caller.
type Client struct {
	http      *resty.Client
	log       *slog.Logger
	rateLimit time.Duration
}

func NewClient(opts ClientOptions) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.RateLimit == 0 {
		opts.RateLimit = time.Second
	}
	if opts.RetryWaitTime == 0 {
		opts.RetryWaitTime = time.Second * 2
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	client := resty.New()
	client.SetBaseURL(opts.BaseURL)
	client.SetTimeout(requestTimeout)
	client.SetRetryCount(maxRetries)
	client.SetRetryWaitTime(opts.RetryWaitTime)
	client.SetRetryMaxWaitTime(opts.RetryWaitTime * 4)
	client.AddRetryCondition(func(res *resty.Response, err error) bool {
		// only transient server statuses are worth retrying, anything
		// else fails immediately
		return err == nil && retryableStatus[res.StatusCode()]
	})

	restyutil.InstrumentClient(client, tracer, opts.InstrumentOutput)

	return &Client{
		http:      client,
		log:       opts.Logger,
		rateLimit: opts.RateLimit,
	}
}

// request performs one GET against the API, retrying transient server
// errors, and decodes the envelope. After a successful response it
// holds the caller for the configured rate limit so sequential
// collection keeps a minimum spacing between calls. Failed attempts
// skip the delay, a retry storm therefore runs ahead of the
// configured pace.
func (c *Client) request(ctx context.Context, ep endpoint, query map[string]string) (*envelope, error) {
	req := c.http.R().
		SetContext(ctx).
		SetQueryParam("limit", defaultPageLimit)
	// caller-supplied params win over the default limit
	if len(query) > 0 {
		req.SetQueryParams(query)
	}

	res, err := req.Get(ep.path())
	if err != nil {
		c.log.ErrorContext(ctx, "request failed",
			"endpoint", string(ep), "query", query, "err", err)
		return nil, &TransportError{Endpoint: string(ep), Err: err}
	}
	if res.IsError() {
		c.log.ErrorContext(ctx, "request failed",
			"endpoint", string(ep), "query", query, "status", res.StatusCode())
		return nil, &TransportError{Endpoint: string(ep), Status: res.StatusCode()}
	}

	time.Sleep(c.rateLimit)

	var env envelope
	err = json.Unmarshal(res.Body(), &env)
	if err != nil {
		return nil, &SchemaError{Field: "MRData", Err: err}
	}
	return &env, nil
}

// Seasons lists the championship seasons between startYear and
// endYear, inclusive on both bounds, ascending and deduplicated. A
// zero startYear means 1950, a zero endYear means the current year.
func (c *Client) Seasons(ctx context.Context, startYear, endYear int) ([]Season, error) {
	ctx, span := tracer.Start(ctx, "Seasons")
	defer span.End()

	if startYear == 0 {
		startYear = firstSeasonYear
	}
	if endYear == 0 {
		endYear = raceclock.Now().Year()
	}

	env, err := c.request(ctx, buildEndpoint(resourceSeasons, 0, 0), nil)
	if err != nil {
		return nil, err
	}
	records, err := extractSeasons(env, startYear, endYear)
	if err != nil {
		return nil, err
	}

	c.log.InfoContext(ctx, "collected seasons",
		"count", len(records), "start_year", startYear, "end_year", endYear)
	return records, nil
}

// Races lists the calendar of one season.
func (c *Client) Races(ctx context.Context, season int) ([]Race, error) {
	ctx, span := tracer.Start(ctx, "Races")
	defer span.End()

	env, err := c.request(ctx, buildEndpoint(resourceRaces, season, 0), nil)
	if err != nil {
		return nil, err
	}
	records, err := extractRaces(env)
	if err != nil {
		return nil, err
	}

	c.log.InfoContext(ctx, "collected races",
		"count", len(records), "season", season)
	return records, nil
}

// Results returns one record per driver per race. A zero round
// collects the whole season.
func (c *Client) Results(ctx context.Context, season, round int) ([]Result, error) {
	ctx, span := tracer.Start(ctx, "Results")
	defer span.End()

	env, err := c.request(ctx, buildEndpoint(resourceResults, season, round), nil)
	if err != nil {
		return nil, err
	}
	records, err := extractResults(env)
	if err != nil {
		return nil, err
	}

	c.log.InfoContext(ctx, "collected results",
		"count", len(records), "season", season, "round", round)
	return records, nil
}

// Qualifying returns one record per driver per qualifying session. A
// zero round collects the whole season.
func (c *Client) Qualifying(ctx context.Context, season, round int) ([]QualifyingResult, error) {
	ctx, span := tracer.Start(ctx, "Qualifying")
	defer span.End()

	env, err := c.request(ctx, buildEndpoint(resourceQualifying, season, round), nil)
	if err != nil {
		return nil, err
	}
	records, err := extractQualifying(env)
	if err != nil {
		return nil, err
	}

	c.log.InfoContext(ctx, "collected qualifying results",
		"count", len(records), "season", season, "round", round)
	return records, nil
}

// Drivers lists drivers, either for one season or all time when
// season is zero.
func (c *Client) Drivers(ctx context.Context, season int) ([]Driver, error) {
	ctx, span := tracer.Start(ctx, "Drivers")
	defer span.End()

	env, err := c.request(ctx, buildEndpoint(resourceDrivers, season, 0), nil)
	if err != nil {
		return nil, err
	}
	records, err := extractDrivers(env)
	if err != nil {
		return nil, err
	}

	c.log.InfoContext(ctx, "collected drivers",
		"count", len(records), "season", season)
	return records, nil
}

// Constructors lists constructors, either for one season or all time
// when season is zero.
func (c *Client) Constructors(ctx context.Context, season int) ([]Constructor, error) {
	ctx, span := tracer.Start(ctx, "Constructors")
	defer span.End()

	env, err := c.request(ctx, buildEndpoint(resourceConstructors, season, 0), nil)
	if err != nil {
		return nil, err
	}
	records, err := extractConstructors(env)
	if err != nil {
		return nil, err
	}

	c.log.InfoContext(ctx, "collected constructors",
		"count", len(records), "season", season)
	return records, nil
}
