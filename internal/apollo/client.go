// Package apollo is a client for the Apollo people/company API. Responses
// are cleaned into compact records: Apollo returns very wide objects and the
// panels (and the language model reading tool output) only want a handful
// of fields.
package apollo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"

	"ebisu/internal/telemetry"
)

// DefaultEndpoint is the production Apollo API base URL.
const DefaultEndpoint = "https://api.apollo.io"

// Error is a non-2xx Apollo response.
type Error struct {
	Status int
	Body   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("apollo: status %d: %s", e.Status, e.Body)
}

// Client calls the Apollo API. The zero value is not usable; use NewClient.
type Client struct {
	endpoint string
	apiKey   string
	http     *http.Client
}

// NewClient creates a client. An empty endpoint selects DefaultEndpoint.
func NewClient(endpoint, apiKey string) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		endpoint: endpoint,
		apiKey:   apiKey,
		http:     &http.Client{Timeout: 30 * time.Second},
	}
}

// PeopleSearch searches the people database and returns cleaned hits.
func (c *Client) PeopleSearch(ctx context.Context, params PeopleSearchParams) ([]Person, error) {
	ctx, span := telemetry.Tracer().Start(ctx, "apollo.PeopleSearch")
	defer span.End()

	var raw rawPeopleResponse
	if err := c.post(ctx, "/v1/mixed_people/search", params, &raw); err != nil {
		return nil, fmt.Errorf("people search: %w", err)
	}
	people := cleanPeople(raw.People)
	span.SetAttributes(attribute.Int("apollo.results", len(people)))
	return people, nil
}

// OrganizationSearch searches the company database and returns cleaned hits.
func (c *Client) OrganizationSearch(ctx context.Context, params OrganizationSearchParams) ([]Organization, error) {
	ctx, span := telemetry.Tracer().Start(ctx, "apollo.OrganizationSearch")
	defer span.End()

	var raw rawOrganizationResponse
	if err := c.post(ctx, "/v1/mixed_companies/search", params, &raw); err != nil {
		return nil, fmt.Errorf("organization search: %w", err)
	}
	orgs := cleanOrganizations(raw.Organizations)
	span.SetAttributes(attribute.Int("apollo.results", len(orgs)))
	return orgs, nil
}

// JobPostings returns the current job postings for an organization.
func (c *Client) JobPostings(ctx context.Context, orgID string, page, perPage int) ([]JobPosting, error) {
	ctx, span := telemetry.Tracer().Start(ctx, "apollo.JobPostings",
		oteltrace.WithAttributes(attribute.String("apollo.org_id", orgID)))
	defer span.End()

	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}
	q := url.Values{
		"api_key":  {c.apiKey},
		"page":     {strconv.Itoa(page)},
		"per_page": {strconv.Itoa(perPage)},
	}
	var raw rawJobPostingsResponse
	path := "/v1/organizations/" + url.PathEscape(orgID) + "/job_postings?" + q.Encode()
	if err := c.get(ctx, path, &raw); err != nil {
		return nil, fmt.Errorf("job postings: %w", err)
	}
	return cleanJobPostings(raw.JobPostings), nil
}

// post sends params as a JSON body with the api_key merged in, decoding a
// 2xx response into out.
func (c *Client) post(ctx context.Context, path string, params interface{}, out interface{}) error {
	body := map[string]interface{}{}
	if params != nil {
		b, err := json.Marshal(params)
		if err != nil {
			return fmt.Errorf("encode params: %w", err)
		}
		if err := json.Unmarshal(b, &body); err != nil {
			return fmt.Errorf("encode params: %w", err)
		}
	}
	body["api_key"] = c.apiKey

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &Error{Status: resp.StatusCode, Body: string(b)}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
