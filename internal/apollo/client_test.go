package apollo

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeopleSearch_SendsKeyAndCleans(t *testing.T) {
	var gotBody map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/mixed_people/search", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{
			"people": [
				{
					"name": "Ada Lovelace",
					"title": "VP Engineering",
					"linkedin_url": "https://linkedin.com/in/ada",
					"email": "email_not_unlocked@domain.com",
					"email_status": "verified",
					"city": "London",
					"state": "England",
					"country": "UK",
					"employment_history": [
						{"title": "VP Engineering", "organization_name": "Analytical", "start_date": "2020-01-01"}
					]
				}
			]
		}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key")
	people, err := c.PeopleSearch(context.Background(), PeopleSearchParams{
		PersonTitles: []string{"VP Engineering"},
		PerPage:      5,
	})
	require.NoError(t, err)

	assert.Equal(t, "test-key", gotBody["api_key"])
	assert.Equal(t, []interface{}{"VP Engineering"}, gotBody["person_titles"])
	assert.Equal(t, float64(5), gotBody["per_page"])

	require.Len(t, people, 1)
	p := people[0]
	assert.Equal(t, "Ada Lovelace", p.Name)
	assert.Equal(t, "Unlock", p.Email, "locked address maps to the Unlock marker")
	assert.Equal(t, "London, England, UK", p.Location)
	require.Len(t, p.EmploymentHistory, 1)
	assert.Equal(t, "Present", p.EmploymentHistory[0].EndDate, "open-ended jobs read Present")
}

func TestPeopleSearch_EmptyResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"people": []}`))
	}))
	defer srv.Close()

	people, err := NewClient(srv.URL, "k").PeopleSearch(context.Background(), PeopleSearchParams{})
	require.NoError(t, err)
	assert.Empty(t, people)
}

func TestPeopleSearch_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "insufficient credits", http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "k").PeopleSearch(context.Background(), PeopleSearchParams{})
	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
	assert.Contains(t, apiErr.Body, "insufficient credits")
}

func TestOrganizationSearch_CleansRevenueAndKeywords(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/mixed_companies/search", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"organizations": [
				{
					"id": "org-1",
					"name": "Initech",
					"primary_domain": "initech.example",
					"organization_revenue_printed": "$10M",
					"estimated_num_employees": 250,
					"keywords": ["a","b","c","d","e","f","g","h","i","j","k","l"]
				}
			]
		}`))
	}))
	defer srv.Close()

	orgs, err := NewClient(srv.URL, "k").OrganizationSearch(context.Background(), OrganizationSearchParams{Name: "Initech"})
	require.NoError(t, err)
	require.Len(t, orgs, 1)

	o := orgs[0]
	assert.Equal(t, "initech.example", o.Domain)
	assert.Equal(t, "$10M", o.Revenue, "search-shaped revenue field is picked up")
	assert.Equal(t, 250, o.Employees)
	assert.Len(t, o.Keywords, 10, "keywords capped at ten")
}

func TestJobPostings_QueryParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/v1/organizations/org-1/job_postings", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "k", q.Get("api_key"))
		assert.Equal(t, "2", q.Get("page"))
		assert.Equal(t, "25", q.Get("per_page"))
		_, _ = w.Write([]byte(`{
			"organization_job_postings": [
				{"title": "SRE", "location": "Remote", "posted_date": "2026-08-01"}
			]
		}`))
	}))
	defer srv.Close()

	jobs, err := NewClient(srv.URL, "k").JobPostings(context.Background(), "org-1", 2, 25)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "SRE", jobs[0].Title)
}

func TestJobPostings_DefaultsPaging(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "1", q.Get("page"))
		assert.Equal(t, "10", q.Get("per_page"))
		_, _ = w.Write([]byte(`{"organization_job_postings": []}`))
	}))
	defer srv.Close()

	jobs, err := NewClient(srv.URL, "k").JobPostings(context.Background(), "org-1", 0, 0)
	require.NoError(t, err)
	assert.Empty(t, jobs)
}
