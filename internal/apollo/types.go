package apollo

// PeopleSearchParams are the supported filters for PeopleSearch.
// Field names follow https://docs.apollo.io/reference/people-search.
type PeopleSearchParams struct {
	PersonName            string   `json:"q_person_name,omitempty"`
	PersonTitles          []string `json:"person_titles,omitempty"`
	IncludeSimilarTitles  *bool    `json:"include_similar_titles,omitempty"`
	PersonLocations       []string `json:"person_locations,omitempty"`
	PersonSeniorities     []string `json:"person_seniorities,omitempty"`
	OrganizationLocations []string `json:"organization_locations,omitempty"`
	OrganizationDomains   []string `json:"q_organization_domains_list,omitempty"`
	ContactEmailStatus    []string `json:"contact_email_status,omitempty"`
	OrganizationIDs       []string `json:"organization_ids,omitempty"`
	EmployeeRanges        []string `json:"organization_num_employees_ranges,omitempty"`
	Keywords              string   `json:"q_keywords,omitempty"`
	Page                  int      `json:"page,omitempty"`
	PerPage               int      `json:"per_page,omitempty"`
}

// OrganizationSearchParams are the supported filters for OrganizationSearch.
// See https://docs.apollo.io/reference/organization-search.
type OrganizationSearchParams struct {
	Name           string   `json:"q_organization_name,omitempty"`
	Locations      []string `json:"organization_locations,omitempty"`
	Domains        []string `json:"q_organization_domains,omitempty"`
	EmployeeRanges []string `json:"organization_num_employees_ranges,omitempty"`
	Industries     []string `json:"organization_industries,omitempty"`
	Page           int      `json:"page,omitempty"`
	PerPage        int      `json:"per_page,omitempty"`
}

// Person is a cleaned people-search hit, reduced to the fields the panels
// and the agent actually consume.
type Person struct {
	Name        string `json:"name,omitempty"`
	Title       string `json:"title,omitempty"`
	Headline    string `json:"headline,omitempty"`
	LinkedinURL string `json:"linkedin_url,omitempty"`
	// Email is "Unlock" when Apollo returned its locked-address sentinel.
	Email       string `json:"email,omitempty"`
	EmailStatus string `json:"email_status,omitempty"`
	// Location is "City, State, Country" when all three are known.
	Location          string        `json:"location,omitempty"`
	Organization      *Organization `json:"current_organization,omitempty"`
	EmploymentHistory []Employment  `json:"employment_history,omitempty"`
}

// Employment is one entry of a person's employment history.
type Employment struct {
	Title            string `json:"title,omitempty"`
	OrganizationName string `json:"organization_name,omitempty"`
	StartDate        string `json:"start_date,omitempty"`
	EndDate          string `json:"end_date,omitempty"`
}

// Organization is a cleaned company record.
type Organization struct {
	ID            string   `json:"id,omitempty"`
	Name          string   `json:"name,omitempty"`
	WebsiteURL    string   `json:"website_url,omitempty"`
	LinkedinURL   string   `json:"linkedin_url,omitempty"`
	Domain        string   `json:"domain,omitempty"`
	FoundedYear   int      `json:"founded_year,omitempty"`
	Revenue       string   `json:"revenue,omitempty"`
	Employees     int      `json:"employees,omitempty"`
	Industry      string   `json:"industry,omitempty"`
	LatestFunding string   `json:"latest_funding,omitempty"`
	TotalFunding  string   `json:"total_funding,omitempty"`
	Description   string   `json:"description,omitempty"`
	Keywords      []string `json:"keywords,omitempty"`
}

// JobPosting is one open role at an organization.
type JobPosting struct {
	Title      string `json:"title,omitempty"`
	URL        string `json:"url,omitempty"`
	Location   string `json:"location,omitempty"`
	Content    string `json:"content,omitempty"`
	PostedDate string `json:"posted_date,omitempty"`
}
