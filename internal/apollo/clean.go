package apollo

// lockedEmail is the sentinel Apollo returns for addresses the account has
// not paid to reveal.
const lockedEmail = "email_not_unlocked@domain.com"

type rawPeopleResponse struct {
	People []rawPerson `json:"people"`
}

type rawOrganizationResponse struct {
	Organizations []rawOrganization `json:"organizations"`
}

type rawJobPostingsResponse struct {
	JobPostings []JobPosting `json:"organization_job_postings"`
}

type rawPerson struct {
	Name              string           `json:"name"`
	Title             string           `json:"title"`
	Headline          string           `json:"headline"`
	LinkedinURL       string           `json:"linkedin_url"`
	Email             string           `json:"email"`
	EmailStatus       string           `json:"email_status"`
	City              string           `json:"city"`
	State             string           `json:"state"`
	Country           string           `json:"country"`
	Organization      *rawOrganization `json:"organization"`
	EmploymentHistory []Employment     `json:"employment_history"`
}

type rawOrganization struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	WebsiteURL    string `json:"website_url"`
	LinkedinURL   string `json:"linkedin_url"`
	PrimaryDomain string `json:"primary_domain"`
	FoundedYear   int    `json:"founded_year"`
	// Revenue arrives under two names depending on the endpoint.
	AnnualRevenuePrinted       string   `json:"annual_revenue_printed"`
	OrganizationRevenuePrinted string   `json:"organization_revenue_printed"`
	EstimatedNumEmployees      int      `json:"estimated_num_employees"`
	Industry                   string   `json:"industry"`
	Keywords                   []string `json:"keywords"`
	ShortDescription           string   `json:"short_description"`
	TotalFundingPrinted        string   `json:"total_funding_printed"`
	LatestFundingStage         string   `json:"latest_funding_stage"`
}

const maxKeywords = 10

func cleanPeople(raw []rawPerson) []Person {
	people := make([]Person, 0, len(raw))
	for _, p := range raw {
		people = append(people, cleanPerson(p))
	}
	return people
}

func cleanPerson(p rawPerson) Person {
	email := p.Email
	if email == lockedEmail {
		email = "Unlock"
	}
	location := ""
	if p.City != "" && p.State != "" && p.Country != "" {
		location = p.City + ", " + p.State + ", " + p.Country
	}
	history := make([]Employment, 0, len(p.EmploymentHistory))
	for _, job := range p.EmploymentHistory {
		if job.EndDate == "" {
			job.EndDate = "Present"
		}
		history = append(history, job)
	}
	var org *Organization
	if p.Organization != nil {
		o := cleanOrganization(*p.Organization)
		org = &o
	}
	return Person{
		Name:              p.Name,
		Title:             p.Title,
		Headline:          p.Headline,
		LinkedinURL:       p.LinkedinURL,
		Email:             email,
		EmailStatus:       p.EmailStatus,
		Location:          location,
		Organization:      org,
		EmploymentHistory: history,
	}
}

func cleanOrganizations(raw []rawOrganization) []Organization {
	orgs := make([]Organization, 0, len(raw))
	for _, o := range raw {
		orgs = append(orgs, cleanOrganization(o))
	}
	return orgs
}

func cleanOrganization(o rawOrganization) Organization {
	revenue := o.AnnualRevenuePrinted
	if revenue == "" {
		revenue = o.OrganizationRevenuePrinted
	}
	keywords := o.Keywords
	if len(keywords) > maxKeywords {
		keywords = keywords[:maxKeywords]
	}
	return Organization{
		ID:            o.ID,
		Name:          o.Name,
		WebsiteURL:    o.WebsiteURL,
		LinkedinURL:   o.LinkedinURL,
		Domain:        o.PrimaryDomain,
		FoundedYear:   o.FoundedYear,
		Revenue:       revenue,
		Employees:     o.EstimatedNumEmployees,
		Industry:      o.Industry,
		LatestFunding: o.LatestFundingStage,
		TotalFunding:  o.TotalFundingPrinted,
		Description:   o.ShortDescription,
		Keywords:      keywords,
	}
}

func cleanJobPostings(raw []JobPosting) []JobPosting {
	jobs := make([]JobPosting, 0, len(raw))
	jobs = append(jobs, raw...)
	return jobs
}
