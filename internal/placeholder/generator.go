package placeholder

import "github.com/pablasso/backlog/internal/rng"

// Range is an inclusive integer range for numeric keys.
type Range struct {
	Min, Max int
}

var numericRanges = map[string]Range{
	"quarter":      {Min: 1, Max: 4},
	"ticketNumber": {Min: 100, Max: 9999},
	"batchSize":    {Min: 10, Max: 200},
	"sprint":       {Min: 1, Max: 26},
	"version":      {Min: 2, Max: 12},
	"percent":      {Min: 5, Max: 40},
}

var valuePools = map[string][]string{
	"company":    {"Globex", "Initech", "Acme Corp", "Umbrella Health", "Stark Logistics", "Wayne Foods", "Hooli", "Vandelay Imports", "Soylent Labs", "Cyberdyne Retail"},
	"product":    {"Atlas", "Beacon", "Compass", "Drift", "Ember", "Forge"},
	"feature":    {"single sign-on", "bulk export", "audit log", "usage dashboard", "mobile push alerts", "custom roles", "webhook retries"},
	"channel":    {"LinkedIn", "email", "Google Ads", "YouTube", "podcasts", "Instagram", "partner newsletter"},
	"campaign":   {"Spring Launch", "Customer Stories", "Black Friday", "Webinar Series", "Referral Boost", "Year in Review"},
	"audience":   {"CFOs", "IT admins", "small business owners", "enterprise buyers", "developers", "trial users"},
	"competitor": {"Northwind", "Contoso", "Fabrikam", "Tailspin", "Wide World"},
	"event":      {"SaaStr Annual", "Web Summit", "re:Invent", "Dreamforce", "the regional partner summit"},
	"region":     {"EMEA", "North America", "LATAM", "APAC", "DACH", "Nordics"},
	"segment":    {"mid-market", "enterprise", "SMB", "public sector", "healthcare"},
	"vendor":     {"CloudNest", "PaperTrail Supplies", "SecureOps", "Fleetly", "OfficeHub", "DataVault"},
	"team":       {"Platform", "Growth", "Customer Success", "Data", "Design", "Field Sales", "Finance Ops"},
	"tool":       {"Jira", "Slack", "Notion", "Okta", "GitHub", "Salesforce", "Workday"},
	"month":      {"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
	"role":       {"Senior Backend Engineer", "Product Designer", "Account Executive", "Data Analyst", "Support Specialist", "Engineering Manager", "Marketing Coordinator"},
	"policy":     {"remote work", "travel", "expense", "parental leave", "security awareness", "code of conduct"},
	"report":     {"P&L statement", "cash flow report", "variance analysis", "board pack", "revenue recognition summary"},
	"metric":     {"churn", "activation rate", "p95 latency", "NPS", "conversion rate", "weekly active users"},
	"service":    {"billing-api", "auth-service", "search", "notifications", "checkout", "reporting-worker"},
	"system":     {"PostgreSQL", "Kubernetes", "Node.js", "Elasticsearch", "Redis", "Terraform"},
}

// Generator produces placeholder values. It holds no state beyond its source.
type Generator struct {
	src    rng.Source
	ranges map[string]Range
	pools  map[string][]string
}

// NewGenerator returns a generator drawing from src with the built-in value pools.
func NewGenerator(src rng.Source) *Generator {
	return &Generator{
		src:    src,
		ranges: numericRanges,
		pools:  valuePools,
	}
}

// Value returns a value for key: an int for numeric keys, a pooled string for
// known keys, and the key itself for anything else.
func (g *Generator) Value(key string) any {
	if r, ok := g.ranges[key]; ok {
		return rng.Between(g.src, r.Min, r.Max)
	}
	if v, ok := rng.Pick(g.src, g.pools[key]); ok {
		return v
	}
	return key
}

// Build generates a value for every key, drawing in key order.
func (g *Generator) Build(keys []string) Context {
	ctx := make(Context, len(keys))
	for _, k := range keys {
		ctx[k] = g.Value(k)
	}
	return ctx
}

// Known reports whether key has a registered range or pool.
func (g *Generator) Known(key string) bool {
	if _, ok := g.ranges[key]; ok {
		return true
	}
	_, ok := g.pools[key]
	return ok
}
