// Package taxonomy holds the static skill classification table: a fixed
// set of categories, each owning an ordered list of lower-case terms.
// The table is compiled in; nothing is read at runtime.
package taxonomy

// SoftSkills is the terminal-fallback category seeded when nothing else
// matches a description.
const SoftSkills = "Soft Skills"

// Category is one named bucket of skill terms. Term order is
// significant: fallback seeding takes the first terms in table order.
type Category struct {
	Name  string
	Terms []string
}

// Taxonomy is an immutable category table plus a derived flat index for
// O(1) exact term lookups. Safe for concurrent readers once built.
type Taxonomy struct {
	categories []Category
	flat       map[string]string
}

// New builds a taxonomy from the given categories. The flat index maps
// each term to the first category that registers it.
func New(categories []Category) *Taxonomy {
	t := &Taxonomy{
		categories: categories,
		flat:       make(map[string]string),
	}
	for _, c := range categories {
		for _, term := range c.Terms {
			if _, dup := t.flat[term]; !dup {
				t.flat[term] = c.Name
			}
		}
	}
	return t
}

// Categories returns the category table in definition order. Callers
// must not mutate the returned slices.
func (t *Taxonomy) Categories() []Category {
	return t.categories
}

// CategoryOf returns the category an exact term belongs to.
func (t *Taxonomy) CategoryOf(term string) (string, bool) {
	name, ok := t.flat[term]
	return name, ok
}

// Terms returns the term list of a named category, nil when unknown.
func (t *Taxonomy) Terms(category string) []string {
	for _, c := range t.categories {
		if c.Name == category {
			return c.Terms
		}
	}
	return nil
}

// Each walks every (term, category) pair in table order. The substring
// fallback of the matcher needs the full scan; exact lookups should use
// CategoryOf instead.
func (t *Taxonomy) Each(fn func(term, category string) bool) {
	for _, c := range t.categories {
		for _, term := range c.Terms {
			if !fn(term, c.Name) {
				return
			}
		}
	}
}

// Default returns the built-in skill table.
func Default() *Taxonomy {
	return New([]Category{
		{Name: "Programming Languages", Terms: []string{
			"python", "java", "javascript", "c++", "c#", "ruby", "php", "swift",
			"kotlin", "go", "rust", "typescript", "scala", "perl", "r", "matlab",
			"bash", "shell", "powershell", "sql", "html", "css", "dart",
		}},
		{Name: "Frameworks & Libraries", Terms: []string{
			"react", "angular", "vue", "django", "flask", "spring", "express",
			"node.js", "tensorflow", "pytorch", "scikit-learn", "pandas", "numpy",
			"bootstrap", "jquery", "laravel", "symfony", "rails", "asp.net",
			"flutter", "xamarin", ".net", "dotnet", "core", "entity framework",
		}},
		{Name: "Databases", Terms: []string{
			"mysql", "postgresql", "mongodb", "sqlite", "oracle", "sql server",
			"cassandra", "redis", "elasticsearch", "dynamodb", "mariadb", "neo4j",
			"firebase", "supabase", "cockroachdb", "couchdb", "cosmosdb",
		}},
		{Name: "Cloud & DevOps", Terms: []string{
			"aws", "azure", "gcp", "google cloud", "docker", "kubernetes", "jenkins",
			"terraform", "ansible", "chef", "puppet", "circleci", "travis", "github actions",
			"gitlab ci", "bitbucket pipelines", "heroku", "netlify", "vercel", "digitalocean",
			"linode", "cloudflare", "akamai", "fastly", "lambda", "ec2", "s3", "rds",
		}},
		{Name: "Tools & Platforms", Terms: []string{
			"git", "github", "gitlab", "bitbucket", "jira", "confluence", "trello",
			"slack", "notion", "figma", "sketch", "adobe xd", "photoshop", "illustrator",
			"visual studio", "vs code", "intellij", "pycharm", "eclipse", "android studio",
			"xcode", "postman", "insomnia", "swagger", "sentry", "datadog", "grafana",
		}},
		{Name: "Methodologies", Terms: []string{
			"agile", "scrum", "kanban", "waterfall", "lean", "tdd", "bdd", "ci/cd",
			"devops", "devsecops", "gitflow", "trunk-based development", "pair programming",
			"extreme programming", "safe", "prince2", "pmp", "itil", "togaf",
		}},
		{Name: SoftSkills, Terms: []string{
			"communication", "teamwork", "leadership", "problem solving", "critical thinking",
			"time management", "adaptability", "creativity", "emotional intelligence",
			"conflict resolution", "negotiation", "presentation", "public speaking",
			"customer service", "mentoring", "coaching", "decision making",
		}},
		{Name: "Languages", Terms: []string{
			"english", "german", "french", "spanish", "italian", "portuguese", "dutch",
			"swedish", "norwegian", "danish", "finnish", "russian", "chinese", "japanese",
			"korean", "arabic", "hindi", "bengali", "urdu", "turkish", "polish", "ukrainian",
		}},
		{Name: "Business & Analytics", Terms: []string{
			"excel", "powerpoint", "word", "tableau", "power bi", "looker", "google analytics",
			"seo", "sem", "google ads", "facebook ads", "marketing", "sales", "crm", "erp",
			"salesforce", "hubspot", "zoho", "mailchimp", "google workspace", "office 365",
			"financial analysis", "forecasting", "budgeting", "accounting", "quickbooks", "sap",
		}},
	})
}
