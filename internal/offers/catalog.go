package offers

// Sector groups companies by industry and drives salary multipliers and
// negotiation difficulty.
type Sector string

const (
	SectorTechGiant  Sector = "tech_giant"
	SectorStartup    Sector = "startup"
	SectorFinance    Sector = "finance"
	SectorConsulting Sector = "consulting"
	SectorHealthcare Sector = "healthcare"
	SectorAutomotive Sector = "automotive"
	SectorRetail     Sector = "retail"
	SectorMedia      Sector = "media"
)

// Company is a single catalog entry.
type Company struct {
	Name     string `json:"name"`
	Sector   Sector `json:"sector"`
	Size     string `json:"size"`
	Location string `json:"location"`
}

// Position is an archetype: a title with a level ladder, a salary band and a
// base benefit set.
type Position struct {
	Title     string
	Levels    []string
	SalaryMin int
	SalaryMax int
	Benefits  []string
}

// Catalog is the read-only registry of companies and position archetypes.
// Build it once with NewCatalog and share it between sessions.
type Catalog struct {
	companies map[Sector][]Company
	positions []Position
	sectors   []Sector
}

func NewCatalog() *Catalog {
	c := &Catalog{
		companies: make(map[Sector][]Company),
	}

	for sector, entries := range companyRoster {
		list := make([]Company, 0, len(entries))
		for _, e := range entries {
			list = append(list, Company{Name: e.name, Sector: sector, Size: e.size, Location: e.location})
		}
		c.companies[sector] = list
	}

	c.positions = positionRoster

	// Stable sector order keeps seeded draws reproducible.
	c.sectors = []Sector{
		SectorTechGiant, SectorStartup, SectorFinance, SectorConsulting,
		SectorHealthcare, SectorAutomotive, SectorRetail, SectorMedia,
	}

	return c
}

// Sectors returns the registered sectors in their fixed order.
func (c *Catalog) Sectors() []Sector {
	out := make([]Sector, len(c.sectors))
	copy(out, c.sectors)
	return out
}

// Companies returns the roster for the given sector. The returned slice must
// not be mutated.
func (c *Catalog) Companies(sector Sector) []Company {
	return c.companies[sector]
}

// Positions returns every position archetype.
func (c *Catalog) Positions() []Position {
	return c.positions
}

// CompanyCount returns the number of distinct company names across all
// sectors.
func (c *Catalog) CompanyCount() int {
	seen := make(map[string]struct{})
	for _, list := range c.companies {
		for _, company := range list {
			seen[company.Name] = struct{}{}
		}
	}
	return len(seen)
}

// HasSector reports whether the sector is registered.
func (c *Catalog) HasSector(sector Sector) bool {
	_, ok := c.companies[sector]
	return ok
}

type rosterEntry struct {
	name     string
	size     string
	location string
}

var companyRoster = map[Sector][]rosterEntry{
	SectorTechGiant: {
		{"Google", "Large", "Mountain View, CA"},
		{"Microsoft", "Large", "Redmond, WA"},
		{"Apple", "Large", "Cupertino, CA"},
		{"Amazon", "Large", "Seattle, WA"},
		{"Meta", "Large", "Menlo Park, CA"},
		{"Netflix", "Large", "Los Gatos, CA"},
		{"Tesla", "Large", "Austin, TX"},
		{"NVIDIA", "Large", "Santa Clara, CA"},
	},
	SectorStartup: {
		{"OpenAI", "Medium", "San Francisco, CA"},
		{"Anthropic", "Medium", "San Francisco, CA"},
		{"Stripe", "Medium", "San Francisco, CA"},
		{"Airbnb", "Medium", "San Francisco, CA"},
		{"Uber", "Medium", "San Francisco, CA"},
		{"Lyft", "Medium", "San Francisco, CA"},
		{"Pinterest", "Medium", "San Francisco, CA"},
		{"Slack", "Medium", "San Francisco, CA"},
	},
	SectorFinance: {
		{"Goldman Sachs", "Large", "New York, NY"},
		{"JPMorgan Chase", "Large", "New York, NY"},
		{"Morgan Stanley", "Large", "New York, NY"},
		{"BlackRock", "Large", "New York, NY"},
		{"Visa", "Large", "Foster City, CA"},
		{"PayPal", "Large", "San Jose, CA"},
		{"Square", "Medium", "San Francisco, CA"},
		{"Robinhood", "Medium", "Menlo Park, CA"},
	},
	SectorConsulting: {
		{"McKinsey & Company", "Large", "New York, NY"},
		{"Boston Consulting Group", "Large", "Boston, MA"},
		{"Bain & Company", "Large", "Boston, MA"},
		{"Deloitte", "Large", "New York, NY"},
		{"PwC", "Large", "New York, NY"},
		{"Accenture", "Large", "New York, NY"},
		{"EY", "Large", "New York, NY"},
		{"KPMG", "Large", "New York, NY"},
	},
	SectorHealthcare: {
		{"Johnson & Johnson", "Large", "New Brunswick, NJ"},
		{"Pfizer", "Large", "New York, NY"},
		{"Merck", "Large", "Kenilworth, NJ"},
		{"Abbott", "Large", "Abbott Park, IL"},
		{"Medtronic", "Large", "Minneapolis, MN"},
		{"UnitedHealth Group", "Large", "Minnetonka, MN"},
		{"Anthem", "Large", "Indianapolis, IN"},
		{"Cigna", "Large", "Bloomfield, CT"},
	},
	SectorAutomotive: {
		{"Ford", "Large", "Dearborn, MI"},
		{"General Motors", "Large", "Detroit, MI"},
		{"BMW", "Large", "Munich, Germany"},
		{"Mercedes-Benz", "Large", "Stuttgart, Germany"},
		{"Toyota", "Large", "Toyota City, Japan"},
		{"Honda", "Large", "Tokyo, Japan"},
		{"Volkswagen", "Large", "Wolfsburg, Germany"},
		{"Hyundai", "Large", "Seoul, South Korea"},
	},
	SectorRetail: {
		{"Walmart", "Large", "Bentonville, AR"},
		{"Target", "Large", "Minneapolis, MN"},
		{"Costco", "Large", "Issaquah, WA"},
		{"Home Depot", "Large", "Atlanta, GA"},
		{"Lowe's", "Large", "Mooresville, NC"},
		{"Best Buy", "Large", "Richfield, MN"},
		{"Macy's", "Large", "New York, NY"},
	},
	SectorMedia: {
		{"Disney", "Large", "Burbank, CA"},
		{"Warner Bros", "Large", "Burbank, CA"},
		{"Sony Pictures", "Large", "Culver City, CA"},
		{"Paramount", "Large", "Hollywood, CA"},
		{"Universal", "Large", "Universal City, CA"},
		{"HBO", "Large", "New York, NY"},
		{"Hulu", "Medium", "Santa Monica, CA"},
	},
}

var positionRoster = []Position{
	{
		Title:     "Software Engineer",
		Levels:    []string{"I", "II", "Senior", "Staff", "Principal"},
		SalaryMin: 80000,
		SalaryMax: 200000,
		Benefits:  []string{"health_insurance", "401k", "stock_options", "unlimited_pto", "remote_work"},
	},
	{
		Title:     "Data Scientist",
		Levels:    []string{"I", "II", "Senior", "Staff", "Principal"},
		SalaryMin: 90000,
		SalaryMax: 220000,
		Benefits:  []string{"health_insurance", "401k", "stock_options", "unlimited_pto", "remote_work", "conference_budget"},
	},
	{
		Title:     "Product Manager",
		Levels:    []string{"Associate", "I", "II", "Senior", "Principal"},
		SalaryMin: 100000,
		SalaryMax: 250000,
		Benefits:  []string{"health_insurance", "401k", "stock_options", "unlimited_pto", "remote_work", "bonus"},
	},
	{
		Title:     "UX Designer",
		Levels:    []string{"I", "II", "Senior", "Staff", "Principal"},
		SalaryMin: 75000,
		SalaryMax: 180000,
		Benefits:  []string{"health_insurance", "401k", "stock_options", "unlimited_pto", "remote_work", "design_budget"},
	},
	{
		Title:     "DevOps Engineer",
		Levels:    []string{"I", "II", "Senior", "Staff", "Principal"},
		SalaryMin: 85000,
		SalaryMax: 190000,
		Benefits:  []string{"health_insurance", "401k", "stock_options", "unlimited_pto", "remote_work", "on_call_bonus"},
	},
	{
		Title:     "Machine Learning Engineer",
		Levels:    []string{"I", "II", "Senior", "Staff", "Principal"},
		SalaryMin: 95000,
		SalaryMax: 230000,
		Benefits:  []string{"health_insurance", "401k", "stock_options", "unlimited_pto", "remote_work", "research_budget"},
	},
	{
		Title:     "Sales Engineer",
		Levels:    []string{"I", "II", "Senior", "Staff", "Principal"},
		SalaryMin: 80000,
		SalaryMax: 200000,
		Benefits:  []string{"health_insurance", "401k", "commission", "unlimited_pto", "remote_work", "travel_budget"},
	},
	{
		Title:     "Marketing Manager",
		Levels:    []string{"I", "II", "Senior", "Staff", "Principal"},
		SalaryMin: 70000,
		SalaryMax: 160000,
		Benefits:  []string{"health_insurance", "401k", "bonus", "unlimited_pto", "remote_work", "marketing_budget"},
	},
}

// BenefitDescriptions maps benefit identifiers to human readable text.
var BenefitDescriptions = map[string]string{
	"health_insurance":   "Comprehensive health, dental, and vision insurance",
	"401k":               "401(k) with company matching up to 6%",
	"stock_options":      "Equity participation and stock options",
	"unlimited_pto":      "Unlimited paid time off",
	"remote_work":        "Flexible remote work options",
	"conference_budget":  "Annual conference and training budget",
	"bonus":              "Performance-based annual bonus",
	"design_budget":      "Annual design tools and software budget",
	"on_call_bonus":      "On-call and overtime compensation",
	"research_budget":    "Research and development budget",
	"commission":         "Sales commission structure",
	"travel_budget":      "Business travel and entertainment budget",
	"marketing_budget":   "Marketing campaign and tools budget",
	"free_meals":         "Free meals and snacks on campus",
	"gym_membership":     "Gym membership reimbursement",
	"transportation":     "Commuter and transportation benefits",
	"equity":             "Early-stage equity grant",
	"flexible_hours":     "Flexible working hours",
	"startup_perks":      "Startup perks and team offsites",
	"retirement_plan":    "Enhanced retirement plan",
	"financial_planning": "Personal financial planning services",
}

// sectorBonusBenefits extend an archetype's base benefits for selected sectors.
var sectorBonusBenefits = map[Sector][]string{
	SectorTechGiant: {"free_meals", "gym_membership", "transportation"},
	SectorStartup:   {"equity", "flexible_hours", "startup_perks"},
	SectorFinance:   {"bonus", "retirement_plan", "financial_planning"},
}

// sectorMultipliers scale the archetype salary band per sector.
var sectorMultipliers = map[Sector]float64{
	SectorTechGiant:  1.2,
	SectorStartup:    1.0,
	SectorFinance:    1.3,
	SectorConsulting: 1.1,
	SectorHealthcare: 0.9,
	SectorAutomotive: 0.95,
	SectorRetail:     0.85,
	SectorMedia:      1.05,
}

// premiumMultiplier applies on top of the sector multiplier for companies
// known to pay above their sector.
const premiumMultiplier = 1.1

var premiumCompanies = map[string]struct{}{
	"Google":    {},
	"Microsoft": {},
	"Apple":     {},
	"Amazon":    {},
	"Meta":      {},
	"Netflix":   {},
	"Tesla":     {},
	"NVIDIA":    {},
	"OpenAI":    {},
	"Anthropic": {},
}

// sectorBaseDifficulty ranges from 0.2 (very negotiable) to 0.9 (very firm).
var sectorBaseDifficulty = map[Sector]float64{
	SectorTechGiant:  0.3,
	SectorStartup:    0.2,
	SectorFinance:    0.7,
	SectorConsulting: 0.6,
	SectorHealthcare: 0.8,
	SectorAutomotive: 0.5,
	SectorRetail:     0.9,
	SectorMedia:      0.4,
}

var sectorDescriptions = map[Sector]string{
	SectorTechGiant:  "Join %s, a leading technology company, as a %s. You'll work on cutting-edge projects that impact millions of users worldwide.",
	SectorStartup:    "Be part of %s's innovative team as a %s. Help shape the future of technology in a fast-paced, collaborative environment.",
	SectorFinance:    "Join %s as a %s and work on financial solutions that power global markets. Competitive compensation and excellent benefits.",
	SectorConsulting: "Work with %s as a %s to solve complex business challenges for Fortune 500 clients worldwide.",
	SectorHealthcare: "Make a difference at %s as a %s, contributing to healthcare innovation and improving patient outcomes.",
	SectorAutomotive: "Drive innovation at %s as a %s, working on the future of transportation and mobility solutions.",
	SectorRetail:     "Join %s as a %s and help shape the future of retail and e-commerce experiences.",
	SectorMedia:      "Create compelling content and experiences at %s as a %s in the entertainment industry.",
}
