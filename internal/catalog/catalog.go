package catalog

import "strings"

// Category identifies one of the fixed blog sections. The order returned by
// AllCategories is the rotation order the scheduler walks.
type Category string

const (
	GettingStarted Category = "getting-started"
	Certifications Category = "certifications"
	Salaries       Category = "salaries"
	CareerPaths    Category = "career-paths"
	JobSearch      Category = "job-search"
	Skills         Category = "skills"
	IndustryTrends Category = "industry-trends"
)

// AllCategories returns every category in canonical rotation order.
func AllCategories() []Category {
	return []Category{GettingStarted, Certifications, Salaries, CareerPaths, JobSearch, Skills, IndustryTrends}
}

var displayNames = map[Category]string{
	GettingStarted: "Getting Started",
	Certifications: "Certifications",
	Salaries:       "Salaries",
	CareerPaths:    "Career Paths",
	JobSearch:      "Job Search",
	Skills:         "Skills",
	IndustryTrends: "Industry Trends",
}

// Colors match the CSS variables used by the blog index page.
var colors = map[Category]string{
	GettingStarted: "var(--green)",
	Certifications: "var(--orange)",
	Salaries:       "var(--blue)",
	CareerPaths:    "var(--purple)",
	JobSearch:      "var(--red)",
	Skills:         "#1ABC9C",
	IndustryTrends: "var(--gold)",
}

var cssClasses = map[Category]string{
	GettingStarted: "gs",
	Certifications: "cert",
	Salaries:       "sal",
	CareerPaths:    "cp",
	JobSearch:      "js",
	Skills:         "sk",
	IndustryTrends: "tr",
}

// DisplayName returns the human-readable category name.
func (c Category) DisplayName() string {
	if n, ok := displayNames[c]; ok {
		return n
	}
	return displayNames[GettingStarted]
}

// Color returns the CSS color value for the category badge.
func (c Category) Color() string {
	if v, ok := colors[c]; ok {
		return v
	}
	return colors[GettingStarted]
}

// CSSClass returns the short class used by the blog listing page.
func (c Category) CSSClass() string {
	if v, ok := cssClasses[c]; ok {
		return v
	}
	return cssClasses[GettingStarted]
}

// FromDisplayName reverse-maps a display name to its slug, case-insensitively.
// Returns GettingStarted when the name is unknown.
func FromDisplayName(name string) Category {
	for c, n := range displayNames {
		if strings.EqualFold(n, name) {
			return c
		}
	}
	return GettingStarted
}

// Variation is one concrete title/subtitle pairing within a topic group.
type Variation struct {
	Angle    string
	Title    string
	Subtitle string
}

// Group is a themed set of title variations sharing one template key.
type Group struct {
	Template   string
	Variations []Variation
}

// Groups returns the evergreen topic groups for a category.
func Groups(c Category) []Group {
	return frameworks[c]
}

// MaxGroups returns the largest group count across all categories.
func MaxGroups() int {
	max := 0
	for _, groups := range frameworks {
		if len(groups) > max {
			max = len(groups)
		}
	}
	return max
}

// TotalVariations counts every title variation in the catalog.
func TotalVariations() int {
	n := 0
	for _, groups := range frameworks {
		for _, g := range groups {
			n += len(g.Variations)
		}
	}
	return n
}

var frameworks = map[Category][]Group{
	GettingStarted: {
		{
			Template: "breaking_in",
			Variations: []Variation{
				{"without a degree", "How to Break Into Cybersecurity Without a Degree", "You don't need a CS degree. Here's the realistic path."},
				{"from IT support", "From Help Desk to Security: Making the Transition", "Already in IT? Here's how to pivot faster."},
				{"as a career changer", "Career Change to Cybersecurity: A Step-by-Step Guide", "Your existing skills are more valuable than you think."},
				{"over 30", "Is It Too Late to Start a Cybersecurity Career?", "Spoiler: It's not. Age can be an advantage."},
				{"with no experience", "Zero to Hired: Getting Your First Security Job", "Build credibility from nothing."},
				{"as a veteran", "Military to Cybersecurity: Translating Your Experience", "Veterans have massive advantages in security."},
				{"from non-tech", "Non-Tech to Cybersecurity: Yes, It's Possible", "Teachers, nurses, accountants—all have made it."},
			},
		},
		{
			Template: "first_steps",
			Variations: []Variation{
				{"what to learn first", "What to Learn First in Cybersecurity", "The exact order to tackle fundamentals."},
				{"home lab guide", "Build Your First Cybersecurity Home Lab", "Hands-on practice beats theory."},
				{"free resources", "Best Free Cybersecurity Learning Resources", "Quality training without spending thousands."},
				{"common mistakes", "Mistakes That Delay Your Security Career", "Avoid traps that cost months."},
				{"realistic timeline", "How Long to Break Into Cybersecurity?", "Honest timelines based on your starting point."},
				{"study plan", "Your First 90 Days Studying Cybersecurity", "A structured plan that works."},
			},
		},
	},
	Certifications: {
		{
			Template: "cert_review",
			Variations: []Variation{
				{"security+", "Is CompTIA Security+ Worth It?", "The most popular entry cert—honest assessment."},
				{"cysa+", "CySA+ Certification: Complete Guide", "The analyst cert for blue team careers."},
				{"pentest+", "PenTest+ vs OSCP: Which to Choose?", "Offensive cert comparison."},
				{"cissp", "CISSP: When to Pursue It", "The gold standard—timing matters."},
				{"ceh", "CEH Certification: Honest Review", "Controversial cert—pros and cons."},
				{"google cert", "Google Cybersecurity Certificate Review", "The budget-friendly alternative."},
				{"isc2 cc", "ISC2 CC: The Free Entry-Level Cert", "Zero cost certification option."},
			},
		},
		{
			Template: "cert_strategy",
			Variations: []Variation{
				{"first cert", "Which Cert Should You Get First?", "Decision tree for beginners."},
				{"cert roadmap", "Building Your Certification Roadmap", "Strategic cert stacking."},
				{"over-certification", "Stop Collecting Certs", "When enough is enough."},
				{"employer preferences", "Which Certs Do Employers Want?", "Data from real job postings."},
				{"cert ROI", "Certification ROI: The Real Numbers", "Which certs actually pay off."},
			},
		},
	},
	Salaries: {
		{
			Template: "salary_data",
			Variations: []Variation{
				{"entry level", "Entry-Level Cybersecurity Salaries", "What to expect in your first role."},
				{"by role", "Cybersecurity Salaries by Role", "From SOC analyst to CISO."},
				{"by location", "Security Salaries by City", "Geographic pay differences."},
				{"negotiation", "How to Negotiate Your Security Salary", "Tactics worth $10-20K."},
				{"salary growth", "Security Salary Progression: Year 1-10", "Realistic earnings trajectory."},
				{"remote salaries", "Remote Cybersecurity Salaries", "What remote roles actually pay."},
			},
		},
	},
	CareerPaths: {
		{
			Template: "role_guide",
			Variations: []Variation{
				{"soc analyst", "SOC Analyst: Complete Career Guide", "The most common entry point."},
				{"pentester", "How to Become a Penetration Tester", "The offensive security path."},
				{"security engineer", "Security Engineer Career Path", "Building secure infrastructure."},
				{"grc analyst", "GRC Analyst: The Less Technical Path", "Governance, risk, compliance."},
				{"incident responder", "Incident Response Career Guide", "Security firefighting."},
				{"threat intel", "Threat Intelligence Analyst Path", "Tracking adversaries."},
				{"cloud security", "Cloud Security Engineer Guide", "The high-demand specialty."},
				{"devsecops", "DevSecOps Engineer Career Path", "Security meets development."},
			},
		},
		{
			Template: "career_decisions",
			Variations: []Variation{
				{"red vs blue", "Red Team vs Blue Team: Which Path?", "Offense vs defense."},
				{"technical vs management", "Technical Track vs Management", "IC or people leader?"},
				{"consulting vs internal", "Consulting vs In-House Security", "Different trade-offs."},
				{"specialize when", "When to Specialize in Cybersecurity", "Depth vs breadth timing."},
			},
		},
	},
	JobSearch: {
		{
			Template: "applications",
			Variations: []Variation{
				{"resume tips", "Security Resume That Gets Interviews", "Beat the ATS filters."},
				{"no experience resume", "Security Resume With No Experience", "Position yourself effectively."},
				{"linkedin", "LinkedIn for Cybersecurity Jobs", "Get recruiters to find you."},
				{"cover letters", "Do Cover Letters Matter in Security?", "When and what to write."},
				{"portfolio", "Building a Security Portfolio", "Show don't tell."},
			},
		},
		{
			Template: "interviews",
			Variations: []Variation{
				{"technical interview", "Security Technical Interview Questions", "Common questions answered."},
				{"behavioral interview", "Security Behavioral Interview Tips", "STAR method examples."},
				{"practical assessment", "Ace Security Practical Assessments", "Take-home and live tests."},
			},
		},
		{
			Template: "strategy",
			Variations: []Variation{
				{"where to apply", "Where to Find Security Jobs", "Best sources beyond LinkedIn."},
				{"networking", "Networking Into Security", "Connections that matter."},
				{"60 percent rule", "Apply Without Meeting All Requirements", "Job posts are wish lists."},
			},
		},
	},
	Skills: {
		{
			Template: "technical",
			Variations: []Variation{
				{"top skills", "Top Technical Skills Employers Want", "From real job posting data."},
				{"networking basics", "Networking Fundamentals for Security", "The essential foundation."},
				{"linux skills", "Linux Skills for Cybersecurity", "Command line proficiency."},
				{"python security", "Python for Cybersecurity", "Scripting that matters."},
				{"cloud skills", "Cloud Security Skills in Demand", "AWS, Azure, GCP."},
				{"siem skills", "SIEM Skills Every Analyst Needs", "Splunk, Sentinel, and more."},
			},
		},
		{
			Template: "soft_skills",
			Variations: []Variation{
				{"communication", "Communication Skills in Security", "Writing and presenting."},
				{"problem solving", "Analytical Thinking for Security", "Systematic approaches."},
				{"continuous learning", "Keeping Up With Security Changes", "Stay current without burnout."},
			},
		},
	},
	IndustryTrends: {
		{
			Template: "market_trends",
			Variations: []Variation{
				{"job market", "Cybersecurity Job Market Update", "Current hiring trends."},
				{"ai impact", "How AI Is Changing Security Jobs", "Automation's real impact."},
				{"remote trends", "Remote Work in Cybersecurity", "Which roles work remote."},
				{"skills gap", "The Cybersecurity Skills Gap", "What shortage means for you."},
			},
		},
		{
			Template: "future",
			Variations: []Variation{
				{"emerging roles", "Emerging Cybersecurity Roles", "New positions to watch."},
				{"automation", "Will Automation Replace Analysts?", "What AI handles vs humans."},
				{"future proof", "Is Cybersecurity Future-Proof?", "Long-term career outlook."},
			},
		},
	},
}

// IntroStyles are the rotation of opening styles for generated posts.
var IntroStyles = []string{
	"stat_hook",
	"question_hook",
	"myth_buster",
	"story_hook",
	"direct_answer",
}

// ContentStructures are the rotation of overall post formats.
var ContentStructures = []string{
	"listicle",
	"guide",
	"comparison",
	"deep_dive",
	"qa_format",
	"myth_vs_reality",
}
