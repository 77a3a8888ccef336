package insights

// Curated, static MVP dataset inspired by WEF Future of Jobs themes.
// Intentionally small and explainable; this is not report ingestion.

// Override augments the baseline lists for a country or industry.
type Override struct {
	JobsAtRisk        []string
	EmergingRoles     []string
	FastGrowingSkills []string
	DecliningSkills   []string
}

var baseline = Override{
	JobsAtRisk: []string{
		"Routine data entry and basic administrative tasks",
		"Basic bookkeeping and repetitive reporting work",
		"Simple customer support tiers (highly scripted)",
		"Manual inventory tracking and basic dispatch coordination",
	},
	EmergingRoles: []string{
		"AI/automation analyst (workflow-focused)",
		"Cybersecurity analyst",
		"Sustainability and climate reporting specialist",
		"Data governance / privacy operations specialist",
	},
	FastGrowingSkills: []string{
		"AI literacy (using tools responsibly)",
		"Data analysis and visualization",
		"Cybersecurity fundamentals",
		"Product thinking and experimentation",
		"Communication and stakeholder management",
	},
	DecliningSkills: []string{
		"Manual spreadsheet-only reporting",
		"Highly repetitive clerical processing",
		"Single-tool specialization without transferable skills",
	},
}

var countryOverrides = map[string]Override{
	"us": {
		EmergingRoles:     []string{"Cloud platform engineer", "Trust & safety operations specialist"},
		FastGrowingSkills: []string{"Cloud fundamentals", "Prompting and AI workflow design"},
	},
	"ca": {
		EmergingRoles:     []string{"Privacy compliance coordinator", "Clean-tech project coordinator"},
		FastGrowingSkills: []string{"Privacy basics (GDPR-like thinking)", "Project coordination"},
	},
	"au": {
		EmergingRoles:     []string{"Risk & compliance analyst", "Renewables operations coordinator"},
		FastGrowingSkills: []string{"Risk management basics", "Process improvement"},
	},
	"uk": {
		EmergingRoles:     []string{"Regulatory reporting specialist", "Fintech operations analyst"},
		FastGrowingSkills: []string{"Regulatory literacy", "Data quality management"},
	},
	"fr": {
		EmergingRoles:     []string{"Industrial automation technician", "Sustainability analyst"},
		FastGrowingSkills: []string{"Process engineering basics", "Cross-functional communication"},
	},
	"de": {
		EmergingRoles:     []string{"Manufacturing data analyst", "Cybersecurity engineer (OT focus)"},
		FastGrowingSkills: []string{"Industrial data basics", "Security fundamentals"},
	},
}

var industryOverrides = map[string]Override{
	"technology": {
		EmergingRoles:     []string{"AI product specialist", "Platform reliability engineer"},
		FastGrowingSkills: []string{"System thinking", "Writing and documentation", "APIs basics"},
		DecliningSkills:   []string{"Single-framework identity without fundamentals"},
	},
	"finance": {
		JobsAtRisk:        []string{"Manual reconciliation and repetitive compliance paperwork"},
		EmergingRoles:     []string{"Fraud operations analyst", "Model risk analyst"},
		FastGrowingSkills: []string{"Risk literacy", "Data governance", "Automation mindset"},
	},
	"healthcare": {
		EmergingRoles:     []string{"Health data coordinator", "Clinical operations analyst"},
		FastGrowingSkills: []string{"Data privacy awareness", "Process improvement", "Empathy"},
	},
	"manufacturing": {
		JobsAtRisk:        []string{"Manual quality checks without instrumentation support"},
		EmergingRoles:     []string{"Automation maintenance technician", "Industrial data technician"},
		FastGrowingSkills: []string{"Lean/process improvement", "Basic sensors/IoT literacy"},
	},
	"retail": {
		JobsAtRisk:        []string{"Basic cashiering and repetitive fulfillment coordination"},
		EmergingRoles:     []string{"E-commerce operations analyst", "Customer experience analyst"},
		FastGrowingSkills: []string{"Operations analytics", "Customer journey thinking"},
	},
	"education": {
		EmergingRoles:     []string{"Learning experience designer", "Education data analyst"},
		FastGrowingSkills: []string{"Instructional design basics", "Content structuring"},
	},
}

var countryLabels = map[string]string{
	"us": "United States",
	"ca": "Canada",
	"au": "Australia",
	"uk": "United Kingdom",
	"fr": "France",
	"de": "Germany",
}

var industryLabels = map[string]string{
	"technology":    "Technology",
	"finance":       "Finance",
	"healthcare":    "Healthcare",
	"manufacturing": "Manufacturing",
	"retail":        "Retail",
	"education":     "Education",
}

func countryLabel(key string) string {
	if l, ok := countryLabels[key]; ok {
		return l
	}
	return "Global"
}

func industryLabel(key string) string {
	if l, ok := industryLabels[key]; ok {
		return l
	}
	return "General"
}
