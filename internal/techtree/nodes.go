package techtree

import "rehoboam/internal/models"

func ym(year, month int) models.YearMonth {
	return models.YearMonth{Year: year, Month: month}
}

// nodes is the full technology tree catalog in authored order. Entries are
// immutable at runtime; the adoption history lives in the state store.
var nodes = []models.TechTreeNode{
	{
		ID:          "IND-AI-01",
		Category:    models.CategoryIndividual,
		Subcategory: "Personal AI & Agency",
		Title:       "Default AI copilot for most knowledge workers",
		WindowStart: ym(2026, 0),
		WindowEnd:   ym(2028, 11),
		Indicators:  []string{"% of orgs standardizing AI tools", "workforce training programs"},
		Tags:        []string{"work", "routines"},
	},
	{
		ID:          "IND-AI-02",
		Category:    models.CategoryIndividual,
		Subcategory: "Personal AI & Agency",
		Title:       "Personal AI agent becomes common",
		WindowStart: ym(2027, 0),
		WindowEnd:   ym(2030, 11),
		DependsOn:   []string{"IND-AI-01"},
		Indicators:  []string{"consumer adoption rates", "app store rankings"},
		Tags:        []string{"morning-planning", "routines", "work"},
	},
	{
		ID:          "IND-AI-03",
		Category:    models.CategoryIndividual,
		Subcategory: "Personal AI & Agency",
		Title:       "AI-mediated personal knowledgebase (life OS)",
		WindowStart: ym(2028, 0),
		WindowEnd:   ym(2033, 11),
		DependsOn:   []string{"IND-AI-02"},
		Indicators:  []string{"consumer adoption", "integration depth"},
		Tags:        []string{"morning-planning", "routines", "relationships"},
	},
	{
		ID:          "IND-AI-04",
		Category:    models.CategoryIndividual,
		Subcategory: "Personal AI & Agency",
		Title:       "Autonomous delegation becomes normal",
		WindowStart: ym(2029, 0),
		WindowEnd:   ym(2035, 11),
		DependsOn:   []string{"IND-AI-03", "GOV-LAW-03"},
		Indicators:  []string{"transaction volume", "legal framework adoption"},
		Tags:        []string{"work", "finance", "routines"},
	},
	{
		ID:          "IND-H-01",
		Category:    models.CategoryIndividual,
		Subcategory: "Health & Longevity",
		Title:       "Continuous health monitoring becomes normal",
		WindowStart: ym(2026, 0),
		WindowEnd:   ym(2029, 11),
		Indicators:  []string{"wearable adoption", "insurance integration"},
		Tags:        []string{"health", "privacy"},
	},
	{
		ID:          "IND-H-02",
		Category:    models.CategoryIndividual,
		Subcategory: "Health & Longevity",
		Title:       "AI triage & diagnosis becomes first-line",
		WindowStart: ym(2027, 0),
		WindowEnd:   ym(2032, 11),
		DependsOn:   []string{"IND-AI-01"},
		Indicators:  []string{"regulator approvals", "malpractice precedents", "hospital workflows"},
		Tags:        []string{"health", "safety"},
	},
	{
		ID:          "IND-H-03",
		Category:    models.CategoryIndividual,
		Subcategory: "Health & Longevity",
		Title:       "Personalized preventive protocol managed by agent",
		WindowStart: ym(2027, 0),
		WindowEnd:   ym(2033, 11),
		DependsOn:   []string{"IND-AI-03", "IND-H-01"},
		Indicators:  []string{"outcome studies", "employer programs"},
		Tags:        []string{"meals", "sleep", "health"},
	},
	{
		ID:          "IND-H-04",
		Category:    models.CategoryIndividual,
		Subcategory: "Health & Longevity",
		Title:       "Gene/cell therapies broaden beyond rare diseases",
		WindowStart: ym(2028, 0),
		WindowEnd:   ym(2038, 11),
		Indicators:  []string{"approvals", "pricing", "reimbursement"},
		Tags:        []string{"health", "family"},
	},
	{
		ID:          "IND-H-05",
		Category:    models.CategoryIndividual,
		Subcategory: "Health & Longevity",
		Title:       "Longevity interventions shift to medical standard",
		WindowStart: ym(2032, 0),
		WindowEnd:   ym(2045, 11),
		DependsOn:   []string{"IND-H-04"},
		Indicators:  []string{"guideline changes", "lifespan/healthspan stats"},
		Tags:        []string{"health", "family"},
	},
	{
		ID:          "IND-HM-01",
		Category:    models.CategoryIndividual,
		Subcategory: "Home Automation",
		Title:       "Household automation: cleaning, laundry, basic chores",
		WindowStart: ym(2026, 0),
		WindowEnd:   ym(2030, 11),
		Indicators:  []string{"robot vacuum evolution", "home assistant integration"},
		Tags:        []string{"routines"},
	},
	{
		ID:          "IND-HM-02",
		Category:    models.CategoryIndividual,
		Subcategory: "Home Automation",
		Title:       "General-purpose home robot becomes plausible",
		WindowStart: ym(2028, 0),
		WindowEnd:   ym(2035, 11),
		DependsOn:   []string{"ECO-ROB-02"},
		Indicators:  []string{"unit sales", "subscription labor models", "safety incidents"},
		Tags:        []string{"meals", "routines", "relationships"},
	},
	{
		ID:          "IND-HM-03",
		Category:    models.CategoryIndividual,
		Subcategory: "Home Automation",
		Title:       "Smart home integration becomes seamless",
		WindowStart: ym(2027, 0),
		WindowEnd:   ym(2031, 11),
		Indicators:  []string{"protocol standards", "security incidents"},
		Tags:        []string{"privacy", "routines"},
	},
	{
		ID:          "SOC-T-01",
		Category:    models.CategorySociety,
		Subcategory: "Transportation",
		Title:       "Self-driving cars reach L4 in major cities",
		WindowStart: ym(2026, 0),
		WindowEnd:   ym(2032, 11),
		Indicators:  []string{"unit shipments", "enterprise standards"},
		Tags:        []string{"commute", "entertainment", "work", "social-life"},
	},
	{
		ID:          "SOC-I-01",
		Category:    models.CategorySociety,
		Subcategory: "Information",
		Title:       "Credential collapse: deepfakes become indistinguishable",
		WindowStart: ym(2026, 0),
		WindowEnd:   ym(2029, 11),
		Indicators:  []string{"detection failure rates", "verification demand"},
		Tags:        []string{"trust", "relationships", "privacy"},
	},
	{
		ID:          "ECO-AI-01",
		Category:    models.CategoryEconomy,
		Subcategory: "Automation & Productivity",
		Title:       "AI-native company playbooks dominate startups",
		WindowStart: ym(2026, 0),
		WindowEnd:   ym(2030, 11),
		Indicators:  []string{"revenue/employee stats", "VC memos", "layoffs + newco formation"},
		Tags:        []string{"work", "income-model"},
	},
	{
		ID:          "ECO-AI-02",
		Category:    models.CategoryEconomy,
		Subcategory: "Automation & Productivity",
		Title:       "Coding automation crosses critical threshold",
		WindowStart: ym(2028, 0),
		WindowEnd:   ym(2032, 11),
		DependsOn:   []string{"IND-AI-02"},
		Indicators:  []string{"% of production code written by agents", "manager of agents roles"},
		Tags:        []string{"work", "income-model"},
	},
	{
		ID:          "ECO-AI-03",
		Category:    models.CategoryEconomy,
		Subcategory: "Automation & Productivity",
		Title:       "Research automation accelerates AI progress",
		WindowStart: ym(2029, 0),
		WindowEnd:   ym(2035, 11),
		DependsOn:   []string{"ECO-AI-02"},
		Indicators:  []string{"automated experiment throughput", "model improvement rate changes"},
		Tags:        []string{"governance", "politics", "safety", "work"},
	},
	{
		ID:          "ECO-ROB-01",
		Category:    models.CategoryEconomy,
		Subcategory: "Physical Automation",
		Title:       "Warehouses + delivery become heavily autonomous",
		WindowStart: ym(2026, 0),
		WindowEnd:   ym(2032, 11),
		Indicators:  []string{"cost curves", "accident rates", "labor demand shifts"},
		Tags:        []string{"meals", "routines", "commute"},
	},
	{
		ID:          "ECO-ROB-02",
		Category:    models.CategoryEconomy,
		Subcategory: "Physical Automation",
		Title:       "General-purpose robots economically viable in industries",
		WindowStart: ym(2028, 0),
		WindowEnd:   ym(2038, 11),
		DependsOn:   []string{"ECO-AI-02"},
		Indicators:  []string{"robot-hours sold", "insurance frameworks", "union responses"},
		Tags:        []string{"work", "safety", "routines"},
	},
	{
		ID:          "ECO-ROB-03",
		Category:    models.CategoryEconomy,
		Subcategory: "Physical Automation",
		Title:       "Food system automation: vertical farming / precision fermentation",
		WindowStart: ym(2028, 0),
		WindowEnd:   ym(2045, 11),
		Indicators:  []string{"cost per calorie", "regulation", "consumer acceptance"},
		Tags:        []string{"meals", "health"},
	},
	{
		ID:          "ECO-F-01",
		Category:    models.CategoryEconomy,
		Subcategory: "Money & Markets",
		Title:       "Tokenized assets and on-chain settlement expand",
		WindowStart: ym(2026, 0),
		WindowEnd:   ym(2034, 11),
		Indicators:  []string{"institutional settlement pilots", "regulatory clarity"},
		Tags:        []string{"finance", "governance"},
	},
	{
		ID:          "ECO-F-02",
		Category:    models.CategoryEconomy,
		Subcategory: "Money & Markets",
		Title:       "CBDC or state-backed digital cash becomes mainstream",
		WindowStart: ym(2027, 0),
		WindowEnd:   ym(2038, 11),
		Indicators:  []string{"rollout milestones", "privacy guarantees", "adoption rates"},
		Tags:        []string{"privacy", "finance", "governance"},
	},
	{
		ID:          "ECO-F-03",
		Category:    models.CategoryEconomy,
		Subcategory: "Money & Markets",
		Title:       "New social contract instruments (UBI, wage subsidies)",
		WindowStart: ym(2028, 0),
		WindowEnd:   ym(2045, 11),
		DependsOn:   []string{"ECO-AI-02"},
		Indicators:  []string{"pilots", "election platforms", "fiscal capacity"},
		Tags:        []string{"income-model", "work", "safety"},
	},
	{
		ID:          "ECO-EN-01",
		Category:    models.CategoryEconomy,
		Subcategory: "Energy & Compute",
		Title:       "Grid constraint becomes first-order limiter",
		WindowStart: ym(2026, 0),
		WindowEnd:   ym(2032, 11),
		Indicators:  []string{"power prices", "permitting", "data center siting"},
		Tags:        []string{"energy", "politics"},
	},
	{
		ID:          "ECO-EN-02",
		Category:    models.CategoryEconomy,
		Subcategory: "Energy & Compute",
		Title:       "Nuclear buildout and/or SMRs accelerate",
		WindowStart: ym(2026, 0),
		WindowEnd:   ym(2040, 11),
		Indicators:  []string{"approvals", "costs", "deployment rate"},
		Tags:        []string{"energy", "politics"},
	},
	{
		ID:          "ECO-EN-03",
		Category:    models.CategoryEconomy,
		Subcategory: "Energy & Compute",
		Title:       "Fusion: pilot plants to early commercial",
		WindowStart: ym(2030, 0),
		WindowEnd:   ym(2045, 11),
		Indicators:  []string{"net energy milestones", "financing", "grid contracts"},
		Tags:        []string{"energy", "politics"},
	},
	{
		ID:          "GOV-ID-01",
		Category:    models.CategoryGovernance,
		Subcategory: "Identity & Civil Infrastructure",
		Title:       "Digital ID wallets expand, interoperability fights",
		WindowStart: ym(2026, 0),
		WindowEnd:   ym(2032, 11),
		Indicators:  []string{"legislation", "adoption", "major breaches"},
		Tags:        []string{"trust", "privacy"},
	},
	{
		ID:          "GOV-ID-02",
		Category:    models.CategoryGovernance,
		Subcategory: "Identity & Civil Infrastructure",
		Title:       "Proof-of-personhood / anti-bot credentials become normal",
		WindowStart: ym(2027, 0),
		WindowEnd:   ym(2035, 11),
		DependsOn:   []string{"GOV-ID-01"},
		Indicators:  []string{"platform enforcement", "black markets for IDs"},
		Tags:        []string{"trust", "relationships", "politics"},
	},
	{
		ID:          "GOV-AI-01",
		Category:    models.CategoryGovernance,
		Subcategory: "AI Regulation & State Use",
		Title:       "Mandatory model audits for frontier systems",
		WindowStart: ym(2026, 0),
		WindowEnd:   ym(2032, 11),
		Indicators:  []string{"compliance regimes", "incident reporting"},
		Tags:        []string{"safety", "governance"},
	},
	{
		ID:          "GOV-AI-02",
		Category:    models.CategoryGovernance,
		Subcategory: "AI Regulation & State Use",
		Title:       "Compute governance: licensing, reporting, export controls",
		WindowStart: ym(2026, 0),
		WindowEnd:   ym(2035, 11),
		Indicators:  []string{"chip controls", "cluster registration", "enforcement actions"},
		Tags:        []string{"politics", "governance"},
	},
	{
		ID:          "GOV-AI-03",
		Category:    models.CategoryGovernance,
		Subcategory: "AI Regulation & State Use",
		Title:       "Government becomes AI operator: benefits, taxes, services automated",
		WindowStart: ym(2027, 0),
		WindowEnd:   ym(2038, 11),
		DependsOn:   []string{"IND-AI-02"},
		Indicators:  []string{"procurement", "service KPIs", "public backlash"},
		Tags:        []string{"routines", "finance", "governance"},
	},
	{
		ID:          "GOV-LAW-01",
		Category:    models.CategoryGovernance,
		Subcategory: "Law & Liability",
		Title:       "AI liability norms emerge (who pays when agents cause harm)",
		WindowStart: ym(2026, 0),
		WindowEnd:   ym(2032, 11),
		Indicators:  []string{"landmark cases", "insurance products"},
		Tags:        []string{"safety", "governance"},
	},
	{
		ID:          "GOV-LAW-02",
		Category:    models.CategoryGovernance,
		Subcategory: "Law & Liability",
		Title:       "Synthetic media law (consent, likeness, attribution)",
		WindowStart: ym(2026, 0),
		WindowEnd:   ym(2033, 11),
		Indicators:  []string{"enforcement", "takedown systems"},
		Tags:        []string{"trust", "relationships"},
	},
	{
		ID:          "GOV-LAW-03",
		Category:    models.CategoryGovernance,
		Subcategory: "Law & Liability",
		Title:       "Agent contracts recognized for limited domains",
		WindowStart: ym(2029, 0),
		WindowEnd:   ym(2038, 11),
		DependsOn:   []string{"GOV-LAW-01", "GOV-ID-02"},
		Indicators:  []string{"legal precedents", "contract templates", "enforcement"},
		Tags:        []string{"morning-planning", "work", "finance"},
	},
	{
		ID:          "GOV-W-01",
		Category:    models.CategoryGovernance,
		Subcategory: "Welfare & Stability",
		Title:       "Automation shock becomes central political issue",
		WindowStart: ym(2027, 0),
		WindowEnd:   ym(2035, 11),
		DependsOn:   []string{"ECO-AI-02"},
		Indicators:  []string{"unemployment/underemployment", "strikes", "populism"},
		Tags:        []string{"work", "safety", "governance"},
	},
	{
		ID:          "GOV-W-02",
		Category:    models.CategoryGovernance,
		Subcategory: "Welfare & Stability",
		Title:       "Redistribution mechanism chosen (UBI vs job guarantees)",
		WindowStart: ym(2028, 0),
		WindowEnd:   ym(2045, 11),
		DependsOn:   []string{"GOV-W-01", "ECO-F-03"},
		Indicators:  []string{"policy adoption", "funding mechanisms", "outcomes"},
		Tags:        []string{"income-model", "routines", "family"},
	},
	{
		ID:          "GOV-S-01",
		Category:    models.CategoryGovernance,
		Subcategory: "Surveillance & Security",
		Title:       "Surveillance expands via AI (cameras, finance, comms)",
		WindowStart: ym(2026, 0),
		WindowEnd:   ym(2045, 11),
		Indicators:  []string{"procurement", "lawful access debates"},
		Tags:        []string{"privacy", "safety"},
	},
	{
		ID:          "GOV-S-02",
		Category:    models.CategoryGovernance,
		Subcategory: "Surveillance & Security",
		Title:       "Cybersecurity becomes partially autonomous",
		WindowStart: ym(2026, 0),
		WindowEnd:   ym(2034, 11),
		DependsOn:   []string{"IND-AI-02"},
		Indicators:  []string{"defense systems deployed", "offensive capabilities"},
		Tags:        []string{"safety", "politics"},
	},
	{
		ID:          "GEO-P-01",
		Category:    models.CategoryGeopolitics,
		Subcategory: "Great Power Competition",
		Title:       "AI capability becomes explicit national power metric",
		WindowStart: ym(2026, 0),
		WindowEnd:   ym(2032, 11),
		Indicators:  []string{"national compute programs", "industrial policy"},
		Tags:        []string{"governance", "safety"},
	},
	{
		ID:          "GEO-P-02",
		Category:    models.CategoryGeopolitics,
		Subcategory: "Great Power Competition",
		Title:       "Compute blocs form (aligned supply chains)",
		WindowStart: ym(2027, 0),
		WindowEnd:   ym(2035, 11),
		DependsOn:   []string{"GEO-P-01"},
		Indicators:  []string{"alliance agreements", "export-control harmonization"},
		Tags:        []string{"governance", "politics"},
	},
	{
		ID:          "GEO-C-01",
		Category:    models.CategoryGeopolitics,
		Subcategory: "Conflict & Deterrence",
		Title:       "Drone/robot warfare diffusion accelerates",
		WindowStart: ym(2026, 0),
		WindowEnd:   ym(2035, 11),
		Indicators:  []string{"battlefield footage", "procurement", "treaty attempts"},
		Tags:        []string{"safety", "politics"},
	},
	{
		ID:          "GEO-C-02",
		Category:    models.CategoryGeopolitics,
		Subcategory: "Conflict & Deterrence",
		Title:       "AI-accelerated cyber conflict becomes chronic",
		WindowStart: ym(2026, 0),
		WindowEnd:   ym(2045, 11),
		DependsOn:   []string{"GOV-S-02"},
		Indicators:  []string{"incident frequency", "attribution challenges"},
		Tags:        []string{"safety", "politics"},
	},
	{
		ID:          "GEO-C-03",
		Category:    models.CategoryGeopolitics,
		Subcategory: "Conflict & Deterrence",
		Title:       "AI incident becomes geopolitical crisis class",
		WindowStart: ym(2026, 0),
		WindowEnd:   ym(2035, 11),
		Indicators:  []string{"emergency summits", "hotline creation"},
		Tags:        []string{"trust", "safety", "governance"},
	},
	{
		ID:          "GEO-CD-01",
		Category:    models.CategoryGeopolitics,
		Subcategory: "Coordination & Controls",
		Title:       "Partial frontier AI treaties (testing, reporting)",
		WindowStart: ym(2028, 0),
		WindowEnd:   ym(2040, 11),
		DependsOn:   []string{"GEO-C-03", "GOV-AI-01"},
		Indicators:  []string{"verification schemes", "signatories", "compliance"},
		Tags:        []string{"governance", "safety", "politics"},
	},
	{
		ID:          "GEO-CL-01",
		Category:    models.CategoryGeopolitics,
		Subcategory: "Resources & Migration",
		Title:       "Climate disasters reshape geopolitics",
		WindowStart: ym(2026, 0),
		WindowEnd:   ym(2045, 11),
		Indicators:  []string{"commodity spikes", "migration", "failed infrastructure"},
		Tags:        []string{"meals", "safety", "governance"},
	},
	{
		ID:          "GEO-S-01",
		Category:    models.CategoryGeopolitics,
		Subcategory: "Space as Strategic Domain",
		Title:       "Space infrastructure grows (mega-constellations)",
		WindowStart: ym(2026, 0),
		WindowEnd:   ym(2035, 11),
		Indicators:  []string{"launches", "debris events", "military doctrines"},
		Tags:        []string{"governance", "politics"},
	},
	{
		ID:          "GEO-S-02",
		Category:    models.CategoryGeopolitics,
		Subcategory: "Space as Strategic Domain",
		Title:       "Space security regime: debris enforcement / anti-sat norms",
		WindowStart: ym(2030, 0),
		WindowEnd:   ym(2045, 11),
		Indicators:  []string{"treaties", "enforcement mechanisms"},
		Tags:        []string{"safety", "politics"},
	},
}
