package predictions

import "rehoboam/internal/models"

// rawCatalog is the curated prediction dataset as authored. It is passed
// through Dedupe at package init; duplicate ids or content keys introduced by
// catalog edits are dropped silently, first occurrence wins.
var rawCatalog = []models.Prediction{
	{
		ID:          "edu-2026-01-ai-tutor-default",
		Domain:      models.DomainTech,
		Month:       0,
		Year:        2026,
		Probability: 0.78,
		Title:       "AI tutors become default scaffolding in affluent systems",
		Description: "1:1 AI coaching for practice, explanations, and study planning becomes the default baseline; teachers reallocate time toward motivation, class culture, and targeted interventions.",
		Impact:      models.ImpactHigh,
		Sources: []models.PredictionSource{
			{Name: "Reuters", URL: "https://www.reuters.com/world/asia-pacific/china-rely-artificial-intelligence-education-reform-bid-2025-04-17/", Confidence: 0.8},
			{Name: "UNESCO", URL: "https://www.unesco.org/en/digital-education/ai-future-learning", Confidence: 0.74},
		},
	},
	{
		ID:          "edu-2026-09-assessment-bifurcates",
		Domain:      models.DomainGovernance,
		Month:       8,
		Year:        2026,
		Probability: 0.7,
		Title:       "Assessment splits into AI-permitted and AI-restricted tracks",
		Description: "Systems formalize dual pathways: open-book, AI-assisted work that rewards synthesis and iteration, alongside proctored AI-restricted checkpoints for foundational skills and integrity.",
		Impact:      models.ImpactMedium,
		Sources: []models.PredictionSource{
			{Name: "UNESCO", URL: "https://www.unesco.org/en/digital-education/ai-future-learning", Confidence: 0.72},
		},
	},
	{
		ID:          "edu-2026-11-teacher-orchestration",
		Domain:      models.DomainSocial,
		Month:       10,
		Year:        2026,
		Probability: 0.74,
		Title:       "Teachers shift toward orchestration and pastoral roles",
		Description: "With AI covering first-draft explanations and routine feedback, teachers emphasize motivation, class culture, project guidance, and personalized interventions.",
		Impact:      models.ImpactMedium,
		Sources: []models.PredictionSource{
			{Name: "AI 2027", URL: "https://ai-2027.com/summary", Confidence: 0.68},
			{Name: "AI Futures Model", URL: "https://www.aifuturesmodel.com/about", Confidence: 0.66},
		},
	},
	{
		ID:          "edu-2029-02-mastery-maps",
		Domain:      models.DomainGovernance,
		Month:       1,
		Year:        2029,
		Probability: 0.69,
		Title:       "Curricula unbundle into mastery maps with individualized pacing",
		Description: "Course pacing guides give way to competency maps that unlock concepts as students demonstrate understanding, coordinated by AI tutors that manage sequencing at scale.",
		Impact:      models.ImpactMedium,
		Sources: []models.PredictionSource{
			{Name: "AI Futures Model", URL: "https://www.aifuturesmodel.com/about", Confidence: 0.67},
		},
	},
	{
		ID:          "edu-2030-06-immersive-learning-mainstream",
		Domain:      models.DomainTech,
		Month:       5,
		Year:        2030,
		Probability: 0.71,
		Title:       "VR and immersive learning become mainstream",
		Description: "Virtual and hybrid instruction expands beyond video conferencing into rich simulations and labs as consumer-grade VR/AR hardware becomes broadly accessible.",
		Impact:      models.ImpactHigh,
		Sources: []models.PredictionSource{
			{Name: "FutureTimeline", URL: "https://futuretimeline.net/21stcentury/2030.htm", Confidence: 0.73},
		},
	},
	{
		ID:          "edu-2031-04-dynamic-content-platforms",
		Domain:      models.DomainEconomic,
		Month:       3,
		Year:        2031,
		Probability: 0.66,
		Title:       "Dynamic content platforms replace static textbooks",
		Description: "Schools license adaptive platforms that generate local, level-appropriate materials and continuously refresh content instead of buying fixed textbooks.",
		Impact:      models.ImpactMedium,
		Sources: []models.PredictionSource{
			{Name: "FutureTimeline", URL: "https://futuretimeline.net/21stcentury/2030.htm", Confidence: 0.62},
		},
	},
	{
		ID:          "edu-2031-09-private-tutoring-disrupted",
		Domain:      models.DomainEconomic,
		Month:       8,
		Year:        2031,
		Probability: 0.68,
		Title:       "Private tutoring market is disrupted by AI baselines",
		Description: "Affordable AI tutoring substitutes most entry-level private tutoring, pushing human tutors to specialize in high-touch, premium niches.",
		Impact:      models.ImpactMedium,
		Sources: []models.PredictionSource{
			{Name: "AI Futures Model", URL: "https://www.aifuturesmodel.com/about", Confidence: 0.65},
		},
	},
	{
		ID:          "edu-2032-03-microcredentials-rise",
		Domain:      models.DomainGovernance,
		Month:       2,
		Year:        2032,
		Probability: 0.72,
		Title:       "Micro-credentials and verified skills eclipse many degrees",
		Description: "Stackable, tightly mapped credentials gain status as autonomous course-building systems enable rapid updates and clearer links to demonstrable skills.",
		Impact:      models.ImpactHigh,
		Sources: []models.PredictionSource{
			{Name: "LessWrong", URL: "https://www.lesswrong.com/posts/YABG5JmztGGPwNFq2/ai-futures-timelines-and-takeoff-model-dec-2025-update", Confidence: 0.74},
		},
	},
	{
		ID:          "edu-2033-07-continuous-verification",
		Domain:      models.DomainGovernance,
		Month:       6,
		Year:        2033,
		Probability: 0.7,
		Title:       "Continuous identity and provenance checks reshape assessment",
		Description: "Assessment relies more on lightweight identity verification, oral defenses, and practical tasks, reducing reliance on unproctored essays as AI capabilities grow.",
		Impact:      models.ImpactMedium,
		Sources: []models.PredictionSource{
			{Name: "AI Futures Model", URL: "https://www.aifuturesmodel.com/about", Confidence: 0.68},
		},
	},
	{
		ID:          "edu-2034-11-degree-decomposition",
		Domain:      models.DomainSocial,
		Month:       10,
		Year:        2034,
		Probability: 0.65,
		Title:       "Traditional degrees decompose into verified cores plus specializations",
		Description: "Universities restructure programs into verified foundational cores paired with stackable specializations tied to labor-market signals and rapid refresh cycles.",
		Impact:      models.ImpactMedium,
		Sources: []models.PredictionSource{
			{Name: "LessWrong", URL: "https://www.lesswrong.com/posts/YABG5JmztGGPwNFq2/ai-futures-timelines-and-takeoff-model-dec-2025-update", Confidence: 0.67},
		},
	},
	{
		ID:          "edu-2035-05-ambient-learning-layer",
		Domain:      models.DomainIndividual,
		Month:       4,
		Year:        2035,
		Probability: 0.69,
		Title:       "Ambient lifelong learning layers into daily tools",
		Description: "Workflows and consumer tools embed coaching, just-in-time explanations, and simulations so learning becomes a continual background activity across life.",
		Impact:      models.ImpactMedium,
		Sources: []models.PredictionSource{
			{Name: "FutureTimeline", URL: "https://futuretimeline.net/21stcentury/2030.htm", Confidence: 0.66},
		},
	},
	{
		ID:          "edu-2036-09-human-centered-schools",
		Domain:      models.DomainSocial,
		Month:       8,
		Year:        2036,
		Probability: 0.67,
		Title:       "Schools center community, leadership, and well-being over content",
		Description: "Education systems shift toward cultivating collaboration, mentorship, and civic norms while AI handles most instruction, reflecting education as social development and curation.",
		Impact:      models.ImpactHigh,
		Sources: []models.PredictionSource{
			{Name: "AI 2027", URL: "https://ai-2027.com/summary", Confidence: 0.64},
			{Name: "AI Futures Model", URL: "https://www.aifuturesmodel.com/about", Confidence: 0.62},
		},
	},
}
