package templates

// builtinTemplates is the shipped catalog. IDs containing "salary" receive a
// selection boost when the current offer trails the session target.
var builtinTemplates = []ResponseTemplate{
	{
		ID:       "collab_salary_market",
		Strategy: StrategyCollaborative,
		Tone:     ToneProfessional,
		Text: "Thank you for the offer from {company_name}. I'm genuinely excited about the role. " +
			"Based on my {years_experience} years in {industry} and current market data, " +
			"I was expecting something closer to {target_salary}. Could we work together to close the {salary_gap} gap?",
		Slots:         []string{"company_name", "years_experience", "industry", "target_salary", "salary_gap"},
		Effectiveness: 0.8,
	},
	{
		ID:       "collab_mutual_value",
		Strategy: StrategyCollaborative,
		Tone:     ToneFriendly,
		Text: "I appreciate the opportunity at {company_name}. My background in {primary_skill} means I can {future_value}. " +
			"I'd love to find a package that reflects that shared upside.",
		Slots:         []string{"company_name", "primary_skill", "future_value"},
		Effectiveness: 0.7,
	},
	{
		ID:       "collab_achievement",
		Strategy: StrategyCollaborative,
		Tone:     ToneProfessional,
		Text: "I'm excited about joining {company_name}. In my last role I {key_achievement}, and I'm confident I can " +
			"deliver the same impact here. Is there flexibility in the compensation to reflect that track record?",
		Slots:         []string{"company_name", "key_achievement"},
		Effectiveness: 0.75,
	},
	{
		ID:       "assertive_salary_counter",
		Strategy: StrategyAssertive,
		Tone:     ToneConfident,
		Text: "I want to be direct: {target_salary} is the number that works for me. " +
			"With {years_experience} years of {primary_skill} experience and a record of {quantified_impact}, " +
			"I believe that's a fair ask for this role at {company_name}.",
		Slots:         []string{"target_salary", "years_experience", "primary_skill", "quantified_impact", "company_name"},
		Effectiveness: 0.85,
	},
	{
		ID:       "assertive_competing",
		Strategy: StrategyAssertive,
		Tone:     ToneFirm,
		Text: "I should mention I'm in late-stage conversations with {competitor_company}. " +
			"{company_name} is my first choice, but the current offer leaves a {salary_gap} gap against the market. " +
			"What can we do to close it?",
		Slots:         []string{"competitor_company", "company_name", "salary_gap"},
		Effectiveness: 0.8,
	},
	{
		ID:       "assertive_value",
		Strategy: StrategyAssertive,
		Tone:     ToneConfident,
		Text: "In my current position I {key_achievement}. I bring that same drive to {company_name}, " +
			"and I expect the compensation to match the value I deliver.",
		Slots:         []string{"key_achievement", "company_name"},
		Effectiveness: 0.7,
	},
	{
		ID:       "analytical_salary_data",
		Strategy: StrategyAnalytical,
		Tone:     ToneProfessional,
		Text: "Looking at compensation data for {industry} roles at this level, the market median sits near {target_salary}. " +
			"The current offer leaves a {salary_gap} difference. Given my {years_experience} years of experience, " +
			"aligning with the market seems reasonable for {company_name}.",
		Slots:         []string{"industry", "target_salary", "salary_gap", "years_experience", "company_name"},
		Effectiveness: 0.85,
	},
	{
		ID:       "analytical_roi",
		Strategy: StrategyAnalytical,
		Tone:     ToneProfessional,
		Text: "Let me frame this in terms of return: my work on {primary_skill} has {quantified_impact}. " +
			"At {company_name} I expect to {future_value}, which justifies the adjustment I'm proposing.",
		Slots:         []string{"primary_skill", "quantified_impact", "company_name", "future_value"},
		Effectiveness: 0.75,
	},
	{
		ID:       "analytical_benchmark",
		Strategy: StrategyAnalytical,
		Tone:     ToneConfident,
		Text: "Benchmarking against comparable offers, including one from {competitor_company}, " +
			"the package at {company_name} trails the market. I'd like to review the base salary component first.",
		Slots:         []string{"competitor_company", "company_name"},
		Effectiveness: 0.7,
	},
	{
		ID:       "diplomatic_salary_bridge",
		Strategy: StrategyDiplomatic,
		Tone:     ToneFriendly,
		Text: "I'm very grateful for the offer from {company_name}, and I want to make this work. " +
			"The base salary is the one area where we're apart - about {salary_gap} from my target of {target_salary}. " +
			"Is there room to meet somewhere in the middle?",
		Slots:         []string{"company_name", "salary_gap", "target_salary"},
		Effectiveness: 0.75,
	},
	{
		ID:       "diplomatic_growth",
		Strategy: StrategyDiplomatic,
		Tone:     ToneFriendly,
		Text: "Joining {company_name} is genuinely appealing - especially the chance to {future_value}. " +
			"If the base can't move, could we discuss the signing bonus or equity instead?",
		Slots:         []string{"company_name", "future_value"},
		Effectiveness: 0.65,
	},
	{
		ID:       "diplomatic_experience",
		Strategy: StrategyDiplomatic,
		Tone:     ToneProfessional,
		Text: "With {years_experience} years in {industry}, I've learned that the best outcomes come from honest conversations. " +
			"In that spirit: the offer is close, but not quite where I hoped. How much flexibility do you have?",
		Slots:         []string{"years_experience", "industry"},
		Effectiveness: 0.7,
	},
}
