package questions

const (
	defaultEventFormat = "{code} ({name})"
	defaultEventCode   = "{type}-{date}"
)

// Default returns the built-in mapping. It covers the two event series
// the directory started with and the Luma export columns they share.
func Default() *Config {
	return &Config{
		Columns: Columns{
			// Luma decorates question headers with emoji; strip the
			// known ones so the English text is what gets matched.
			Aliases: map[string]string{
				"🔗": "",
				"🧠": "",
				"💻": "",
				"🫶": "",
				"🚀": "",
				"🏆": "",
			},
			Name:   []string{"name", "full name"},
			Email:  []string{"email", "email address"},
			Phone:  []string{"phone_number", "phone number", "phone"},
			Status: []string{"approval_status", "approval status", "status"},
			LinkedIn: []string{
				"linkedin",
				"linkedin profile",
				"what is your linkedin profile?",
			},
			Ignore: []string{
				"api_id",
				"created_at",
				"checked_in_at",
				"ticket_type_id",
				"ticket_name",
				"amount",
				"currency",
				"coupon_code",
				"qr_code",
			},
		},
		Categories: []Category{
			{Name: "PROFESSIONAL", Priority: 1},
			{Name: "NEEDS", Priority: 2},
			{Name: "INTERESTS", Priority: 3},
			{Name: "GOALS", Priority: 4},
			{Name: "OUTREACH", Priority: 5},
		},
		Questions: map[string]Rule{
			"rsvp_role": {
				Patterns: []string{"describe you", "what do you do"},
				Category: "PROFESSIONAL",
				Prefix:   "ROLE",
				Split:    boolPtr(false),
			},
			"company": {
				Patterns: []string{"company", "where do you work"},
				Category: "PROFESSIONAL",
				Prefix:   "COMPANY",
			},
			"help_with": {
				Patterns: []string{"help you with", "help with"},
				Category: "NEEDS",
				Prefix:   "HELP WITH",
			},
			"interests": {
				Patterns: []string{"interest"},
				Category: "INTERESTS",
				Prefix:   "INTEREST",
			},
			"goals": {
				Patterns: []string{"hope to get", "looking to"},
				Category: "GOALS",
				Prefix:   "GOAL",
			},
			"master_plan": {
				Patterns: []string{"master plan"},
				Category: "GOALS",
				Prefix:   "PLAN",
			},
			"referral": {
				Patterns: []string{"hear about"},
				Category: "OUTREACH",
				Prefix:   "SOURCE",
			},
		},
		Events: []EventType{
			{
				Tag:         "WY",
				Name:        "Wine & Yoga",
				Identifiers: []string{"wine"},
				Questions: []string{
					"rsvp_role", "company", "help_with",
					"interests", "goals", "master_plan", "referral",
				},
			},
			{
				Tag:         "YS",
				Name:        "Yoga Social",
				Identifiers: []string{"yoga", "social"},
				Questions:   []string{"rsvp_role", "interests", "goals", "referral"},
			},
		},
		Filename: Filename{
			IgnoreWords: []string{"guests", "guest", "export", "list", "final", "copy"},
			DatePatterns: []DatePattern{
				{
					Pattern: `(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)\s+\d{2}\s+\d{4}`,
					Layout:  "Jan 02 2006",
				},
				{
					Pattern: `\d{2}-\d{2}-\d{4}`,
					Layout:  "01-02-2006",
				},
			},
		},
		Notes:  Notes{EventFormat: defaultEventFormat},
		Output: Output{EventCode: defaultEventCode},
	}
}

func boolPtr(v bool) *bool {
	return &v
}
