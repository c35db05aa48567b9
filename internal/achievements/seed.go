package achievements

// seedEntries is the bundled catalog: 16 achievements across five
// categories, bronze through platinum.
var seedEntries = []Achievement{
	// Study time
	{
		ID: "first-steps", Name: "First Steps", Category: "study",
		Description: "Log your first 5 hours of study",
		Tier:        TierBronze, XPReward: 50,
		Requirement: Requirement{Type: ReqStudyHours, Target: 5},
	},
	{
		ID: "deep-focus", Name: "Deep Focus", Category: "study",
		Description: "Reach 25 total study hours",
		Tier:        TierSilver, XPReward: 150,
		Requirement: Requirement{Type: ReqStudyHours, Target: 25},
	},
	{
		ID: "scholar", Name: "Scholar", Category: "study",
		Description: "Reach 100 total study hours",
		Tier:        TierGold, XPReward: 500,
		Requirement: Requirement{Type: ReqStudyHours, Target: 100},
	},
	{
		ID: "iron-will", Name: "Iron Will", Category: "study",
		Description: "Reach 250 total study hours",
		Tier:        TierPlatinum, XPReward: 1200,
		Requirement: Requirement{Type: ReqStudyHours, Target: 250},
	},

	// Streaks
	{
		ID: "warming-up", Name: "Warming Up", Category: "streak",
		Description: "Study 3 days in a row",
		Tier:        TierBronze, XPReward: 40,
		Requirement: Requirement{Type: ReqStudyStreak, Target: 3},
	},
	{
		ID: "week-strong", Name: "Week Strong", Category: "streak",
		Description: "Study 7 days in a row",
		Tier:        TierSilver, XPReward: 120,
		Requirement: Requirement{Type: ReqStudyStreak, Target: 7},
	},
	{
		ID: "unstoppable", Name: "Unstoppable", Category: "streak",
		Description: "Study 30 days in a row",
		Tier:        TierGold, XPReward: 600,
		Requirement: Requirement{Type: ReqStudyStreak, Target: 30},
	},
	{
		ID: "centurion", Name: "Centurion", Category: "streak",
		Description: "Study 100 days in a row",
		Tier:        TierPlatinum, XPReward: 2000,
		Requirement: Requirement{Type: ReqStudyStreak, Target: 100},
	},

	// Practice tests
	{
		ID: "test-drive", Name: "Test Drive", Category: "tests",
		Description: "Complete your first practice test",
		Tier:        TierBronze, XPReward: 60,
		Requirement: Requirement{Type: ReqPracticeTests, Target: 1},
	},
	{
		ID: "test-veteran", Name: "Test Veteran", Category: "tests",
		Description: "Complete 10 practice tests",
		Tier:        TierSilver, XPReward: 250,
		Requirement: Requirement{Type: ReqPracticeTests, Target: 10},
	},
	{
		ID: "test-machine", Name: "Test Machine", Category: "tests",
		Description: "Complete 25 practice tests",
		Tier:        TierGold, XPReward: 700,
		Requirement: Requirement{Type: ReqPracticeTests, Target: 25},
	},

	// Score improvement
	{
		ID: "on-the-rise", Name: "On the Rise", Category: "improvement",
		Description: "Improve your practice score by 50 points",
		Tier:        TierSilver, XPReward: 200,
		Requirement: Requirement{Type: ReqScoreImprovement, Target: 50},
	},
	{
		ID: "breakthrough", Name: "Breakthrough", Category: "improvement",
		Description: "Improve your practice score by 150 points",
		Tier:        TierGold, XPReward: 650,
		Requirement: Requirement{Type: ReqScoreImprovement, Target: 150},
	},

	// Social
	{
		ID: "study-buddy", Name: "Study Buddy", Category: "social",
		Description: "Join 5 group activities",
		Tier:        TierBronze, XPReward: 50,
		Requirement: Requirement{Type: ReqSocialActivity, Target: 5},
	},

	// Milestones
	{
		ID: "early-bird", Name: "Early Bird", Category: "milestone",
		Description: "Complete 10 study sessions before 7am",
		Tier:        TierSilver, XPReward: 180,
		Requirement: Requirement{Type: ReqMilestone, Target: 10, CounterKey: "early_sessions"},
	},
	{
		ID: "night-owl", Name: "Night Owl", Category: "milestone",
		Description: "Complete 10 study sessions after 10pm",
		Tier:        TierSilver, XPReward: 180,
		Requirement: Requirement{Type: ReqMilestone, Target: 10, CounterKey: "late_sessions"},
	},
}

// SeedCatalog returns the bundled catalog. Panics only on a programming
// error in the seed data itself, caught by tests.
func SeedCatalog() *Catalog {
	c, err := NewCatalog(seedEntries)
	if err != nil {
		panic(err)
	}
	return c
}
