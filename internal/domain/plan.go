package domain

// Protocol is the day/week/month schedule derived from a CompositeAnalysis.
// Every field is templated from the analysis; the builder adds no new
// computation beyond string interpolation.
type Protocol struct {
	Daily       DailyProtocol      `json:"daily"`
	WeeklyThemes []WeeklyTheme     `json:"weekly_themes"` // Monday..Sunday
	MonthlyGoals MonthlyGoals      `json:"monthly_goals"`
	Checkpoints  CheckpointSchedule `json:"checkpoints"`
}

// DailyProtocol agrupa las actividades del dia en tres bloques fijos.
type DailyProtocol struct {
	Morning ProtocolBlock `json:"morning"`
	Midday  ProtocolBlock `json:"midday"`
	Evening ProtocolBlock `json:"evening"`
}

type ProtocolBlock struct {
	Title      string             `json:"title"`
	Activities []ProtocolActivity `json:"activities"`
}

type ProtocolActivity struct {
	Category    string `json:"category"`
	Description string `json:"description"`
}

// WeeklyTheme assigns one life-focus label to a weekday.
type WeeklyTheme struct {
	Day   string    `json:"day"`
	Theme string    `json:"theme"`
	Focus Dimension `json:"focus"`
}

type MonthlyGoals struct {
	PrimaryFocus   string   `json:"primary_focus"`
	SecondaryFocus string   `json:"secondary_focus"`
	Milestones     []string `json:"milestones"`
}

// CheckpointSchedule describes the four accountability tiers.
type CheckpointSchedule struct {
	Daily     string `json:"daily"`
	Weekly    string `json:"weekly"`
	Monthly   string `json:"monthly"`
	Quarterly string `json:"quarterly"`
}
