package engine

import (
	"fmt"

	"ascend/internal/domain"
)

// BuildPlan assembles the day/week/month protocol from an analysis. Pure
// templating: every field is interpolated from dimension names and score
// bands, nothing new is computed here.
func (e *Engine) BuildPlan(analysis domain.CompositeAnalysis) domain.Protocol {
	opportunity := analysis.BiggestOpportunity.Label()
	strongest := analysis.StrongestDimension.Label()

	return domain.Protocol{
		Daily: domain.DailyProtocol{
			Morning: domain.ProtocolBlock{
				Title: "Morning Foundation",
				Activities: []domain.ProtocolActivity{
					{Category: "stillness", Description: "10 minutes of meditation or breathwork before any screen"},
					{Category: "movement", Description: "20 minutes of movement: strength, mobility or a brisk walk"},
					{Category: "intention", Description: fmt.Sprintf("Write the one action that moves %s forward today", opportunity)},
				},
			},
			Midday: domain.ProtocolBlock{
				Title: "Midday Momentum",
				Activities: []domain.ProtocolActivity{
					{Category: "deep work", Description: "One protected 90-minute block on your most important work"},
					{Category: "fuel", Description: "A whole-food meal and a full glass of water away from your desk"},
					{Category: "reset", Description: "A 5-minute walk or breathing reset between work blocks"},
				},
			},
			Evening: domain.ProtocolBlock{
				Title: "Evening Integration",
				Activities: []domain.ProtocolActivity{
					{Category: "connection", Description: "Undistracted time with the people who matter to you"},
					{Category: "review", Description: fmt.Sprintf("Two lines of journaling on today's progress in %s", opportunity)},
					{Category: "wind-down", Description: "Screens off an hour before bed; let sleep fund tomorrow"},
				},
			},
		},
		WeeklyThemes: weeklyThemes(),
		MonthlyGoals: domain.MonthlyGoals{
			PrimaryFocus:   fmt.Sprintf("Raise %s by one full point this month", opportunity),
			SecondaryFocus: fmt.Sprintf("Keep %s strong while you rebalance", strongest),
			Milestones: []string{
				fmt.Sprintf("Week 1: establish the daily ritual that serves %s", opportunity),
				"Week 2: hit every daily checkpoint at least five days out of seven",
				fmt.Sprintf("Week 3: add one stretch action in %s", opportunity),
				"Week 4: retake the assessment and compare dimension scores",
			},
		},
		Checkpoints: domain.CheckpointSchedule{
			Daily:     "Evening: did the three protocol blocks happen today?",
			Weekly:    "Sunday review: score the week 1-10 per focus dimension and adjust one thing",
			Monthly:   "Retake the assessment and log the new ascension score",
			Quarterly: "Full life audit: re-rank dimensions and reset the focus list",
		},
	}
}

// weeklyThemes is the fixed Monday..Sunday focus rotation. The seven days
// map onto the seven dimensions in catalog order.
func weeklyThemes() []domain.WeeklyTheme {
	days := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	themes := []string{
		"Power Start: train the body that carries the week",
		"Deep Focus: one hard thing, no interruptions",
		"Inner Work: name what you feel before it names you",
		"Alignment: reconnect action to meaning",
		"Connection: invest in one relationship deliberately",
		"Builder's Day: advance the mission and the craft",
		"Stewardship: review resources, plan the week ahead",
	}
	dims := domain.AllDimensions()

	out := make([]domain.WeeklyTheme, len(days))
	for i, day := range days {
		out[i] = domain.WeeklyTheme{Day: day, Theme: themes[i], Focus: dims[i]}
	}
	return out
}
