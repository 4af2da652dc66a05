package reports

import (
	"sort"
	"time"

	"github.com/mpetrov/fittrack/internal/sessions"
	"github.com/mpetrov/fittrack/internal/weights"
)

// topEntriesLimit caps ranked report sizes.
const topEntriesLimit = 20

type TrainingPopularity struct {
	TrainingID string `json:"trainingId"`
	Name       string `json:"name"`
	Count      int    `json:"count"`
}

// PopularTrainings groups sessions by training and ranks them by session
// count, descending, ties kept in first seen order, top 20 only. Sessions
// without a training id fall back to the session name, then to "unknown".
func PopularTrainings(records []sessions.TrainingSession) []TrainingPopularity {
	counts := map[string]*TrainingPopularity{}
	var order []string
	for _, s := range records {
		key := s.TrainingID
		if key == "" {
			key = s.Name
		}
		if key == "" {
			key = "unknown"
		}

		entry, ok := counts[key]
		if !ok {
			name := s.Name
			if name == "" {
				name = "Unknown"
			}
			entry = &TrainingPopularity{TrainingID: key, Name: name}
			counts[key] = entry
			order = append(order, key)
		}
		entry.Count++
	}

	ranked := make([]TrainingPopularity, 0, len(order))
	for _, key := range order {
		ranked = append(ranked, *counts[key])
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if len(ranked) > topEntriesLimit {
		ranked = ranked[:topEntriesLimit]
	}
	return ranked
}

type UserEntry struct {
	UserID  string `json:"userId"`
	Display string `json:"display"`
}

// UsersDirectory lists each distinct session owner once, in order of first
// appearance. Display prefers the createdBy label of the owner's first
// session, then the user id itself.
func UsersDirectory(records []sessions.TrainingSession) []UserEntry {
	seen := map[string]bool{}
	var directory []UserEntry
	for _, s := range records {
		uid := s.UserID
		if uid == "" {
			uid = "unknown"
		}
		if seen[uid] {
			continue
		}
		seen[uid] = true

		display := s.CreatedBy
		if display == "" {
			display = uid
		}
		directory = append(directory, UserEntry{UserID: uid, Display: display})
	}
	return directory
}

type UserProgress struct {
	Days           int        `json:"days"`
	SessionsCounts []int      `json:"sessionsCounts"`
	WeightsPerDay  []*float64 `json:"weightsPerDay"`
}

// ProgressForUser builds one user's per day session counts and weight curve
// for the month window. Weight entries on the same day follow last write
// wins, later timestamp first, then higher record id. Days without a weight
// report stay null in the JSON output.
func ProgressForUser(
	window MonthWindow,
	userSessions []sessions.TrainingSession,
	userWeights []weights.WeightRecord,
) *UserProgress {
	progress := &UserProgress{
		Days:           window.Days,
		SessionsCounts: make([]int, window.Days),
		WeightsPerDay:  make([]*float64, window.Days),
	}

	for _, s := range userSessions {
		ts, ok := s.EffectiveTime()
		if !ok {
			continue
		}
		day, ok := window.DayIndex(ts)
		if !ok {
			continue
		}
		progress.SessionsCounts[day-1]++
	}

	type winner struct {
		ts time.Time
		id int
	}
	winners := map[int]winner{}
	for _, wr := range userWeights {
		ts, ok := wr.EffectiveTime()
		if !ok {
			continue
		}
		day, ok := window.DayIndex(ts)
		if !ok {
			continue
		}

		prev, seen := winners[day]
		if seen {
			wins := ts.After(prev.ts) || (ts.Equal(prev.ts) && wr.ID > prev.id)
			if !wins {
				continue
			}
		}
		winners[day] = winner{ts: ts, id: wr.ID}
		weight := wr.Weight
		progress.WeightsPerDay[day-1] = &weight
	}

	return progress
}

type ActivityReport struct {
	Total       int            `json:"total"`
	UniqueUsers int            `json:"uniqueUsers"`
	AvgPerUser  float64        `json:"avgPerUser"`
	AvgPerDay   float64        `json:"avgPerDay"`
	PerDay      map[string]int `json:"perDay"`
}

// AverageActivity summarizes all sessions of the month window: totals,
// unique user count, per user and per day averages, and a YYYY-MM-DD
// breakdown. Sessions without a usable timestamp land in the "unknown"
// bucket but still count toward the totals.
func AverageActivity(window MonthWindow, records []sessions.TrainingSession) *ActivityReport {
	report := &ActivityReport{
		PerDay: map[string]int{},
	}

	userIDs := map[string]bool{}
	for _, s := range records {
		report.Total++

		uid := s.UserID
		if uid == "" {
			uid = "unknown"
		}
		userIDs[uid] = true

		key := "unknown"
		if ts, ok := s.EffectiveTime(); ok {
			key = window.DayKey(ts)
		}
		report.PerDay[key]++
	}

	report.UniqueUsers = len(userIDs)
	if report.UniqueUsers > 0 {
		report.AvgPerUser = float64(report.Total) / float64(report.UniqueUsers)
	}
	report.AvgPerDay = float64(report.Total) / float64(window.Days)

	return report
}

type UserRanking struct {
	UserID  string `json:"userId"`
	Display string `json:"display"`
	Count   int    `json:"count"`
}

// MonthlyRankings ranks users by session count, descending, ties kept in
// first seen order, top 20 only. Display prefers the first seen createdBy
// label, then the user id, then "anonymous".
func MonthlyRankings(records []sessions.TrainingSession) []UserRanking {
	counts := map[string]*UserRanking{}
	var order []string
	for _, s := range records {
		uid := s.UserID
		if uid == "" {
			uid = "unknown"
		}

		entry, ok := counts[uid]
		if !ok {
			display := s.CreatedBy
			if display == "" {
				display = s.UserID
			}
			if display == "" {
				display = "anonymous"
			}
			entry = &UserRanking{UserID: uid, Display: display}
			counts[uid] = entry
			order = append(order, uid)
		}
		entry.Count++
	}

	ranked := make([]UserRanking, 0, len(order))
	for _, uid := range order {
		ranked = append(ranked, *counts[uid])
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if len(ranked) > topEntriesLimit {
		ranked = ranked[:topEntriesLimit]
	}
	return ranked
}
