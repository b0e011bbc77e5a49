package scheduler

import "github.com/arnavshah/rotation-scheduler/pkg/models"

// Roster positions used by the fixed weekday rules
const (
	fridayFirst        = 1
	fridaySecond       = 3
	sundayEven         = 0
	sundayOdd          = 2
	weekdayMorningSize = 3
)

// Rotate shifts list left by offset (mod len) and returns the first count entries.
// The input is never modified.
func Rotate(list []models.Agent, offset, count int) []models.Agent {
	n := len(list)
	if n == 0 || count <= 0 {
		return []models.Agent{}
	}
	if count > n {
		count = n
	}
	k := ((offset % n) + n) % n
	out := make([]models.Agent, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, list[(k+i)%n])
	}
	return out
}

// SelectAfternoon picks the afternoon agent from the roster members not
// working the morning, rotated by the week index. Returns models.None when
// every agent is already on the morning shift.
func SelectAfternoon(roster models.Roster, morning []models.Agent, week int) string {
	busy := make(map[models.Agent]bool, len(morning))
	for _, a := range morning {
		busy[a] = true
	}
	var available []models.Agent
	for _, a := range roster.Agents() {
		if !busy[a] {
			available = append(available, a)
		}
	}
	picked := Rotate(available, week, 1)
	if len(picked) == 0 {
		return models.None
	}
	return string(picked[0])
}

// SundayMorning alternates the Sunday morning agent by week parity
func SundayMorning(roster models.Roster, week int) models.Agent {
	if week%2 == 0 {
		return roster.At(sundayEven)
	}
	return roster.At(sundayOdd)
}

// FridayMorning is the fixed Friday pair, independent of the week
func FridayMorning(roster models.Roster) []models.Agent {
	return []models.Agent{roster.At(fridayFirst), roster.At(fridaySecond)}
}

// WeekdayMorning is the three-person Monday to Thursday rotation
func WeekdayMorning(roster models.Roster, week int) []models.Agent {
	return Rotate(roster.Agents(), week, weekdayMorningSize)
}
