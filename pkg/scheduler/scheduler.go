package scheduler

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/arnavshah/rotation-scheduler/pkg/models"
)

// DateLayout is the ISO 8601 calendar date format used for input and output
const DateLayout = "2006-01-02"

const daysPerWeek = 7

// MaxWeeks caps a single request at roughly 300 years of schedule
const MaxWeeks = 52 * 300

// ValidateWeeks rejects week counts outside 0..MaxWeeks
func ValidateWeeks(numWeeks int) error {
	switch {
	case numWeeks < 0:
		return &InputError{Field: "num_weeks", Value: strconv.Itoa(numWeeks), Err: errors.New("must not be negative")}
	case numWeeks > MaxWeeks:
		return &InputError{Field: "num_weeks", Value: strconv.Itoa(numWeeks), Err: fmt.Errorf("must not exceed %d", MaxWeeks)}
	}
	return nil
}

// ParseStartDate parses a YYYY-MM-DD date at UTC midnight
func ParseStartDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, &InputError{Field: "start_date", Value: value, Err: err}
	}
	return t, nil
}

// WeeksUntilYearEnd returns the number of 7-day blocks needed to reach
// December 31 of start's year, rounding up.
func WeeksUntilYearEnd(start time.Time) int {
	start = dateOnly(start)
	yearEnd := time.Date(start.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)
	days := int(yearEnd.Sub(start).Hours()/24) + 1
	return (days + daysPerWeek - 1) / daysPerWeek
}

// Generate builds the shift assignments for numWeeks blocks of seven days
// beginning at start. Weeks are counted from start, not from calendar weeks.
func Generate(roster models.Roster, start time.Time, numWeeks int) (models.Schedule, error) {
	if err := ValidateWeeks(numWeeks); err != nil {
		return nil, err
	}
	if roster.Len() != models.RosterSize {
		return nil, fmt.Errorf("scheduler: roster has %d agents, need %d", roster.Len(), models.RosterSize)
	}

	start = dateOnly(start)
	schedule := make(models.Schedule, 0, numWeeks*daysPerWeek)
	for week := 0; week < numWeeks; week++ {
		for offset := 0; offset < daysPerWeek; offset++ {
			date := start.AddDate(0, 0, week*daysPerWeek+offset)
			schedule = append(schedule, buildDay(roster, date, week))
		}
	}
	return schedule, nil
}

// GenerateFromString parses startDate and calls Generate
func GenerateFromString(roster models.Roster, startDate string, numWeeks int) (models.Schedule, error) {
	start, err := ParseStartDate(startDate)
	if err != nil {
		return nil, err
	}
	return Generate(roster, start, numWeeks)
}

func buildDay(roster models.Roster, date time.Time, week int) models.ShiftDay {
	day := models.ShiftDay{
		Date:    date,
		DayName: date.Weekday().String(),
		Night:   models.Emergency,
	}

	var morning []models.Agent
	switch date.Weekday() {
	case time.Saturday:
		day.Morning = []models.Agent{}
		day.Afternoon = models.Emergency
		day.Off = roster.Agents()
		return day
	case time.Friday:
		morning = FridayMorning(roster)
	case time.Sunday:
		morning = []models.Agent{SundayMorning(roster, week)}
	default:
		morning = WeekdayMorning(roster, week)
	}

	day.Morning = morning
	day.Afternoon = SelectAfternoon(roster, morning, week)

	working := make(map[models.Agent]bool, len(morning)+1)
	for _, a := range morning {
		working[a] = true
	}
	if roster.Contains(day.Afternoon) {
		working[models.Agent(day.Afternoon)] = true
	}
	day.Off = []models.Agent{}
	for _, a := range roster.Agents() {
		if !working[a] {
			day.Off = append(day.Off, a)
		}
	}
	return day
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
