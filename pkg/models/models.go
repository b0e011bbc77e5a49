package models

import (
	"fmt"
	"strings"
	"time"
)

// Slot sentinels for shifts not staffed by a roster agent
const (
	Emergency = "Emergency"
	None      = "None"
)

// RosterSize is the number of agents the rotation rules are written for
const RosterSize = 4

var defaultAgents = [RosterSize]Agent{"Djelloul", "Nour", "Abdennour", "Iheb"}

// DefaultAgents returns a fresh copy of the team roster in rotation order
func DefaultAgents() []Agent {
	out := defaultAgents
	return out[:]
}

// Agent identifies a team member eligible for shifts
type Agent string

// Roster is the fixed, ordered list of agents. Order defines rotation order.
type Roster struct {
	agents []Agent
}

// NewRoster validates the names and returns an immutable roster
func NewRoster(agents []Agent) (Roster, error) {
	if len(agents) != RosterSize {
		return Roster{}, fmt.Errorf("roster must have exactly %d agents, got %d", RosterSize, len(agents))
	}
	seen := make(map[Agent]bool, len(agents))
	for _, a := range agents {
		if strings.TrimSpace(string(a)) == "" {
			return Roster{}, fmt.Errorf("roster contains an empty agent name")
		}
		if a == Emergency || a == None {
			return Roster{}, fmt.Errorf("agent name %q is reserved", a)
		}
		if seen[a] {
			return Roster{}, fmt.Errorf("duplicate agent in roster: %s", a)
		}
		seen[a] = true
	}
	return Roster{agents: append([]Agent(nil), agents...)}, nil
}

// DefaultRoster returns the built-in team roster
func DefaultRoster() Roster {
	r, err := NewRoster(DefaultAgents())
	if err != nil {
		panic(err)
	}
	return r
}

// Agents returns a copy of the roster in rotation order
func (r Roster) Agents() []Agent {
	return append([]Agent(nil), r.agents...)
}

// At returns the agent at position i
func (r Roster) At(i int) Agent {
	return r.agents[i]
}

// Len returns the roster size
func (r Roster) Len() int {
	return len(r.agents)
}

// Contains reports whether name is a roster agent
func (r Roster) Contains(name string) bool {
	for _, a := range r.agents {
		if string(a) == name {
			return true
		}
	}
	return false
}

// ShiftDay is the assignment record for one calendar date
type ShiftDay struct {
	Date      time.Time `json:"date"`
	DayName   string    `json:"day_name"`
	Morning   []Agent   `json:"morning"`   // empty on Saturday, rendered as Emergency
	Afternoon string    `json:"afternoon"` // agent name, None or Emergency
	Night     string    `json:"night"`
	Off       []Agent   `json:"off"`
}

// IsSaturday reports whether the day is covered by the Saturday emergency rule.
// DayName is authoritative, so hand-built days are classified by their label.
func (d ShiftDay) IsSaturday() bool {
	return d.DayName == time.Saturday.String()
}

// Schedule is a chronological sequence of shift days
type Schedule []ShiftDay

// SummaryRow holds per-agent totals for a schedule
type SummaryRow struct {
	Agent           Agent `json:"agent"`
	WorkingHours    int   `json:"working_hours"`
	FourHourShifts  int   `json:"four_hour_shifts"`
	EightHourShifts int   `json:"eight_hour_shifts"`
	OffDays         int   `json:"off_days"`
}

// Summary is one row per roster agent, in roster order
type Summary []SummaryRow

// ScheduleRow is the rendered table form of a ShiftDay
type ScheduleRow struct {
	Date      string `json:"Date"`
	Day       string `json:"Day"`
	Morning   string `json:"9 AM - 5 PM"`
	Afternoon string `json:"5 PM - 9 PM"`
	Night     string `json:"9 PM - 1 AM"`
	Off       string `json:"OFF"`
}

// SummaryTableRow is the rendered table form of a SummaryRow
type SummaryTableRow struct {
	Agent           string `json:"Agent"`
	WorkingHours    int    `json:"Working hours"`
	FourHourShifts  int    `json:"4 hours/day"`
	EightHourShifts int    `json:"8 hours/day"`
	OffDays         int    `json:"OFF"`
}

// ScheduleInput is the data structure for the scheduling endpoint.
// NumWeeks is optional; when omitted the schedule runs to December 31.
type ScheduleInput struct {
	StartDate string `json:"start_date" binding:"required"`
	NumWeeks  *int   `json:"num_weeks"`
}

// ScheduleResponse is the data structure for the scheduling result
type ScheduleResponse struct {
	StartDate string            `json:"start_date"`
	NumWeeks  int               `json:"num_weeks"`
	Schedule  []ScheduleRow     `json:"schedule"`
	Summary   []SummaryTableRow `json:"summary"`
}
