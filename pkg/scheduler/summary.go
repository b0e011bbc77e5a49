package scheduler

import "github.com/arnavshah/rotation-scheduler/pkg/models"

// Shift lengths in hours. The night slot is always Emergency and counts zero.
const (
	MorningHours   = 8
	AfternoonHours = 4
)

// Summarize totals working hours and shift counts per roster agent.
// It sums whatever the schedule states and does not enforce slot exclusivity.
func Summarize(roster models.Roster, schedule models.Schedule) models.Summary {
	agents := roster.Agents()
	rows := make(models.Summary, len(agents))
	index := make(map[models.Agent]int, len(agents))
	for i, a := range agents {
		rows[i] = models.SummaryRow{Agent: a}
		index[a] = i
	}

	for _, day := range schedule {
		if day.IsSaturday() {
			for i := range rows {
				rows[i].OffDays++
			}
			continue
		}

		for _, a := range day.Morning {
			if i, ok := index[a]; ok {
				rows[i].WorkingHours += MorningHours
				rows[i].EightHourShifts++
			}
		}

		if i, ok := index[models.Agent(day.Afternoon)]; ok {
			rows[i].WorkingHours += AfternoonHours
			rows[i].FourHourShifts++
		}

		for _, a := range day.Off {
			if i, ok := index[a]; ok {
				rows[i].OffDays++
			}
		}
	}
	return rows
}
