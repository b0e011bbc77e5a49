// Package render turns schedules and summaries into the two output tables,
// as structured rows, CSV or a terminal view.
package render

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arnavshah/rotation-scheduler/pkg/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const dateLayout = "2006-01-02"

// Column headers, shared by CSV and text output
var (
	ScheduleHeaders = []string{"Date", "Day", "9 AM - 5 PM", "5 PM - 9 PM", "9 PM - 1 AM", "OFF"}
	SummaryHeaders  = []string{"Agent", "Working hours", "4 hours/day", "8 hours/day", "OFF"}
)

// Rules is the footer printed under the text view
var Rules = []string{
	"9 PM - 1 AM is always Emergency (no working hours).",
	"Saturday is fully Emergency (OFF for all).",
	"Friday morning is fixed to the same two agents every week.",
	"Sunday morning alternates weekly between two agents.",
	"Monday to Thursday morning rotates 3 agents by week.",
	"The afternoon shift never goes to someone who worked the morning.",
	"9 AM - 5 PM = 8 hours, 5 PM - 9 PM = 4 hours, night = 0 hours.",
	"Agents not scheduled on a day are OFF.",
}

func join(list []models.Agent) string {
	parts := make([]string, len(list))
	for i, a := range list {
		parts[i] = string(a)
	}
	return strings.Join(parts, ", ")
}

// ScheduleRow renders one day as table cells
func ScheduleRow(day models.ShiftDay) models.ScheduleRow {
	morning := join(day.Morning)
	if day.IsSaturday() {
		morning = models.Emergency
	}
	return models.ScheduleRow{
		Date:      day.Date.Format(dateLayout),
		Day:       day.DayName,
		Morning:   morning,
		Afternoon: day.Afternoon,
		Night:     day.Night,
		Off:       join(day.Off),
	}
}

// ScheduleTable renders every day of the schedule
func ScheduleTable(schedule models.Schedule) []models.ScheduleRow {
	rows := make([]models.ScheduleRow, len(schedule))
	for i, day := range schedule {
		rows[i] = ScheduleRow(day)
	}
	return rows
}

// SummaryTable renders the summary in roster order
func SummaryTable(summary models.Summary) []models.SummaryTableRow {
	rows := make([]models.SummaryTableRow, len(summary))
	for i, s := range summary {
		rows[i] = models.SummaryTableRow{
			Agent:           string(s.Agent),
			WorkingHours:    s.WorkingHours,
			FourHourShifts:  s.FourHourShifts,
			EightHourShifts: s.EightHourShifts,
			OffDays:         s.OffDays,
		}
	}
	return rows
}

func scheduleRecords(schedule models.Schedule) [][]string {
	records := make([][]string, 0, len(schedule))
	for _, r := range ScheduleTable(schedule) {
		records = append(records, []string{r.Date, r.Day, r.Morning, r.Afternoon, r.Night, r.Off})
	}
	return records
}

func summaryRecords(summary models.Summary) [][]string {
	records := make([][]string, 0, len(summary))
	for _, r := range SummaryTable(summary) {
		records = append(records, []string{
			r.Agent,
			strconv.Itoa(r.WorkingHours),
			strconv.Itoa(r.FourHourShifts),
			strconv.Itoa(r.EightHourShifts),
			strconv.Itoa(r.OffDays),
		})
	}
	return records
}

func writeCSV(w io.Writer, headers []string, records [][]string) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(headers); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	if err := writer.WriteAll(records); err != nil {
		return fmt.Errorf("writing csv rows: %w", err)
	}
	return nil
}

// WriteScheduleCSV writes the schedule table with a header row
func WriteScheduleCSV(w io.Writer, schedule models.Schedule) error {
	return writeCSV(w, ScheduleHeaders, scheduleRecords(schedule))
}

// WriteSummaryCSV writes the summary table with a header row
func WriteSummaryCSV(w io.Writer, summary models.Summary) error {
	return writeCSV(w, SummaryHeaders, summaryRecords(summary))
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).MarginTop(1)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(lipgloss.Color("12"))
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	mutedStyle  = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("8"))
	ruleStyle   = lipgloss.NewStyle().Faint(true)
)

func newTable(headers []string, records [][]string, muted func(row int) bool) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(records...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case muted != nil && muted(row):
				return mutedStyle
			default:
				return cellStyle
			}
		})
}

// Text renders both tables and the rules footer for a terminal
func Text(schedule models.Schedule, summary models.Summary) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Generated Shift Schedule"))
	b.WriteString("\n")
	b.WriteString(newTable(ScheduleHeaders, scheduleRecords(schedule), func(row int) bool {
		return row >= 0 && row < len(schedule) && schedule[row].IsSaturday()
	}).String())
	b.WriteString("\n")

	b.WriteString(titleStyle.Render("Working Hours Summary"))
	b.WriteString("\n")
	b.WriteString(newTable(SummaryHeaders, summaryRecords(summary), nil).String())
	b.WriteString("\n")

	b.WriteString(titleStyle.Render("Rules Applied"))
	b.WriteString("\n")
	for _, rule := range Rules {
		b.WriteString(ruleStyle.Render("- " + rule))
		b.WriteString("\n")
	}
	return b.String()
}
