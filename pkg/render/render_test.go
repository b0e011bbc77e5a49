package render_test

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/arnavshah/rotation-scheduler/pkg/models"
	"github.com/arnavshah/rotation-scheduler/pkg/render"
	"github.com/arnavshah/rotation-scheduler/pkg/scheduler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func firstWeek(t *testing.T) (models.Schedule, models.Summary) {
	t.Helper()
	roster := models.DefaultRoster()
	schedule, err := scheduler.GenerateFromString(roster, "2024-01-01", 1)
	require.NoError(t, err)
	return schedule, scheduler.Summarize(roster, schedule)
}

func TestScheduleTable(t *testing.T) {
	schedule, _ := firstWeek(t)
	rows := render.ScheduleTable(schedule)
	require.Len(t, rows, 7)

	assert.Equal(t, models.ScheduleRow{
		Date:      "2024-01-01",
		Day:       "Monday",
		Morning:   "Djelloul, Nour, Abdennour",
		Afternoon: "Iheb",
		Night:     "Emergency",
		Off:       "",
	}, rows[0])

	assert.Equal(t, models.ScheduleRow{
		Date:      "2024-01-06",
		Day:       "Saturday",
		Morning:   "Emergency",
		Afternoon: "Emergency",
		Night:     "Emergency",
		Off:       "Djelloul, Nour, Abdennour, Iheb",
	}, rows[5])

	assert.Equal(t, "Abdennour, Iheb", rows[6].Off)
}

func TestSummaryTable_KeepsRosterOrder(t *testing.T) {
	_, summary := firstWeek(t)
	rows := render.SummaryTable(summary)

	names := make([]string, len(rows))
	for i, r := range rows {
		names[i] = r.Agent
	}
	assert.Equal(t, []string{"Djelloul", "Nour", "Abdennour", "Iheb"}, names)
	assert.Equal(t, 24, rows[3].WorkingHours)
}

func TestWriteScheduleCSV(t *testing.T) {
	schedule, _ := firstWeek(t)
	var buf bytes.Buffer
	require.NoError(t, render.WriteScheduleCSV(&buf, schedule))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 8)
	assert.Equal(t, render.ScheduleHeaders, records[0])
	assert.Equal(t, []string{"2024-01-05", "Friday", "Nour, Iheb", "Djelloul", "Emergency", "Abdennour"}, records[5])
}

func TestWriteSummaryCSV(t *testing.T) {
	_, summary := firstWeek(t)
	var buf bytes.Buffer
	require.NoError(t, render.WriteSummaryCSV(&buf, summary))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 5)
	assert.Equal(t, render.SummaryHeaders, records[0])
	assert.Equal(t, []string{"Abdennour", "32", "0", "4", "3"}, records[3])
}

func TestText(t *testing.T) {
	schedule, summary := firstWeek(t)
	out := render.Text(schedule, summary)

	for _, want := range []string{"Generated Shift Schedule", "Working Hours Summary", "Rules Applied", "2024-01-07", "Abdennour"} {
		assert.True(t, strings.Contains(out, want), "missing %q", want)
	}
}

func TestText_EmptySchedule(t *testing.T) {
	roster := models.DefaultRoster()
	out := render.Text(nil, scheduler.Summarize(roster, nil))
	assert.Contains(t, out, "Working hours")
}
