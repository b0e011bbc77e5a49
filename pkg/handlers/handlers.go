package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/arnavshah/rotation-scheduler/pkg/database"
	"github.com/arnavshah/rotation-scheduler/pkg/metrics"
	"github.com/arnavshah/rotation-scheduler/pkg/models"
	"github.com/arnavshah/rotation-scheduler/pkg/render"
	"github.com/arnavshah/rotation-scheduler/pkg/scheduler"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Version is reported by the index route
const Version = "3.0.0"

// Handler contains dependencies for the route handlers.
// DB is optional; usage is only recorded when it is set.
type Handler struct {
	DB     *gorm.DB
	Roster models.Roster
	Logger *zap.Logger
}

type generation struct {
	start    time.Time
	numWeeks int
	schedule models.Schedule
	summary  models.Summary
}

func (h *Handler) logger() *zap.Logger {
	if h.Logger == nil {
		return zap.NewNop()
	}
	return h.Logger
}

// resolve parses the input and works out the week count without generating
func (h *Handler) resolve(input models.ScheduleInput) (time.Time, int, error) {
	start, err := scheduler.ParseStartDate(strings.TrimSpace(input.StartDate))
	if err != nil {
		return time.Time{}, 0, err
	}
	numWeeks := scheduler.WeeksUntilYearEnd(start)
	if input.NumWeeks != nil {
		numWeeks = *input.NumWeeks
	}
	return start, numWeeks, nil
}

func (h *Handler) generate(input models.ScheduleInput) (*generation, error) {
	started := time.Now()

	start, numWeeks, err := h.resolve(input)
	if err != nil {
		return nil, err
	}
	schedule, err := scheduler.Generate(h.Roster, start, numWeeks)
	if err != nil {
		return nil, err
	}
	summary := scheduler.Summarize(h.Roster, schedule)

	metrics.ObserveGeneration(started, schedule, summary)
	h.logger().Info("schedule generated",
		zap.String("start_date", start.Format(scheduler.DateLayout)),
		zap.Int("num_weeks", numWeeks),
		zap.Int("days", len(schedule)),
		zap.Duration("elapsed", time.Since(started)))

	return &generation{start: start, numWeeks: numWeeks, schedule: schedule, summary: summary}, nil
}

// fail writes the error response for a failed generation
func (h *Handler) fail(c *gin.Context, err error) {
	if errors.Is(err, scheduler.ErrInvalidInput) {
		metrics.ObserveFailure(metrics.OutcomeInvalid)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	metrics.ObserveFailure(metrics.OutcomeError)
	h.logger().Error("schedule generation failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate schedule"})
}

func (h *Handler) bind(c *gin.Context) (models.ScheduleInput, bool) {
	var input models.ScheduleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		metrics.ObserveFailure(metrics.OutcomeInvalid)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return input, false
	}
	return input, true
}

// Index reports the service name and version
func (h *Handler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Rotational Shift Scheduler API",
		"version": Version,
	})
}

// GetRoster returns the agents in rotation order
func (h *Handler) GetRoster(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"roster": h.Roster.Agents()})
}

// ScheduleJSON handles the JSON-based scheduling request
func (h *Handler) ScheduleJSON(c *gin.Context) {
	input, ok := h.bind(c)
	if !ok {
		return
	}

	g, err := h.generate(input)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.RecordUsage(g)

	c.JSON(http.StatusOK, models.ScheduleResponse{
		StartDate: g.start.Format(scheduler.DateLayout),
		NumWeeks:  g.numWeeks,
		Schedule:  render.ScheduleTable(g.schedule),
		Summary:   render.SummaryTable(g.summary),
	})
}

// ScheduleCSV returns both tables as CSV documents
func (h *Handler) ScheduleCSV(c *gin.Context) {
	input, ok := h.bind(c)
	if !ok {
		return
	}

	g, err := h.generate(input)
	if err != nil {
		h.fail(c, err)
		return
	}

	var scheduleCSV, summaryCSV strings.Builder
	if err := render.WriteScheduleCSV(&scheduleCSV, g.schedule); err != nil {
		h.fail(c, err)
		return
	}
	if err := render.WriteSummaryCSV(&summaryCSV, g.summary); err != nil {
		h.fail(c, err)
		return
	}
	h.RecordUsage(g)

	c.JSON(http.StatusOK, gin.H{
		"start_date":   g.start.Format(scheduler.DateLayout),
		"num_weeks":    g.numWeeks,
		"schedule_csv": scheduleCSV.String(),
		"summary_csv":  summaryCSV.String(),
	})
}

// ValidateInput checks a scheduling request without generating it
func (h *Handler) ValidateInput(c *gin.Context) {
	var input models.ScheduleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"valid": false,
			"error": err.Error(),
		})
		return
	}

	start, numWeeks, err := h.resolve(input)
	if err == nil {
		err = scheduler.ValidateWeeks(numWeeks)
	}
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"valid": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valid": true,
		"stats": gin.H{
			"start_date": start.Format(scheduler.DateLayout),
			"num_weeks":  numWeeks,
			"days":       numWeeks * 7,
		},
	})
}

// RecordUsage records the request in the usage table
func (h *Handler) RecordUsage(g *generation) {
	if h.DB == nil {
		return
	}
	today := time.Now().Format(scheduler.DateLayout)
	if err := database.RecordGeneration(h.DB, today, g.numWeeks, len(g.schedule)); err != nil {
		h.logger().Warn("could not record usage", zap.Error(err))
	}
}

// GetUsage returns the last 30 days of usage with totals
func (h *Handler) GetUsage(c *gin.Context) {
	if h.DB == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Usage tracking is disabled"})
		return
	}

	usage, err := database.RecentUsage(h.DB, 30)
	if err != nil {
		h.logger().Error("could not fetch usage", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch usage details"})
		return
	}

	var totalRequests, totalWeeks, totalDays int64
	for _, u := range usage {
		totalRequests += int64(u.RequestCount)
		totalWeeks += int64(u.TotalWeeks)
		totalDays += int64(u.TotalDays)
	}

	c.JSON(http.StatusOK, gin.H{
		"usage_history": usage,
		"totals": gin.H{
			"requests": totalRequests,
			"weeks":    totalWeeks,
			"days":     totalDays,
		},
	})
}
