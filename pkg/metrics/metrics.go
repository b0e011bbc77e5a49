// Package metrics provides Prometheus metrics for schedule generation.
package metrics

import (
	"time"

	"github.com/arnavshah/rotation-scheduler/pkg/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry is the custom prometheus registry for the service
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

// GenerationsTotal counts generation requests by outcome (ok, invalid, error).
var GenerationsTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "scheduler",
	Name:      "generations_total",
	Help:      "Schedule generation requests by outcome",
}, []string{"outcome"})

// DaysGeneratedTotal counts shift days produced across all requests.
var DaysGeneratedTotal = factory.NewCounter(prometheus.CounterOpts{
	Namespace: "scheduler",
	Name:      "days_generated_total",
	Help:      "Total number of shift days generated",
})

// GenerationDurationSeconds tracks time to generate and summarize a schedule.
var GenerationDurationSeconds = factory.NewHistogram(prometheus.HistogramOpts{
	Namespace: "scheduler",
	Name:      "generation_duration_seconds",
	Help:      "Time taken to generate and summarize a schedule",
	Buckets:   []float64{0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
})

// AgentWorkingHours holds the working hours of each agent in the last generated schedule.
var AgentWorkingHours = factory.NewGaugeVec(prometheus.GaugeOpts{
	Namespace: "scheduler",
	Name:      "agent_working_hours",
	Help:      "Working hours per agent in the most recent schedule",
}, []string{"agent"})

// Outcome labels
const (
	OutcomeOK      = "ok"
	OutcomeInvalid = "invalid"
	OutcomeError   = "error"
)

// ObserveGeneration records a successful generation
func ObserveGeneration(started time.Time, schedule models.Schedule, summary models.Summary) {
	GenerationDurationSeconds.Observe(time.Since(started).Seconds())
	GenerationsTotal.WithLabelValues(OutcomeOK).Inc()
	DaysGeneratedTotal.Add(float64(len(schedule)))
	for _, row := range summary {
		AgentWorkingHours.WithLabelValues(string(row.Agent)).Set(float64(row.WorkingHours))
	}
}

// ObserveFailure records a rejected or failed generation
func ObserveFailure(outcome string) {
	GenerationsTotal.WithLabelValues(outcome).Inc()
}
