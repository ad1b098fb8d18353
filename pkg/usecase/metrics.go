package usecase

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/domain/model"
)

var (
	scoringPassTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "compliance_suite_scoring_pass_total",
		Help: "Total number of full scoring passes",
	})

	scoringPassDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "compliance_suite_scoring_pass_duration_seconds",
		Help:    "Duration of a full scoring pass including snapshot fetch",
		Buckets: prometheus.DefBuckets,
	})

	incidentsBySLAState = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "compliance_suite_incidents",
		Help: "Open incidents by SLA state as of the last scoring pass",
	}, []string{"state"})

	deadlinesOverdue = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "compliance_suite_deadlines_overdue",
		Help: "Overdue deadlines as of the last scoring pass",
	})

	lifecycleExpired = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "compliance_suite_lifecycle_expired",
		Help: "Expired lifecycle records by kind as of the last scoring pass",
	}, []string{"kind"})

	recordUpdateTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "compliance_suite_record_update_total",
		Help: "Write-back operations by record kind and result",
	}, []string{"kind", "result"})
)

func observeDashboard(d *model.Dashboard) {
	scoringPassTotal.Inc()
	incidentsBySLAState.WithLabelValues("open").Set(float64(d.Incidents.Open))
	incidentsBySLAState.WithLabelValues("at_risk").Set(float64(d.Incidents.AtRisk))
	incidentsBySLAState.WithLabelValues("breached").Set(float64(d.Incidents.Breached))
	deadlinesOverdue.Set(float64(d.Deadlines.OverdueCount))
	for _, l := range d.Lifecycle {
		lifecycleExpired.WithLabelValues(string(l.Kind)).Set(float64(l.Expired))
	}
}

func observeUpdate(kind string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	recordUpdateTotal.WithLabelValues(kind, result).Inc()
}
