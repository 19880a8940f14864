package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/rocketscienceinc/tabletop/internal/entity"
)

const (
	KindHuman    = "human"
	KindComputer = "computer"
)

// Registry holds the process-wide counters. It is created once in RunApp and passed to whatever needs it.
type Registry struct {
	registry *prometheus.Registry

	participants *prometheus.CounterVec
	rounds       *prometheus.CounterVec
	matches      *prometheus.CounterVec
}

func New() *Registry {
	that := &Registry{
		registry: prometheus.NewRegistry(),
		participants: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tabletop_participants_created_total",
				Help: "Participants created, by kind",
			},
			[]string{"kind"},
		),
		rounds: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tabletop_rounds_scored_total",
				Help: "Rounds scored, by game and outcome",
			},
			[]string{"game", "outcome"},
		),
		matches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tabletop_matches_completed_total",
				Help: "Matches that reached the win threshold, by game",
			},
			[]string{"game"},
		),
	}

	that.registry.MustRegister(that.participants, that.rounds, that.matches)

	return that
}

func (that *Registry) ParticipantCreated(kind string) {
	that.participants.WithLabelValues(kind).Inc()
}

func (that *Registry) RoundScored(game string, outcome entity.Outcome) {
	that.rounds.WithLabelValues(game, outcome.String()).Inc()
}

func (that *Registry) MatchCompleted(game string) {
	that.matches.WithLabelValues(game).Inc()
}

func (that *Registry) ParticipantsCreated(kind string) int {
	return counterValue(that.participants.WithLabelValues(kind))
}

func (that *Registry) RoundsScored(game string, outcome entity.Outcome) int {
	return counterValue(that.rounds.WithLabelValues(game, outcome.String()))
}

func (that *Registry) MatchesCompleted(game string) int {
	return counterValue(that.matches.WithLabelValues(game))
}

// Gatherer exposes the underlying registry, e.g. for a final dump of all series.
func (that *Registry) Gatherer() prometheus.Gatherer {
	return that.registry
}

func counterValue(counter prometheus.Counter) int {
	var metric dto.Metric
	if err := counter.Write(&metric); err != nil {
		return 0
	}

	return int(metric.GetCounter().GetValue())
}
