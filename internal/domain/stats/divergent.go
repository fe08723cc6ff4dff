package stats

import "github.com/okian/matchtag/internal/domain/model"

// MetricShare is one (team, metric) cell of the divergent bar chart.
// Fraction is nil when the metric sums to zero across teams.
type MetricShare struct {
	Team     model.Team `json:"team"`
	Variable string     `json:"variable"`
	Value    int        `json:"value"`
	Fraction *float64   `json:"fraction"`
	Defined  bool       `json:"defined"`
}

// Divergent melts team records into per-metric rows, metric-major, with each
// value's share of the cross-team total.
func Divergent(teams []TeamStats) []MetricShare {
	out := make([]MetricShare, 0, len(teams)*len(Metrics))
	for _, metric := range Metrics {
		total := 0
		for _, t := range teams {
			total += t.Value(metric)
		}
		for _, t := range teams {
			share := MetricShare{Team: t.Team, Variable: metric, Value: t.Value(metric)}
			if total != 0 {
				f := float64(share.Value) / float64(total)
				share.Fraction = &f
				share.Defined = true
			}
			out = append(out, share)
		}
	}
	return out
}
