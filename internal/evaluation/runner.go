package evaluation

import (
	"context"
	"time"

	"github.com/winnipegconnect/backend/internal/domain/entities"
)

const cutoff = 10

// Searcher answers provider queries. ProviderService satisfies it.
type Searcher interface {
	Query(ctx context.Context, query entities.ProviderQuery) (*entities.ProviderQueryResult, error)
}

// Runner runs evaluation across a set of golden queries.
type Runner struct {
	searcher Searcher
}

func NewRunner(searcher Searcher) *Runner {
	return &Runner{searcher: searcher}
}

func (r *Runner) Run(ctx context.Context, queries []GoldenQuery) (*EvalSummary, error) {
	summary := &EvalSummary{
		TotalQueries:  len(queries),
		OrderFailures: []string{},
		ByKind:        make(map[Kind]*KindSummary),
		Results:       make([]EvalResult, 0, len(queries)),
	}

	for _, gq := range queries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		start := time.Now()
		result, err := r.searcher.Query(ctx, gq.Query)
		duration := time.Since(start)

		if err != nil {
			summary.Errors++
			r.updateSummary(summary, EvalResult{QueryID: gq.ID, Kind: gq.Kind, Latency: duration, Err: err.Error()})
			continue
		}

		ids := make([]int, len(result.Providers))
		for i, p := range result.Providers {
			ids[i] = p.ID
		}

		res := EvalResult{
			QueryID:      gq.ID,
			Kind:         gq.Kind,
			RecallAt10:   RecallAtK(gq.ExpectedIDs, ids, cutoff),
			MRRAt10:      MRRAtK(gq.ExpectedIDs, ids, cutoff),
			OrderMatch:   OrderMatches(gq.ExpectedIDs, ids),
			ResultCount:  result.Count,
			RetrievedIDs: ids,
			Latency:      duration,
		}
		// an empty expectation is met only by an empty result
		if len(gq.ExpectedIDs) == 0 && len(ids) == 0 {
			res.RecallAt10, res.MRRAt10 = 1, 1
		}
		if gq.StrictOrder && !res.OrderMatch {
			summary.OrderFailures = append(summary.OrderFailures, gq.ID)
		}

		r.updateSummary(summary, res)
	}

	r.finalizeSummary(summary)
	return summary, nil
}

func (r *Runner) updateSummary(s *EvalSummary, res EvalResult) {
	s.Results = append(s.Results, res)
	s.AvgRecallAt10 += res.RecallAt10
	s.AvgMRRAt10 += res.MRRAt10
	s.AvgLatency += res.Latency
	if res.ResultCount > 0 {
		s.QueriesWithHits++
	}

	if _, ok := s.ByKind[res.Kind]; !ok {
		s.ByKind[res.Kind] = &KindSummary{}
	}
	ks := s.ByKind[res.Kind]
	ks.Count++
	ks.AvgRecallAt10 += res.RecallAt10
	ks.AvgMRRAt10 += res.MRRAt10
}

func (r *Runner) finalizeSummary(s *EvalSummary) {
	if s.TotalQueries > 0 {
		n := float64(s.TotalQueries)
		s.AvgRecallAt10 /= n
		s.AvgMRRAt10 /= n
		s.AvgLatency /= time.Duration(s.TotalQueries)
	}

	for _, ks := range s.ByKind {
		if ks.Count > 0 {
			n := float64(ks.Count)
			ks.AvgRecallAt10 /= n
			ks.AvgMRRAt10 /= n
		}
	}
}
