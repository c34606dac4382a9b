package evaluation

import "fmt"

// GuardrailConfig sets the minimum quality an evaluation run must reach.
type GuardrailConfig struct {
	MinAvgRecall float64
	MinAvgMRR    float64
	// MaxOrderFailures is the number of strict-order mismatches tolerated
	MaxOrderFailures int
	MaxErrors        int
}

// DefaultGuardrailConfig requires a perfect run on the sample catalog.
func DefaultGuardrailConfig() GuardrailConfig {
	return GuardrailConfig{MinAvgRecall: 1.0, MinAvgMRR: 1.0}
}

type Guardrails struct {
	config GuardrailConfig
}

func NewGuardrails(config GuardrailConfig) *Guardrails {
	if config.MaxOrderFailures < 0 {
		config.MaxOrderFailures = 0
	}
	if config.MaxErrors < 0 {
		config.MaxErrors = 0
	}
	return &Guardrails{config: config}
}

// Check returns one message per threshold the summary violates.
func (g *Guardrails) Check(s *EvalSummary) []string {
	var violations []string
	if s.AvgRecallAt10 < g.config.MinAvgRecall {
		violations = append(violations, fmt.Sprintf("avg recall@10 %.3f below %.3f", s.AvgRecallAt10, g.config.MinAvgRecall))
	}
	if s.AvgMRRAt10 < g.config.MinAvgMRR {
		violations = append(violations, fmt.Sprintf("avg MRR@10 %.3f below %.3f", s.AvgMRRAt10, g.config.MinAvgMRR))
	}
	if len(s.OrderFailures) > g.config.MaxOrderFailures {
		violations = append(violations, fmt.Sprintf("%d ordering failures %v (max %d)", len(s.OrderFailures), s.OrderFailures, g.config.MaxOrderFailures))
	}
	if s.Errors > g.config.MaxErrors {
		violations = append(violations, fmt.Sprintf("%d query errors (max %d)", s.Errors, g.config.MaxErrors))
	}
	return violations
}
