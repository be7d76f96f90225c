package domain

import "context"

// AnalyzerPort scores texts, serving cached verdicts for repeat content
type AnalyzerPort interface {
	Analyze(ctx context.Context, in AnalyzeInput) (Analysis, error)
}
