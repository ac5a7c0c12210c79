package ai

import "context"

// Input is everything the analysis prompt is built from.
type Input struct {
	ResumeText     string
	CoverLetter    string
	JobDescription string
}

type Analyzer struct {
	Model Model
}

func NewAnalyzer(m Model) *Analyzer {
	return &Analyzer{Model: m}
}

// Analyze runs one model round trip. Only transport errors are returned; an
// unstructured reply still yields an Analysis.
func (a *Analyzer) Analyze(ctx context.Context, in Input) (Analysis, error) {
	if a == nil || a.Model == nil {
		return Analysis{}, ErrNotConfigured
	}
	reply, err := a.Model.Generate(ctx, BuildPrompt(in.ResumeText, in.CoverLetter, in.JobDescription))
	if err != nil {
		return Analysis{}, err
	}
	return ParseReply(reply), nil
}
