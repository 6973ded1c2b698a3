package planner

import (
	"context"
	"log"
	"time"

	"github.com/pathlight/pathlight/internal/learner"
	"github.com/pathlight/pathlight/internal/llm"
)

const (
	// DefaultCheckpointInterval matches the cadence the engine has always
	// used: a checkpoint every third day.
	DefaultCheckpointInterval = 3

	// DefaultGenerationTimeout bounds the single personalized generation
	// attempt before falling back.
	DefaultGenerationTimeout = 60 * time.Second
)

// Options tunes orchestrator behavior. Zero values select the defaults.
type Options struct {
	CheckpointInterval int
	GenerationTimeout  time.Duration
	Verbose            bool
}

// Orchestrator turns a generation request plus a learner context into a
// structured plan. It tries the personalized path first, falls back to a
// deterministic template, then enhances whichever plan it has.
type Orchestrator struct {
	provider           llm.Provider
	model              string
	checkpointInterval int
	timeout            time.Duration
	verbose            bool
}

// NewOrchestrator creates a plan orchestrator. provider may be nil, in which
// case every request is served by the fallback path.
func NewOrchestrator(provider llm.Provider, model string, opts Options) *Orchestrator {
	interval := opts.CheckpointInterval
	if interval == 0 {
		interval = DefaultCheckpointInterval
	}
	timeout := opts.GenerationTimeout
	if timeout == 0 {
		timeout = DefaultGenerationTimeout
	}
	return &Orchestrator{
		provider:           provider,
		model:              model,
		checkpointInterval: interval,
		timeout:            timeout,
		verbose:            opts.Verbose,
	}
}

// Generate produces an enhanced learning path for the request. It fails only
// on invalid input; collaborator failure is absorbed by the fallback stage
// and surfaces solely as Provenance == ProvenanceFallback on the result.
func (o *Orchestrator) Generate(ctx context.Context, req Request, lc learner.Context) (*LearningPath, error) {
	if req.Type == "" {
		req.Type = TypeNormal
	}
	if err := ValidateRequest(req); err != nil {
		return nil, err
	}

	path, provenance := o.generate(ctx, req, lc)
	o.enhance(path, lc, provenance)
	return path, nil
}

// generate runs the two-stage pipeline and reports which stage produced the
// plan, keeping failure handling visible in the return value rather than in
// control flow.
func (o *Orchestrator) generate(ctx context.Context, req Request, lc learner.Context) (*LearningPath, Provenance) {
	if o.provider != nil {
		path, err := o.generatePersonalized(ctx, req, lc)
		if err == nil {
			return path, ProvenancePersonalized
		}
		if o.verbose {
			log.Printf("personalized generation failed, using fallback: %v", err)
		}
	}
	return generateFallback(req, lc), ProvenanceFallback
}
