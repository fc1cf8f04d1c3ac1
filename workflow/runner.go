package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/c360studio/lexmerge/graph"
	"github.com/c360studio/lexmerge/merge"
	"github.com/c360studio/lexmerge/metrics"
	"github.com/c360studio/lexmerge/registry"
	"github.com/c360studio/lexmerge/source/bts"
	"github.com/c360studio/lexmerge/tree"
	"github.com/google/uuid"
	"github.com/spf13/afero"
)

// Result summarizes a finished job.
type Result struct {
	RunID     string        `json:"run_id"`
	Job       string        `json:"job"`
	Extracted int           `json:"extracted"`
	Repair    graph.Stats   `json:"repair"`
	Merge     merge.Stats   `json:"merge"`
	Duration  time.Duration `json:"duration"`
}

// Runner executes jobs against a filesystem.
type Runner struct {
	fs      afero.Fs
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// NewRunner creates a job runner. rec may be nil.
func NewRunner(fs afero.Fs, logger *slog.Logger, rec *metrics.Recorder) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{fs: fs, logger: logger, metrics: rec}
}

// Registry loads the job's vocabulary, extracts the registry and applies the
// job's patch steps. The target document is not touched.
func (r *Runner) Registry(ctx context.Context, job Job) (*registry.Registry, graph.Stats, error) {
	if err := ValidateSteps(job.Steps); err != nil {
		return nil, graph.Stats{}, err
	}

	records, err := bts.Load(r.fs, job.Source.Archive, job.Source.Vocab)
	if err != nil {
		return nil, graph.Stats{}, err
	}
	if err := ctx.Err(); err != nil {
		return nil, graph.Stats{}, err
	}

	reg := registry.Build(bts.Records(records), job.Extractors...)
	r.metrics.Extracted(job.Source.Vocab, reg.Len())
	r.logger.Info("Extracted registry",
		slog.String("vocab", job.Source.Vocab),
		slog.Int("records", len(records)),
		slog.Int("entries", reg.Len()))

	repair := graph.NewRepair(r.logger)
	patches, err := resolveSteps(job.Steps, repair)
	if err != nil {
		return nil, graph.Stats{}, err
	}
	if err := registry.Patch(reg, patches...); err != nil {
		return nil, repair.Stats(), fmt.Errorf("job %s: %w", job.Name, err)
	}
	r.metrics.Repaired(repair.Stats())
	return reg, repair.Stats(), nil
}

func resolveSteps(steps []string, repair *graph.Repair) ([]registry.PatchFunc, error) {
	patches := make([]registry.PatchFunc, 0, len(steps))
	for _, s := range steps {
		switch s {
		case StepVerify:
			patches = append(patches, repair.Verify)
		case StepMirror:
			patches = append(patches, repair.Mirror)
		case StepFillDates:
			patches = append(patches, bts.FillMissingDateRanges)
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownStep, s)
		}
	}
	return patches, nil
}

// Run executes job: load, extract, patch, merge and save. Nothing is written
// when any earlier stage fails.
func (r *Runner) Run(ctx context.Context, job Job) (Result, error) {
	start := time.Now()
	result := Result{RunID: uuid.NewString(), Job: job.Name}
	if err := job.Validate(); err != nil {
		return result, err
	}
	logger := r.logger.With(slog.String("run_id", result.RunID), slog.String("job", job.Name))
	logger.Info("Starting job",
		slog.String("archive", job.Source.Archive),
		slog.String("target", job.Target.File))

	reg, repaired, err := r.Registry(ctx, job)
	if err != nil {
		return result, err
	}
	result.Extracted = reg.Len()
	result.Repair = repaired

	doc, err := tree.Load(r.fs, job.Target.File)
	if err != nil {
		return result, err
	}
	if err := ctx.Err(); err != nil {
		return result, err
	}

	result.Merge = merge.NewEngine(logger).Merge(doc, job.Target.Kind, reg, job.Property, job.Inserter)
	if err := doc.Save(); err != nil {
		return result, err
	}

	r.metrics.Merged(result.Merge)
	r.metrics.Since(job.Name, start)
	result.Duration = time.Since(start)
	logger.Info("Finished job",
		slog.Int("elements", result.Merge.Elements),
		slog.Int("entries", len(result.Merge.Entries)),
		slog.Duration("duration", result.Duration))
	return result, nil
}
