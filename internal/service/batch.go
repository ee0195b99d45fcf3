package service

import (
	"context"
	"sort"
	"strconv"

	"email_size_analyzer/internal/domain/models"
	"email_size_analyzer/internal/pkg/errors"
	"email_size_analyzer/internal/pkg/worker_pool"
)

type indexedVerdict struct {
	index   int
	id      string
	verdict *models.SizeVerdict
}

// AnalyzeBatch analyzes every variant independently on the worker pool, then
// orders them by total size (ties keep input order). The recommendation is the
// smallest variant within TargetMaxBytes, or the smallest overall when none is.
func (a *Analyzer) AnalyzeBatch(ctx context.Context, variants []models.Variant, includeEnvelope bool) (*models.BatchResult, error) {
	if len(variants) == 0 {
		return nil, errors.Mark(errors.ErrEmptyBatch, nil)
	}

	a.log.WithContext(ctx).Debugf(`batch analysis of %d variants started...`, len(variants))

	pool := worker_pool.NewWorkerPool(ctx, min(a.workers, len(variants)), false, a.log)

	go func() {
		defer pool.Close()
		for i, v := range variants {
			i, v := i, v
			err := pool.Submit(strconv.Itoa(i), func(ctx context.Context) (any, error) {
				verdict := a.Analyze(v.HTML, AnalyzeOptions{
					Subject:         v.Subject,
					Preheader:       v.Preheader,
					IncludeEnvelope: includeEnvelope,
				})
				return indexedVerdict{index: i, id: v.ID, verdict: verdict}, nil
			})
			if err != nil {
				a.log.WithContext(ctx).WithError(err).Warn(`batch submission stopped`)
				return
			}
		}
	}()

	collected := make([]indexedVerdict, 0, len(variants))
	for res := range pool.ResultsCh {
		if res.Err != nil {
			continue
		}
		if iv, ok := res.Result.(indexedVerdict); ok {
			collected = append(collected, iv)
		}
	}

	if len(collected) != len(variants) {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(err, `batch analysis interrupted`)
		}
		return nil, errors.Errorf(`batch analysis completed %d of %d variants`, len(collected), len(variants))
	}

	sort.Slice(collected, func(i, j int) bool {
		if collected[i].verdict.TotalBytes != collected[j].verdict.TotalBytes {
			return collected[i].verdict.TotalBytes < collected[j].verdict.TotalBytes
		}
		return collected[i].index < collected[j].index
	})

	result := &models.BatchResult{Results: make([]models.VariantVerdict, 0, len(collected))}
	for _, iv := range collected {
		result.Results = append(result.Results, models.VariantVerdict{ID: iv.id, Verdict: iv.verdict})
		if result.RecommendedID == "" && iv.verdict.TotalBytes <= models.TargetMaxBytes {
			result.RecommendedID = iv.id
		}
	}
	if result.RecommendedID == "" {
		result.RecommendedID = collected[0].id
	}

	a.log.WithContext(ctx).Debugf(`batch analysis ended, recommended variant %q`, result.RecommendedID)
	return result, nil
}
