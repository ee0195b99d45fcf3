package adaptors

import (
	"context"

	"email_size_analyzer/internal/domain/models"
)

// VerdictCache stores verdicts by content key. A miss is (nil, false, nil).
type VerdictCache interface {
	Get(ctx context.Context, key string) (*models.SizeVerdict, bool, error)
	Set(ctx context.Context, key string, verdict *models.SizeVerdict) error
}
