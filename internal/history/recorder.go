package history

import (
	"context"

	"go.uber.org/zap"

	"github.com/ziadkadry99/opspanel/internal/apiclient"
)

// Recorder writes interactions to a Store on a best-effort basis. A nil
// Recorder, or one without a store, records nothing.
type Recorder struct {
	store  *Store
	source Source
	logger *zap.Logger
}

// NewRecorder returns a Recorder tagging entries with source.
func NewRecorder(store *Store, source Source, logger *zap.Logger) *Recorder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Recorder{store: store, source: source, logger: logger}
}

// Record stores the outcome. Failures are logged and otherwise ignored.
func (r *Recorder) Record(ctx context.Context, res apiclient.Result, rendered string, ok bool) {
	if r == nil || r.store == nil {
		return
	}
	if _, err := r.store.Record(ctx, FromResult(res, rendered, ok, r.source)); err != nil {
		r.logger.Warn("could not record interaction",
			zap.String("endpoint", res.Endpoint),
			zap.Error(err))
	}
}
