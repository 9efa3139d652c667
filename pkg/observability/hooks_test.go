package observability

import (
	"context"
	"testing"
	"time"
)

type recordingPipelineHooks struct {
	noopPipelineHooks
	layoutStarts int
	layoutDone   int
}

func (r *recordingPipelineHooks) OnLayoutStart(ctx context.Context, templateID string, imageCount int) {
	r.layoutStarts++
}

func (r *recordingPipelineHooks) OnLayoutComplete(ctx context.Context, templateID string, pageCount int, d time.Duration, err error) {
	r.layoutDone++
}

func TestSetPipelineHooks(t *testing.T) {
	rec := &recordingPipelineHooks{}
	SetPipelineHooks(rec)
	defer SetPipelineHooks(nil)

	ctx := context.Background()
	Pipeline().OnLayoutStart(ctx, "grid-2x2", 6)
	Pipeline().OnLayoutComplete(ctx, "grid-2x2", 2, time.Millisecond, nil)

	if rec.layoutStarts != 1 || rec.layoutDone != 1 {
		t.Errorf("hooks not invoked: starts=%d done=%d", rec.layoutStarts, rec.layoutDone)
	}

	// Embedded no-op handles the rest of the interface.
	Pipeline().OnScanStart(ctx, "dir")
	Pipeline().OnRenderComplete(ctx, "svg", time.Millisecond, nil)
}

func TestNilRestoresNoop(t *testing.T) {
	SetPipelineHooks(&recordingPipelineHooks{})
	SetPipelineHooks(nil)

	// Must not panic.
	Pipeline().OnScanStart(context.Background(), "dir")

	SetCacheHooks(nil)
	Cache().OnCacheHit(context.Background(), "layout")

	SetRegistryHooks(nil)
	Registry().OnTemplateRegistered(context.Background(), "id")
}
