package middleware

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"NewsRank/internal/domain/models"
)

type recordingProc struct {
	mu   sync.Mutex
	got  []string
	fail bool
}

func (p *recordingProc) Process(_ context.Context, a *models.Article) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.fail {
		return fmt.Errorf("store down")
	}
	p.got = append(p.got, a.ID)
	return nil
}

func (p *recordingProc) ids() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.got...)
}

type nopMetrics struct {
	mu     sync.Mutex
	errors map[string]int
}

func newNopMetrics() *nopMetrics { return &nopMetrics{errors: make(map[string]int)} }

func (m *nopMetrics) RecordArticleScored(string) {}
func (m *nopMetrics) RecordArticleStored(string) {}
func (m *nopMetrics) RecordError(kind string) {
	m.mu.Lock()
	m.errors[kind]++
	m.mu.Unlock()
}
func (m *nopMetrics) RecordFeedSize(int)            {}
func (m *nopMetrics) RecordTrendingSize(int)        {}
func (m *nopMetrics) RecordLatency(string, float64) {}

func (m *nopMetrics) count(kind string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.errors[kind]
}

func TestPipelineForwards(t *testing.T) {
	proc := &recordingProc{}
	p := NewIngestPipeline(proc, newNopMetrics())

	if err := p.Process(context.Background(), &models.Article{ID: "a1"}); err != nil {
		t.Fatalf("Process: %v", err)
	}
	if got := proc.ids(); len(got) != 1 || got[0] != "a1" {
		t.Errorf("processed = %v", got)
	}
}

func TestPipelineRejectsInvalid(t *testing.T) {
	proc := &recordingProc{}
	m := newNopMetrics()
	p := NewIngestPipeline(proc, m)

	if err := p.Process(context.Background(), nil); err == nil {
		t.Fatal("expected error for nil article")
	}
	if err := p.Process(context.Background(), &models.Article{}); err == nil {
		t.Fatal("expected error for missing id")
	}
	if m.count("pipeline_validate") != 2 {
		t.Errorf("validate errors = %d, want 2", m.count("pipeline_validate"))
	}
}

func TestPipelineDeduplicates(t *testing.T) {
	proc := &recordingProc{}
	m := newNopMetrics()
	p := NewIngestPipeline(proc, m, WithDedupWindow(time.Minute))

	for i := 0; i < 3; i++ {
		if err := p.Process(context.Background(), &models.Article{ID: "dup"}); err != nil {
			t.Fatalf("Process %d: %v", i, err)
		}
	}
	if got := proc.ids(); len(got) != 1 {
		t.Errorf("processed = %v, want one delivery", got)
	}
	if m.count("pipeline_duplicate") != 2 {
		t.Errorf("duplicate drops = %d, want 2", m.count("pipeline_duplicate"))
	}
}

func TestPipelineBuffersOnFailure(t *testing.T) {
	proc := &recordingProc{fail: true}
	m := newNopMetrics()
	p := NewIngestPipeline(proc, m, WithBufferSize(10))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	p.Start(ctx)
	defer p.Stop()

	if err := p.Process(ctx, &models.Article{ID: "buffered"}); err == nil {
		t.Fatal("expected downstream error")
	}
	if m.count("pipeline_process") != 1 {
		t.Errorf("process errors = %d, want 1", m.count("pipeline_process"))
	}

	// Once the store recovers, the flush loop delivers the buffered article.
	proc.mu.Lock()
	proc.fail = false
	proc.mu.Unlock()

	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if len(proc.ids()) == 1 {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("buffered article never flushed, processed = %v", proc.ids())
}

func TestPipelineTransform(t *testing.T) {
	proc := &recordingProc{}
	p := NewIngestPipeline(proc, newNopMetrics(), WithTransform(func(a *models.Article) *models.Article {
		a.Source = "normalized"
		return a
	}))

	a := &models.Article{ID: "a1", Source: "RAW"}
	if err := p.Process(context.Background(), a); err != nil {
		t.Fatalf("Process: %v", err)
	}
	if a.Source != "normalized" {
		t.Errorf("source = %q, want transform applied", a.Source)
	}
}
