package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/akolanti/CatalystAPI/internal/domain/jobModel"
	"github.com/akolanti/CatalystAPI/internal/pipeline/extract"
	"github.com/akolanti/CatalystAPI/pkg/logger_i"
)

type mockProvider struct {
	calls     [][]string
	responses []string
	errs      []error
}

func (m *mockProvider) Generate(_ context.Context, parts []string) (string, error) {
	idx := len(m.calls)
	m.calls = append(m.calls, parts)
	if idx < len(m.errs) && m.errs[idx] != nil {
		return "", m.errs[idx]
	}
	if idx < len(m.responses) {
		return m.responses[idx], nil
	}
	return "summary", nil
}

func newTestService(provider *mockProvider, result extract.Result) *service {
	return &service{
		llmProvider: provider,
		logger:      logger_i.NewLogger("Pipeline Service Test"),
		download: func(_ context.Context, _ string) (string, error) {
			return "/tmp/unused", nil
		},
		extractFile: func(_ string) (extract.Result, error) {
			return result, nil
		},
	}
}

func summarizeJob() jobModel.Job {
	return jobModel.Job{
		Id:      "job-1",
		JobType: jobModel.JobTypeSummarize,
		Status:  jobModel.JobStatusRunning,
		JobPayload: jobModel.JobPayload{
			StockSymbol:  "CRAFTSMAN",
			DocumentPath: "/tmp/doc.pdf",
		},
	}
}

func TestSummarizeDocument_SinglePass(t *testing.T) {
	provider := &mockProvider{responses: []string{"catalyst summary"}}
	svc := newTestService(provider, extract.Result{
		Pages:     []extract.Page{{Number: 1, Content: "Revenue grew 20% on new orders."}},
		Method:    extract.MethodPDF,
		PageCount: 3,
	})

	job := svc.SummarizeDocument(context.Background(), summarizeJob())

	if job.Status != jobModel.JobStatusComplete {
		t.Fatalf("status = %q, error = %q", job.Status, job.Error.Message)
	}
	if job.JobPayload.Summary != "catalyst summary" {
		t.Errorf("summary = %q", job.JobPayload.Summary)
	}
	if job.JobPayload.NeedsChunking || job.JobPayload.ChunkCount != 1 {
		t.Errorf("small document should be a single pass: %+v", job.JobPayload)
	}
	if job.JobPayload.ExtractionMethod != extract.MethodPDF || job.JobPayload.PageCount != 3 {
		t.Errorf("extraction metadata not recorded: %+v", job.JobPayload)
	}

	if len(provider.calls) != 1 {
		t.Fatalf("provider calls = %d, want 1", len(provider.calls))
	}
	parts := provider.calls[0]
	if len(parts) != 2 || parts[0] != "Revenue grew 20% on new orders." {
		t.Errorf("document text should be the first part: %v", parts)
	}
	if !strings.HasPrefix(parts[1], "Company: CRAFTSMAN\n\n") {
		t.Errorf("prompt should carry the stock prefix, got %q", parts[1][:40])
	}
}

func TestSummarizeDocument_ChunkedTwoPass(t *testing.T) {
	// page count over the limit forces the chunked path even for short text
	provider := &mockProvider{responses: []string{"section one", "final combined"}}
	svc := newTestService(provider, extract.Result{
		Pages:     []extract.Page{{Number: 1, Content: "Body of a very long filing."}},
		Method:    extract.MethodPDF,
		PageCount: 51,
	})

	job := svc.SummarizeDocument(context.Background(), summarizeJob())

	if job.Status != jobModel.JobStatusComplete {
		t.Fatalf("status = %q, error = %q", job.Status, job.Error.Message)
	}
	if !job.JobPayload.NeedsChunking {
		t.Error("51 pages should need chunking")
	}
	if job.JobPayload.Summary != "final combined" {
		t.Errorf("summary = %q", job.JobPayload.Summary)
	}
	if len(provider.calls) != 2 {
		t.Fatalf("provider calls = %d, want chunk pass + combine pass", len(provider.calls))
	}
	combineInput := provider.calls[1][0]
	if !strings.Contains(combineInput, "=== Section 1 Summary ===\nsection one") {
		t.Errorf("combine input missing labeled section summary: %q", combineInput)
	}
}

func TestSummarizeChunks_SkipsFailedChunk(t *testing.T) {
	provider := &mockProvider{
		responses: []string{"first", "", "third", "combined"},
		errs:      []error{nil, errors.New("Error 429"), nil, nil},
	}
	svc := newTestService(provider, extract.Result{})

	out, err := svc.summarizeChunks(context.Background(), svc.logger,
		[]string{"chunk a", "chunk b", "chunk c"}, prompts{chunk: "chunk prompt", combine: "combine prompt"})
	if err != nil {
		t.Fatalf("summarizeChunks: %v", err)
	}
	if out != "combined" {
		t.Errorf("out = %q", out)
	}

	// failed chunk is dropped; surviving summaries are renumbered in order
	combineInput := provider.calls[3][0]
	if !strings.Contains(combineInput, "=== Section 1 Summary ===\nfirst") {
		t.Errorf("combine input missing first section: %q", combineInput)
	}
	if !strings.Contains(combineInput, "=== Section 2 Summary ===\nthird") {
		t.Errorf("combine input missing surviving section: %q", combineInput)
	}
	if strings.Contains(combineInput, "Section 3") {
		t.Errorf("dropped chunk should not appear: %q", combineInput)
	}
}

func TestSummarizeChunks_AllChunksFail(t *testing.T) {
	failure := errors.New("Error 429")
	provider := &mockProvider{errs: []error{failure, failure}}
	svc := newTestService(provider, extract.Result{})

	if _, err := svc.summarizeChunks(context.Background(), svc.logger,
		[]string{"a", "b"}, prompts{}); err == nil {
		t.Fatal("expected error when every chunk fails")
	}
}

func TestSummarizeDocument_NoDocument(t *testing.T) {
	provider := &mockProvider{}
	svc := newTestService(provider, extract.Result{})

	job := summarizeJob()
	job.JobPayload.DocumentPath = ""
	job.JobPayload.DocumentURLs = nil

	job = svc.SummarizeDocument(context.Background(), job)
	if job.Status != jobModel.JobStatusError {
		t.Fatalf("status = %q, want error", job.Status)
	}
	if len(provider.calls) != 0 {
		t.Errorf("provider should not be called, got %d calls", len(provider.calls))
	}
}

func TestSummarizeDocument_EmptyExtraction(t *testing.T) {
	provider := &mockProvider{}
	svc := newTestService(provider, extract.Result{
		Pages:  []extract.Page{{Number: 1, Content: "   \n\n  "}},
		Method: extract.MethodCat,
	})

	job := svc.SummarizeDocument(context.Background(), summarizeJob())
	if job.Status != jobModel.JobStatusError {
		t.Fatalf("status = %q, want error for empty text", job.Status)
	}
}
