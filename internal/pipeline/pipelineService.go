package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/akolanti/CatalystAPI/internal/config"
	"github.com/akolanti/CatalystAPI/internal/domain/jobModel"
	"github.com/akolanti/CatalystAPI/internal/metrics"
	"github.com/akolanti/CatalystAPI/internal/pipeline/extract"
	"github.com/akolanti/CatalystAPI/internal/pipeline/llm"
	"github.com/akolanti/CatalystAPI/internal/pipeline/textproc"
	"github.com/akolanti/CatalystAPI/pkg/logger_i"
)

// Service is the document summarization pipeline the worker drives:
// download, extract, clean, decide on chunking, then the LLM pass (or the
// two-pass chunk flow for oversized documents). The worker only sees this
// contract, not the extraction or LLM internals.
type Service interface {
	SummarizeDocument(ctx context.Context, job jobModel.Job) jobModel.Job
}

type service struct {
	llmProvider llm.Provider
	logger      *logger_i.Logger

	//seams for tests, production uses the extract package directly
	download    func(ctx context.Context, url string) (string, error)
	extractFile func(path string) (extract.Result, error)
}

// NewService constructor
func NewService(provider llm.Provider) Service {
	return &service{
		llmProvider: provider,
		logger:      logger_i.NewLogger("Pipeline Service"),
		download:    extract.Download,
		extractFile: extract.FromFile,
	}
}

func (s *service) SummarizeDocument(ctx context.Context, job jobModel.Job) jobModel.Job {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("Document_summarization", time.Since(start)) }()

	traceId, _ := ctx.Value(config.TRACE_ID_KEY).(string)
	inMethodLogger := s.logger.With("traceId", traceId, "JobId", job.Id)

	payload := &job.JobPayload

	path := payload.DocumentPath
	if path == "" {
		if len(payload.DocumentURLs) == 0 {
			return s.jobError(job, errors.New("no document to summarize"), false)
		}
		job.CurrentStep = jobModel.DownloadCall
		downloaded, err := s.download(ctx, payload.DocumentURLs[0])
		if err != nil {
			inMethodLogger.Error("document download failed", "error", err)
			return s.jobError(job, err, true)
		}
		defer os.Remove(downloaded)
		path = downloaded
	}

	job.CurrentStep = jobModel.ExtractionCall
	result, err := s.extractFile(path)
	if err != nil {
		inMethodLogger.Error("extraction failed", "error", err)
		return s.jobError(job, err, false)
	}
	payload.ExtractionMethod = result.Method
	payload.PageCount = result.PageCount

	job.CurrentStep = jobModel.CleaningStep
	cleaned := textproc.CleanText(result.Text())
	payload.CharacterCount = len(cleaned)
	if cleaned == "" {
		return s.jobError(job, errors.New("document contains no extractable text"), false)
	}

	job.CurrentStep = jobModel.ChunkingStep
	needsChunking, reason := textproc.NeedsChunking(cleaned, result.PageCount)
	payload.NeedsChunking = needsChunking
	inMethodLogger.Info("chunking decision", "needsChunking", needsChunking, "reason", reason)

	docPrompts := loadPrompts(payload.StockSymbol)

	job.CurrentStep = jobModel.LLMCall
	var summary string
	if needsChunking {
		chunks := textproc.ChunkSemantic(cleaned, config.MaxChunkSize, config.OverlapChars(config.MaxChunkSize))
		payload.ChunkCount = len(chunks)
		summary, err = s.summarizeChunks(ctx, inMethodLogger, chunks, docPrompts)
	} else {
		payload.ChunkCount = 1
		summary, err = s.generate(ctx, []string{cleaned, docPrompts.single})
	}
	if err != nil {
		inMethodLogger.Error("summarization failed", "error", err)
		return s.jobError(job, err, true)
	}

	payload.Summary = summary
	job.Status = jobModel.JobStatusComplete
	job.CurrentStep = jobModel.Complete
	inMethodLogger.Info("summary generated", "characters", len(summary), "chunks", payload.ChunkCount)
	return job
}

// summarizeChunks is the two-pass flow: every chunk gets its own catalyst
// summary, then the labeled section summaries are combined in one final
// call. A failing chunk is skipped, only losing every chunk fails the job.
func (s *service) summarizeChunks(ctx context.Context, log *logger_i.Logger, chunks []string, p prompts) (string, error) {
	var sectionSummaries []string
	for i, chunk := range chunks {
		out, err := s.generate(ctx, []string{chunk, p.chunk})
		if err != nil {
			log.Error("chunk summarization failed", "chunk", i+1, "total", len(chunks), "error", err)
			continue
		}
		sectionSummaries = append(sectionSummaries, out)
	}
	if len(sectionSummaries) == 0 {
		return "", errors.New("failed to summarize any chunks")
	}

	var combined strings.Builder
	for i, summary := range sectionSummaries {
		if i > 0 {
			combined.WriteString("\n\n")
		}
		fmt.Fprintf(&combined, "=== Section %d Summary ===\n%s", i+1, summary)
	}
	return s.generate(ctx, []string{combined.String(), p.combine})
}

func (s *service) generate(ctx context.Context, parts []string) (string, error) {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("gemini", time.Since(start)) }()
	return s.llmProvider.Generate(ctx, parts)
}

func (s *service) jobError(job jobModel.Job, err error, retry bool) jobModel.Job {
	job.Status = jobModel.JobStatusError
	job.CurrentStep = jobModel.Error
	job.Error = jobModel.JobError{Code: 500, Message: err.Error(), Retry: retry}
	return job
}
