package jobModel

import (
	"context"
	"time"
)

type JobStatus string
type InternalStatus string

type JobType string

const (
	JobStatusQueued   JobStatus = "QUEUED"
	JobStatusRunning  JobStatus = "RUNNING"
	JobStatusComplete JobStatus = "COMPLETE"
	JobStatusError    JobStatus = "Error"

	SummarizeInit  InternalStatus = "SummarizeInit"
	DownloadCall   InternalStatus = "Download"
	ExtractionCall InternalStatus = "Extraction"
	CleaningStep   InternalStatus = "Cleaning"
	ChunkingStep   InternalStatus = "Chunking"
	LLMCall        InternalStatus = "LLM"

	FeedRefreshInit InternalStatus = "FeedRefreshInit"
	FeedFetching    InternalStatus = "FeedFetching"
	Error           InternalStatus = "Error"

	Complete InternalStatus = "Complete"

	JobTypeSummarize   JobType = "Summarize"
	JobTypeFeedRefresh JobType = "FeedRefresh"
)

type Job struct {
	Id          string         `json:"id"`
	TraceId     string         `json:"trace_id"`
	JobType     JobType        `json:"job_type"`
	JobPayload  JobPayload     `json:"job_payload"`
	Error       JobError       `json:"error,omitempty"`
	CreatedTime time.Time      `json:"created_time"`
	EndTime     time.Time      `json:"end_time,omitempty"`
	Status      JobStatus      `json:"status"`
	CurrentStep InternalStatus `json:"current_step"`
}

type JobError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Retry   bool   `json:"retry"`
}

type JobPayload struct {
	StockSymbol  string   `json:"stock_symbol,omitempty"`
	DocumentURLs []string `json:"document_urls,omitempty"`
	//local path of the downloaded document the pipeline works on
	DocumentPath string `json:"document_path,omitempty"`
	Summary      string `json:"summary,omitempty"`

	//document processing metadata, filled in as the pipeline runs
	ExtractionMethod string `json:"extraction_method,omitempty"`
	PageCount        int    `json:"page_count,omitempty"`
	CharacterCount   int    `json:"character_count,omitempty"`
	NeedsChunking    bool   `json:"needs_chunking,omitempty"`
	ChunkCount       int    `json:"chunk_count,omitempty"`
}

type JobStore interface {
	GetJob(ctx context.Context, jobId string) (Job, bool)
	SaveJob(ctx context.Context, job Job) error
	DeleteJob(ctx context.Context, jobID string)
}
