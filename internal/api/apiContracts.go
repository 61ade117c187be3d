package api

import (
	"time"

	"github.com/akolanti/CatalystAPI/internal/domain/feedModel"
)

type JobExternalStatus string

const (
	JobStatusError JobExternalStatus = "Error"
)

type JobResponse struct {
	Id        string            `json:"id" example:"job_cz109"`
	Result    Result            `json:"result"`
	Error     *JobOutgoingError `json:"error,omitempty"`
	StartTime time.Time         `json:"start_time"`
	EndTime   time.Time         `json:"end_time,omitempty"`
}

type JobOutgoingError struct {
	Code    int    `json:"code" example:"400"`
	Message string `json:"message" example:"Job not found"`
	Retry   bool   `json:"can_retry" example:"false"`
}

type SummaryResponse struct {
	Stock            string `json:"stock,omitempty"`
	Summary          string `json:"summary"`
	ExtractionMethod string `json:"extraction_method,omitempty"`
	PageCount        int    `json:"page_count,omitempty"`
	NeedsChunking    bool   `json:"needs_chunking"`
	ChunkCount       int    `json:"chunk_count,omitempty"`
}

type Result struct {
	Status          string           `json:"status"`
	SummaryResponse *SummaryResponse `json:"summary_response,omitempty"`
}

type InitJobResponse struct {
	Id        string `json:"id"`
	StatusURL string `json:"status_url"`
}

type SearchResponse struct {
	Stock   string                 `json:"stock"`
	Count   int                    `json:"count"`
	Matches []feedModel.MatchedRow `json:"matches"`
}

type StockListSearchResponse struct {
	Stocks  int                      `json:"stocks"`
	Count   int                      `json:"count"`
	Results []feedModel.StockMatches `json:"results"`
}

// requests---------------------

type SummarizeRequest struct {
	Stock        string   `json:"stock,omitempty"`
	DocumentURLs []string `json:"document_urls" validate:"required"`
}
type JobStatusRequest struct {
	JobId string `json:"job_id" validate:"required"`
}
