package adapter

import (
	"fmt"
	"time"

	"github.com/akolanti/CatalystAPI/internal/api"
	"github.com/akolanti/CatalystAPI/internal/domain/feedModel"
	"github.com/akolanti/CatalystAPI/internal/domain/jobModel"
)

func ToInitJobResponse(id string) api.InitJobResponse {
	return api.InitJobResponse{
		Id:        id,
		StatusURL: fmt.Sprintf("status/%s", id), //pass "status/job.Id"
	}
}

func ToAPIResponse(job jobModel.Job) api.JobResponse {

	var errorPtr *api.JobOutgoingError
	if job.Error.Message != "" || job.Error.Code != 0 {
		errorPtr = &api.JobOutgoingError{
			Code:    job.Error.Code,
			Message: job.Error.Message,
			Retry:   job.Error.Retry,
		}
	}

	result := api.Result{
		Status:          string(job.Status),
		SummaryResponse: ToSummaryResponse(job.JobPayload),
	}

	return api.JobResponse{
		Id:        job.Id,
		StartTime: job.CreatedTime,
		EndTime:   job.EndTime,
		Error:     errorPtr,
		Result:    result,
	}
}

func ToSummaryResponse(payload jobModel.JobPayload) *api.SummaryResponse {
	if payload.Summary == "" {
		return nil
	}

	return &api.SummaryResponse{
		Stock:            payload.StockSymbol,
		Summary:          payload.Summary,
		ExtractionMethod: payload.ExtractionMethod,
		PageCount:        payload.PageCount,
		NeedsChunking:    payload.NeedsChunking,
		ChunkCount:       payload.ChunkCount,
	}
}

func ToSearchResponse(stock string, matches []feedModel.MatchedRow) api.SearchResponse {
	return api.SearchResponse{
		Stock:   stock,
		Count:   len(matches),
		Matches: matches,
	}
}

func ToStockListSearchResponse(results []feedModel.StockMatches) api.StockListSearchResponse {
	total := 0
	for _, r := range results {
		total += len(r.Matches)
	}
	return api.StockListSearchResponse{
		Stocks:  len(results),
		Count:   total,
		Results: results,
	}
}

func BadRequest(id string, error string, code int) api.JobResponse {
	return api.JobResponse{
		Id:        id,
		StartTime: time.Time{},
		EndTime:   time.Time{},
		Result: api.Result{
			Status:          string(api.JobStatusError),
			SummaryResponse: ToSummaryResponse(jobModel.JobPayload{}),
		},
		Error: &api.JobOutgoingError{
			Code:    code,
			Message: error,
			Retry:   false,
		},
	}
}
