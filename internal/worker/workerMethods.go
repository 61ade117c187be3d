package worker

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/akolanti/CatalystAPI/internal/config"
	jobmodel "github.com/akolanti/CatalystAPI/internal/domain/jobModel"
	"github.com/akolanti/CatalystAPI/internal/metrics"
)

func executeJob(job jobmodel.Job) {
	start := time.Now()
	defer func() {
		// Record total time at the end
		metrics.CaptureJobMetrics(string(job.Status), time.Since(start))
	}()
	ctxTrace := context.WithValue(context.Background(), config.TRACE_ID_KEY, job.TraceId)
	ctx, cancel := context.WithTimeout(ctxTrace, config.JobExecutionTimeout)
	defer cancel()
	logger.With("trace Id ", job.TraceId)
	logger.Debug("Processing job:", "job Id:", job.Id)

	saveJobState(ctx, job, jobmodel.JobStatusRunning)

	if job.JobType == jobmodel.JobTypeFeedRefresh {
		job = refreshFeeds(job, ctx)
	} else {
		job = _pipelineService.SummarizeDocument(ctx, job)
	}

	job.EndTime = time.Now()
	if job.Status != jobmodel.JobStatusError {
		job.Status = jobmodel.JobStatusComplete
		job.CurrentStep = jobmodel.Complete
	}
	saveJobState(ctx, job, job.Status)
}

func removeWorker(reason string) {

	workerWaitGroup.Done()
	atomic.AddInt64(&currentWorkerCount, -1)
	logger.Info("Removed worker ", "reason", reason, "workerCount", currentWorkerCount)
	metrics.DecrementActiveWorkerCount()

}

func refreshFeeds(job jobmodel.Job, ctx context.Context) jobmodel.Job {
	job.CurrentStep = jobmodel.FeedFetching
	added, pruned, err := _feedRefresher.RefreshAll(ctx)
	if err != nil {
		logger.Error("Feed refresh failed", "err", err)
		job.Status = jobmodel.JobStatusError
		job.CurrentStep = jobmodel.Error
		job.Error = jobmodel.JobError{Code: 500, Message: err.Error(), Retry: true}
		return job
	}
	logger.Info("Feed refresh done", "added", added, "pruned", pruned)
	return job
}

func saveJobState(ctx context.Context, job jobmodel.Job, jobStatus jobmodel.JobStatus) {
	job.Status = jobStatus
	if err := _jobService.JobStore.SaveJob(ctx, job); err != nil {
		logger.Error("Failed to update status in Redis", "err", err)
	}
}
