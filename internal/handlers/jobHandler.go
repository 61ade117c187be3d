package handlers

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/akolanti/CatalystAPI/internal/adapter/utils"
	"github.com/akolanti/CatalystAPI/internal/api"
	"github.com/akolanti/CatalystAPI/internal/config"
	"github.com/akolanti/CatalystAPI/internal/domain/jobModel"
	"github.com/akolanti/CatalystAPI/internal/job"
	"github.com/akolanti/CatalystAPI/internal/metrics"
	"github.com/akolanti/CatalystAPI/internal/search"
	"github.com/akolanti/CatalystAPI/pkg/logger_i"
)

var (
	handlerInstance *JobHandler //private singleton
	once            sync.Once
	logJH           *logger_i.Logger
)

type JobHandler struct {
	service       *job.Service
	searchService *search.Service
}

func InitJobHandler(jobService *job.Service, searchService *search.Service) {
	once.Do(func() {
		handlerInstance = &JobHandler{service: jobService, searchService: searchService}

		logJH = logger_i.NewLogger("JobHandler")
		logRH = logger_i.NewLogger("RequestHandler")
		logJH.Info("Starting job handler")
	})

}

func CreateNewJob(newJob newJobData) {
	logJH.With("traceId", newJob.traceId, "job id", newJob.id)
	logJH.Info("To create new job")
	handlerInstance.pushToJobChannel(newJob)
}

// EnqueueFeedRefresh queues a feed refresh run through the same job channel
// the summarize requests use. The cron scheduler calls this.
func EnqueueFeedRefresh() {
	if handlerInstance == nil {
		return
	}
	CreateNewJob(newJobData{
		id:      utils.GetNewUUID(),
		traceId: utils.GetNewUUID(),
		jobType: jobModel.JobTypeFeedRefresh,
	})
}

func GetJobStatus(id string, traceId string) (result jobModel.Job, isFound bool) {
	ctxC := context.WithValue(context.Background(), config.TRACE_ID_KEY, traceId)
	if handlerInstance != nil {
		return handlerInstance.service.JobStore.GetJob(ctxC, id)
	}
	return result, false
}

func ValidateSummarizeRequest(req api.SummarizeRequest) bool {
	if handlerInstance == nil {
		return false
	}
	logJH.Debug(" Validating summarize request ", "stock :", req.Stock)
	if len(req.DocumentURLs) == 0 {
		return false
	}
	for _, u := range req.DocumentURLs {
		if u == "" {
			return false
		}
	}
	return true
}

// private methods
func (h *JobHandler) pushToJobChannel(newJob newJobData) {

	_job := jobModel.Job{}
	_job.Id = newJob.id
	_job.CreatedTime = time.Now()
	_job.TraceId = newJob.traceId
	_job.Status = jobModel.JobStatusQueued
	_job.JobType = newJob.jobType

	if newJob.jobType == jobModel.JobTypeFeedRefresh {
		_job.CurrentStep = jobModel.FeedRefreshInit
	} else {
		_job.CurrentStep = jobModel.SummarizeInit
		_job.JobPayload.StockSymbol = newJob.stockSymbol
		_job.JobPayload.DocumentURLs = newJob.documentURLs
	}

	//metrics
	metrics.IncrementJobsInQueue()

	h.service.JobChannel <- _job //this is a blocking send to prevent the system from being overwhelmed
	logJH.Info("Created new job")

	//we will start a new worker every 10 requests - can also be configured
	// or
	//for performance - a new worker is added for a summarize type job
	//summarization sits through download, extraction and rate limited LLM calls
	//worker will be removed if it has idle time - so it should be ok
	//this also allows us to only keep 1 worker running at most times therefore cutting resource spend

	accurateCount := atomic.AddInt64(&h.service.RequestCount, 1) //after sending a request increment counter
	if accurateCount%config.RequestsPerNewWorkerCount == 0 || _job.JobType == jobModel.JobTypeSummarize {
		metrics.StartDispatcherSignalCount() //metrics
		logJH.Debug("Worker count ", accurateCount)
		h.service.DispatcherChannel <- true
	}
}
