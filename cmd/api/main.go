// @title           Catalyst API
// @version         1.0
// @description     Disclosure feed ingestion, stock matching and async document summarization
// @termsOfService  http://swagger.io/terms/

// @contact.name    me lol
// @contact.url
// @contact.email

// @license.name    Apache 2.0
// @license.url     http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:3000
// @BasePath  /
// @schemes   http https
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/akolanti/CatalystAPI/internal/config"
	"github.com/akolanti/CatalystAPI/internal/data/store"
	"github.com/akolanti/CatalystAPI/internal/domain/feedModel"
	jobmodel "github.com/akolanti/CatalystAPI/internal/domain/jobModel"
	"github.com/akolanti/CatalystAPI/internal/feeds"
	"github.com/akolanti/CatalystAPI/internal/handlers"
	"github.com/akolanti/CatalystAPI/internal/job"
	"github.com/akolanti/CatalystAPI/internal/pipeline"
	"github.com/akolanti/CatalystAPI/internal/pipeline/llm"
	"github.com/akolanti/CatalystAPI/internal/pipeline/llm/gemini"
	"github.com/akolanti/CatalystAPI/internal/search"
	"github.com/akolanti/CatalystAPI/internal/server"
	"github.com/akolanti/CatalystAPI/internal/stocks"
	"github.com/akolanti/CatalystAPI/internal/worker"
	"github.com/akolanti/CatalystAPI/pkg/logger_i"
)

var (
	listenAddr        string
	requestCount      int64
	stopWorkerChannel chan bool
	workerWaitGroup   sync.WaitGroup
)

func main() {

	logger_i.Init()
	var logger = logger_i.NewLogger("main")

	//config
	flag.StringVar(&listenAddr, "listen-addr", config.ServerListenAddr, "server listen address")
	flag.Parse()

	//init buffered job channel
	jobChannel := make(chan jobmodel.Job, config.BufferLimit)
	dispatcherChannel := make(chan bool, 1)
	stopWorkerChannel = make(chan bool, 1)

	serviceContext, closeExternalServices := context.WithCancel(context.Background())
	defer closeExternalServices()

	//init job store and feed store, in-memory fallbacks when redis is offline
	var jobStore jobmodel.JobStore
	if redisJobs := store.GetRedisJobStore(serviceContext); redisJobs != nil {
		jobStore = redisJobs
	} else {
		logger.Error("Redis job store is offline, falling back to in-memory")
		jobStore = store.InitInMemoryJobStore()
	}

	var feedStore feedModel.FeedStore
	if redisFeeds := store.GetRedisFeedStore(serviceContext); redisFeeds != nil {
		feedStore = redisFeeds
	} else {
		logger.Error("Redis feed store is offline, falling back to in-memory")
		feedStore = store.InitInMemoryFeedStore()
	}

	serviceConfig := job.ServiceConfig{
		JobChannel:        jobChannel,
		RequestCount:      requestCount,
		DispatcherChannel: dispatcherChannel,
		JobStore:          jobStore,
	}
	logger.Info("Starting job service")
	service := job.InitJobService(serviceConfig)

	apiKey := config.GetRuntimeConfig().GeminiAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	llmProvider := gemini.GetGeminiClient(serviceContext, config.GeminiModelName, apiKey)
	if llmProvider == nil {
		logger.Error("Gemini client failed to initialize. Shutting down.")
		return
	}
	gatedProvider := llm.WithRetry(llmProvider, llm.NewGate(config.MinRequestInterval))

	pipelineService := pipeline.NewService(gatedProvider)

	lookup := stocks.NewLookupCache(config.StockReferenceFile)
	searchService := search.NewService(feedStore, lookup)

	refresher := feeds.NewRefresher(feeds.NewFetcher(), feedStore)

	handlers.InitJobHandler(service, searchService)

	//init worker pool
	worker.InitServices(service, pipelineService, refresher)
	worker.InitWorkerPool(stopWorkerChannel, &workerWaitGroup)

	//feed refresh: one round at startup, then on the cron schedule
	go handlers.EnqueueFeedRefresh()
	scheduler, err := feeds.NewScheduler(config.FeedRefreshSpec, handlers.EnqueueFeedRefresh)
	if err != nil {
		logger.Error("Invalid feed refresh schedule", "spec", config.FeedRefreshSpec, "error", err)
		return
	}
	scheduler.Start()
	defer scheduler.Stop()

	//server handling
	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)
	stopExecution := make(chan bool, 1)

	shutdownParams := server.ShutdownParams{
		GracefulShutdown: gracefulShutdown,
		StopExecution:    stopExecution,
		WorkerStop:       stopWorkerChannel,
		Group:            &workerWaitGroup,
		CloseServices:    closeExternalServices,
	}
	go server.ShutDownHandler(shutdownParams)
	go server.CreateServer(listenAddr)

	<-stopExecution
	logger.Info("Server stopped")
}
