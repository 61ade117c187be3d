package config

import (
	"log/slog"
	"time"
)

const (
	IS_PROD        = false
	LOG_LEVEL_PROD = slog.LevelInfo
	TRACE_ID_KEY   = "traceId"

	NoAuthBypass = true //flip for prod once tokens are provisioned
	AuthToken    = ""

	RATE_LIMIT_PER_SECOND       = 2
	BURST_RATE_LIMIT_PER_SECOND = 5

	//worker pool
	RequestsPerNewWorkerCount int64 = 10
	MaxWorkerCount            int64 = 10
	MinWorkerCount            int64 = 1
	IdleWorkerTimeout               = 1 * time.Minute
	//summarize jobs sit through downloads and rate-limited LLM retries
	JobExecutionTimeout = 15 * time.Minute

	//serverTimeouts
	ReadTimeout            = 5 * time.Second
	WriteTimeout           = 10 * time.Second
	IdleTimeout            = 120 * time.Second
	ShutdownContextTimeout = 10 * time.Second

	//server listening port
	ServerListenAddr = ":3000"

	//job requests buffer limit
	BufferLimit = 100

	//chunking thresholds - tuned for results/concall PDFs
	MaxChunkSize      = 500000
	ChunkingPageLimit = 50
	ChunkingCharLimit = 500000
	//safety check: ChunkingCharLimit / CharsPerToken
	ChunkingTokenLimit = 125000
	CharsPerToken      = 4
	//rough estimate used when an extractor cannot report pages
	CharsPerPage = 2000

	//llm
	GeminiModelName = "gemini-2.5-flash-lite"
	//6s between outbound calls keeps us under the 10-15 RPM free-tier quota
	MinRequestInterval = 6 * time.Second
	LLMMaxRetries      = 5
	LLMBaseRetryDelay  = 2 * time.Second
	//added on top of the server-suggested retry delay
	LLMRetryBuffer = 1 * time.Second

	//pdf extraction
	PageExtractTimeout      = 10 * time.Second
	MaxDownloadSize         = 32 << 20
	DocumentDownloadTimeout = 2 * time.Minute

	//feeds
	//the NSE CDN rejects feed requests without a primed session cookie
	NSEBaseURL       = "https://www.nseindia.com"
	FeedFetchTimeout = 30 * time.Second
	FeedRefreshSpec  = "@every 30m"
	//today plus the 9 previous days = 10 day window
	FeedRetentionDays = 10

	//stock reference table
	StockReferenceFile = "data/Stock Industry_Sector list.xlsx"
	//user stock list the batch search runs over, .txt/.csv/.xlsx
	StockListFile     = "data/stocklist.txt"
	RuntimeConfigFile = "config.json"

	MaxIdleConns        = 50
	MaxIdleConnsPerHost = 25
	IdleConnTimeout     = 60 * time.Second

	//redis
	redisHost     = "127.0.0.1"
	redisPort     = "6379"
	RedisAddr     = redisHost + ":" + redisPort
	RedisPassword = ""

	//redis has 16 DB we can use
	RedisJobStore  = 0
	RedisFeedStore = 1

	//redis timeouts
	RedisJobStoreTTL = 24 * time.Hour
	//feed rows live until the retention prune removes them
	RedisFeedStoreTTL = 0
)

// OverlapChars returns the chunk overlap for a given max chunk size.
// 10% of the max, floored at 50K characters.
func OverlapChars(maxChunkSize int) int {
	overlap := maxChunkSize / 10
	if overlap < 50000 {
		overlap = 50000
	}
	return overlap
}
