package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/akolanti/CatalystAPI/internal/adapter"
	"github.com/akolanti/CatalystAPI/internal/adapter/utils"
	"github.com/akolanti/CatalystAPI/internal/api"
	"github.com/akolanti/CatalystAPI/internal/config"
	"github.com/akolanti/CatalystAPI/internal/domain/jobModel"
	"github.com/akolanti/CatalystAPI/internal/stocks"
	"github.com/akolanti/CatalystAPI/pkg/logger_i"
)

var logRH *logger_i.Logger

// technically i dont need this
// but i want to eventually remove jobHandler from handlers and set it in another package
// so in anticipation for that this struct exists
type newJobData struct {
	id           string
	traceId      string
	stockSymbol  string
	documentURLs []string
	jobType      jobModel.JobType
}

func GetHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	return
}

// SummarizeHandler godoc
// @Summary      Queue a document summarization job
// @Description  Accepts document URLs, initializes a background summarization job, and returns a job ID to track status.
// @Tags         Summarization
// @Accept       json
// @Produce      json
// @Param        request  body      api.SummarizeRequest  true  "Stock symbol and document URLs"
// @Success      202      {object}  api.InitJobResponse   "Job successfully created"
// @Failure      400      {object}  api.JobResponse       "Invalid request data"
// @Router       /summarize [post]
func SummarizeHandler(w http.ResponseWriter, request *http.Request) {

	if validateContext(request.Context()) {

		var requestData api.SummarizeRequest
		defer func(Body io.ReadCloser) {
			err := Body.Close()
			if err != nil {
				logRH.Error("Couldn't close the Summarize handler reader :", err)
			}
		}(request.Body)
		if err := json.NewDecoder(request.Body).Decode(&requestData); err != nil || !ValidateSummarizeRequest(requestData) {

			logRH.Warn("Bad Summarize Request: ", "error:", err, "request data:", requestData)
			WriteErrorResponse(w, http.StatusBadRequest, "", "Bad Request")
			return
		}

		newJob := newJobData{
			id:           utils.GetNewUUID(),
			traceId:      request.Context().Value(config.TRACE_ID_KEY).(string),
			stockSymbol:  stocks.ParseStockFormat(requestData.Stock),
			documentURLs: requestData.DocumentURLs,
			jobType:      jobModel.JobTypeSummarize,
		}
		CreateNewJob(newJob)
		writeJsonResponse(w, http.StatusAccepted, adapter.ToInitJobResponse(newJob.id))
		return
	}
	logRH.Warn("Invalid Context by request ", request.RemoteAddr)
}

// GetStatusHandler godoc
// @Summary      Get job status
// @Description  Retrieves the current status of a specific job using its ID.
// @Tags         Job Status
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Job ID "
// @Success      200  {object}  api.JobResponse "The current status of the job"
// @Failure      404  {object}  api.JobResponse   "Job not found (returns Error object within JobResponse)"
// @Router       /status/{id} [get]
func GetStatusHandler(w http.ResponseWriter, r *http.Request) {
	if validateContext(r.Context()) {
		//use chi get the url id
		idString := utils.GetChiURLParam(r, "id")
		result, isFound := validateId(idString, r.Context().Value(config.TRACE_ID_KEY).(string))

		logRH.Debug("Get Status Request:", "URL path", r.URL.Path)
		if !isFound {
			WriteErrorResponse(w, http.StatusNotFound, idString, "Job not found")
			return
		}

		writeJsonResponse(w, http.StatusOK, adapter.ToAPIResponse(result))
	}
}

// SearchHandler godoc
// @Summary      Search stored feed rows for a stock
// @Description  Matches the cumulative feed rows against a stock symbol (and its company name from the reference table), with keyword annotations.
// @Tags         Search
// @Accept       json
// @Produce      json
// @Param        stock  query     string  true  "Stock symbol, optionally exchange-prefixed (NSE:INFY)"
// @Success      200    {object}  api.SearchResponse "Matched rows"
// @Failure      400    {object}  api.JobResponse    "Missing stock parameter"
// @Failure      500    {object}  api.JobResponse    "Store failure"
// @Router       /search [get]
func SearchHandler(w http.ResponseWriter, r *http.Request) {
	if validateContext(r.Context()) {
		stockQuery := r.URL.Query().Get("stock")
		symbol := stocks.ParseStockFormat(stockQuery)
		if symbol == "" {
			WriteErrorResponse(w, http.StatusBadRequest, "", "stock query parameter is required")
			return
		}

		matches, err := handlerInstance.searchService.Search(r.Context(), stockQuery)
		if err != nil {
			logRH.Error("Search failed", "stock", symbol, "error", err)
			WriteErrorResponse(w, http.StatusInternalServerError, "", "Search failed")
			return
		}

		writeJsonResponse(w, http.StatusOK, adapter.ToSearchResponse(symbol, matches))
		return
	}
	logRH.Warn("Invalid Context by request ", r.RemoteAddr)
}

// SearchListHandler godoc
// @Summary      Search stored feed rows for every stock in the configured list
// @Description  Runs the feed row matching for each symbol in the user stock list file, returning per-symbol matches.
// @Tags         Search
// @Accept       json
// @Produce      json
// @Success      200  {object}  api.StockListSearchResponse "Per-symbol matched rows"
// @Failure      500  {object}  api.JobResponse             "Unreadable stock list or store failure"
// @Router       /search/list [get]
func SearchListHandler(w http.ResponseWriter, r *http.Request) {
	if validateContext(r.Context()) {
		results, err := handlerInstance.searchService.SearchList(r.Context(), config.StockListFile)
		if err != nil {
			logRH.Error("List search failed", "list", config.StockListFile, "error", err)
			WriteErrorResponse(w, http.StatusInternalServerError, "", "List search failed")
			return
		}

		writeJsonResponse(w, http.StatusOK, adapter.ToStockListSearchResponse(results))
		return
	}
	logRH.Warn("Invalid Context by request ", r.RemoteAddr)
}
