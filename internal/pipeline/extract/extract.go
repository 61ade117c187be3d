package extract

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dslipak/pdf"
	"github.com/lu4p/cat"

	"github.com/akolanti/CatalystAPI/internal/config"
	"github.com/akolanti/CatalystAPI/pkg/logger_i"
)

// extraction method labels carried into job metadata
const (
	MethodPDF = "pdf"
	MethodCat = "cat"
)

var logger = logger_i.NewLogger("Extractor")

type Page struct {
	Number  int    `json:"number"`
	Content string `json:"content"`
}

// Result is the raw output of one extraction run. PageCount is the real
// page count for the pdf method and a character-based estimate for the
// fallback, which cannot see page boundaries.
type Result struct {
	Pages     []Page
	Method    string
	PageCount int
}

// Text joins the extracted pages into a single document string.
func (r Result) Text() string {
	parts := make([]string, 0, len(r.Pages))
	for _, p := range r.Pages {
		parts = append(parts, p.Content)
	}
	return strings.Join(parts, "\n")
}

// FromFile runs the extraction chain on a downloaded document: the pdf
// extractor first, then the generic text extractor. Only when every method
// fails is the document unreadable.
func FromFile(path string) (Result, error) {
	result, pdfErr := fromPDF(path)
	if pdfErr == nil && len(result.Pages) > 0 {
		return result, nil
	}
	if pdfErr != nil {
		logger.Warn("pdf extraction failed, trying fallback", "path", path, "error", pdfErr)
	}

	result, catErr := fromCat(path)
	if catErr == nil {
		return result, nil
	}
	return Result{}, fmt.Errorf("all extraction methods failed: pdf: %v, cat: %v", pdfErr, catErr)
}

func fromPDF(path string) (Result, error) {
	f, err := pdf.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("failed to open pdf: %w", err)
	}

	numPages := f.NumPage()
	var pages []Page
	for i := 1; i <= numPages; i++ {
		page := f.Page(i)
		if page.V.IsNull() {
			continue
		}

		content, err := protectExtract(page)
		if err != nil {
			// keep going, a single broken page should not sink the document
			logger.Warn("page extraction failed", "page", i, "error", err)
			continue
		}
		pages = append(pages, Page{Number: i, Content: content})
	}

	return Result{Pages: pages, Method: MethodPDF, PageCount: numPages}, nil
}

func fromCat(path string) (Result, error) {
	text, err := cat.File(path)
	if err != nil {
		return Result{}, fmt.Errorf("failed to extract text: %w", err)
	}

	// no page boundaries here, estimate from document length
	estimated := len(text) / config.CharsPerPage
	if estimated < 1 {
		estimated = 1
	}
	return Result{
		Pages:     []Page{{Number: 1, Content: text}},
		Method:    MethodCat,
		PageCount: estimated,
	}, nil
}

// protectExtract guards against malformed pages that hang the pdf library.
func protectExtract(page pdf.Page) (string, error) {
	type result struct {
		content string
		err     error
	}
	resChan := make(chan result, 1)

	go func() {
		content, err := page.GetPlainText(nil)
		resChan <- result{content, err}
	}()

	select {
	case r := <-resChan:
		return r.content, r.err
	case <-time.After(config.PageExtractTimeout):
		return "", errors.New("page extraction timeout")
	}
}
