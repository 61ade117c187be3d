package extract

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"

	"github.com/akolanti/CatalystAPI/internal/config"
	"github.com/akolanti/CatalystAPI/internal/customHttpClient"
)

// Download fetches a document into a temp file and returns the file path.
// The caller owns the file and removes it when done. Responses are capped
// at MaxDownloadSize.
func Download(ctx context.Context, docURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, docURL, nil)
	if err != nil {
		return "", fmt.Errorf("building download request: %w", err)
	}

	client := customHttpClient.New(config.DocumentDownloadTimeout)
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("downloading document: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("downloading document: unexpected status %s", resp.Status)
	}

	ext := ".pdf"
	if parsed, err := url.Parse(docURL); err == nil {
		if e := path.Ext(parsed.Path); e != "" {
			ext = e
		}
	}

	tmp, err := os.CreateTemp("", "catalyst-doc-*"+ext)
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}

	_, err = io.Copy(tmp, io.LimitReader(resp.Body, config.MaxDownloadSize))
	closeErr := tmp.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("writing download: %w", err)
	}
	return tmp.Name(), nil
}
