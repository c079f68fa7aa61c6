package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// MaxFileSize bounds uploaded import documents.
const MaxFileSize = 10 << 20

var ErrFileTooLarge = errors.New("file is too large")

// FilesAPI fetches documents users upload to the chat.
type FilesAPI struct {
	http *http.Client
}

func NewFilesAPI(timeout time.Duration) *FilesAPI {
	return &FilesAPI{http: &http.Client{Timeout: timeout}}
}

func (f *FilesAPI) Download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := f.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download failed: %s", resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxFileSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > MaxFileSize {
		return nil, ErrFileTooLarge
	}
	return data, nil
}
