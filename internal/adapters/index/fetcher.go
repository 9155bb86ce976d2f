// Package index implements the package index ports: downloading index
// documents and resolving platform references against them.
package index

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
	"go.trai.ch/arduino2nix/internal/build"
	"go.trai.ch/arduino2nix/internal/core/domain"
	"go.trai.ch/arduino2nix/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.IndexFetcher = (*Fetcher)(nil)

// Fetcher implements ports.IndexFetcher on top of resty. It performs exactly
// one GET per call; deadlines come from the caller's context.
type Fetcher struct {
	client *resty.Client
}

// NewFetcher creates a Fetcher that serves http, https and file URLs.
func NewFetcher(log ports.Logger) *Fetcher {
	return newFetcherWithClient(&http.Client{Transport: newTransport()}, log)
}

// newFetcherWithClient creates a Fetcher on top of a custom http client (used for testing).
func newFetcherWithClient(hc *http.Client, log ports.Logger) *Fetcher {
	client := resty.NewWithClient(hc).
		SetRetryCount(0).
		SetHeader("User-Agent", "arduino2nix/"+build.Version).
		SetHeader("Accept", "application/json")
	if log != nil {
		client.SetLogger(restyLogger{log: log})
	}
	return &Fetcher{client: client}
}

// newTransport clones the default transport and registers a file handler so
// offline mirrors and tests can use file:// index URLs.
func newTransport() *http.Transport {
	base, ok := http.DefaultTransport.(*http.Transport)
	if !ok {
		base = &http.Transport{}
	}
	t := base.Clone()
	t.RegisterProtocol("file", http.NewFileTransport(http.Dir("/")))
	return t
}

// Fetch downloads the document at url.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	resp, err := f.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(errors.Join(domain.ErrIndexFetchFailed, err), "request failed"), "url", url)
	}

	if !resp.IsSuccess() {
		statusErr := zerr.Wrap(domain.ErrIndexFetchFailed, "unexpected status "+resp.Status())
		statusErr = zerr.With(statusErr, "url", url)
		return nil, zerr.With(statusErr, "status_code", resp.StatusCode())
	}

	return resp.Body(), nil
}

// restyLogger forwards resty's internal diagnostics to the application logger.
type restyLogger struct {
	log ports.Logger
}

func (l restyLogger) Errorf(format string, v ...any) {
	l.log.Warn(fmt.Sprintf(format, v...))
}

func (l restyLogger) Warnf(format string, v ...any) {
	l.log.Warn(fmt.Sprintf(format, v...))
}

// Debugf drops resty's request dumps; debug mode is never enabled.
func (l restyLogger) Debugf(string, ...any) {}
