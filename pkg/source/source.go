// Package source opens the Opcodes.json instruction table.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
)

// DefaultURL is where gbdev publishes the instruction table.
const DefaultURL = "https://gbdev.io/gb-opcodes/Opcodes.json"

// ErrStatus is returned when the server answers with a non-2xx status.
var ErrStatus = errors.New("unexpected status")

// Source yields the raw instruction table.
type Source interface {
	Open(ctx context.Context) (io.ReadCloser, error)
	String() string
}

// HTTP fetches the table with a single GET request.
type HTTP struct {
	URL    string
	Client *http.Client // http.DefaultClient when nil
}

// Open performs the request and returns the response body.
func (h HTTP) Open(ctx context.Context) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.URL, nil)
	if err != nil {
		return nil, err
	}
	client := h.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("GET %s: %w: %s", h.URL, ErrStatus, resp.Status)
	}
	return resp.Body, nil
}

func (h HTTP) String() string {
	return h.URL
}

// File reads the table from a local copy.
type File struct {
	Path string
}

// Open opens the file.
func (f File) Open(context.Context) (io.ReadCloser, error) {
	r, err := os.Open(f.Path)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (f File) String() string {
	return f.Path
}

// New returns a File source when path is set and an HTTP source for url
// otherwise.
func New(url, path string) Source {
	if path != "" {
		return File{Path: path}
	}
	return HTTP{URL: url}
}
