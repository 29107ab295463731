package client

import (
	"compress/gzip"
	"compress/zlib"
	"fmt"
	"io"
	"net/http"
	"strings"
)

type multiCloser struct {
	io.Reader
	closers []io.Closer
}

func (c *multiCloser) Close() error {
	var firstErr error
	for _, closer := range c.closers {
		if err := closer.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func readBody(resp *http.Response) ([]byte, error) {
	reader, err := bodyReader(resp)
	if err != nil {
		return nil, err
	}
	defer reader.Close()
	return io.ReadAll(reader)
}

// bodyReader decodes gzip and deflate bodies. Other encodings pass through.
func bodyReader(resp *http.Response) (io.ReadCloser, error) {
	switch strings.ToLower(strings.TrimSpace(resp.Header.Get("Content-Encoding"))) {
	case "", "identity":
		return resp.Body, nil
	case "gzip":
		gr, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("gzip reader: %w", err)
		}
		return &multiCloser{Reader: gr, closers: []io.Closer{gr, resp.Body}}, nil
	case "deflate":
		zr, err := zlib.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("deflate reader: %w", err)
		}
		return &multiCloser{Reader: zr, closers: []io.Closer{zr, resp.Body}}, nil
	default:
		return resp.Body, nil
	}
}
