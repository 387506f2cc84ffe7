// Package pipeline is the ordered chain of transformers every outbound API call passes through.
package pipeline

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"

	"dating/internal/client/notify"
	"dating/internal/client/session"
	"dating/internal/errors"
)

// Request is an outbound API call. Path is relative to the API base URL and may carry a query.
type Request struct {
	Method string
	Path   string
	Header http.Header
	Body   []byte
}

// NewRequest builds a request with an empty header set.
func NewRequest(method, path string, body []byte) *Request {
	return &Request{Method: method, Path: path, Header: make(http.Header), Body: body}
}

// Response is the raw transport result.
type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

func (r *Response) clone() *Response {
	return &Response{
		Status: r.Status,
		Header: r.Header.Clone(),
		Body:   bytes.Clone(r.Body),
	}
}

// Handler performs a request.
type Handler func(ctx context.Context, req *Request) (*Response, error)

// Transformer wraps the rest of the chain.
type Transformer func(ctx context.Context, req *Request, next Handler) (*Response, error)

// Chain composes transformers around dispatch; the first transformer is the outermost.
func Chain(dispatch Handler, transformers ...Transformer) Handler {
	handler := dispatch
	for i := len(transformers) - 1; i >= 0; i-- {
		transformer, next := transformers[i], handler
		handler = func(ctx context.Context, req *Request) (*Response, error) {
			return transformer(ctx, req, next)
		}
	}

	return handler
}

// Dispatcher sends requests over HTTP to baseURL.
func Dispatcher(client *http.Client, baseURL string) Handler {
	baseURL = strings.TrimRight(baseURL, "/")

	return func(ctx context.Context, req *Request) (*Response, error) {
		var body io.Reader
		if req.Body != nil {
			body = bytes.NewReader(req.Body)
		}

		httpReq, err := http.NewRequestWithContext(ctx, req.Method, baseURL+req.Path, body)
		if err != nil {
			return nil, errors.Wrap(err, "build request")
		}
		for key, values := range req.Header {
			for _, value := range values {
				httpReq.Header.Add(key, value)
			}
		}

		httpResp, err := client.Do(httpReq)
		if err != nil {
			return nil, errors.Wrapf(err, "%s %s", req.Method, req.Path)
		}
		defer httpResp.Body.Close()

		data, err := io.ReadAll(httpResp.Body)
		if err != nil {
			return nil, errors.Wrap(err, "read response body")
		}

		return &Response{Status: httpResp.StatusCode, Header: httpResp.Header, Body: data}, nil
	}
}

// Credentials attaches the current session token as a bearer credential.
// Without a session the request is forwarded unmodified.
func Credentials(store *session.Store) Transformer {
	return func(ctx context.Context, req *Request, next Handler) (*Response, error) {
		if current := store.Current(); current != nil {
			if req.Header == nil {
				req.Header = make(http.Header)
			}
			req.Header.Set("Authorization", "Bearer "+current.Token)
		}

		return next(ctx, req)
	}
}

// Options selects the components of the standard chain. Busy and Cache are optional.
type Options struct {
	Store    *session.Store
	Notifier notify.Notifier
	Busy     *BusyCounter
	Cache    *ResponseCache
}

// Standard composes the chain in its fixed order: credential attachment, then
// classification around everything below it, then busy tracking, then the GET cache,
// then dispatch.
func Standard(dispatch Handler, opts Options) Handler {
	transformers := []Transformer{
		Credentials(opts.Store),
		Classify(opts.Notifier),
	}
	if opts.Busy != nil {
		transformers = append(transformers, opts.Busy.Transformer())
	}
	if opts.Cache != nil {
		transformers = append(transformers, opts.Cache.Transformer())
	}

	return Chain(dispatch, transformers...)
}
