package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"dating/internal/client/notify"
	"dating/internal/errors"
)

// Kind is the client-side failure taxonomy, mirroring the server's error codes.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindAuth
	KindNotFound
	KindConflict
	KindUpstream
	KindServer
	KindNetwork
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuth:
		return "auth"
	case KindNotFound:
		return "not found"
	case KindConflict:
		return "conflict"
	case KindUpstream:
		return "upstream"
	case KindServer:
		return "server"
	case KindNetwork:
		return "network"
	default:
		return "unknown"
	}
}

// Error is a classified API failure.
type Error struct {
	Kind    Kind
	Status  int
	Code    string
	Message string
	// Fields holds field-level validation messages, when the server sent them.
	Fields map[string]string
	// Cause is set for transport failures.
	Cause error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s failure: %v", e.Kind, e.Cause)
	}

	return fmt.Sprintf("%s failure (%d %s): %s", e.Kind, e.Status, e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// IsKind reports whether err is a classified failure of kind.
func IsKind(err error, kind Kind) bool {
	var classified *Error
	if !errors.As(err, &classified) {
		return false
	}

	return classified.Kind == kind
}

type errorEnvelope struct {
	Error *struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
}

// Classify turns transport failures and error statuses into *Error, notifies the user and
// returns the failure to the caller. It never swallows an error.
func Classify(notifier notify.Notifier) Transformer {
	return func(ctx context.Context, req *Request, next Handler) (*Response, error) {
		resp, err := next(ctx, req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, err
			}
			classified := &Error{Kind: KindNetwork, Message: "The server could not be reached", Cause: err}
			notifier.Notify(notify.LevelError, classified.Message)

			return nil, classified
		}

		if resp.Status < http.StatusBadRequest {
			return resp, nil
		}

		classified := classifyResponse(resp)
		if message := notification(classified); message != "" {
			notifier.Notify(notify.LevelError, message)
		}

		return resp, classified
	}
}

func classifyResponse(resp *Response) *Error {
	classified := &Error{Status: resp.Status, Message: http.StatusText(resp.Status)}

	var envelope errorEnvelope
	if json.Unmarshal(resp.Body, &envelope) == nil && envelope.Error != nil {
		classified.Code = envelope.Error.Code
		if envelope.Error.Message != "" {
			classified.Message = envelope.Error.Message
		}
		var fields map[string]string
		if json.Unmarshal(envelope.Error.Details, &fields) == nil && len(fields) > 0 {
			classified.Fields = fields
		}
	}

	classified.Kind = kindOf(resp.Status, classified.Code)

	return classified
}

func kindOf(status int, code string) Kind {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return KindAuth
	case status == http.StatusNotFound:
		return KindNotFound
	case status == http.StatusConflict:
		return KindConflict
	case status >= http.StatusInternalServerError:
		return KindServer
	}

	switch code {
	case "UPLOAD_FAILED":
		return KindUpstream
	case "PHOTO_ALREADY_MAIN", "EMAIL_TAKEN":
		return KindConflict
	default:
		return KindValidation
	}
}

// notification is the user-facing text for a failure. Field-level validation errors are
// left to the caller, which shows them inline.
func notification(classified *Error) string {
	switch classified.Kind {
	case KindValidation:
		if len(classified.Fields) > 0 {
			return ""
		}

		return classified.Message
	case KindAuth:
		return "Unauthorized: " + classified.Message
	case KindNotFound:
		return "Not found"
	case KindServer:
		return "Something went wrong on the server, please try again later"
	default:
		return classified.Message
	}
}
