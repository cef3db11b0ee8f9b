// Package acl is the anti-corruption layer between boardctl and a running
// board's HTTP API. Wire representations live in acl/board; this package
// holds the client and maps problem responses back to domain errors.
package acl

import (
	"cmp"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/project-board/internal/adapters/clients/acl/board"
	"github.com/jsamuelsen11/project-board/internal/domain"
)

// maxProblemSize bounds how much of an error body is read.
const maxProblemSize = 64 << 10

// problemSentinels maps the board's problem types to domain errors. A list
// refusing a drag payload is a validation failure on the client side.
var problemSentinels = map[string]error{
	board.ProblemInvalidInput:       domain.ErrValidation,
	board.ProblemUnsupportedPayload: domain.ErrValidation,
	board.ProblemProjectNotFound:    domain.ErrNotFound,
	board.ProblemConflict:           domain.ErrConflict,
	board.ProblemForbidden:          domain.ErrForbidden,
	board.ProblemBoardUnavailable:   domain.ErrUnavailable,
	board.ProblemTimeout:            domain.ErrUnavailable,
}

// TranslateHTTPError maps an error response from the board to a domain
// error. The problem type decides the sentinel when the body is
// application/problem+json; otherwise the status code does. Field errors
// on a validation problem become a *domain.ValidationError.
func TranslateHTTPError(resp *http.Response) error {
	p := readProblem(resp)
	detail := cmp.Or(p.Detail, http.StatusText(resp.StatusCode))

	sentinel, ok := problemSentinels[p.Type]
	if !ok {
		sentinel = statusSentinel(resp.StatusCode)
	}
	if sentinel == nil {
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, detail)
	}

	if sentinel == domain.ErrValidation && len(p.Errors) > 0 {
		return toValidationError(p.Errors)
	}
	return fmt.Errorf("%s: %w", detail, sentinel)
}

// statusSentinel covers responses without a recognised problem type, such
// as a proxy's plain-text 502.
func statusSentinel(status int) error {
	switch {
	case status == http.StatusNotFound:
		return domain.ErrNotFound
	case status == http.StatusBadRequest, status == http.StatusUnprocessableEntity,
		status == http.StatusUnsupportedMediaType:
		return domain.ErrValidation
	case status == http.StatusConflict:
		return domain.ErrConflict
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return domain.ErrForbidden
	case status >= http.StatusInternalServerError:
		return domain.ErrUnavailable
	default:
		return nil
	}
}

// readProblem decodes an RFC 9457 body. Other bodies yield a zero value.
func readProblem(resp *http.Response) board.ProblemDTO {
	var p board.ProblemDTO
	if resp.Body == nil {
		return p
	}

	mediaType, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/problem+json" {
		return p
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxProblemSize)).Decode(&p); err != nil {
		return board.ProblemDTO{}
	}
	return p
}

func toValidationError(fields []board.FieldProblemDTO) *domain.ValidationError {
	out := make(map[string]string, len(fields))
	for _, f := range fields {
		out[strings.TrimPrefix(f.Location, "body.")] = f.Message
	}
	return &domain.ValidationError{Fields: out}
}
