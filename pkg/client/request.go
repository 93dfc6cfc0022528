package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
)

// User facing messages.
const (
	MessageConnection      = "Erro de conexão com o servidor. Verifique sua internet ou tente outro navegador."
	MessageGeneric         = "Erro na requisição"
	MessageValidation      = "Erro de validação"
	MessageInvalidResponse = "Resposta inválida do servidor"
	MessageInvalidRequest  = "Não foi possível preparar a requisição"
)

// FailureKind classifies why a request did not succeed.
type FailureKind int

const (
	FailureNone            FailureKind = iota
	FailureTransport                   // No response was obtained
	FailureApplication                 // Error status with a structured body
	FailureGeneric                     // Error status without a structured body
	FailureInvalidResponse             // Success status with a body that could not be decoded
	FailureInvalidRequest              // The request body could not be encoded
)

func (k FailureKind) String() string {
	switch k {
	case FailureNone:
		return "none"
	case FailureTransport:
		return "transport"
	case FailureApplication:
		return "application"
	case FailureGeneric:
		return "generic"
	case FailureInvalidResponse:
		return "invalid response"
	case FailureInvalidRequest:
		return "invalid request"
	}
	return fmt.Sprintf("FailureKind(%d)", int(k))
}

// Result is the outcome of a request.
type Result[T any] struct {
	Success bool
	Data    T
	Status  int // HTTP status, 0 when no response was obtained
	Message string
	Errors  map[string][]string
	Kind    FailureKind
}

// Text returns the message to show to the user for a failed result.
// Field errors are listed one field per line, sorted by field name.
func (r Result[T]) Text() string {
	if len(r.Errors) == 0 {
		return r.Message
	}

	fields := make([]string, 0, len(r.Errors))
	for field := range r.Errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	lines := make([]string, 0, len(fields))
	for _, field := range fields {
		lines = append(lines, fmt.Sprintf("%s: %s", field, strings.Join(r.Errors[field], ", ")))
	}

	return fmt.Sprintf("%s:\n%s", MessageValidation, strings.Join(lines, "\n"))
}

// response is what a single attempt obtained.
type response struct {
	status int
	body   []byte
}

// Request sends a request to the endpoint, relative to the client's BaseURL.
//
// While retries are enabled and the retry ceiling has not passed since the first attempt,
// attempts that fail without a response are repeated after the retry interval.
// Then a final attempt is made. If that fails too, the result carries MessageConnection.
func Request[T any](ctx context.Context, c *Client, method, endpoint string, body any) Result[T] {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return Result[T]{Message: MessageInvalidRequest, Kind: FailureInvalidRequest}
		}
	}

	start := c.now()
	attempt := 0

	for c.Retry && c.now().Sub(start) < c.ceiling {
		attempt++
		res, err := c.do(ctx, method, endpoint, payload)
		if err == nil {
			return decode[T](res)
		}

		c.logger.Warn().Err(err).Str("method", method).Str("endpoint", endpoint).Int("attempt", attempt).Dur("wait", c.interval).Msg("request failed, retrying")
		if err := c.sleep(ctx, c.interval); err != nil {
			break
		}
	}

	attempt++
	res, err := c.do(ctx, method, endpoint, payload)
	if err != nil {
		c.logger.Error().Err(err).Str("method", method).Str("endpoint", endpoint).Int("attempts", attempt).Msg("request failed")
		return Result[T]{Message: MessageConnection, Kind: FailureTransport}
	}

	return decode[T](res)
}

// do makes a single attempt. An error means that no complete response was obtained.
func (c *Client) do(ctx context.Context, method, endpoint string, payload []byte) (response, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+endpoint, reader)
	if err != nil {
		return response{}, err
	}

	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return response{}, err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return response{}, fmt.Errorf("reading response body: %w", err)
	}

	return response{status: resp.StatusCode, body: b}, nil
}

// decode turns a response into a Result.
func decode[T any](res response) Result[T] {
	result := Result[T]{Status: res.status}

	if res.status < 200 || res.status > 299 {
		message, errs, ok := parseErrorBody(res.body)
		if !ok {
			result.Message = MessageGeneric
			result.Kind = FailureGeneric
			return result
		}

		result.Message = message
		result.Errors = errs
		result.Kind = FailureApplication
		return result
	}

	if len(bytes.TrimSpace(res.body)) > 0 {
		if err := json.Unmarshal(res.body, &result.Data); err != nil {
			result.Message = MessageInvalidResponse
			result.Kind = FailureInvalidResponse
			return result
		}
	}

	result.Success = true
	return result
}

type errorBody struct {
	Detail json.RawMessage `json:"detail"`
	Error  string          `json:"error"`
	Errors json.RawMessage `json:"errors"`
}

// fieldError is one entry of a list of validation errors.
type fieldError struct {
	Loc []any  `json:"loc"`
	Msg string `json:"msg"`
}

// parseErrorBody extracts the message and field errors from an error response.
// ok is false when the body has no structured error information.
func parseErrorBody(body []byte) (message string, errs map[string][]string, ok bool) {
	var b errorBody
	if err := json.Unmarshal(body, &b); err != nil {
		return "", nil, false
	}

	errs = make(map[string][]string)

	if len(b.Detail) > 0 {
		var detail string
		var list []fieldError
		if err := json.Unmarshal(b.Detail, &detail); err == nil {
			message = detail
		} else if err := json.Unmarshal(b.Detail, &list); err == nil {
			for _, e := range list {
				field := fieldName(e.Loc)
				errs[field] = append(errs[field], e.Msg)
			}
		}
	}

	if len(b.Errors) > 0 {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(b.Errors, &fields); err == nil {
			for field, raw := range fields {
				errs[field] = append(errs[field], messages(raw)...)
			}
		}
	}

	if message == "" {
		message = b.Error
	}

	if message == "" && len(errs) > 0 {
		message = MessageValidation
	}

	if message == "" {
		return "", nil, false
	}

	if len(errs) == 0 {
		errs = nil
	}

	return message, errs, true
}

// messages decodes a single message or a list of messages.
func messages(raw json.RawMessage) []string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return []string{s}
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list
	}

	return nil
}

// fieldName joins a validation error location, leaving out the "body" prefix.
func fieldName(loc []any) string {
	parts := make([]string, 0, len(loc))
	for i, p := range loc {
		if i == 0 && p == "body" {
			continue
		}
		parts = append(parts, fmt.Sprint(p))
	}

	if len(parts) == 0 {
		return "body"
	}
	return strings.Join(parts, ".")
}
