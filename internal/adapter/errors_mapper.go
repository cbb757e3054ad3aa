package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-forms-auth/models"
)

var statusErrorMap = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusNotFound:            ErrNotFound,
	http.StatusTooManyRequests:     ErrTooManyRequests,
	http.StatusInternalServerError: ErrInternalServerError,
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	kind, ok := statusErrorMap[resp.StatusCode()]
	if !ok {
		kind = ErrUnexpectedStatus
	}

	return &ResponseError{
		StatusCode:  resp.StatusCode(),
		UserMessage: userMessage(resp.Body()),
		kind:        kind,
	}
}

func userMessage(body []byte) string {
	var errResp models.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.UserMessage != "" {
		return errResp.UserMessage
	}
	return strings.TrimSpace(string(body))
}
