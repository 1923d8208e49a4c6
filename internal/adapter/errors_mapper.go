package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-auth-service/models"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusNotFound:            ErrNotFound,
	http.StatusInternalServerError: ErrInternalServerError,
}

func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	apiErr := &APIError{
		Status: resp.StatusCode(),
		kind:   ErrUnexpectedStatus,
		body:   strings.TrimSpace(string(resp.Body())),
	}
	if kind, ok := statusErrors[resp.StatusCode()]; ok {
		apiErr.kind = kind
	}

	var envelope models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &envelope); err == nil && envelope.Status != 0 {
		apiErr.Response = envelope
	}
	if apiErr.body == "" {
		apiErr.body = http.StatusText(resp.StatusCode())
	}

	return apiErr
}
