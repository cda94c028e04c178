package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/medinventory/medinv/models"
)

// mapHTTPError converts a non-2xx response into one of the package sentinel
// errors, carrying the server's message text. The server error body is
// `{"message": string | []string}`; message lists are joined into a single
// normalized string.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	message := extractMessage(resp)

	switch resp.StatusCode() {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", ErrValidation, message)
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrUnauthorized, message)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, message)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, message)
	default:
		if resp.StatusCode() >= http.StatusInternalServerError {
			return fmt.Errorf("%w: %s", ErrInternalServerError, message)
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), message)
	}
}

func extractMessage(resp *resty.Response) string {
	var apiErr models.APIError
	if err := json.Unmarshal(resp.Body(), &apiErr); err == nil {
		if joined := apiErr.Message.Join(); joined != "" {
			return joined
		}
		if apiErr.Error != "" {
			return apiErr.Error
		}
	}

	if body := strings.TrimSpace(string(resp.Body())); body != "" {
		return body
	}
	return http.StatusText(resp.StatusCode())
}
