package portal

import (
	"context"
	"errors"
	"net/url"
	"strconv"

	"mavhu/models"
)

// User-facing messages for the crop-yield endpoint, keyed by HTTP status.
// Any status outside the table falls back to the server's message, then to
// cropYieldFallback.
var cropYieldStatusMessages = map[int]string{
	400: "Invalid request. Please check the selected company and year.",
	401: "Your session has expired. Please sign in again.",
	403: "You do not have permission to view this company's ESG dashboard.",
	404: "No crop yield forecast is available for this company yet.",
	422: "The requested year is outside the company's reporting period.",
	500: "The ESG reporting service hit an internal error. Please try again later.",
	503: "The ESG reporting service is temporarily unavailable. Please try again later.",
}

const cropYieldFallback = "Failed to load the crop yield forecast. Please try again."

// GetCropYieldForecast fetches the pre-computed crop-yield report for a
// company. year 0 means "latest available". The call is idempotent and is
// never retried automatically.
func (c *Client) GetCropYieldForecast(ctx context.Context, companyID string, year int) (*models.CropYieldReport, error) {
	var q url.Values
	if year != 0 {
		q = url.Values{"year": []string{strconv.Itoa(year)}}
	}

	var out models.CropYieldReport
	err := c.get(ctx, "/esg-dashboard/crop-yield-forecast/"+companyID, q, &out)
	if err == nil {
		return &out, nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if msg, ok := cropYieldStatusMessages[apiErr.Status]; ok {
			return nil, errors.New(msg)
		}
		if apiErr.Message != "" {
			return nil, errors.New(apiErr.Message)
		}
	}
	return nil, errors.New(cropYieldFallback)
}
