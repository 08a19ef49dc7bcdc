package predictor

import (
	"bikedemand/models"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// ErrInvalidResponse is returned when a successful response carries no numeric prediction.
var ErrInvalidResponse = errors.New("invalid response format from API")

// StatusError is returned for non-2xx responses from the prediction service.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("API Error: %d - %s", e.Code, e.Body)
}

// Client calls the bike demand prediction service.
type Client struct {
	baseURL string
	timeout time.Duration
}

// NewClient creates a client for the service at baseURL.
// A zero timeout leaves requests unbounded.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
	}
}

// BaseURL returns the service root the client posts to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Predict posts the full input to {baseURL}/predict and returns the forecast.
func (c *Client) Predict(input models.PredictionInput) (float64, error) {
	agent := fiber.Post(c.baseURL + "/predict")
	agent.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)
	agent.JSON(input)
	if c.timeout > 0 {
		agent.Timeout(c.timeout)
	}

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return 0, fmt.Errorf("error sending request: %w", errors.Join(errs...))
	}

	if code < fiber.StatusOK || code >= fiber.StatusMultipleChoices {
		return 0, &StatusError{Code: code, Body: string(body)}
	}

	return decodePrediction(body)
}

func decodePrediction(body []byte) (float64, error) {
	var result struct {
		Prediction any `json:"prediction"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	prediction, ok := result.Prediction.(float64)
	if !ok {
		return 0, ErrInvalidResponse
	}
	return prediction, nil
}
