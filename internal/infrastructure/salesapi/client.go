package salesapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"estatesalehub/internal/domain/entity"
	"estatesalehub/pkg/errors"
	"estatesalehub/pkg/logger"
)

// Client consumes the sales feed API. It implements usecase.ListingCatalog,
// translating transport and envelope failures into the error taxonomy the
// sessions render from: NOT_FOUND, SERVICE_FAILURE, MALFORMED_RESPONSE.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) ListSales(ctx context.Context, filters entity.ListingFilters) ([]*entity.ListingSummary, error) {
	params := url.Values{}
	if filters.City != "" {
		params.Set("city", filters.City)
	}
	if filters.State != "" {
		params.Set("state", filters.State)
	}
	if filters.SaleType != "" {
		params.Set("sale_type", filters.SaleType)
	}
	if filters.Featured != nil && *filters.Featured {
		params.Set("featured", "true")
	}
	// Non-positive limits never go on the wire; the server default applies.
	if filters.Limit > 0 {
		params.Set("limit", strconv.Itoa(filters.Limit))
	}

	endpoint := c.baseURL + "/v1/sales"
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	body, status, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, errors.ServiceFailure(fmt.Sprintf("Sales service returned status %d", status), nil)
	}

	data, err := c.parseEnvelope(body)
	if err != nil {
		return nil, err
	}

	var listings []*entity.ListingSummary
	if err := json.Unmarshal(data, &listings); err != nil {
		logger.Error("Malformed sales list payload: %v", err)
		return nil, errors.MalformedResponse("Sales service returned an unreadable list", err)
	}

	if listings == nil {
		listings = []*entity.ListingSummary{}
	}
	return listings, nil
}

func (c *Client) GetSale(ctx context.Context, id int) (*entity.Listing, error) {
	endpoint := fmt.Sprintf("%s/v1/sales/%d", c.baseURL, id)

	body, status, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, errors.NotFound("Sale", nil)
	}
	if status != http.StatusOK {
		return nil, errors.ServiceFailure(fmt.Sprintf("Sales service returned status %d", status), nil)
	}

	data, err := c.parseEnvelope(body)
	if err != nil {
		return nil, err
	}

	var listing entity.Listing
	if err := json.Unmarshal(data, &listing); err != nil {
		logger.Error("Malformed sale detail payload: %v", err)
		return nil, errors.MalformedResponse("Sales service returned an unreadable sale", err)
	}

	return &listing, nil
}

func (c *Client) get(ctx context.Context, endpoint string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, 0, errors.Internal("Failed to build sales request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, errors.ServiceFailure("Sales service unreachable", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, errors.ServiceFailure("Failed to read sales response", err)
	}

	return body, resp.StatusCode, nil
}

func (c *Client) parseEnvelope(body []byte) (json.RawMessage, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		logger.Error("Malformed sales envelope: %v", err)
		return nil, errors.MalformedResponse("Sales service returned an unreadable envelope", err)
	}

	if !env.Success {
		message := "Sales service reported a failure"
		if env.Error != nil && env.Error.Message != "" {
			message = env.Error.Message
		}
		return nil, errors.ServiceFailure(message, nil)
	}

	return env.Data, nil
}
