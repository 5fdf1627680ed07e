package salesapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"estatesalehub/internal/domain/entity"
	"estatesalehub/pkg/errors"
)

func TestListSalesSendsFilters(t *testing.T) {
	var gotQuery map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		assert.Equal(t, "/v1/sales", r.URL.Path)
		w.Write([]byte(`{"success":true,"data":[{"id":"1","title":"Estate Sale"}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	featured := true
	sales, err := client.ListSales(context.Background(), entity.ListingFilters{
		City:     "Portland",
		State:    "OR",
		SaleType: "estate_sale",
		Featured: &featured,
		Limit:    25,
	})

	assert.NoError(t, err)
	assert.Len(t, sales, 1)
	assert.Equal(t, []string{"Portland"}, gotQuery["city"])
	assert.Equal(t, []string{"OR"}, gotQuery["state"])
	assert.Equal(t, []string{"estate_sale"}, gotQuery["sale_type"])
	assert.Equal(t, []string{"true"}, gotQuery["featured"])
	assert.Equal(t, []string{"25"}, gotQuery["limit"])
}

func TestListSalesOmitsEmptyAndNonPositiveParams(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		w.Write([]byte(`{"success":true,"data":[]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	sales, err := client.ListSales(context.Background(), entity.ListingFilters{Limit: 0})

	assert.NoError(t, err)
	assert.NotNil(t, sales)
	assert.Empty(t, sales)
}

func TestListSalesNullDataYieldsEmptySlice(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":null}`))
	}))
	defer server.Close()

	sales, err := NewClient(server.URL).ListSales(context.Background(), entity.ListingFilters{})

	assert.NoError(t, err)
	assert.NotNil(t, sales)
	assert.Empty(t, sales)
}

func TestListSalesEnvelopeFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"error":{"code":"INTERNAL_ERROR","message":"Something went wrong"}}`))
	}))
	defer server.Close()

	_, err := NewClient(server.URL).ListSales(context.Background(), entity.ListingFilters{})

	assert.True(t, errors.Is(err, "SERVICE_FAILURE"))
	assert.Contains(t, err.Error(), "Something went wrong")
}

func TestListSalesMalformedEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>gateway error</html>`))
	}))
	defer server.Close()

	_, err := NewClient(server.URL).ListSales(context.Background(), entity.ListingFilters{})

	assert.True(t, errors.Is(err, "MALFORMED_RESPONSE"))
}

func TestListSalesMalformedPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":{"not":"a list"}}`))
	}))
	defer server.Close()

	_, err := NewClient(server.URL).ListSales(context.Background(), entity.ListingFilters{})

	assert.True(t, errors.Is(err, "MALFORMED_RESPONSE"))
}

func TestListSalesServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := NewClient(server.URL).ListSales(context.Background(), entity.ListingFilters{})

	assert.True(t, errors.Is(err, "SERVICE_FAILURE"))
}

func TestListSalesTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	_, err := NewClient(server.URL).ListSales(context.Background(), entity.ListingFilters{})

	assert.True(t, errors.Is(err, "SERVICE_FAILURE"))
}

func TestGetSale(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/sales/12", r.URL.Path)
		w.Write([]byte(`{"success":true,"data":{"id":12,"title":"Mid-Century Estate Sale"}}`))
	}))
	defer server.Close()

	listing, err := NewClient(server.URL).GetSale(context.Background(), 12)

	assert.NoError(t, err)
	assert.Equal(t, 12, listing.ID)
	assert.Equal(t, "Mid-Century Estate Sale", listing.Title)
}

func TestGetSaleNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"success":false,"error":{"code":"NOT_FOUND","message":"Sale not found"}}`))
	}))
	defer server.Close()

	_, err := NewClient(server.URL).GetSale(context.Background(), 999)

	assert.True(t, errors.Is(err, "NOT_FOUND"))
}
