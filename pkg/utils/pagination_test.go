package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func contextWithQuery(query string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?"+query, nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestGetLimitParam(t *testing.T) {
	tests := []struct {
		query string
		want  int
	}{
		{"", 20},
		{"limit=abc", 20},
		{"limit=0", 20},
		{"limit=-5", 20},
		{"limit=35", 35},
		{"limit=100", 100},
		{"limit=500", 100},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, GetLimitParam(contextWithQuery(tt.query)), tt.query)
	}
}

func TestGetPaginationParams(t *testing.T) {
	params := GetPaginationParams(contextWithQuery("page=3&limit=10"))
	assert.Equal(t, 3, params.Page)
	assert.Equal(t, 10, params.PageSize)
	assert.Equal(t, 20, params.Offset)

	params = GetPaginationParams(contextWithQuery(""))
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 20, params.PageSize)
	assert.Equal(t, 0, params.Offset)
}
