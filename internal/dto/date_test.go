package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/SscSPs/bizbooks/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_UnmarshalJSON(t *testing.T) {
	var body struct {
		Day   dto.Date  `json:"day"`
		Stamp dto.Date  `json:"stamp"`
		Opt   *dto.Date `json:"opt"`
	}
	err := json.Unmarshal([]byte(`{"day":"2026-03-09","stamp":"2026-03-09T10:30:00Z"}`), &body)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), body.Day.Time())
	assert.Equal(t, time.Date(2026, 3, 9, 10, 30, 0, 0, time.UTC), body.Stamp.Time())
	assert.Nil(t, body.Opt.TimePtr())

	fallback := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, fallback, body.Opt.TimeOr(fallback))

	err = json.Unmarshal([]byte(`{"day":"09/03/2026"}`), &body)
	assert.Error(t, err)
}

func TestDateRange_Bounds(t *testing.T) {
	r := dto.DateRange{EndDate: time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)}
	start, end := r.Bounds()
	assert.Nil(t, start)
	require.NotNil(t, end)
	assert.True(t, end.After(time.Date(2026, 3, 9, 23, 59, 59, 0, time.UTC)))
	assert.True(t, end.Before(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)))
}

func TestNewPagination(t *testing.T) {
	p := dto.PageQuery{Page: 2, Limit: 10}.Params()
	assert.Equal(t, dto.Pagination{Page: 2, Limit: 10, Total: 21, Pages: 3}, dto.NewPagination(p, 21))
}
