package apiclient

import (
	"context"
	"net/url"
	"strconv"

	"tripwise/internal/domain/models"
)

type ReportsAPI struct{ c *Client }

func (c *Client) Reports() ReportsAPI { return ReportsAPI{c} }

// Statistics returns dashboard totals with the monthly series of the given year (0 = current).
func (r ReportsAPI) Statistics(ctx context.Context, a Auth, year int) (models.Statistics, error) {
	var q url.Values
	if year > 0 {
		q = url.Values{"year": {strconv.Itoa(year)}}
	}
	var out models.Statistics
	err := r.c.get(ctx, a, "/admin/statistics", q, &out)
	return out, err
}
