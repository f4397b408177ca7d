package api

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"cashtrack/store"
)

// intQuery reads an integer query parameter, coercing missing, non-numeric
// or non-positive values to def.
func intQuery(c *gin.Context, name string, def int) int {
	v := c.Query(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

// optionalDay reads an optional YYYY-MM-DD query parameter. Absent values
// return nil; malformed values are invalid input.
func optionalDay(c *gin.Context, name string) (*time.Time, error) {
	v := c.Query(name)
	if v == "" {
		return nil, nil
	}
	t, err := store.ParseDay(name, v)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Accepted timestamp layouts for record dates, tried in order.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseDate parses a record date from any accepted layout.
func parseDate(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.ParseInLocation(layout, value, time.Local)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
