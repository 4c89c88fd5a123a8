package handler

import (
	"strconv"
	"time"

	"fintrack/internal/apperr"
	"fintrack/internal/repository"

	"github.com/gin-gonic/gin"
)

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

// parseRange reads the optional start_date/end_date query pair. Both
// must be supplied together; the filter is inclusive on both ends.
func parseRange(c *gin.Context) (*repository.DateRange, error) {
	startStr := c.Query("start_date")
	endStr := c.Query("end_date")
	if startStr == "" && endStr == "" {
		return nil, nil
	}
	if startStr == "" || endStr == "" {
		return nil, apperr.Invalid("start_date and end_date must be supplied together")
	}
	start, err := parseDate(startStr)
	if err != nil {
		return nil, apperr.Invalid("start_date must be a valid date")
	}
	end, err := parseDate(endStr)
	if err != nil {
		return nil, apperr.Invalid("end_date must be a valid date")
	}
	if end.Before(start) {
		return nil, apperr.Invalid("end_date must not be before start_date")
	}
	return &repository.DateRange{Start: start, End: end}, nil
}

// parseLimit reads the optional limit query param; zero means "use the
// service default".
func parseLimit(c *gin.Context) (int, error) {
	s := c.Query("limit")
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, apperr.Invalid("limit must be a positive integer")
	}
	return n, nil
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, apperr.Invalid("id must be a positive integer")
	}
	return uint(id), nil
}
