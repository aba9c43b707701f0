package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/inkpress/printshop/internal/domain/errors"
	"github.com/inkpress/printshop/internal/server/http/dto"
)

const dueDateLayout = "2006-01-02"

// pathID extracts the numeric :id path parameter. On failure it writes the
// 400 response and reports false.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid id"})
		return 0, false
	}
	return id, true
}

// parseDueDate converts the wire date string into a time value.
func parseDueDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(dueDateLayout, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func formatDueDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dueDateLayout)
	return &s
}

// respondError maps domain failures onto the wire contract: validation 400,
// not-found 404, unavailable dependency 503, everything else 500 with the
// operation's fallback message. Diagnostic detail leaks only in dev mode.
func respondError(c *gin.Context, err error, fallback string, dev bool) {
	switch {
	case domainErrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domainErrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: fallback})
	case errors.Is(err, domainErrors.ErrUnavailable):
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: fallback})
	default:
		body := dto.ErrorResponse{Error: fallback}
		if dev && err != nil {
			body.Detail = err.Error()
		}
		c.JSON(http.StatusInternalServerError, body)
	}
}
