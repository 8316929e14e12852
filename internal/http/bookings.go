package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"propertysource-web/internal/domain"
)

// bookingErrors maps the ?error= codes set by redirects to messages.
var bookingErrors = map[string]string{
	"cancel": "We couldn't cancel that viewing. Please try again.",
}

type bookingsView struct {
	Upcoming []domain.Booking
	Past     []domain.Booking
}

func (h *Handler) studentBookings(c *gin.Context) {
	upcoming, past, err := h.bookings.Bookings(c.Request.Context())
	if err != nil {
		if h.expiredLogin(c, err) {
			return
		}
		h.logger.WithError(err).Warn("list student bookings")
		h.render(c, http.StatusBadGateway, "bookings", pageData{
			Title:   "My viewings",
			Error:   "We couldn't load your viewings. Please try again.",
			Content: bookingsView{},
		})
		return
	}

	h.render(c, http.StatusOK, "bookings", pageData{
		Title:   "My viewings",
		Error:   bookingErrors[c.Query("error")],
		Content: bookingsView{Upcoming: upcoming, Past: past},
	})
}

func (h *Handler) cancelBooking(c *gin.Context) {
	id := domain.ID(c.Param("id"))
	if err := h.bookings.Cancel(c.Request.Context(), id); err != nil {
		if h.expiredLogin(c, err) {
			return
		}
		h.logger.WithError(err).WithField("booking", id.String()).Warn("cancel booking")
		c.Redirect(http.StatusSeeOther, "/student/bookings?error=cancel")
		return
	}
	c.Redirect(http.StatusSeeOther, "/student/bookings")
}
