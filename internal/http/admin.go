package http

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"propertysource-web/internal/export"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (h *Handler) adminPage(c *gin.Context) {
	overview, err := h.admin.Overview(c.Request.Context())
	if err != nil {
		if h.expiredLogin(c, err) {
			return
		}
		h.logger.WithError(err).Warn("load admin overview")
		h.render(c, http.StatusBadGateway, "admin", pageData{
			Title: "Admin dashboard",
			Error: "We couldn't load the admin data. Please try again.",
		})
		return
	}

	h.render(c, http.StatusOK, "admin", pageData{Title: "Admin dashboard", Content: overview})
}

func (h *Handler) adminBookingsExport(c *gin.Context) {
	bookings, err := h.admin.Bookings(c.Request.Context())
	if err != nil {
		if h.expiredLogin(c, err) {
			return
		}
		h.logger.WithError(err).Warn("load admin bookings")
		h.renderError(c, http.StatusBadGateway, "Export failed", "We couldn't load the bookings. Please try again.")
		return
	}

	var buf bytes.Buffer
	if err := export.WriteBookings(&buf, bookings); err != nil {
		h.logger.WithError(err).Error("export bookings")
		h.renderError(c, http.StatusInternalServerError, "Export failed", "We couldn't build the spreadsheet.")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="bookings.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
