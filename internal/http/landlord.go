package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"propertysource-web/internal/domain"
	"propertysource-web/internal/service"
)

type slotForm struct {
	PropertyID string
	Date       string
	StartTime  string
	EndTime    string
}

type landlordView struct {
	Properties []domain.Property
	Form       slotForm
}

func (h *Handler) landlordDashboard(c *gin.Context) {
	h.showDashboard(c, http.StatusOK, slotForm{
		StartTime: service.DefaultSlotStart,
		EndTime:   service.DefaultSlotEnd,
	}, pageData{})
}

func (h *Handler) createSlot(c *gin.Context) {
	form := slotForm{
		PropertyID: c.PostForm("propertyId"),
		Date:       c.PostForm("date"),
		StartTime:  c.PostForm("startTime"),
		EndTime:    c.PostForm("endTime"),
	}

	_, err := h.landlord.CreateSlot(c.Request.Context(), service.SlotInput{
		PropertyID: domain.ID(form.PropertyID),
		Date:       form.Date,
		StartTime:  form.StartTime,
		EndTime:    form.EndTime,
	})

	status := http.StatusOK
	data := pageData{}
	switch {
	case err == nil:
		data.Notice = "Slot created"
	case errors.Is(err, service.ErrInvalidSlot):
		status = http.StatusBadRequest
		data.Error = sentence(strings.TrimPrefix(err.Error(), service.ErrInvalidSlot.Error()+": "))
	default:
		if h.expiredLogin(c, err) {
			return
		}
		h.logger.WithError(err).Warn("create slot")
		status = http.StatusBadGateway
		data.Error = "We couldn't create that slot. Please try again."
	}

	h.showDashboard(c, status, form, data)
}

func (h *Handler) showDashboard(c *gin.Context, status int, form slotForm, data pageData) {
	properties, err := h.landlord.Properties(c.Request.Context())
	if err != nil {
		if h.expiredLogin(c, err) {
			return
		}
		h.logger.WithError(err).Warn("list landlord properties")
		if data.Error == "" {
			data.Error = "We couldn't load your properties. Please try again."
		}
		properties = []domain.Property{}
	}
	if form.PropertyID == "" && len(properties) > 0 {
		form.PropertyID = properties[0].ID.String()
	}

	data.Title = "Landlord dashboard"
	data.Content = landlordView{Properties: properties, Form: form}
	h.render(c, status, "landlord", data)
}

func sentence(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
