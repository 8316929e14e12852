package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"propertysource-web/internal/backend"
	"propertysource-web/internal/domain"
	"propertysource-web/internal/service"
)

const (
	msgBooked      = "Viewing booked! A confirmation has been emailed to you."
	msgSlotTaken   = "That slot has just been booked. Please select another available time."
	msgBookFailed  = "We couldn't book that viewing. Please try again."
	msgSlotMissing = "Please select a time slot."
)

type bookingForm struct {
	SlotID       string
	FullName     string
	Email        string
	MobileNumber string
	Notes        string
}

type propertyView struct {
	Property     *domain.Property
	Days         []domain.SlotDay
	SelectedDate string
	TimeSlots    []domain.Slot
	CanBook      bool
	Form         bookingForm
}

func (v propertyView) IsRoom() bool {
	return v.Property != nil && v.Property.ListingType == domain.ListingRoom
}

func (h *Handler) propertyDetails(c *gin.Context) {
	form := bookingForm{}
	if user := currentUser(c); user != nil {
		form.FullName = user.FullName
		form.Email = user.Email
	}
	h.showProperty(c, http.StatusOK, c.Query("date"), form, pageData{})
}

func (h *Handler) bookViewing(c *gin.Context) {
	id := domain.ID(c.Param("id"))
	form := bookingForm{
		SlotID:       strings.TrimSpace(c.PostForm("slotId")),
		FullName:     c.PostForm("fullName"),
		Email:        c.PostForm("email"),
		MobileNumber: c.PostForm("mobileNumber"),
		Notes:        c.PostForm("notes"),
	}
	date := c.PostForm("date")

	err := h.bookings.Book(c.Request.Context(), id, service.BookingInput{
		SlotID:       domain.ID(form.SlotID),
		FullName:     form.FullName,
		Email:        form.Email,
		MobileNumber: form.MobileNumber,
		Notes:        form.Notes,
	})

	status := http.StatusOK
	data := pageData{}
	switch {
	case err == nil:
		data.Notice = msgBooked
		form.SlotID = ""
		form.Notes = ""
	case errors.Is(err, service.ErrSlotRequired):
		status = http.StatusBadRequest
		data.Error = msgSlotMissing
	case errors.Is(err, service.ErrSlotTaken):
		status = http.StatusConflict
		data.Error = msgSlotTaken
		form.SlotID = ""
	default:
		if h.expiredLogin(c, err) {
			return
		}
		status = http.StatusBadGateway
		data.Error = msgBookFailed
	}

	h.showProperty(c, status, date, form, data)
}

func (h *Handler) showProperty(c *gin.Context, status int, date string, form bookingForm, data pageData) {
	ctx := c.Request.Context()
	id := domain.ID(c.Param("id"))

	property, err := h.catalog.Property(ctx, id)
	if err != nil {
		if backend.IsNotFound(err) {
			h.renderError(c, http.StatusNotFound, "Property not found", "This property is no longer listed.")
			return
		}
		h.logger.WithError(err).WithField("property", id.String()).Warn("load property")
		h.renderError(c, http.StatusBadGateway, "Something went wrong", "We couldn't load this property. Please try again.")
		return
	}

	days, err := h.catalog.Slots(ctx, id)
	if err != nil {
		days = []domain.SlotDay{}
	}

	view := propertyView{
		Property: property,
		Days:     days,
		Form:     form,
	}
	if user := currentUser(c); user != nil && user.Role == domain.RoleStudent {
		view.CanBook = true
	}
	if slots := domain.SlotsOn(days, date); len(slots) > 0 {
		view.SelectedDate = date
		view.TimeSlots = slots
	}

	data.Title = property.Title
	data.Content = view
	h.render(c, status, "property", data)
}
