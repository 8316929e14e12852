package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"propertysource-web/internal/domain"
)

type step struct {
	Title string
	Text  string
}

type faq struct {
	Q string
	A string
}

var howItWorks = []step{
	{"Search your area", "Type your university or favourite neighbourhood and filter by price, bedrooms and distance."},
	{"Compare homes & rooms", "View photos, key features and travel time to campus so you can shortlist quickly."},
	{"Book your viewing online", "Pick a time that works for you. Your slot is reserved instantly, and the landlord gets notified."},
}

var faqs = []faq{
	{"Do I have to pay to use this site as a student?", "No. Searching and booking viewings is free for students."},
	{"Can I just rent a room instead of a whole house?", "Yes. Filter by 'Rooms only' to see rooms available in shared student houses."},
	{"How do viewing bookings work?", "Pick a time that suits you from the available slots on the property page. Once you confirm, that slot is reserved and the landlord is notified."},
	{"Do you handle contracts and rent payments?", "No. We connect you with landlords and help organise viewings. Contracts and rent are handled directly between you and the landlord or letting agent."},
}

type landingView struct {
	Universities []domain.University
	Featured     []domain.Property
	Steps        []step
	FAQs         []faq
	ContactEmail string
}

func (h *Handler) landing(c *gin.Context) {
	featured, err := h.catalog.Featured(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Warn("load featured properties")
		featured = []domain.Property{}
	}

	h.render(c, http.StatusOK, "landing", pageData{
		Title: "Find your next student home",
		Content: landingView{
			Universities: h.universities(c),
			Featured:     featured,
			Steps:        howItWorks,
			FAQs:         faqs,
			ContactEmail: "hello@uninesthub.example",
		},
	})
}

func (h *Handler) landlordsInfo(c *gin.Context) {
	h.render(c, http.StatusOK, "landlords", pageData{Title: "For landlords"})
}
