package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"propertysource-web/internal/backend"
	"propertysource-web/internal/domain"
)

type searchView struct {
	ListingType  domain.ListingType
	Action       string
	Heading      string
	Intro        string
	Noun         string
	Q            string
	UniversityID string
	MinBedrooms  string
	MinPrice     string
	MaxPrice     string
	Universities []domain.University
	Results      []domain.Property
	Summary      string
	Failed       bool
}

var bedroomOptions = []string{"2", "3", "4", "5"}

func (v searchView) BedroomOptions() []string { return bedroomOptions }

func newSearchView(listingType domain.ListingType) searchView {
	if listingType == domain.ListingHouse {
		return searchView{
			ListingType: listingType,
			Action:      "/homes",
			Heading:     "Search student houses",
			Intro:       "Find a whole student house to rent with your friends. Filter by area, bedrooms and distance from your university.",
			Noun:        listingType.Noun(),
		}
	}
	return searchView{
		ListingType: domain.ListingRoom,
		Action:      "/rooms",
		Heading:     "Search rooms in shared houses",
		Intro:       "Looking for a room rather than a full house? Find a bedroom in a shared student home, with future housemates already in place.",
		Noun:        domain.ListingRoom.Noun(),
	}
}

// searchFilter builds the backend filter from the query string. Empty or
// non-numeric bounds are left out.
func searchFilter(c *gin.Context, listingType domain.ListingType) backend.SearchFilter {
	filter := backend.SearchFilter{
		Q:            strings.TrimSpace(c.Query("q")),
		UniversityID: strings.TrimSpace(c.Query("universityId")),
		ListingType:  listingType,
	}
	if n, err := strconv.Atoi(strings.TrimSpace(c.Query("minBedrooms"))); err == nil {
		filter.MinBedrooms = &n
	}
	if f, err := strconv.ParseFloat(strings.TrimSpace(c.Query("minPrice")), 64); err == nil {
		filter.MinPrice = &f
	}
	if f, err := strconv.ParseFloat(strings.TrimSpace(c.Query("maxPrice")), 64); err == nil {
		filter.MaxPrice = &f
	}
	return filter
}

func (h *Handler) search(listingType domain.ListingType) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		view := newSearchView(listingType)
		filter := searchFilter(c, listingType)

		view.Q = filter.Q
		view.UniversityID = filter.UniversityID
		view.MinBedrooms = c.Query("minBedrooms")
		view.MinPrice = c.Query("minPrice")
		view.MaxPrice = c.Query("maxPrice")
		view.Universities = h.universities(c)

		data := pageData{Title: view.Heading}
		results, err := h.catalog.Search(ctx, filter)
		if err != nil {
			h.logger.WithError(err).Warn("search properties")
			view.Failed = true
			data.Error = "We couldn't load properties right now. Please try again."
		} else {
			view.Results = results
			view.Summary = resultsSummary(len(results), view.Noun, view.Q)
		}

		data.Content = view
		h.render(c, http.StatusOK, "search", data)
	}
}

// universities never fails a page; the filter just shows "any".
func (h *Handler) universities(c *gin.Context) []domain.University {
	list, err := h.catalog.Universities(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Warn("load universities")
		return []domain.University{}
	}
	return list
}
