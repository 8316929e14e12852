package http

import (
	"context"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"propertysource-web/internal/domain"
	"propertysource-web/internal/service"
)

// Services are the use cases the pages call.
type Services struct {
	Accounts service.AccountService
	Sessions service.SessionService
	Catalog  service.CatalogService
	Bookings service.BookingService
	Landlord service.LandlordService
	Admin    service.AdminService
}

// ReadyCheck reports whether a dependency can serve traffic.
type ReadyCheck func(ctx context.Context) error

type Options struct {
	CookieName     string
	SecureCookie   bool
	CSRFKey        []byte
	AuthPerMinute  int
	AuthBurst      int
	MetricsEnabled bool
	ReadyChecks    map[string]ReadyCheck
	Logger         *logrus.Logger
}

// Handler wires HTTP routes to the page handlers.
type Handler struct {
	accounts service.AccountService
	sessions service.SessionService
	catalog  service.CatalogService
	bookings service.BookingService
	landlord service.LandlordService
	admin    service.AdminService

	opts    Options
	logger  *logrus.Logger
	pages   map[string]*template.Template
	limiter *ipLimiter
}

func NewHandler(svcs Services, opts Options) (*Handler, error) {
	if opts.CookieName == "" {
		opts.CookieName = "ps_session"
	}
	logger := opts.Logger
	if logger == nil {
		logger = logrus.New()
	}

	pages, err := parsePages()
	if err != nil {
		return nil, err
	}

	return &Handler{
		accounts: svcs.Accounts,
		sessions: svcs.Sessions,
		catalog:  svcs.Catalog,
		bookings: svcs.Bookings,
		landlord: svcs.Landlord,
		admin:    svcs.Admin,
		opts:     opts,
		logger:   logger,
		pages:    pages,
		limiter:  newIPLimiter(opts.AuthPerMinute, opts.AuthBurst),
	}, nil
}

// NewEngine returns a gin engine that only honours forwarding headers from
// the given proxies. With none, the client IP is the socket peer.
func NewEngine(trustedProxies []string) (*gin.Engine, error) {
	router := gin.New()
	router.Use(gin.Recovery())
	if err := router.SetTrustedProxies(trustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}
	return router, nil
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(h.requestLogger())

	router.GET("/healthz", h.healthz)
	router.GET("/readyz", h.readyz)
	if h.opts.MetricsEnabled {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	pages := router.Group("/")
	if len(h.opts.CSRFKey) > 0 {
		pages.Use(h.csrfMiddleware())
	}
	pages.Use(h.loadSession())
	{
		pages.GET("/", h.landing)
		pages.GET("/landlords", h.landlordsInfo)

		pages.GET("/login", h.loginForm)
		pages.POST("/login", h.login)
		pages.GET("/signup", h.signupForm(domain.RoleStudent))
		pages.POST("/signup", h.signup(domain.RoleStudent))
		pages.GET("/landlord/signup", h.signupForm(domain.RoleLandlord))
		pages.POST("/landlord/signup", h.signup(domain.RoleLandlord))
		pages.POST("/logout", h.logout)

		pages.GET("/homes", h.search(domain.ListingHouse))
		pages.GET("/rooms", h.search(domain.ListingRoom))
		pages.GET("/property/:id", h.propertyDetails)
		pages.POST("/property/:id/book", h.requireRole(domain.RoleStudent), h.bookViewing)
	}

	student := pages.Group("/student", h.requireRole(domain.RoleStudent))
	{
		student.GET("/bookings", h.studentBookings)
		student.POST("/bookings/:id/cancel", h.cancelBooking)
	}

	landlord := pages.Group("/landlord", h.requireRole(domain.RoleLandlord))
	{
		landlord.GET("/dashboard", h.landlordDashboard)
		landlord.POST("/slots", h.createSlot)
	}

	admin := pages.Group("/admin", h.requireRole(domain.RoleAdmin))
	{
		admin.GET("", h.adminPage)
		admin.GET("/bookings.xlsx", h.adminBookingsExport)
	}

	router.NoRoute(h.loadSession(), func(c *gin.Context) {
		h.renderError(c, http.StatusNotFound, "Page not found", "We couldn't find that page.")
	})
}

func (h *Handler) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) readyz(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	checks := gin.H{}
	ready := true
	for name, check := range h.opts.ReadyChecks {
		if err := check(ctx); err != nil {
			checks[name] = fmt.Sprintf("error: %v", err)
			ready = false
			continue
		}
		checks[name] = "ok"
	}

	status := http.StatusOK
	if !ready {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, gin.H{"ready": ready, "checks": checks})
}
