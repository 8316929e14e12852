package http

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/csrf"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"propertysource-web/internal/domain"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Raw HTML in descriptions is dropped: goldmark only passes it through WithUnsafe.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

var pageNames = []string{
	"landing",
	"landlords",
	"login",
	"signup",
	"search",
	"property",
	"bookings",
	"landlord",
	"admin",
	"error",
}

var funcMap = template.FuncMap{
	"rent":     formatRent,
	"date":     formatDate,
	"dateTime": formatDateTime,
	"day":      formatDay,
	"yesNo":    yesNo,
	"location": location,
	"markdown": renderMarkdown,
	"unis":     pickUniversity,
}

// pageData is what every page template receives. Content holds the page's own view.
type pageData struct {
	Title   string
	User    *domain.User
	Nav     []NavLink
	Account []NavLink
	CSRF    template.HTML
	Notice  string
	Error   string
	Content any
}

func parsePages() (map[string]*template.Template, error) {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		tmpl, err := template.New("layout.html").Funcs(funcMap).ParseFS(templatesFS,
			"templates/layout.html",
			"templates/partials.html",
			"templates/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", name, err)
		}
		pages[name] = tmpl
	}
	return pages, nil
}

func renderMarkdown(md string) template.HTML {
	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(md))
	}
	return template.HTML(buf.String())
}

func (h *Handler) render(c *gin.Context, status int, name string, data pageData) {
	tmpl, ok := h.pages[name]
	if !ok {
		h.logger.WithField("page", name).Error("unknown page template")
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}

	data.User = currentUser(c)
	data.Nav = MainNav()
	data.Account = AccountNav(data.User)
	data.CSRF = csrf.TemplateField(c.Request)

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		h.logger.WithError(err).WithField("page", name).Error("render page")
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}

func (h *Handler) renderError(c *gin.Context, status int, title, message string) {
	h.render(c, status, "error", pageData{
		Title: title,
		Error: message,
	})
}
