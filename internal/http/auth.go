package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"propertysource-web/internal/domain"
	"propertysource-web/internal/service"
)

const tooManyAttempts = "Too many attempts. Please wait a moment and try again."

type loginView struct {
	Email string
}

type signupView struct {
	Role         domain.Role
	Action       string
	Heading      string
	Intro        string
	FullName     string
	Email        string
	MobileNumber string
	CompanyName  string
}

func newSignupView(role domain.Role) signupView {
	if role == domain.RoleLandlord {
		return signupView{
			Role:    role,
			Action:  "/landlord/signup",
			Heading: "Create your landlord account",
			Intro:   "Reach verified students and manage your portfolio.",
		}
	}
	return signupView{
		Role:    domain.RoleStudent,
		Action:  "/signup",
		Heading: "Create your student account",
		Intro:   "Save your favourite homes, book viewings and keep track of your appointments.",
	}
}

func (h *Handler) loginForm(c *gin.Context) {
	h.render(c, http.StatusOK, "login", pageData{Title: "Log in", Content: loginView{}})
}

func (h *Handler) login(c *gin.Context) {
	view := loginView{Email: c.PostForm("email")}

	if !h.limiter.Allow(c.ClientIP()) {
		h.render(c, http.StatusTooManyRequests, "login", pageData{Title: "Log in", Error: tooManyAttempts, Content: view})
		return
	}

	session, err := h.accounts.Login(c.Request.Context(), view.Email, c.PostForm("password"))
	if err != nil {
		h.logger.WithError(err).Debug("login failed")
		h.render(c, http.StatusUnauthorized, "login", pageData{Title: "Log in", Error: "Invalid credentials", Content: view})
		return
	}

	h.endCurrentSession(c)
	h.setSessionCookie(c, session)
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) signupForm(role domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		h.render(c, http.StatusOK, "signup", pageData{Title: "Sign up", Content: newSignupView(role)})
	}
}

func (h *Handler) signup(role domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		view := newSignupView(role)
		view.FullName = c.PostForm("fullName")
		view.Email = c.PostForm("email")
		view.MobileNumber = c.PostForm("mobileNumber")
		view.CompanyName = c.PostForm("companyName")

		if !h.limiter.Allow(c.ClientIP()) {
			h.render(c, http.StatusTooManyRequests, "signup", pageData{Title: "Sign up", Error: tooManyAttempts, Content: view})
			return
		}

		session, err := h.accounts.Signup(c.Request.Context(), service.SignupInput{
			FullName:        view.FullName,
			Email:           view.Email,
			MobileNumber:    view.MobileNumber,
			Password:        c.PostForm("password"),
			ConfirmPassword: c.PostForm("confirm"),
			CompanyName:     view.CompanyName,
			Role:            role,
		})
		if err != nil {
			msg := "Failed to create account"
			if errors.Is(err, service.ErrPasswordMismatch) {
				msg = "Passwords do not match"
			} else {
				h.logger.WithError(err).Warn("signup failed")
			}
			h.render(c, http.StatusBadRequest, "signup", pageData{Title: "Sign up", Error: msg, Content: view})
			return
		}

		h.endCurrentSession(c)
		h.setSessionCookie(c, session)
		c.Redirect(http.StatusSeeOther, "/")
	}
}

func (h *Handler) logout(c *gin.Context) {
	if session := currentSession(c); session != nil {
		if err := h.accounts.Logout(c.Request.Context(), session.ID); err != nil {
			h.logger.WithError(err).Warn("logout")
		}
	}
	h.clearSessionCookie(c)
	c.Redirect(http.StatusSeeOther, "/")
}
