package web

import (
	"context"
	"errors"
	"net/http"

	"gemini-nlp/internal/auth/credentials"
	"gemini-nlp/internal/logger"
	"gemini-nlp/internal/middleware"
	"gemini-nlp/internal/nlp"
	"gemini-nlp/internal/screen"
	"gemini-nlp/internal/session"

	"github.com/gin-gonic/gin"
)

const (
	msgRegistered    = "Registered successfully. Please login."
	msgEmailExists   = "Email already exists."
	msgPasswordLong  = "Password is too long."
	msgInvalidLogin  = "Invalid email or password."
	msgGenerationErr = "The language service could not answer. Please try again."
	msgInternalErr   = "Something went wrong. Please try again."
)

// Controller is the auth surface the screens drive.
type Controller interface {
	Register(ctx context.Context, name, email, password string) error
	Login(ctx context.Context, email, password, previousID string) (session.Session, error)
	Logout(ctx context.Context, sessionID string) error
}

// Runner executes a text operation.
type Runner interface {
	Run(ctx context.Context, op nlp.Operation, text string) (nlp.Result, error)
}

type Handler struct {
	controller Controller
	runner     Runner
	cookies    session.Cookies
}

func NewHandler(controller Controller, runner Runner, cookies session.Cookies) *Handler {
	return &Handler{
		controller: controller,
		runner:     runner,
		cookies:    cookies,
	}
}

// RegisterRoutes mounts the HTML screens. GinLoadSession must already be
// installed on r.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/", h.Index)
	r.GET("/login", h.show(screen.Login))
	r.GET("/register", h.show(screen.Register))
	r.POST("/login", h.Login)
	r.POST("/register", h.Register)
	r.POST("/logout", h.Logout)

	dash := r.Group("/dashboard")
	dash.Use(middleware.GinRequireAuthRedirect("/"))
	dash.GET("", h.Dashboard)
	dash.POST("/:op", h.Operate)
}

// Index renders whatever the router picks for the session and ?menu=.
func (h *Handler) Index(c *gin.Context) {
	choice, _ := screen.Parse(c.Query("menu"))
	h.render(c, http.StatusOK, choice, page{})
}

func (h *Handler) show(s screen.Screen) gin.HandlerFunc {
	return func(c *gin.Context) {
		h.render(c, http.StatusOK, s, page{})
	}
}

// Login replaces the browser's session on success. An authenticated
// browser that fails to log in keeps its session and goes back to the
// dashboard.
func (h *Handler) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")
	previousID, _ := session.FromRequest(c.Request)
	authenticated := middleware.StateFromContext(c.Request.Context()).Authenticated()

	sess, err := h.controller.Login(c.Request.Context(), email, password, previousID)
	if err != nil && authenticated {
		if !errors.Is(err, credentials.ErrInvalidCredentials) {
			logger.Error("login failed", map[string]any{"error": err})
		}
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}
	if errors.Is(err, credentials.ErrInvalidCredentials) {
		h.render(c, http.StatusUnauthorized, screen.Login, page{
			Email: email,
			Flash: &flash{Kind: "error", Text: msgInvalidLogin},
		})
		return
	}
	if err != nil {
		logger.Error("login failed", map[string]any{"error": err})
		h.render(c, http.StatusInternalServerError, screen.Login, page{
			Email: email,
			Flash: &flash{Kind: "error", Text: msgInternalErr},
		})
		return
	}

	h.cookies.Issue(c.Writer, sess)

	// a successful login always lands on the dashboard
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// Register is only offered to anonymous browsers; authenticated ones are
// sent back to the dashboard without creating an account.
func (h *Handler) Register(c *gin.Context) {
	if middleware.StateFromContext(c.Request.Context()).Authenticated() {
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}

	name := c.PostForm("name")
	email := c.PostForm("email")
	password := c.PostForm("password")

	err := h.controller.Register(c.Request.Context(), name, email, password)
	switch {
	case err == nil:
		h.render(c, http.StatusOK, screen.Login, page{
			Email: email,
			Flash: &flash{Kind: "success", Text: msgRegistered},
		})
	case errors.Is(err, credentials.ErrAlreadyExists):
		h.render(c, http.StatusConflict, screen.Register, page{
			Name:  name,
			Email: email,
			Flash: &flash{Kind: "warning", Text: msgEmailExists},
		})
	case errors.Is(err, credentials.ErrPasswordTooLong):
		h.render(c, http.StatusUnprocessableEntity, screen.Register, page{
			Name:  name,
			Email: email,
			Flash: &flash{Kind: "warning", Text: msgPasswordLong},
		})
	default:
		logger.Error("register failed", map[string]any{"error": err})
		h.render(c, http.StatusInternalServerError, screen.Register, page{
			Name:  name,
			Email: email,
			Flash: &flash{Kind: "error", Text: msgInternalErr},
		})
	}
}

func (h *Handler) Logout(c *gin.Context) {
	if sessionID, ok := session.FromRequest(c.Request); ok {
		if err := h.controller.Logout(c.Request.Context(), sessionID); err != nil {
			logger.Error("logout failed", map[string]any{"error": err})
		}
	}

	h.cookies.Clear(c.Writer)
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) Dashboard(c *gin.Context) {
	op, ok := nlp.ParseOperation(c.Query("op"))
	if !ok {
		op = nlp.Sentiment
	}
	h.render(c, http.StatusOK, screen.Dashboard, page{Op: viewOf(op)})
}

func (h *Handler) Operate(c *gin.Context) {
	op, ok := nlp.ParseOperation(c.Param("op"))
	if !ok {
		c.String(http.StatusNotFound, "unknown operation")
		return
	}

	text := c.PostForm("text")
	p := page{Op: viewOf(op), Text: text}

	res, err := h.runner.Run(c.Request.Context(), op, text)

	var warn *nlp.ValidationWarning
	switch {
	case err == nil:
		p.Result = res.Text
		p.Flash = &flash{Kind: "success", Text: op.Spec().Title + " complete."}
		h.render(c, http.StatusOK, screen.Dashboard, p)
	case errors.As(err, &warn):
		p.Flash = &flash{Kind: "warning", Text: warn.Message}
		h.render(c, http.StatusUnprocessableEntity, screen.Dashboard, p)
	default:
		logger.Error("text operation failed", map[string]any{
			"operation": op.String(),
			"error":     err,
		})
		p.Flash = &flash{Kind: "error", Text: msgGenerationErr}
		h.render(c, http.StatusBadGateway, screen.Dashboard, p)
	}
}

// render resolves the screen from the session, fills the shared page
// fields and executes the layout.
func (h *Handler) render(c *gin.Context, status int, choice screen.Screen, p page) {
	st := middleware.StateFromContext(c.Request.Context())
	authenticated := st.Authenticated()

	p.Screen = screen.Resolve(authenticated, choice)
	p.Menu = screen.Menu(authenticated)

	switch p.Screen {
	case screen.Dashboard:
		p.Name = st.Identity.Name
		p.Ops = allViews()
		if p.Op.Slug == "" {
			p.Op = viewOf(nlp.Sentiment)
		}
	case screen.Login, screen.Register:
	}

	c.HTML(status, "layout", p)
}

func viewOf(op nlp.Operation) opView {
	s := op.Spec()
	return opView{
		Slug:       s.Slug,
		Title:      s.Title,
		InputLabel: s.InputLabel,
		Button:     s.Button,
	}
}

func allViews() []opView {
	out := make([]opView, 0, len(nlp.Operations))
	for _, op := range nlp.Operations {
		out = append(out, viewOf(op))
	}
	return out
}
