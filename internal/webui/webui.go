// Package webui serves the admin JSON API for managing EAP profiles.
package webui

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/wader/gormstore"
	"go.uber.org/zap"

	"github.com/blast007/wifi-eap-profiles/internal/database"
	"github.com/blast007/wifi-eap-profiles/pkg/profilestore"
	"github.com/blast007/wifi-eap-profiles/pkg/trustgroup"
)

const sessionName = "session"

// WebUI runs the HTTP interface
type WebUI struct {
	Addr           string
	SessionSecret  []byte
	SessionMaxAge  time.Duration
	SessionCleanup time.Duration

	db          *database.Database
	profiles    *profilestore.Gateway
	trustGroups *trustgroup.Gateway
	log         *zap.Logger

	server         *echo.Echo
	sessionStore   *gormstore.Store
	sessionCleanup chan struct{}
}

// NewWebUI creates a new instance of WebUI
func NewWebUI(db *database.Database, profiles *profilestore.Gateway, trustGroups *trustgroup.Gateway, log *zap.Logger) *WebUI {
	return &WebUI{
		Addr:           ":8081",
		SessionSecret:  []byte("secret"),
		SessionMaxAge:  5 * time.Minute,
		SessionCleanup: time.Hour,
		db:             db,
		profiles:       profiles,
		trustGroups:    trustGroups,
		log:            log.Named("webui"),
	}
}

// Handler builds the routes on first use and returns the HTTP handler
func (wui *WebUI) Handler() http.Handler {
	if wui.server == nil {
		wui.setup()
	}
	return wui.server
}

func (wui *WebUI) setup() {
	wui.server = echo.New()
	wui.server.HideBanner = true
	wui.server.HTTPErrorHandler = wui.customHTTPErrorHandler

	// Sessions live in the same database as the profiles
	wui.sessionStore = gormstore.New(wui.db.DB, wui.SessionSecret)
	wui.sessionStore.SessionOpts = &sessions.Options{
		Path:     "/",
		MaxAge:   int(wui.SessionMaxAge / time.Second),
		HttpOnly: true,
	}
	wui.server.Use(session.Middleware(wui.sessionStore))

	wui.server.POST("/login", wui.loginSubmitHandler).Name = "login"
	wui.server.GET("/logout", wui.logoutHandler).Name = "logout"

	api := wui.server.Group("/api", RequireAuthentication)

	profiles := api.Group("/profiles")
	profiles.GET("", wui.profilesHandler).Name = "profiles"
	profiles.GET("/export", wui.profileExportHandler).Name = "profile-export"
	profiles.GET("/ssid/:ssid", wui.profileFindHandler).Name = "profile-find"
	profiles.POST("", wui.profileCreateHandler).Name = "profile-create"
	profiles.DELETE("/ssid/:ssid", wui.profileDeleteBySSIDHandler).Name = "profile-delete-ssid"
	profiles.DELETE("/:id", wui.profileDeleteHandler).Name = "profile-delete"

	api.POST("/trustgroups", wui.trustGroupCreateHandler).Name = "trustgroup-create"
}

// Start the WebUI server
func (wui *WebUI) Start(wait *sync.WaitGroup) {
	wui.Handler()

	// Set up periodic cleanup of stale sessions
	wui.sessionCleanup = make(chan struct{})
	go wui.sessionStore.PeriodicCleanup(wui.SessionCleanup, wui.sessionCleanup)

	go func(wui *WebUI, wait *sync.WaitGroup) {
		wui.log.Info("starting server", zap.String("addr", wui.Addr))

		if err := wui.server.Start(wui.Addr); err != nil && err != http.ErrServerClosed {
			wui.log.Error("error starting web server", zap.Error(err))
		} else {
			wui.log.Info("stopped server")
		}

		wait.Done()
	}(wui, wait)
}

// Stop the WebUI server
func (wui *WebUI) Stop() error {
	if wui.sessionCleanup != nil {
		close(wui.sessionCleanup)
		wui.sessionCleanup = nil
	}

	// Wait up to 5 seconds for existing requests to complete
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return wui.server.Shutdown(ctx)
}

func (wui *WebUI) customHTTPErrorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError
	message := interface{}(http.StatusText(code))
	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		message = he.Message
	}
	if code >= http.StatusInternalServerError {
		wui.log.Error("request failed", zap.String("path", c.Path()), zap.Error(err))
	}

	if c.Response().Committed {
		return
	}
	if err := c.JSON(code, map[string]interface{}{"error": message}); err != nil {
		wui.log.Error("failed to write error response", zap.Error(err))
	}
}

// RequireAuthentication is a middleware that rejects requests without a logged in session
func RequireAuthentication(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess, _ := session.Get(sessionName, c)
		// Check that the username is set and has a non-zero length
		if username, ok := sess.Values["username"].(string); ok && len(username) > 0 {
			return next(c)
		}

		return echo.NewHTTPError(http.StatusUnauthorized, "login required")
	}
}
