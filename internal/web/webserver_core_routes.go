package web

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
	"github.com/vanessanoyag/webeng-le2/internal/config"
	"github.com/vanessanoyag/webeng-le2/internal/logger"
)

const shutdownTimeout = 5 * time.Second

// WebServer represents the web server
type WebServer struct {
	Router    *gin.Engine
	Config    *config.WebConfig
	Templates TemplateEngine
	Log       *slog.Logger
	StartTime time.Time // Set when the listener is bound
}

// NewServer creates a new web server instance.
// A nil engine renders from webconfig.ViewsDir, a nil logger discards everything.
func NewServer(webconfig *config.WebConfig, engine TemplateEngine, lg *slog.Logger) *WebServer {
	if webconfig.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	if engine == nil {
		engine = FileTemplates{Dir: webconfig.ViewsDir}
	}
	if lg == nil {
		lg = slog.New(slog.DiscardHandler)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	if webconfig.AccessLog {
		router.Use(ApacheLogFormat(gin.DefaultWriter))
	}

	// Match on the escaped path so /profile/a%2Fb is one segment.
	// Values stay escaped, handlers decode them with path rules (see profilePage).
	router.UseRawPath = true
	router.UnescapePathValues = false

	if err := router.SetTrustedProxies(webconfig.TrustedProxies); err != nil {
		lg.Warn("ignoring trusted proxies", "proxies", webconfig.TrustedProxies, "err", err)
	}

	// Configure security headers based on SSL setup
	secureConfig := secure.Config{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}
	if webconfig.SSL {
		secureConfig.SSLRedirect = true
		secureConfig.STSSeconds = 31536000
		secureConfig.STSIncludeSubdomains = true
	}
	router.Use(secure.New(secureConfig))

	server := &WebServer{
		Router:    router,
		Config:    webconfig,
		Templates: engine,
		Log:       lg,
	}
	server.setupRoutes()
	return server
}

// setupRoutes configures all HTTP routes
func (s *WebServer) setupRoutes() {
	s.Router.Static("/static", s.Config.StaticDir)

	s.Router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	s.registerPages(s.Router)
}

// registerPages binds the page handlers on any gin router or route group
func (s *WebServer) registerPages(r gin.IRoutes) {
	r.GET("/", s.homePage)
	r.GET("/profile/:username", s.profilePage)
	r.POST("/submit", s.submitPage)
}

// ServeHTTP lets the server be mounted or driven by httptest
func (s *WebServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}

// Start binds the configured address and serves until ctx is cancelled
func (s *WebServer) Start(ctx context.Context) error {
	addr := s.Config.Address()
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down gracefully.
// Plain HTTP or HTTPS depending on Config.SSL.
func (s *WebServer) Serve(ctx context.Context, ln net.Listener) error {
	s.StartTime = time.Now()

	httpSrv := &http.Server{
		Handler:      s.Router,
		ReadTimeout:  s.Config.ReadTimeout,
		WriteTimeout: s.Config.WriteTimeout,
		ErrorLog:     log.New(logger.Writer{Logger: s.Log, Level: slog.LevelWarn}, "", 0),
	}

	protocol := "http"
	if s.Config.SSL {
		protocol = "https"
	}
	s.Log.Info("listening", "addr", fmt.Sprintf("%s://%s", protocol, ln.Addr()))

	errCh := make(chan error, 1)
	go func() {
		var err error
		if s.Config.SSL {
			err = httpSrv.ServeTLS(ln, s.Config.CertFile, s.Config.KeyFile)
		} else {
			err = httpSrv.Serve(ln)
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serving %s: %w", ln.Addr(), err)
	case <-ctx.Done():
	}

	s.Log.Info("shutting down web server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("web server shutdown: %w", err)
	}
	s.Log.Info("web server stopped", "uptime", time.Since(s.StartTime).Round(time.Second))
	return nil
}

// ApacheLogFormat writes one combined log format line per request to out
func ApacheLogFormat(out io.Writer) gin.HandlerFunc {
	return gin.LoggerWithConfig(gin.LoggerConfig{Output: out, Formatter: apacheLine})
}

func apacheLine(param gin.LogFormatterParams) string {
	return fmt.Sprintf(`%s - - [%s] "%s %s %s" %d %d "%s" "%s"`+"\n",
		param.ClientIP,
		param.TimeStamp.Format("02/Jan/2006:15:04:05 -0700"),
		param.Method,
		param.Path,
		param.Request.Proto,
		param.StatusCode,
		param.BodySize,
		param.Request.Referer(),
		param.Request.UserAgent(),
	)
}
