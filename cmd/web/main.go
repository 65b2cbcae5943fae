// Web server for webeng: home page, profile pages and a username form
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	prof "github.com/go-while/go-cpu-mem-profiler"
	"github.com/vanessanoyag/webeng-le2/internal/config"
	"github.com/vanessanoyag/webeng-le2/internal/logger"
	"github.com/vanessanoyag/webeng-le2/internal/web"
)

var appVersion = "-unset-"

func main() {
	config.AppVersion = appVersion

	webConfig, err := loadConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "[WEB]: %v\n", err)
		os.Exit(1)
	}

	lg := logger.New(os.Stderr, webConfig.Debug)
	lg.Info("starting webeng web server", "version", config.AppVersion)

	if err := webConfig.Validate(); err != nil {
		lg.Error("invalid configuration", "err", err)
		os.Exit(1)
	}
	lg.Debug("using web configuration", "config", fmt.Sprintf("%#v", *webConfig))

	startProfiler(webConfig.PprofAddr, lg, prof.NewProf().PprofWeb)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := web.NewServer(webConfig, nil, lg)
	if err := server.Start(ctx); err != nil {
		lg.Error("web server failed", "err", err)
		os.Exit(1)
	}
	lg.Info("graceful shutdown completed")
}

// startProfiler runs serve on addr in the background; an empty addr leaves profiling off
func startProfiler(addr string, lg *slog.Logger, serve func(addr string)) bool {
	if addr == "" {
		return false
	}
	lg.Info("starting profiler", "addr", addr)
	go serve(addr)
	return true
}

// loadConfig builds the web configuration from defaults, an optional YAML file and flags, in that order.
// Without arguments it yields the plain defaults: port 3000, ./views and ./static.
func loadConfig(fs *flag.FlagSet, args []string) (*config.WebConfig, error) {
	defaults := config.NewDefaultConfig()

	var (
		configFile = fs.String("config", "", "YAML config file (/path/to/web.yaml)")
		host       = fs.String("host", defaults.Host, "Web server listen host (default: all interfaces)")
		port       = fs.Int("port", defaults.ListenPort, "Web server port")
		viewsDir   = fs.String("views", defaults.ViewsDir, "Directory with index.html and profile.html")
		staticDir  = fs.String("static", defaults.StaticDir, "Directory served under /static")
		ssl        = fs.Bool("ssl", false, "Enable SSL")
		certFile   = fs.String("sslcert", "", "SSL certificate file (/path/to/fullchain.pem)")
		keyFile    = fs.String("sslkey", "", "SSL key file (/path/to/privkey.pem)")
		debug      = fs.Bool("debug", false, "Enable debug logging")
		accessLog  = fs.Bool("accesslog", false, "Write an Apache style access log to stdout")
		pprofAddr  = fs.String("pprof", "", "Serve pprof on this address, e.g. :51111 (default: disabled)")
	)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := defaults
	if *configFile != "" {
		var err error
		if cfg, err = config.LoadFile(*configFile); err != nil {
			return nil, err
		}
	}

	// Only flags given on the command line override the file
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "host":
			cfg.Host = *host
		case "port":
			cfg.ListenPort = *port
		case "views":
			cfg.ViewsDir = *viewsDir
		case "static":
			cfg.StaticDir = *staticDir
		case "ssl":
			cfg.SSL = *ssl
		case "sslcert":
			cfg.CertFile = *certFile
		case "sslkey":
			cfg.KeyFile = *keyFile
		case "debug":
			cfg.Debug = *debug
		case "accesslog":
			cfg.AccessLog = *accessLog
		case "pprof":
			cfg.PprofAddr = *pprofAddr
		}
	})
	return cfg, nil
}
