package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	md2office "github.com/alnah/go-md2office"
	"github.com/alnah/go-md2office/internal/config"
	"github.com/alnah/go-md2office/internal/hints"
)

// Sentinel errors for the serve command.
var (
	ErrListen         = errors.New("cannot listen")
	ErrUnexpectedArgs = errors.New("unexpected arguments")
)

// Server timeouts.
const (
	readHeaderTimeout = 10 * time.Second
	readTimeout       = 30 * time.Second
	writeTimeout      = 60 * time.Second
	shutdownTimeout   = 15 * time.Second
)

// exportServer serves POST /export/{format}.
type exportServer struct {
	exporter Exporter
	maxBody  int64
	logger   *slog.Logger
}

// runServeCmd parses flags and runs the serve command.
func runServeCmd(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseServeFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(positional) > 0 {
		return fmt.Errorf("%w: %s", ErrUnexpectedArgs, strings.Join(positional, " "))
	}

	cfg, err := loadConfig(flags.common.config, env)
	if err != nil {
		return err
	}
	mergeServeFlags(flags, cfg)

	conv, err := newConverter(cfg, env)
	if err != nil {
		return err
	}

	logger := env.logger(flags.logJSON, flags.common.logLevel())
	srv := &exportServer{
		exporter: conv,
		maxBody:  cfg.Server.MaxBodyBytes,
		logger:   logger,
	}
	return serve(ctx, cfg.Server.Addr, srv.routes(), logger)
}

// mergeServeFlags merges CLI flags into config. CLI values override config values.
func mergeServeFlags(flags *serveFlags, cfg *config.Config) {
	if flags.addr != "" {
		cfg.Server.Addr = flags.addr
	}
	if flags.maxBody > 0 {
		cfg.Server.MaxBodyBytes = flags.maxBody
	}
	if cfg.Server.MaxBodyBytes == 0 {
		cfg.Server.MaxBodyBytes = config.DefaultMaxBodyBytes
	}
	if flags.assets.theme != "" {
		cfg.Theme = flags.assets.theme
	}
	if flags.assets.assetPath != "" {
		cfg.Assets.BasePath = flags.assets.assetPath
	}
}

// serve listens on addr and serves h until ctx is canceled, then shuts
// down gracefully.
func serve(ctx context.Context, addr string, h http.Handler, logger *slog.Logger) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("%w: %v%s", ErrListen, err, hints.ForListen(addr))
	}

	srv := &http.Server{
		Handler:           h,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()
	logger.Info("listening", "addr", ln.Addr().String())

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// routes builds the HTTP router.
func (s *exportServer) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Post("/export/{format}", s.handleExport)
	return r
}

// logRequests logs one line per request at info level.
func (s *exportServer) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"id", middleware.GetReqID(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
		)
	})
}

func (s *exportServer) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", md2office.ContentTypeText)
	_, _ = io.WriteString(w, "ok\n")
}

// handleExport encodes the request body. The format comes from the path;
// filename, syntax and slides from the query. Without a syntax parameter,
// the request media type decides: text/markdown or text/html, else plain.
func (s *exportServer) handleExport(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	slides := false
	if v := q.Get("slides"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			http.Error(w, fmt.Sprintf("invalid slides value %q", v), http.StatusBadRequest)
			return
		}
		slides = b
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, fmt.Sprintf("body exceeds %d bytes", tooLarge.Limit), http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "reading body failed", http.StatusBadRequest)
		return
	}

	syntax := md2office.Syntax(q.Get("syntax"))
	if syntax == "" {
		syntax = syntaxFromMediaType(r.Header.Get("Content-Type"))
	}

	res, err := s.exporter.Export(md2office.Input{
		Content:  string(body),
		Format:   md2office.Format(chi.URLParam(r, "format")),
		Filename: q.Get("filename"),
		Syntax:   syntax,
		Slides:   slides,
	})
	if err != nil {
		if errors.Is(err, md2office.ErrInvalidSyntax) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		s.logger.Error("export failed", "id", middleware.GetReqID(r.Context()), "error", err)
		http.Error(w, "export failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", res.ContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": res.Filename}))
	w.Header().Set("Content-Length", strconv.Itoa(len(res.Data)))
	_, _ = w.Write(res.Data)
}

// syntaxFromMediaType maps a request Content-Type to a syntax.
func syntaxFromMediaType(contentType string) md2office.Syntax {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return md2office.SyntaxPlain
	}
	switch mt {
	case "text/markdown", "text/x-markdown":
		return md2office.SyntaxMarkdown
	case "text/html", "application/xhtml+xml":
		return md2office.SyntaxHTML
	default:
		return md2office.SyntaxPlain
	}
}
