package api

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"scribe/internal/catalog"
	"scribe/internal/logging"
	"scribe/internal/search"
)

const (
	requestIDKey    = "requestid"
	shutdownTimeout = 5 * time.Second
)

// SearchRequest is the body of POST /api/transcripts/:job/search.
type SearchRequest struct {
	Query string `json:"query"`
}

// IndexBody is the body of POST /api/transcripts/:job/index. The configured
// watch-list is included unless WatchList is false.
type IndexBody struct {
	Queries   []string `json:"queries"`
	WatchList *bool    `json:"watchList,omitempty"`
}

// Server serves TranscriptService over HTTP.
type Server struct {
	app        *fiber.App
	service    *TranscriptService
	watchWords []string
	bind       string
	logger     *slog.Logger
}

// ServerOptions configure NewServer.
type ServerOptions struct {
	Bind       string
	WatchWords []string
	Logger     *slog.Logger
}

// NewServer builds the HTTP routes around service.
func NewServer(service *TranscriptService, opts ServerOptions) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	s := &Server{
		service:    service,
		watchWords: append([]string(nil), opts.WatchWords...),
		bind:       opts.Bind,
		logger:     logging.NewComponentLogger(logger, "api"),
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          s.handleError,
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator:  uuid.NewString,
		ContextKey: requestIDKey,
	}))
	app.Use(s.logRequests)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy"})
	})
	app.Get("/api/transcripts", s.listTranscripts)
	app.Get("/api/transcripts/:job", s.describeTranscript)
	app.Post("/api/transcripts/:job/search", s.searchTranscript)
	app.Post("/api/transcripts/:job/index", s.indexTranscript)

	s.app = app
	return s
}

// App exposes the underlying Fiber app.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Listen(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.app.Listen(s.bind)
	}()
	s.logger.Info("api listening", logging.String("bind", s.bind))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.logger.Info("api shutting down")
		return s.app.ShutdownWithTimeout(shutdownTimeout)
	}
}

func (s *Server) logRequests(c *fiber.Ctx) error {
	start := time.Now()
	id, _ := c.Locals(requestIDKey).(string)
	ctx := logging.WithCorrelationID(c.UserContext(), id)
	c.SetUserContext(ctx)

	err := c.Next()
	status := c.Response().StatusCode()
	if err != nil {
		status, _ = errorStatus(err)
	}
	logging.WithContext(ctx, s.logger).Debug("request served",
		logging.String("method", c.Method()),
		logging.String("path", c.Path()),
		logging.Int("status", status),
		logging.Duration("elapsed", time.Since(start)),
	)
	return err
}

func (s *Server) listTranscripts(c *fiber.Ctx) error {
	items, err := s.service.List(c.UserContext())
	if err != nil {
		return err
	}
	if items == nil {
		items = []Transcript{}
	}
	return c.JSON(fiber.Map{"transcripts": items})
}

func (s *Server) describeTranscript(c *fiber.Ctx) error {
	detail, err := s.service.Describe(jobContext(c), c.Params("job"))
	if err != nil {
		return err
	}
	return c.JSON(detail)
}

func (s *Server) searchTranscript(c *fiber.Ctx) error {
	var body SearchRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	ctx := jobContext(c)
	res, err := s.service.Search(ctx, c.Params("job"), body.Query)
	if err != nil {
		return err
	}
	logging.WithContext(ctx, s.logger).Info("search served",
		logging.Query(res.Query),
		logging.String("status", res.Status),
		logging.Int("matches", len(res.Matches)),
	)
	return c.JSON(res)
}

func (s *Server) indexTranscript(c *fiber.Ctx) error {
	var body IndexBody
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
	}
	req := IndexRequest{Job: c.Params("job"), Queries: body.Queries}
	if body.WatchList == nil || *body.WatchList {
		req.WatchWords = s.watchWords
	}
	res, err := s.service.Index(jobContext(c), req)
	if err != nil {
		return err
	}
	return c.JSON(res)
}

func (s *Server) handleError(c *fiber.Ctx, err error) error {
	status, code := errorStatus(err)
	message := err.Error()
	if status == fiber.StatusInternalServerError {
		logging.WithContext(c.UserContext(), s.logger).Error("request failed", logging.Error(err))
		message = "internal error"
	}
	return c.Status(status).JSON(fiber.Map{
		"error": message,
		"code":  code,
	})
}

func errorStatus(err error) (int, string) {
	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		if fe.Code == fiber.StatusNotFound {
			return fe.Code, "ERR_NOT_FOUND"
		}
		return fe.Code, "ERR_REQUEST"
	case errors.Is(err, catalog.ErrNotFound):
		return fiber.StatusNotFound, "ERR_NOT_FOUND"
	case errors.Is(err, search.ErrEmptyQuery):
		return fiber.StatusBadRequest, "ERR_EMPTY_QUERY"
	case errors.Is(err, catalog.ErrInvalidJobName):
		return fiber.StatusBadRequest, "ERR_INVALID_JOB"
	default:
		return fiber.StatusInternalServerError, "ERR_INTERNAL"
	}
}

func jobContext(c *fiber.Ctx) context.Context {
	job := strings.TrimSpace(c.Params("job"))
	if job == "" {
		return c.UserContext()
	}
	return logging.WithJob(c.UserContext(), job)
}
