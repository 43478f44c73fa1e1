// Package server exposes the simulation pipeline over HTTP for the
// browser UI: model uploads, cached results, and process predictions.
package server

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/rs/zerolog"

	"github.com/Hari-prashath-123/Wire-EDM-AI-simulator/internal/config"
	"github.com/Hari-prashath-123/Wire-EDM-AI-simulator/pkg/mesh"
	"github.com/Hari-prashath-123/Wire-EDM-AI-simulator/pkg/simulation"
)

// Server hosts the simulator API.
type Server struct {
	cfg   *config.AppConfig
	cache *Cache
	log   zerolog.Logger
	debug bool
}

// NewServer wires the API against a parse-result cache.
func NewServer(cfg *config.AppConfig, cache *Cache) *Server {
	return &Server{
		cfg:   cfg,
		cache: cache,
		log:   zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger(),
	}
}

// SetDebug enables request logging.
func (s *Server) SetDebug(enabled bool) {
	s.debug = enabled
}

// App builds the fiber application with all routes registered.
func (s *Server) App() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:   "Wire EDM Simulator",
		BodyLimit: s.cfg.BodyLimitMB * 1024 * 1024,
	})

	app.Use(cors.New())
	if s.debug {
		app.Use(logger.New(logger.Config{
			Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
		}))
	}

	api := app.Group("/api")
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	api.Post("/models", s.handleUpload)
	api.Get("/models/:id", s.handleGetModel)
	api.Post("/predict", s.handlePredict)

	return app
}

// Start runs the server until it fails or is shut down.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.log.Info().Str("addr", addr).Msg("starting simulator API")
	return s.App().Listen(addr)
}

// handleUpload parses a multipart mesh upload and returns the model
// result, serving from cache when the same content was seen before.
func (s *Server) handleUpload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("model")
	if err != nil {
		return failure(c, fiber.StatusBadRequest, "missing model file in upload")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return failure(c, fiber.StatusBadRequest, "unreadable upload")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return failure(c, fiber.StatusBadRequest, "unreadable upload")
	}

	hash := Fingerprint(data)
	if result, ok := s.cache.Get(hash); ok {
		s.log.Debug().Str("hash", hash).Msg("cache hit")
		return success(c, hash, result)
	}

	result, err := simulation.ParseContext(c.Context(), data, fileHeader.Filename, simulation.Options{
		SliceCount: s.cfg.SliceCount,
	})
	if err != nil {
		s.log.Warn().Err(err).Str("file", fileHeader.Filename).Msg("parse failed")
		return failure(c, statusForParseError(err), err.Error())
	}

	if err := s.cache.Put(hash, fileHeader.Filename, result); err != nil {
		// Cache trouble must not fail the upload.
		s.log.Warn().Err(err).Msg("cache write failed")
	}

	s.log.Info().
		Str("file", fileHeader.Filename).
		Int("vertices", result.Metadata.VertexCount).
		Int("contours", len(result.CuttingPaths)).
		Msg("model parsed")
	return success(c, hash, result)
}

func (s *Server) handleGetModel(c *fiber.Ctx) error {
	hash := c.Params("id")
	result, ok := s.cache.Get(hash)
	if !ok {
		return failure(c, fiber.StatusNotFound, "unknown model id")
	}
	return success(c, hash, result)
}

// predictRequest is the body of POST /api/predict.
type predictRequest struct {
	ModelID    string                       `json:"modelId"`
	Parameters simulation.ProcessParameters `json:"parameters"`
	Seed       int64                        `json:"seed"`
}

func (s *Server) handlePredict(c *fiber.Ctx) error {
	var req predictRequest
	if err := c.BodyParser(&req); err != nil {
		return failure(c, fiber.StatusBadRequest, "invalid request body")
	}

	result, ok := s.cache.Get(req.ModelID)
	if !ok {
		return failure(c, fiber.StatusNotFound, "unknown model id")
	}

	if err := req.Parameters.Validate(); err != nil {
		return failure(c, fiber.StatusBadRequest, err.Error())
	}

	predictions, err := simulation.PredictAll(req.Parameters, req.Seed)
	if err != nil {
		return failure(c, fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"metrics":     simulation.Analyze(result, req.Parameters),
		"predictions": predictions,
	})
}

// success and failure emit the discriminated payload the UI consumes:
// a result or an error message, never both.
func success(c *fiber.Ctx, id string, result *simulation.Result) error {
	return c.JSON(fiber.Map{
		"success": true,
		"id":      id,
		"result":  result,
	})
}

func failure(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}

// statusForParseError maps the pipeline error taxonomy onto HTTP
// statuses. Everything the user can fix by picking another file is a
// 400-class response.
func statusForParseError(err error) int {
	switch {
	case errors.Is(err, mesh.ErrUnsupportedFormat):
		return fiber.StatusUnsupportedMediaType
	case errors.Is(err, mesh.ErrMalformedFile),
		errors.Is(err, mesh.ErrMissingPositions),
		errors.Is(err, mesh.ErrDegenerateGeometry):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
