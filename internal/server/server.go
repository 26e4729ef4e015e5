// Package server exposes the classifier over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"fjacquet/nexus-classifier/internal/classifiererror"
	"fjacquet/nexus-classifier/internal/logging"
	"fjacquet/nexus-classifier/internal/models"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
)

const (
	appName = "nexus-classifier"
	// DefaultMaxTextLength is the longest message accepted by POST /classify.
	DefaultMaxTextLength = 2000

	msgEmptyText = "O texto da mensagem não pode estar vazio."
)

// Classifier is the part of the orchestrator the HTTP layer depends on.
type Classifier interface {
	Classify(ctx context.Context, req models.ClassificationRequest) (models.ClassificationResponse, error)
	Mode() string
	Model() string
}

// Options configures the HTTP layer.
type Options struct {
	MaxTextLength int
	Version       string
}

// Server wraps the fiber application serving the classifier.
type Server struct {
	app           *fiber.App
	classifier    Classifier
	logger        logging.Logger
	maxTextLength int
	version       string
}

// classifyPayload distinguishes a missing text from an empty one.
type classifyPayload struct {
	Text *string `json:"text"`
}

// New creates the server and registers its routes.
func New(classifier Classifier, opts Options, logger logging.Logger) *Server {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if opts.MaxTextLength <= 0 {
		opts.MaxTextLength = DefaultMaxTextLength
	}
	if opts.Version == "" {
		opts.Version = "dev"
	}

	s := &Server{
		classifier:    classifier,
		logger:        logger,
		maxTextLength: opts.MaxTextLength,
		version:       opts.Version,
	}

	s.app = fiber.New(fiber.Config{
		AppName:      appName,
		ErrorHandler: errorHandler,
	})

	s.app.Use(requestID())
	s.app.Use(requestLogger(s.logger))
	s.app.Use(cors.New())

	s.app.Get("/", s.handleRoot)
	s.app.Get("/health", s.handleHealth)
	s.app.Get("/docs", s.handleDocs)
	s.app.Post("/classify", s.handleClassify)

	return s
}

// App returns the underlying fiber application.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves on addr until ctx is cancelled.
func (s *Server) Listen(ctx context.Context, addr string) error {
	s.logger.WithFields(
		logging.Field{Key: "address", Value: addr},
		logging.Field{Key: "mode", Value: s.classifier.Mode()},
		logging.Field{Key: logging.FieldModel, Value: s.classifier.Model()},
	).Info("Starting HTTP server")

	return s.app.Listen(addr, fiber.ListenConfig{
		GracefulContext:       ctx,
		DisableStartupMessage: true,
	})
}

func (s *Server) handleRoot(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Nexus Legal Classifier Online",
		"docs":    "/docs",
		"version": s.version,
	})
}

func (s *Server) handleHealth(c fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "healthy",
		"mode":   s.classifier.Mode(),
		"model":  s.classifier.Model(),
	})
}

func (s *Server) handleDocs(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"endpoints": []fiber.Map{
			{"method": fiber.MethodGet, "path": "/", "description": "Service status"},
			{"method": fiber.MethodGet, "path": "/health", "description": "Active mode and model"},
			{"method": fiber.MethodPost, "path": "/classify", "description": "Classify a message: {\"text\": \"...\"}"},
		},
		"categories":      models.CategoryNames(),
		"max_text_length": s.maxTextLength,
	})
}

func (s *Server) handleClassify(c fiber.Ctx) error {
	var payload classifyPayload
	if err := c.Bind().JSON(&payload); err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "Corpo da requisição inválido: esperado {\"text\": string}.")
	}
	if payload.Text == nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "O campo 'text' é obrigatório.")
	}
	if utf8.RuneCountInString(*payload.Text) > s.maxTextLength {
		return fiber.NewError(fiber.StatusUnprocessableEntity,
			fmt.Sprintf("O texto excede o limite de %d caracteres.", s.maxTextLength))
	}

	resp, err := s.classifier.Classify(c.Context(), models.ClassificationRequest{Text: *payload.Text})
	if err != nil {
		if classifiererror.IsValidation(err) {
			return fiber.NewError(fiber.StatusBadRequest, msgEmptyText)
		}
		return err
	}

	return c.JSON(resp)
}

// errorHandler renders every error as {"detail": "..."}.
func errorHandler(c fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	detail := "Erro interno do servidor."

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		detail = fe.Message
	}

	return c.Status(code).JSON(fiber.Map{"detail": detail})
}
