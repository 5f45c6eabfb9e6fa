// Package server provides the HTTP API for negobot.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/ykarpov/negobot/internal/negotiation"
	"github.com/ykarpov/negobot/internal/offers"
	"github.com/ykarpov/negobot/internal/templates"
)

// Server exposes the negotiation engine over HTTP.
type Server struct {
	echo   *echo.Echo
	engine *negotiation.Engine
	logger *zap.Logger
	config *Config
}

// Config holds HTTP server configuration.
type Config struct {
	Host string
	Port int
}

// NewServer creates a new HTTP server around an engine.
func NewServer(engine *negotiation.Engine, logger *zap.Logger, cfg *Config) (*Server, error) {
	if engine == nil {
		return nil, fmt.Errorf("engine cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg == nil {
		cfg = &Config{
			Host: "localhost",
			Port: 8080,
		}
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			logger.Info("http request",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Int("status", c.Response().Status),
				zap.Duration("duration", time.Since(start)),
				zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			)

			return err
		}
	})

	s := &Server{
		echo:   e,
		engine: engine,
		logger: logger,
		config: cfg,
	}

	s.registerRoutes()

	return s, nil
}

func (s *Server) registerRoutes() {
	s.echo.GET("/health", s.handleHealth)

	s.echo.GET("/offers/random", s.handleRandomOffer)
	s.echo.GET("/offers", s.handleOffers)

	s.echo.POST("/sessions", s.handleCreateSession)
	s.echo.GET("/sessions/:id", s.handleSessionStatus)
	s.echo.DELETE("/sessions/:id", s.handleCloseSession)
	s.echo.POST("/sessions/:id/messages", s.handleMessage)
}

// HealthResponse is the response body for GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// handleRandomOffer draws one offer; the sector query parameter narrows the
// draw to a single sector.
func (s *Server) handleRandomOffer(c echo.Context) error {
	sector := offers.Sector(c.QueryParam("sector"))

	offer, err := s.engine.GenerateOffer(sector)
	if err != nil {
		if errors.Is(err, offers.ErrUnknownSector) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return err
	}

	return c.JSON(http.StatusOK, offer)
}

// OffersResponse is the response body for GET /offers.
type OffersResponse struct {
	Offers []*offers.Offer `json:"offers"`
	Count  int             `json:"count"`
}

func (s *Server) handleOffers(c echo.Context) error {
	count := 3
	if raw := c.QueryParam("count"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "count must be a positive integer")
		}
		count = parsed
	}

	batch, err := s.engine.GenerateOffers(count)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, OffersResponse{Offers: batch, Count: len(batch)})
}

// CreateSessionRequest is the request body for POST /sessions.
type CreateSessionRequest struct {
	Company        string         `json:"company"`
	Position       string         `json:"position"`
	Profile        map[string]any `json:"profile"`
	Strategy       string         `json:"strategy"`
	TargetSalary   int            `json:"target_salary"`
	TargetBenefits []string       `json:"target_benefits"`
	DealBreakers   []string       `json:"deal_breakers"`

	// GenerateOffer attaches a freshly drawn offer to the session; Sector
	// narrows the draw. Company and Position are then taken from the offer.
	GenerateOffer bool   `json:"generate_offer"`
	Sector        string `json:"sector"`
}

// CreateSessionResponse is the response body for POST /sessions.
type CreateSessionResponse struct {
	SessionID string        `json:"session_id"`
	Offer     *offers.Offer `json:"offer,omitempty"`
}

func (s *Server) handleCreateSession(c echo.Context) error {
	var req CreateSessionRequest
	if err := c.Bind(&req); err != nil {
		s.logger.Warn("invalid session request", zap.Error(err))
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	opts := negotiation.SessionOptions{
		Strategy:       templates.Strategy(req.Strategy),
		TargetSalary:   req.TargetSalary,
		TargetBenefits: req.TargetBenefits,
		DealBreakers:   req.DealBreakers,
	}

	company, position := req.Company, req.Position
	if req.GenerateOffer {
		offer, err := s.engine.GenerateOffer(offers.Sector(req.Sector))
		if err != nil {
			if errors.Is(err, offers.ErrUnknownSector) {
				return echo.NewHTTPError(http.StatusBadRequest, err.Error())
			}
			return err
		}
		opts.InitialOffer = offer
		company, position = offer.Company.Name, offer.Position
	}

	id, err := s.engine.CreateSession(company, position, req.Profile, opts)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusCreated, CreateSessionResponse{SessionID: id, Offer: opts.InitialOffer})
}

// MessageRequest is the request body for POST /sessions/:id/messages.
type MessageRequest struct {
	Message string `json:"message"`
	// OfferContext optionally overrides offer terms for this round, e.g.
	// {"salary": "$95,000"}.
	OfferContext map[string]string `json:"offer_context"`
}

// MessageResponse is the response body for POST /sessions/:id/messages.
type MessageResponse struct {
	Utterance string        `json:"utterance"`
	Action    string        `json:"action"`
	Reply     string        `json:"reply"`
	NewOffer  *offers.Offer `json:"new_offer,omitempty"`
	Fallback  bool          `json:"fallback"`
}

func (s *Server) handleMessage(c echo.Context) error {
	var req MessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Message == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "message field is required")
	}

	result, err := s.engine.SubmitMessage(c.Request().Context(), c.Param("id"), req.Message, req.OfferContext)
	if err != nil {
		return sessionError(err)
	}

	return c.JSON(http.StatusOK, MessageResponse{
		Utterance: result.Utterance,
		Action:    string(result.Action),
		Reply:     result.Reply,
		NewOffer:  result.NewOffer,
		Fallback:  result.Fallback,
	})
}

// SessionStatusResponse is the response body for GET /sessions/:id.
type SessionStatusResponse struct {
	SessionID    string                     `json:"session_id"`
	Company      string                     `json:"company"`
	Position     string                     `json:"position"`
	Strategy     string                     `json:"strategy"`
	TargetSalary int                        `json:"target_salary,omitempty"`
	CurrentOffer *offers.Offer              `json:"current_offer,omitempty"`
	Rounds       int                        `json:"rounds"`
	Declined     bool                       `json:"declined"`
	Withdrawn    bool                       `json:"withdrawn"`
	History      []negotiation.HistoryEntry `json:"history"`
}

func (s *Server) handleSessionStatus(c echo.Context) error {
	status, err := s.engine.SessionStatus(c.Param("id"))
	if err != nil {
		return sessionError(err)
	}

	return c.JSON(http.StatusOK, SessionStatusResponse{
		SessionID:    status.SessionID,
		Company:      status.CompanyName,
		Position:     status.Position,
		Strategy:     string(status.Strategy),
		TargetSalary: status.TargetSalary,
		CurrentOffer: status.CurrentOffer,
		Rounds:       status.Rounds,
		Declined:     status.Declined,
		Withdrawn:    status.Withdrawn,
		History:      status.History,
	})
}

func (s *Server) handleCloseSession(c echo.Context) error {
	if err := s.engine.CloseSession(c.Param("id")); err != nil {
		return sessionError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func sessionError(err error) error {
	switch {
	case errors.Is(err, negotiation.ErrUnknownSession):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, negotiation.ErrSessionClosed):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return err
	}
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.logger.Info("starting http server", zap.String("addr", addr))
	return s.echo.Start(addr)
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.echo.Shutdown(ctx)
}
