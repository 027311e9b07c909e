package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/katalvlaran/potfield/config"
	"github.com/katalvlaran/potfield/descent"
	"github.com/katalvlaran/potfield/field"
	"github.com/katalvlaran/potfield/internal/telemetry"
	"github.com/katalvlaran/potfield/route"
	"github.com/katalvlaran/potfield/synth"
)

// Search modes.
const (
	ModeGreedy = "greedy"
	ModeAStar  = "astar"
)

var (
	// ErrFieldNotFound indicates an unknown or evicted field id.
	ErrFieldNotFound = errors.New("service: field not found")

	// ErrBadRequest indicates a request the core would reject, such as a size over the server cap.
	ErrBadRequest = errors.New("service: bad request")
)

// RegenerateRequest overrides the configured synthesis parameters; zero values keep them.
type RegenerateRequest struct {
	Size       int     `json:"size" binding:"gte=0"`
	Complexity *int    `json:"complexity" binding:"omitempty,gte=0,lte=1000"`
	Seed       *uint64 `json:"seed"`
}

// Cell is the wire form of a grid coordinate.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Point is a display-space position on a plot of the given extent.
type Point struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Extent float64 `json:"extent" binding:"gt=0"`
}

// SearchRequest starts a search from Start or, when Start is nil, from the cell under Point.
type SearchRequest struct {
	Start         *Cell  `json:"start"`
	Point         *Point `json:"point"`
	Mode          string `json:"mode" binding:"omitempty,oneof=greedy astar"`
	MaxIterations *int   `json:"max_iterations" binding:"omitempty,gte=0,lte=1000000"`
	StallPolicy   string `json:"stall_policy" binding:"omitempty,oneof=continue stop"`
}

// SearchResult is a completed search against a stored field.
type SearchResult struct {
	FieldID    string  `json:"field_id"`
	Mode       string  `json:"mode"`
	Start      Cell    `json:"start"`
	Goal       Cell    `json:"goal"`
	Path       []Cell  `json:"path"`
	Outcome    string  `json:"outcome"`
	Reached    bool    `json:"reached"`
	Iterations int     `json:"iterations"`
	Cost       float64 `json:"cost"`
}

// Service owns the session store and the configured defaults.
type Service struct {
	cfg   config.Config
	store *Store
	log   *slog.Logger
	now   func() time.Time
}

// New validates cfg and returns a Service with an empty store.
func New(cfg config.Config, log *slog.Logger) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = telemetry.Discard()
	}

	return &Service{
		cfg:   cfg,
		store: NewStore(cfg.Server.MaxFields),
		log:   log,
		now:   time.Now,
	}, nil
}

// Store exposes the session store.
func (s *Service) Store() *Store { return s.store }

// Regenerate synthesizes a new field and stores it.
func (s *Service) Regenerate(ctx context.Context, req RegenerateRequest) (*Session, error) {
	fc := s.cfg.Field
	if req.Size > 0 {
		fc.Size = req.Size
	}
	if req.Complexity != nil {
		fc.Complexity = *req.Complexity
	}
	if req.Seed != nil {
		fc.Seed = *req.Seed
	}
	if err := fc.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	if fc.Size > s.cfg.Server.MaxSize {
		return nil, fmt.Errorf("%w: size %d exceeds limit %d", ErrBadRequest, fc.Size, s.cfg.Server.MaxSize)
	}

	_, span := telemetry.Tracer().Start(ctx, "service.Regenerate")
	defer span.End()
	span.SetAttributes(
		attribute.Int("field.size", fc.Size),
		attribute.Int("field.complexity", fc.Complexity),
	)

	opts, err := fc.SynthOptions()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	began := s.now()
	g, err := synth.Synthesize(fc.Size, fc.Complexity, opts...)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	telemetry.ObserveSynthesis(fc.Size, s.now().Sub(began))

	sess := &Session{
		ID:         uuid.NewString(),
		Grid:       g,
		Complexity: fc.Complexity,
		Seed:       fc.Seed,
		Stats:      g.Stats(),
		CreatedAt:  s.now(),
	}
	for _, id := range s.store.Put(sess) {
		s.log.Debug("evicted field", "id", id)
	}
	s.log.Info("field generated",
		"id", sess.ID, "size", fc.Size, "complexity", fc.Complexity,
		"min", sess.Stats.Min, "max", sess.Stats.Max)

	return sess, nil
}

// Field returns a stored session.
func (s *Service) Field(id string) (*Session, error) {
	sess, ok := s.store.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrFieldNotFound, id)
	}
	return sess, nil
}

// Search runs one search on field id towards its global minimum.
func (s *Service) Search(ctx context.Context, id string, req SearchRequest) (*SearchResult, error) {
	sess, err := s.Field(id)
	if err != nil {
		return nil, err
	}
	g := sess.Grid

	var start field.Coord
	switch {
	case req.Start != nil:
		start = field.Coord{Row: req.Start.Row, Col: req.Start.Col}
	case req.Point != nil:
		start = ToGrid(req.Point.X, req.Point.Y, req.Point.Extent, g.Size())
	default:
		return nil, fmt.Errorf("%w: start or point is required", ErrBadRequest)
	}
	goal := g.ArgMin()

	mode := req.Mode
	if mode == "" {
		mode = s.cfg.Search.Mode
	}

	_, span := telemetry.Tracer().Start(ctx, "service.Search")
	defer span.End()
	span.SetAttributes(
		attribute.String("field.id", id),
		attribute.String("search.mode", mode),
		attribute.Int("search.start.row", start.Row),
		attribute.Int("search.start.col", start.Col),
	)

	out := &SearchResult{
		FieldID: id,
		Mode:    mode,
		Start:   Cell{Row: start.Row, Col: start.Col},
		Goal:    Cell{Row: goal.Row, Col: goal.Col},
	}
	var path descent.Path
	switch mode {
	case ModeAStar:
		res, err := route.ShortestPath(g, start, goal, s.cfg.Search.RouteOptions()...)
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
		path = res.Path
		out.Outcome = descent.Reached.String()
		out.Iterations = res.Expanded
		out.Cost = res.Cost
	default:
		sc := s.cfg.Search
		if req.MaxIterations != nil {
			sc.MaxIterations = *req.MaxIterations
		}
		if req.StallPolicy != "" {
			sc.StallPolicy = req.StallPolicy
		}
		if err := sc.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadRequest, err)
		}
		opts, err := sc.DescentOptions()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadRequest, err)
		}
		res, err := descent.Search(g, start, goal, opts...)
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
		path = res.Path
		out.Outcome = res.Outcome.String()
		out.Iterations = res.Iterations
		out.Cost = path.Cost(g)
	}

	out.Path = make([]Cell, len(path))
	for i, c := range path {
		out.Path[i] = Cell{Row: c.Row, Col: c.Col}
	}
	out.Reached = path.Reaches(goal)
	span.SetAttributes(attribute.String("search.outcome", out.Outcome), attribute.Int("search.cells", len(path)))
	telemetry.ObserveSearch(mode, out.Outcome, len(path))
	s.log.Info("path computed",
		"id", id, "mode", mode, "start", start, "goal", goal,
		"outcome", out.Outcome, "cells", len(path))

	return out, nil
}
