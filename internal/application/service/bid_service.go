package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ozzus/nextbid/internal/application/builder"
	"github.com/ozzus/nextbid/internal/application/compiler"
	"github.com/ozzus/nextbid/internal/application/matcher"
	"github.com/ozzus/nextbid/internal/application/planner"
	"github.com/ozzus/nextbid/internal/application/render"
	derr "github.com/ozzus/nextbid/internal/domain/errors"
	"github.com/ozzus/nextbid/internal/domain/models"
	"github.com/ozzus/nextbid/internal/domain/ports"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

const tracerName = "nextbid/service"

type BidService struct {
	log             *zap.Logger
	profiles        ports.ProfileReader
	trips           ports.TripCatalog
	cache           ports.BidGroupCache
	cacheTTL        time.Duration
	defaultMaxLines int
}

func NewBidService(log *zap.Logger, profiles ports.ProfileReader, trips ports.TripCatalog, cache ports.BidGroupCache, cacheTTL time.Duration, defaultMaxLines int) *BidService {
	if log == nil {
		log = zap.NewNop()
	}
	if defaultMaxLines <= 0 {
		defaultMaxLines = compiler.DefaultMaxLines
	}

	return &BidService{
		log:             log,
		profiles:        profiles,
		trips:           trips,
		cache:           cache,
		cacheTTL:        cacheTTL,
		defaultMaxLines: defaultMaxLines,
	}
}

// BuildCommand validates and encodes a single UI command.
func (s *BidService) BuildCommand(ctx context.Context, input models.BidCommandInput, dateRange *models.DateRange) (ports.CommandResult, error) {
	const op = "service.BuildCommand"
	_, span := otel.Tracer(tracerName).Start(ctx, op)
	defer span.End()

	logger := s.log.With(zap.String("op", op))

	cmd, err := builder.Build(input, dateRange)
	if err != nil {
		logger.Warn("invalid command input", zap.Error(err))
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, "invalid command input")
		return ports.CommandResult{}, err
	}

	span.SetAttributes(
		attribute.String("command.kind", string(cmd.Kind)),
		attribute.String("command.property", string(cmd.Property)),
	)
	span.SetStatus(otelcodes.Ok, "ok")

	return ports.CommandResult{
		Command:      cmd,
		Rendered:     render.Render(cmd),
		MatchedTrips: []models.Trip{},
	}, nil
}

// SimulateCommand builds a UI command and evaluates it against the catalog.
func (s *BidService) SimulateCommand(ctx context.Context, input models.BidCommandInput, dateRange *models.DateRange, period string) (ports.CommandResult, error) {
	const op = "service.SimulateCommand"
	ctx, span := otel.Tracer(tracerName).Start(ctx, op)
	defer span.End()
	span.SetAttributes(attribute.String("trips.period", period))

	logger := s.log.With(zap.String("op", op), zap.String("period", period))

	cmd, err := builder.Build(input, dateRange)
	if err != nil {
		logger.Warn("invalid command input", zap.Error(err))
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, "invalid command input")
		return ports.CommandResult{}, err
	}

	trips, err := s.listTrips(ctx, op, period)
	if err != nil {
		logger.Warn("failed to load trips", zap.Error(err))
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, "failed to load trips")
		return ports.CommandResult{}, err
	}

	matched := matcher.MatchTrips(cmd, trips)
	span.SetAttributes(attribute.Int("trips.matched", len(matched)))
	span.SetStatus(otelcodes.Ok, "ok")
	logger.Info("command simulated",
		zap.String("rendered", render.Render(cmd)),
		zap.Int("trips_total", len(trips)),
		zap.Int("trips_matched", len(matched)),
	)

	return ports.CommandResult{Command: cmd, Rendered: render.Render(cmd), MatchedTrips: matched}, nil
}

// MatchCommand evaluates an already canonical command against the catalog.
func (s *BidService) MatchCommand(ctx context.Context, cmd models.TripPropertyCommand, period string) (ports.CommandResult, error) {
	const op = "service.MatchCommand"
	ctx, span := otel.Tracer(tracerName).Start(ctx, op)
	defer span.End()

	logger := s.log.With(zap.String("op", op), zap.String("period", period))

	if cmd.Kind != models.CommandAward && cmd.Kind != models.CommandAvoid {
		err := fmt.Errorf("%w: unknown kind %q", derr.ErrInvalidCommandInput, cmd.Kind)
		span.SetStatus(otelcodes.Error, "invalid command kind")
		return ports.CommandResult{}, err
	}
	if cmd.Kind == models.CommandAvoid {
		cmd.TripPool = ""
	}

	trips, err := s.listTrips(ctx, op, period)
	if err != nil {
		logger.Warn("failed to load trips", zap.Error(err))
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, "failed to load trips")
		return ports.CommandResult{}, err
	}

	matched := matcher.MatchTrips(cmd, trips)
	span.SetAttributes(attribute.Int("trips.matched", len(matched)))
	span.SetStatus(otelcodes.Ok, "ok")

	return ports.CommandResult{Command: cmd, Rendered: render.Render(cmd), MatchedTrips: matched}, nil
}

// CompileBidGroup compiles the stored profile into numbered bid lines. Cached
// groups are reused; cache errors never fail the call.
func (s *BidService) CompileBidGroup(ctx context.Context, profileID string, maxLines int) (ports.CompiledBidGroup, error) {
	const op = "service.CompileBidGroup"
	ctx, span := otel.Tracer(tracerName).Start(ctx, op)
	defer span.End()

	profileID = strings.TrimSpace(profileID)
	if maxLines <= 0 {
		maxLines = s.defaultMaxLines
	}
	span.SetAttributes(
		attribute.String("profile.id", profileID),
		attribute.Int("bidgroup.max_lines", maxLines),
	)

	logger := s.log.With(
		zap.String("op", op),
		zap.String("profile_id", profileID),
		zap.Int("max_lines", maxLines),
	)

	if profileID == "" {
		logger.Warn("invalid profile_id")
		span.SetStatus(otelcodes.Error, "invalid profile_id")
		return ports.CompiledBidGroup{}, derr.ErrInvalidProfileID
	}

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, profileID, maxLines)
		if err == nil {
			logger.Info("bid group cache hit")
			span.AddEvent("bidgroup.cache.hit")
			return newCompiledBidGroup(profileID, maxLines, cached), nil
		}
		if errors.Is(err, derr.ErrBidGroupNotFound) {
			logger.Info("bid group cache miss")
			span.AddEvent("bidgroup.cache.miss")
		} else {
			logger.Warn("redis cache read failed", zap.Error(err))
			span.RecordError(err)
		}
	}

	profile, err := s.profiles.GetProfile(ctx, profileID)
	if err != nil {
		logger.Warn("failed to load profile", zap.Error(err))
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, "failed to load profile")
		return ports.CompiledBidGroup{}, fmt.Errorf("%s: %w", op, err)
	}

	cmds := compiler.Compile(profile, maxLines)

	if s.cache != nil {
		if err := s.cache.Set(ctx, profileID, maxLines, cmds, s.cacheTTL); err != nil {
			logger.Warn("redis cache write failed", zap.Error(err))
			span.RecordError(err)
		}
	}

	span.SetAttributes(attribute.Int("bidgroup.lines", len(cmds)))
	span.SetStatus(otelcodes.Ok, "ok")
	logger.Info("bid group compiled", zap.Int("lines", len(cmds)))

	return newCompiledBidGroup(profileID, maxLines, cmds), nil
}

// PreviewBidGroup compiles the profile and shows the trips each line affects.
func (s *BidService) PreviewBidGroup(ctx context.Context, profileID, period string, maxLines int) (ports.BidGroupPreview, error) {
	const op = "service.PreviewBidGroup"
	ctx, span := otel.Tracer(tracerName).Start(ctx, op)
	defer span.End()
	span.SetAttributes(attribute.String("trips.period", period))

	logger := s.log.With(zap.String("op", op), zap.String("profile_id", profileID), zap.String("period", period))

	group, err := s.CompileBidGroup(ctx, profileID, maxLines)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, "failed to compile bid group")
		return ports.BidGroupPreview{}, err
	}

	trips, err := s.listTrips(ctx, op, period)
	if err != nil {
		logger.Warn("failed to load trips", zap.Error(err))
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, "failed to load trips")
		return ports.BidGroupPreview{}, err
	}

	matches := make([]ports.CommandResult, 0, len(group.Lines))
	for _, line := range group.Lines {
		matches = append(matches, ports.CommandResult{
			Command:      line.Command,
			Rendered:     line.Text,
			MatchedTrips: matcher.MatchTrips(line.Command, trips),
		})
	}

	span.SetStatus(otelcodes.Ok, "ok")
	logger.Info("bid group previewed", zap.Int("lines", len(matches)), zap.Int("trips_total", len(trips)))

	return ports.BidGroupPreview{CompiledBidGroup: group, Period: period, Matches: matches}, nil
}

// PreviewPreferences turns plain-language preferences into bid groups and
// previews each of them on the catalog.
func (s *BidService) PreviewPreferences(ctx context.Context, prefs planner.Preferences, period string, dateRange *models.DateRange) ([]models.BidGroupPreview, error) {
	const op = "service.PreviewPreferences"
	ctx, span := otel.Tracer(tracerName).Start(ctx, op)
	defer span.End()

	logger := s.log.With(zap.String("op", op), zap.String("period", period))

	trips, err := s.listTrips(ctx, op, period)
	if err != nil {
		logger.Warn("failed to load trips", zap.Error(err))
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, "failed to load trips")
		return nil, err
	}

	groups := planner.BuildBidGroups(prefs)
	previews := make([]models.BidGroupPreview, 0, len(groups))
	for _, group := range groups {
		preview, err := planner.PreviewGroup(group, trips, dateRange)
		if err != nil {
			logger.Warn("invalid preference group", zap.String("group_id", group.ID), zap.Error(err))
			span.RecordError(err)
			span.SetStatus(otelcodes.Error, "invalid preference group")
			return nil, err
		}
		previews = append(previews, preview)
	}

	span.SetAttributes(attribute.Int("bidgroup.groups", len(previews)))
	span.SetStatus(otelcodes.Ok, "ok")

	return previews, nil
}

func (s *BidService) listTrips(ctx context.Context, op, period string) ([]models.Trip, error) {
	if s.trips == nil {
		return nil, fmt.Errorf("%s: %w", op, derr.ErrCatalogUnavailable)
	}

	trips, err := s.trips.ListTrips(ctx, strings.TrimSpace(period))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		return nil, fmt.Errorf("%s: %w: %w", op, derr.ErrCatalogUnavailable, err)
	}

	return trips, nil
}

func newCompiledBidGroup(profileID string, maxLines int, cmds []models.TripPropertyCommand) ports.CompiledBidGroup {
	lines := render.BidLines(cmds)
	return ports.CompiledBidGroup{
		ProfileID: profileID,
		MaxLines:  maxLines,
		Lines:     lines,
		Export:    render.ExportBlock(lines),
	}
}
