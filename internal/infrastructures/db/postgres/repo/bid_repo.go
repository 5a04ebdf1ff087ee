package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	derr "github.com/ozzus/nextbid/internal/domain/errors"
	"github.com/ozzus/nextbid/internal/domain/models"
)

// Repository reads preference profiles and published trips. Both tables are
// owned by the crew-scheduling import job; this service never writes them.
type Repository struct {
	db *pgxpool.Pool
}

func New(ctx context.Context, dsn string) (*Repository, error) {
	poolCfg, err := buildPoolConfig(dsn)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pgx pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return &Repository{db: pool}, nil
}

// buildPoolConfig switches pgx to the simple protocol so the pool works behind
// transaction-mode poolers that cannot hold prepared statements.
func buildPoolConfig(dsn string) (*pgxpool.Config, error) {
	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse pgx pool config: %w", err)
	}
	poolCfg.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	poolCfg.ConnConfig.StatementCacheCapacity = 0
	poolCfg.ConnConfig.DescriptionCacheCapacity = 0

	return poolCfg, nil
}

func (r *Repository) Close() {
	r.db.Close()
}

func (r *Repository) GetProfile(ctx context.Context, id string) (models.PreferenceProfile, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return models.PreferenceProfile{}, derr.ErrInvalidProfileID
	}

	const query = `
		SELECT
			profile_id,
			name,
			fleet,
			seat,
			seniority_number,
			preferred_destinations,
			avoid_destinations,
			COALESCE(destination_rules, '[]'::jsonb),
			COALESCE(trip_length_rules, '[]'::jsonb),
			COALESCE(earliest_report_time, ''),
			COALESCE(latest_report_time, ''),
			prefer_long_trips,
			prefer_long_layovers,
			reserve_avoidance
		FROM preference_profiles
		WHERE profile_id = $1
	`

	var (
		profile          models.PreferenceProfile
		destinationRules []byte
		tripLengthRules  []byte
		reserve          string
	)

	err := r.db.QueryRow(ctx, query, id).Scan(
		&profile.ID,
		&profile.Name,
		&profile.Fleet,
		&profile.Seat,
		&profile.SeniorityNumber,
		&profile.PreferredDestinations,
		&profile.AvoidDestinations,
		&destinationRules,
		&tripLengthRules,
		&profile.EarliestPreferredReportTime,
		&profile.LatestPreferredReportTime,
		&profile.PreferLongTrips,
		&profile.PreferLongLayovers,
		&reserve,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.PreferenceProfile{}, derr.ErrProfileNotFound
		}
		return models.PreferenceProfile{}, fmt.Errorf("query profile by id: %w", err)
	}

	if err := json.Unmarshal(destinationRules, &profile.DestinationRules); err != nil {
		return models.PreferenceProfile{}, fmt.Errorf("decode destination rules of %s: %w", id, err)
	}
	if err := json.Unmarshal(tripLengthRules, &profile.TripLengthRules); err != nil {
		return models.PreferenceProfile{}, fmt.Errorf("decode trip length rules of %s: %w", id, err)
	}
	profile.ReserveAvoidanceLevel = models.ReserveAvoidance(strings.ToUpper(reserve))

	return profile, nil
}

func (r *Repository) ListTrips(ctx context.Context, period string) ([]models.Trip, error) {
	period = strings.TrimSpace(period)

	const query = `
		SELECT
			trip_number,
			route,
			departure_base,
			planning_period,
			tafb,
			trip_credit,
			trip_days,
			flying_hours,
			duty_hours,
			layover_hours_estimate,
			COALESCE(report_time_local, '')
		FROM trips
		WHERE ($1 = '' OR planning_period = $1)
		ORDER BY planning_period ASC, trip_number ASC
	`

	rows, err := r.db.Query(ctx, query, period)
	if err != nil {
		return nil, fmt.Errorf("query trips: %w", err)
	}
	defer rows.Close()

	trips := make([]models.Trip, 0, 64)
	for rows.Next() {
		var trip models.Trip
		if err := rows.Scan(
			&trip.TripNumber,
			&trip.Route,
			&trip.DepartureBase,
			&trip.PlanningPeriod,
			&trip.TAFB,
			&trip.TripCredit,
			&trip.TripDays,
			&trip.FlyingHours,
			&trip.DutyHours,
			&trip.LayoverHoursEstimate,
			&trip.ReportTimeLocal,
		); err != nil {
			return nil, fmt.Errorf("scan trip: %w", err)
		}
		trips = append(trips, trip)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate trips: %w", err)
	}

	return trips, nil
}
