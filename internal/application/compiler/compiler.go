// Package compiler turns a pilot preference profile into a ranked bid group.
package compiler

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ozzus/nextbid/internal/domain/models"
	"github.com/ozzus/nextbid/internal/domain/qualifier"
)

// DefaultMaxLines is used when Compile is called with a non-positive limit.
const DefaultMaxLines = 5

type scoredCommand struct {
	command models.TripPropertyCommand
	score   int
}

type dedupKey struct {
	kind      models.CommandKind
	property  models.TripProperty
	qualifier string
	pool      models.TripPool
}

// Compile scores every facet of the profile, orders the candidates by score
// (ties keep generation order), drops duplicates and keeps the first maxLines.
func Compile(profile models.PreferenceProfile, maxLines int) []models.TripPropertyCommand {
	if maxLines <= 0 {
		maxLines = DefaultMaxLines
	}

	candidates := make([]scoredCommand, 0, 16)
	candidates = append(candidates, destinationCandidates(profile)...)
	candidates = append(candidates, tripLengthCandidates(profile)...)
	candidates = append(candidates, lifestyleCandidates(profile)...)

	return rank(candidates, maxLines)
}

func rank(candidates []scoredCommand, maxLines int) []models.TripPropertyCommand {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	seen := make(map[dedupKey]struct{}, len(candidates))
	out := make([]models.TripPropertyCommand, 0, maxLines)
	for _, c := range candidates {
		key := dedupKey{
			kind:      c.command.Kind,
			property:  c.command.Property,
			qualifier: c.command.Qualifier,
			pool:      c.command.TripPool,
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		out = append(out, c.command)
		if len(out) == maxLines {
			break
		}
	}

	return out
}

func destinationCandidates(profile models.PreferenceProfile) []scoredCommand {
	var out []scoredCommand

	if len(profile.DestinationRules) > 0 {
		for i, rule := range profile.DestinationRules {
			code := qualifier.Destination(rule.Qualifier).String()
			if code == "" {
				continue
			}

			switch rule.Mode {
			case models.CommandAward:
				out = append(out, scoredCommand{
					command: models.TripPropertyCommand{
						Kind:      models.CommandAward,
						Property:  models.PropertyDestination,
						Qualifier: code,
						TripPool:  poolOr(rule.TripPool, models.PoolHigh),
						Note:      "Prefer " + code + " trips",
					},
					score: Priorities[FacetDestinationAward].At(i),
				})
			case models.CommandAvoid:
				out = append(out, scoredCommand{
					command: models.TripPropertyCommand{
						Kind:      models.CommandAvoid,
						Property:  models.PropertyDestination,
						Qualifier: code,
						Note:      "Avoid " + code + " trips",
					},
					score: Priorities[FacetDestinationAvoid].At(i),
				})
			}
		}
		return out
	}

	for i, dest := range profile.PreferredDestinations {
		code := qualifier.Destination(dest).String()
		if code == "" {
			continue
		}

		pool, rankNote := models.PoolHigher, "Secondary"
		if i == 0 {
			pool, rankNote = models.PoolHighest, "Primary"
		}
		out = append(out, scoredCommand{
			command: models.TripPropertyCommand{
				Kind:      models.CommandAward,
				Property:  models.PropertyDestination,
				Qualifier: code,
				TripPool:  pool,
				Note:      rankNote + " destination preference for " + code,
			},
			score: Priorities[FacetPreferredFallback].At(i),
		})
	}

	for i, dest := range profile.AvoidDestinations {
		code := qualifier.Destination(dest).String()
		if code == "" {
			continue
		}

		out = append(out, scoredCommand{
			command: models.TripPropertyCommand{
				Kind:      models.CommandAvoid,
				Property:  models.PropertyDestination,
				Qualifier: code,
				Note:      "Completely avoid " + code,
			},
			score: Priorities[FacetAvoidFallback].At(i),
		})
	}

	return out
}

func tripLengthCandidates(profile models.PreferenceProfile) []scoredCommand {
	if len(profile.TripLengthRules) == 0 {
		if !profile.PreferLongTrips {
			return nil
		}
		return []scoredCommand{
			{
				command: models.TripPropertyCommand{
					Kind:      models.CommandAward,
					Property:  models.PropertyTripLength,
					Qualifier: qualifier.ExactDays(4).String(),
					TripPool:  models.PoolHigh,
					Note:      "Prefer 4-day trips into high pool",
				},
				score: Priorities[FacetLongTripPrimary].At(0),
			},
			{
				command: models.TripPropertyCommand{
					Kind:      models.CommandAward,
					Property:  models.PropertyTripLength,
					Qualifier: qualifier.ExactDays(3).String(),
					TripPool:  models.PoolLow,
					Note:      "Fallback: 3-day trips into low pool",
				},
				score: Priorities[FacetLongTripSecondary].At(0),
			},
		}
	}

	out := make([]scoredCommand, 0, len(profile.TripLengthRules))
	for i, rule := range profile.TripLengthRules {
		term, description := lengthRuleTerm(rule)

		cmd := models.TripPropertyCommand{
			Kind:      rule.Mode,
			Property:  models.PropertyTripLength,
			Qualifier: term.String(),
		}
		switch rule.Mode {
		case models.CommandAward:
			cmd.TripPool = poolOr(rule.TripPool, models.PoolHigh)
			cmd.Note = "Prefer " + description
		case models.CommandAvoid:
			cmd.Note = "Avoid " + description
		default:
			continue
		}

		out = append(out, scoredCommand{command: cmd, score: Priorities[FacetTripLength].At(i)})
	}

	return out
}

func lengthRuleTerm(rule models.TripLengthRule) (qualifier.LengthTerm, string) {
	switch {
	case rule.MaxDays == nil:
		return qualifier.AtLeastDays(rule.MinDays), fmt.Sprintf("%d days or more", rule.MinDays)
	case *rule.MaxDays == rule.MinDays:
		return qualifier.ExactDays(rule.MinDays), fmt.Sprintf("%d-day trips", rule.MinDays)
	default:
		return qualifier.BetweenDays(rule.MinDays, *rule.MaxDays),
			fmt.Sprintf("%d–%d-day trips", rule.MinDays, *rule.MaxDays)
	}
}

func lifestyleCandidates(profile models.PreferenceProfile) []scoredCommand {
	var out []scoredCommand

	if profile.PreferLongLayovers {
		out = append(out, scoredCommand{
			command: models.TripPropertyCommand{
				Kind:      models.CommandAward,
				Property:  models.PropertyLayoverWithLength,
				Qualifier: qualifier.LayoverTerm{Comparator: qualifier.GreaterOrEqual, Hours: 36}.String(),
				Note:      "Prefer trips with long layovers (36h+ estimate)",
			},
			score: Priorities[FacetLongLayover].At(0),
		})
	}

	if profile.ReserveAvoidanceLevel == models.ReserveHate {
		out = append(out, scoredCommand{
			command: models.TripPropertyCommand{
				Kind:      models.CommandAvoid,
				Property:  models.PropertyCreditTime,
				Qualifier: qualifier.TimeTerm{Comparator: qualifier.Less, Clock: "12:00"}.String(),
				Note:      "Avoid very low-credit trips to reduce reserve risk",
			},
			score: Priorities[FacetReserveProtection].At(0),
		})
	}

	if t := strings.TrimSpace(profile.EarliestPreferredReportTime); t != "" {
		out = append(out, scoredCommand{
			command: models.TripPropertyCommand{
				Kind:      models.CommandAvoid,
				Property:  models.PropertyTripReportTime,
				Qualifier: qualifier.TimeTerm{Comparator: qualifier.Less, Clock: t}.String(),
				Note:      "Avoid report times earlier than " + t + " (lifestyle/fatigue preference)",
			},
			score: Priorities[FacetEarliestReport].At(0),
		})
	}

	if t := strings.TrimSpace(profile.LatestPreferredReportTime); t != "" {
		out = append(out, scoredCommand{
			command: models.TripPropertyCommand{
				Kind:      models.CommandAvoid,
				Property:  models.PropertyTripReportTime,
				Qualifier: qualifier.TimeTerm{Comparator: qualifier.Greater, Clock: t}.String(),
				Note:      "Avoid report times later than " + t,
			},
			score: Priorities[FacetLatestReport].At(0),
		})
	}

	return out
}

func poolOr(pool, fallback models.TripPool) models.TripPool {
	if pool == "" {
		return fallback
	}
	return pool
}
