package fixtures

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	derr "github.com/ozzus/nextbid/internal/domain/errors"
	"github.com/ozzus/nextbid/internal/domain/models"
	"gopkg.in/yaml.v3"
)

const (
	profilesFile = "profiles.yaml"
	tripsFile    = "trips.yaml"
)

type profilesDocument struct {
	Profiles []models.PreferenceProfile `yaml:"profiles"`
}

type tripsDocument struct {
	Trips []models.Trip `yaml:"trips"`
}

// FileStore serves profiles and trips from YAML files in a directory. Files
// are read on every call so edits show up without a restart.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (s *FileStore) GetProfile(ctx context.Context, id string) (models.PreferenceProfile, error) {
	if err := ctx.Err(); err != nil {
		return models.PreferenceProfile{}, err
	}

	id = strings.TrimSpace(id)
	if id == "" {
		return models.PreferenceProfile{}, derr.ErrInvalidProfileID
	}

	var doc profilesDocument
	if err := s.decode(profilesFile, &doc); err != nil {
		return models.PreferenceProfile{}, err
	}

	for _, profile := range doc.Profiles {
		if strings.EqualFold(profile.ID, id) {
			return profile, nil
		}
	}

	return models.PreferenceProfile{}, derr.ErrProfileNotFound
}

func (s *FileStore) ListTrips(ctx context.Context, period string) ([]models.Trip, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var doc tripsDocument
	if err := s.decode(tripsFile, &doc); err != nil {
		return nil, err
	}

	period = strings.TrimSpace(period)
	trips := make([]models.Trip, 0, len(doc.Trips))
	for _, trip := range doc.Trips {
		if period != "" && !strings.EqualFold(trip.PlanningPeriod, period) {
			continue
		}
		trips = append(trips, trip)
	}

	return trips, nil
}

func (s *FileStore) decode(name string, out any) error {
	path := filepath.Join(s.dir, name)

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	return nil
}
