package grpc

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/ozzus/nextbid/internal/application/service"
	derr "github.com/ozzus/nextbid/internal/domain/errors"
	"github.com/ozzus/nextbid/internal/domain/models"
	"github.com/ozzus/nextbid/internal/transport/wire"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

type testProfiles struct{}

func (testProfiles) GetProfile(ctx context.Context, id string) (models.PreferenceProfile, error) {
	if id != "oli" {
		return models.PreferenceProfile{}, derr.ErrProfileNotFound
	}
	return models.PreferenceProfile{
		ID:                    "oli",
		PreferredDestinations: []string{"DXB", "ATL"},
		AvoidDestinations:     []string{"BOM"},
		PreferLongTrips:       true,
	}, nil
}

type testTrips struct{}

func (testTrips) ListTrips(ctx context.Context, period string) ([]models.Trip, error) {
	return []models.Trip{
		{TripNumber: "7024", Route: "LHR – MLE – LHR (BA061/060)", TripDays: 4},
		{TripNumber: "7174", Route: "LHR – JFK – LHR (BA173/176)", TripDays: 3},
	}, nil
}

func newTestClient(t *testing.T) *Client {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	svc := service.NewBidService(zap.NewNop(), testProfiles{}, testTrips{}, nil, 0, 5)
	Register(srv, zap.NewNop(), svc)

	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("dial bufconn: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	return NewClient(conn)
}

func TestClient_CompileBidGroup(t *testing.T) {
	client := newTestClient(t)

	got, err := client.CompileBidGroup(context.Background(), &wire.CompileBidGroupRequest{ProfileID: "oli", MaxLines: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Export != "T01 S5 AVOID DEST BOM\nT02 S4 AWARD DEST DXB [H++]" {
		t.Fatalf("unexpected export: %q", got.Export)
	}

	_, err = client.CompileBidGroup(context.Background(), &wire.CompileBidGroupRequest{ProfileID: "ghost"})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("expected NotFound, got %v", err)
	}

	_, err = client.CompileBidGroup(context.Background(), &wire.CompileBidGroupRequest{ProfileID: " "})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
}

func TestClient_SimulateAndPreview(t *testing.T) {
	client := newTestClient(t)

	sim, err := client.SimulateCommand(context.Background(), &wire.SimulateCommandRequest{
		Input: wire.CommandInput{Kind: models.InputDestination, Verb: models.CommandAward, Destination: "jfk"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sim.MatchedTrips) != 1 || sim.MatchedTrips[0].TripNumber != "7174" {
		t.Fatalf("unexpected matches: %+v", sim.MatchedTrips)
	}

	preview, err := client.PreviewBidGroup(context.Background(), &wire.PreviewBidGroupRequest{ProfileID: "oli", Period: "Jan 2026"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if preview.ProfileID != "oli" || len(preview.Matches) != len(preview.Lines) {
		t.Fatalf("unexpected preview: %+v", preview)
	}

	_, err = client.BuildCommand(context.Background(), &wire.BuildCommandRequest{
		Input: wire.CommandInput{Kind: models.InputTripLengthDays, Verb: models.CommandAward, Operator: "BETWEEN"},
	})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code codes.Code
	}{
		{name: "invalid_input", err: derr.ErrInvalidCommandInput, code: codes.InvalidArgument},
		{name: "unsupported", err: derr.ErrUnsupportedCommandKind, code: codes.InvalidArgument},
		{name: "not_found", err: derr.ErrProfileNotFound, code: codes.NotFound},
		{name: "unavailable", err: derr.ErrCatalogUnavailable, code: codes.Unavailable},
		{name: "deadline", err: context.DeadlineExceeded, code: codes.DeadlineExceeded},
		{name: "canceled", err: context.Canceled, code: codes.Canceled},
		{name: "internal", err: errors.New("boom"), code: codes.Internal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapError(tt.err)
			if status.Code(got) != tt.code {
				t.Fatalf("expected code %s, got %s", tt.code, status.Code(got))
			}
		})
	}
}
