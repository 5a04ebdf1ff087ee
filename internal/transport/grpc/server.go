package grpc

import (
	"context"
	"errors"
	"strings"

	"github.com/ozzus/nextbid/internal/application/service"
	derr "github.com/ozzus/nextbid/internal/domain/errors"
	"github.com/ozzus/nextbid/internal/domain/ports"
	"github.com/ozzus/nextbid/internal/transport/wire"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type serverAPI struct {
	log     *zap.Logger
	service *service.BidService
}

func Register(gRPCServer *grpc.Server, log *zap.Logger, bidService *service.BidService) {
	if log == nil {
		log = zap.NewNop()
	}
	gRPCServer.RegisterService(&bidPlannerServiceDesc, &serverAPI{
		log:     log,
		service: bidService,
	})
}

func (s *serverAPI) BuildCommand(ctx context.Context, req *wire.BuildCommandRequest) (*ports.CommandResult, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	input, err := req.Input.ToModel()
	if err != nil {
		return nil, mapError(err)
	}

	result, err := s.service.BuildCommand(ctx, input, req.DateRange)
	if err != nil {
		return nil, mapError(err)
	}

	return &result, nil
}

func (s *serverAPI) SimulateCommand(ctx context.Context, req *wire.SimulateCommandRequest) (*ports.CommandResult, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	input, err := req.Input.ToModel()
	if err != nil {
		return nil, mapError(err)
	}

	result, err := s.service.SimulateCommand(ctx, input, req.DateRange, req.Period)
	if err != nil {
		return nil, mapError(err)
	}

	return &result, nil
}

func (s *serverAPI) CompileBidGroup(ctx context.Context, req *wire.CompileBidGroupRequest) (*ports.CompiledBidGroup, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if strings.TrimSpace(req.ProfileID) == "" {
		return nil, status.Error(codes.InvalidArgument, "profile_id is required")
	}
	if req.MaxLines < 0 {
		return nil, status.Error(codes.InvalidArgument, "max_lines must not be negative")
	}

	group, err := s.service.CompileBidGroup(ctx, req.ProfileID, req.MaxLines)
	if err != nil {
		return nil, mapError(err)
	}

	return &group, nil
}

func (s *serverAPI) PreviewBidGroup(ctx context.Context, req *wire.PreviewBidGroupRequest) (*ports.BidGroupPreview, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if strings.TrimSpace(req.ProfileID) == "" {
		return nil, status.Error(codes.InvalidArgument, "profile_id is required")
	}
	if req.MaxLines < 0 {
		return nil, status.Error(codes.InvalidArgument, "max_lines must not be negative")
	}

	preview, err := s.service.PreviewBidGroup(ctx, req.ProfileID, req.Period, req.MaxLines)
	if err != nil {
		return nil, mapError(err)
	}

	return &preview, nil
}

func mapError(err error) error {
	switch {
	case errors.Is(err, derr.ErrInvalidCommandInput),
		errors.Is(err, derr.ErrUnsupportedCommandKind),
		errors.Is(err, derr.ErrInvalidProfileID):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, derr.ErrProfileNotFound):
		return status.Error(codes.NotFound, "profile not found")
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "deadline exceeded")
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "request canceled")
	case errors.Is(err, derr.ErrCatalogUnavailable):
		return status.Error(codes.Unavailable, "trip catalog unavailable")
	default:
		return status.Error(codes.Internal, "internal error")
	}
}
