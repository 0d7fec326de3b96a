package impl

import (
	"context"
	"log/slog"

	deliverycontext "hive/internal/delivery/context"
	"hive/internal/domain/constants"
	"hive/internal/domain/entity"
	"hive/internal/domain/matching"
	"hive/internal/domain/repository"
	"hive/internal/domain/seed"
	"hive/internal/domain/service"
	"hive/internal/errors"
	"hive/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type roommateService struct {
	candidates *sharedCollection[entity.RoommateCandidate]
	profiles   repository.DocumentStore[entity.RoommateSeekerProfile]
	logger     *slog.Logger
}

// RoommateServiceParams holds dependencies for RoommateService, injected by Fx.
type RoommateServiceParams struct {
	fx.In

	Candidates repository.DocumentStore[[]entity.RoommateCandidate]
	Profiles   repository.DocumentStore[entity.RoommateSeekerProfile]
	Publisher  service.EventPublisher
	Logger     *slog.Logger
}

// NewRoommateService creates the roommate finder.
func NewRoommateService(params RoommateServiceParams) usecase.RoommateUsecase {
	return &roommateService{
		candidates: newSharedCollection(constants.KeyRoommates, params.Candidates, seed.Roommates, params.Publisher, params.Logger),
		profiles:   params.Profiles,
		logger:     params.Logger,
	}
}

func (srv *roommateService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOr(ctx, srv.logger)
}

func (srv *roommateService) ListCandidates(ctx context.Context) ([]entity.RoommateCandidate, error) {
	return srv.candidates.load(ctx)
}

func (srv *roommateService) SearchCandidates(ctx context.Context, filter matching.RoommateFilter) ([]entity.RoommateCandidate, error) {
	candidates, err := srv.candidates.load(ctx)
	if err != nil {
		return nil, err
	}

	return matching.FilterRoommates(candidates, filter), nil
}

func (srv *roommateService) AddCandidate(ctx context.Context, actor usecase.Actor, input *usecase.AddRoommateInput) ([]entity.RoommateCandidate, error) {
	candidate := entity.RoommateCandidate{
		ID:        entity.NewRecordID(),
		Name:      input.Name,
		Age:       input.Age,
		Gender:    input.Gender,
		Avatar:    input.Avatar,
		Budget:    input.Budget,
		Location:  input.Location,
		Interests: nonNil(input.Interests),
		Prefers:   nonNil(input.Prefers),
		About:     input.About,
	}

	return srv.candidates.mutate(ctx, actor, service.CollectionActionAdded, candidate.ID, prepend(candidate))
}

func (srv *roommateService) RemoveCandidate(ctx context.Context, actor usecase.Actor, id string) ([]entity.RoommateCandidate, error) {
	return srv.candidates.mutate(ctx, actor, service.CollectionActionRemoved, id, removeByID[entity.RoommateCandidate](id))
}

func (srv *roommateService) GetSeekerProfile(ctx context.Context, userID uuid.UUID) (*entity.RoommateSeekerProfile, error) {
	profile, err := srv.profiles.Get(ctx, constants.UserProfileKey(userID.String()), entity.RoommateSeekerProfile{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load roommate profile")
	}
	if profile == (entity.RoommateSeekerProfile{}) {
		return nil, nil
	}

	return &profile, nil
}

func (srv *roommateService) SaveSeekerProfile(ctx context.Context, actor usecase.Actor, input *usecase.SeekerProfileInput) (*usecase.MatchOutput, error) {
	profile := entity.RoommateSeekerProfile{
		Name:      input.Name,
		Age:       input.Age,
		Gender:    input.Gender,
		Budget:    input.Budget,
		Location:  input.Location,
		Interests: input.Interests,
		About:     input.About,
	}

	if err := srv.profiles.Set(ctx, constants.UserProfileKey(actor.ID()), profile); err != nil {
		return nil, errors.Wrap(err, "failed to save roommate profile")
	}
	srv.log(ctx).Debug("Saved roommate profile", slog.String("user_id", actor.ID()))

	return srv.match(ctx, &profile)
}

func (srv *roommateService) FindMatches(ctx context.Context, userID uuid.UUID) (*usecase.MatchOutput, error) {
	profile, err := srv.GetSeekerProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return &usecase.MatchOutput{Matches: []entity.RoommateCandidate{}}, nil
	}

	return srv.match(ctx, profile)
}

func (srv *roommateService) match(ctx context.Context, profile *entity.RoommateSeekerProfile) (*usecase.MatchOutput, error) {
	candidates, err := srv.candidates.load(ctx)
	if err != nil {
		return nil, err
	}

	matches := matching.FindMatches(candidates, *profile)
	srv.log(ctx).Debug("Matched roommates",
		slog.Int("candidates", len(candidates)),
		slog.Int("matches", len(matches)),
	)

	return &usecase.MatchOutput{Profile: profile, Matches: matches}, nil
}

func (srv *roommateService) Reset(ctx context.Context, actor usecase.Actor) ([]entity.RoommateCandidate, error) {
	return srv.candidates.reset(ctx, actor)
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}

	return items
}
