package service

import (
	"context"
	"errors"
	"fmt"
	"kicker-tracker/internal/api"
	"kicker-tracker/internal/constants"
	"kicker-tracker/internal/domain"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type SleeperAPI interface {
	GetDraftPicks(ctx context.Context, draftID string) ([]api.DraftPick, error)
	GetUser(ctx context.Context, userID string) (*api.User, error)
}

type LookupStore interface {
	Record(ctx context.Context, lookup domain.Lookup) error
	Recent(ctx context.Context, limit int) ([]domain.Lookup, error)
}

type KickerService struct {
	sleeper SleeperAPI
	lookups LookupStore
	logger  zerolog.Logger
}

func NewKickerService(sleeper SleeperAPI, lookups LookupStore, logger zerolog.Logger) *KickerService {
	return &KickerService{sleeper: sleeper, lookups: lookups, logger: logger}
}

// FetchPicks validates rawDraftID and loads the draft's picks. Every failure
// is a *domain.FetchError carrying the user-facing message.
func (s *KickerService) FetchPicks(ctx context.Context, rawDraftID string) ([]domain.DraftPick, error) {
	draftID, err := ValidateDraftID(rawDraftID)
	if err != nil {
		s.logger.Debug().Str("draft_id", rawDraftID).Msg("rejected draft id")
		return nil, &domain.FetchError{Message: domain.MsgInvalidDraftID, Err: err}
	}

	apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	raw, err := s.sleeper.GetDraftPicks(apiCtx, draftID)
	if err != nil {
		s.logger.Error().Err(err).Str("draft_id", draftID).Msg("failed to fetch draft picks")
		return nil, &domain.FetchError{Message: domain.MsgFetchFailed, Err: err}
	}

	picks := make([]domain.DraftPick, 0, len(raw))
	for _, p := range raw {
		picks = append(picks, domain.DraftPick{
			PickNumber:      p.PickNo,
			Round:           p.Round,
			DraftSlot:       p.DraftSlot,
			DrafterID:       p.PickedBy,
			Position:        p.Metadata.Position,
			PlayerFirstName: p.Metadata.FirstName,
			PlayerLastName:  p.Metadata.LastName,
		})
	}

	s.logger.Debug().Str("draft_id", draftID).Int("pick_count", len(picks)).Msg("draft picks fetched")
	return picks, nil
}

// ResolveName never fails; any upstream problem yields domain.UnknownUsername.
func (s *KickerService) ResolveName(ctx context.Context, userID string) string {
	apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	user, err := s.sleeper.GetUser(apiCtx, userID)
	if err != nil {
		s.logger.Warn().Err(err).Str("user_id", userID).Msg("failed to fetch user")
		return domain.UnknownUsername
	}
	if user == nil || user.Username == nil {
		s.logger.Warn().Str("user_id", userID).Msg("user payload has no username")
		return domain.UnknownUsername
	}
	return *user.Username
}

func (s *KickerService) GetKickerOrder(ctx context.Context, rawDraftID string) ([]domain.KickerPick, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	picks, err := s.FetchPicks(ctx, rawDraftID)
	if err != nil {
		return nil, err
	}

	kickers, err := DeriveKickerOrder(ctx, picks, s.ResolveName)
	if err != nil {
		s.logger.Info().Str("draft_id", rawDraftID).Str("reason", err.Error()).Msg("no kicker order derived")
		return kickers, err
	}

	draftID, _ := ValidateDraftID(rawDraftID)
	s.logger.Info().Str("draft_id", draftID).Int("kicker_count", len(kickers)).Msg("kicker order derived")

	s.recordLookup(domain.Lookup{
		DraftID:     draftID,
		KickerCount: len(kickers),
		LeagueSize:  LeagueSize(kickers),
		CreatedAt:   time.Now().UTC(),
	})

	return kickers, nil
}

func (s *KickerService) recordLookup(lookup domain.Lookup) {
	if s.lookups == nil {
		return
	}

	g := new(errgroup.Group)
	g.Go(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), constants.DatabaseTimeout)
		defer cancel()
		if err := s.lookups.Record(ctx, lookup); err != nil {
			return fmt.Errorf("record lookup for draft %s: %w", lookup.DraftID, err)
		}
		return nil
	})

	go func() {
		if err := g.Wait(); err != nil {
			s.logger.Warn().Err(err).Msg("background task failed")
		}
	}()
}

func (s *KickerService) RecentLookups(ctx context.Context, limit int) ([]domain.Lookup, error) {
	if s.lookups == nil {
		return []domain.Lookup{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	lookups, err := s.lookups.Recent(ctx, ClampLimit(limit))
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to load recent lookups")
		return nil, fmt.Errorf("failed to load recent lookups: %w", err)
	}
	return lookups, nil
}

func ClampLimit(limit int) int {
	switch {
	case limit <= 0:
		return constants.RecentLookupDefaultLimit
	case limit > constants.RecentLookupMaxLimit:
		return constants.RecentLookupMaxLimit
	default:
		return limit
	}
}

// IsInvalidDraftID reports whether err stems from draft id validation.
func IsInvalidDraftID(err error) bool {
	return errors.Is(err, domain.ErrInvalidDraftID)
}
