package service

import (
	"cmp"
	"context"
	"fmt"
	"kicker-tracker/internal/constants"
	"kicker-tracker/internal/domain"
	"slices"
	"strings"
)

// NameResolver returns a display name for a drafter id. It must not fail;
// degraded lookups return a placeholder.
type NameResolver func(ctx context.Context, userID string) string

// DeriveKickerOrder keeps the kicker picks, attaches manager names, orders them
// by (round, pick number) and labels them round.pick for a league whose size is
// inferred from the kickers' draft slots.
func DeriveKickerOrder(ctx context.Context, picks []domain.DraftPick, resolve NameResolver) ([]domain.KickerPick, error) {
	if len(picks) == 0 {
		return []domain.KickerPick{}, &domain.DeriveError{Message: domain.MsgNoDraftPicks}
	}

	managers := make(map[string]string)
	var kickers []domain.KickerPick

	for _, pick := range picks {
		position := strings.ToUpper(strings.TrimSpace(pick.Position))
		userID := pick.DrafterID

		// Every distinct drafter is resolved once, kicker or not.
		if userID != "" {
			if _, ok := managers[userID]; !ok {
				managers[userID] = resolve(ctx, userID)
			}
		}

		if position != constants.KickerPosition {
			continue
		}

		username, ok := managers[userID]
		if !ok {
			username = domain.UnknownManager
		}

		kickers = append(kickers, domain.KickerPick{
			PickNumber: pick.PickNumber,
			Round:      pick.Round,
			DraftSlot:  pick.DraftSlot,
			Username:   username,
			UserID:     userID,
			PlayerName: strings.TrimSpace(pick.PlayerFirstName + " " + pick.PlayerLastName),
		})
	}

	if len(kickers) == 0 {
		return []domain.KickerPick{}, &domain.DeriveError{Message: domain.MsgNoKickers}
	}

	slices.SortStableFunc(kickers, func(a, b domain.KickerPick) int {
		return cmp.Or(cmp.Compare(a.Round, b.Round), cmp.Compare(a.PickNumber, b.PickNumber))
	})

	leagueSize := LeagueSize(kickers)
	for idx := range kickers {
		kickers[idx].RookieRound = idx/leagueSize + 1
		kickers[idx].RookieSlot = idx%leagueSize + 1
		kickers[idx].RookiePick = FormatRookiePick(kickers[idx].RookieRound, kickers[idx].RookieSlot)
	}

	return kickers, nil
}

// LeagueSize is the highest draft slot among the kicker picks, or the number
// of picks when no positive slot is present.
func LeagueSize(kickers []domain.KickerPick) int {
	size := 0
	for _, k := range kickers {
		size = max(size, k.DraftSlot)
	}
	if size <= 0 {
		return len(kickers)
	}
	return size
}

func FormatRookiePick(round, slot int) string {
	return fmt.Sprintf("%d.%02d", round, slot)
}
