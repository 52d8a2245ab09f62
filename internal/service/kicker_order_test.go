package service

import (
	"context"
	"fmt"
	"kicker-tracker/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type resolverStub struct {
	names map[string]string
	calls map[string]int
}

func newResolverStub(names map[string]string) *resolverStub {
	return &resolverStub{names: names, calls: make(map[string]int)}
}

func (r *resolverStub) resolve(_ context.Context, userID string) string {
	r.calls[userID]++
	if name, ok := r.names[userID]; ok {
		return name
	}
	return domain.UnknownUsername
}

func kicker(pickNo, round, slot int, drafter, first, last string) domain.DraftPick {
	return domain.DraftPick{
		PickNumber:      pickNo,
		Round:           round,
		DraftSlot:       slot,
		DrafterID:       drafter,
		Position:        "K",
		PlayerFirstName: first,
		PlayerLastName:  last,
	}
}

func TestDeriveKickerOrder_Errors(t *testing.T) {
	stub := newResolverStub(nil)

	t.Run("no picks", func(t *testing.T) {
		got, err := DeriveKickerOrder(context.Background(), nil, stub.resolve)
		var deriveErr *domain.DeriveError
		require.ErrorAs(t, err, &deriveErr)
		assert.Equal(t, domain.MsgNoDraftPicks, deriveErr.Message)
		assert.Empty(t, got)
	})

	t.Run("no kickers", func(t *testing.T) {
		picks := []domain.DraftPick{
			{PickNumber: 1, Round: 1, DraftSlot: 1, DrafterID: "u1", Position: "QB"},
			{PickNumber: 2, Round: 1, DraftSlot: 2, DrafterID: "u2", Position: "DEF"},
		}
		got, err := DeriveKickerOrder(context.Background(), picks, stub.resolve)
		var deriveErr *domain.DeriveError
		require.ErrorAs(t, err, &deriveErr)
		assert.Equal(t, domain.MsgNoKickers, deriveErr.Message)
		assert.Empty(t, got)
	})
}

func TestDeriveKickerOrder_Example(t *testing.T) {
	stub := newResolverStub(map[string]string{"u1": "joe_mgr", "u2": "ann_mgr"})
	picks := []domain.DraftPick{
		kicker(5, 1, 3, "u1", "Joe", "Kicker"),
		kicker(2, 1, 1, "u2", "Ann", "Boot"),
	}

	got, err := DeriveKickerOrder(context.Background(), picks, stub.resolve)
	require.NoError(t, err)

	want := []domain.KickerPick{
		{PickNumber: 2, Round: 1, DraftSlot: 1, Username: "ann_mgr", UserID: "u2", PlayerName: "Ann Boot", RookiePick: "1.01", RookieRound: 1, RookieSlot: 1},
		{PickNumber: 5, Round: 1, DraftSlot: 3, Username: "joe_mgr", UserID: "u1", PlayerName: "Joe Kicker", RookiePick: "1.02", RookieRound: 1, RookieSlot: 2},
	}
	assert.Equal(t, want, got)
}

func TestDeriveKickerOrder_PositionNormalized(t *testing.T) {
	stub := newResolverStub(map[string]string{"u1": "a"})
	picks := []domain.DraftPick{
		{PickNumber: 1, Round: 1, DraftSlot: 1, DrafterID: "u1", Position: " k "},
		{PickNumber: 2, Round: 1, DraftSlot: 1, DrafterID: "u1", Position: "KR"},
		{PickNumber: 3, Round: 1, DraftSlot: 1, DrafterID: "u1", Position: ""},
	}

	got, err := DeriveKickerOrder(context.Background(), picks, stub.resolve)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].PickNumber)
}

func TestDeriveKickerOrder_ResolvesEachDrafterOnce(t *testing.T) {
	stub := newResolverStub(map[string]string{"u1": "one", "u2": "two", "u3": "three"})
	picks := []domain.DraftPick{
		{PickNumber: 1, Round: 1, DraftSlot: 1, DrafterID: "u1", Position: "RB"},
		{PickNumber: 2, Round: 1, DraftSlot: 2, DrafterID: "u2", Position: "WR"},
		{PickNumber: 3, Round: 2, DraftSlot: 2, DrafterID: "u2", Position: "K"},
		{PickNumber: 4, Round: 2, DraftSlot: 1, DrafterID: "u1", Position: "K"},
		{PickNumber: 5, Round: 3, DraftSlot: 3, DrafterID: "u3", Position: "TE"},
	}

	_, err := DeriveKickerOrder(context.Background(), picks, stub.resolve)
	require.NoError(t, err)

	// non-kicker drafters are resolved too
	assert.Equal(t, map[string]int{"u1": 1, "u2": 1, "u3": 1}, stub.calls)
}

func TestDeriveKickerOrder_EmptyDrafterIsUnknownManager(t *testing.T) {
	stub := newResolverStub(map[string]string{"u1": "one"})
	picks := []domain.DraftPick{
		kicker(1, 1, 1, "", "Auto", "Pick"),
		kicker(2, 1, 2, "u1", "Real", "Pick"),
	}

	got, err := DeriveKickerOrder(context.Background(), picks, stub.resolve)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, domain.UnknownManager, got[0].Username)
	assert.Equal(t, "", got[0].UserID)
	assert.Equal(t, "one", got[1].Username)
	assert.NotContains(t, stub.calls, "")
}

func TestDeriveKickerOrder_ResolverFailureKeepsSentinel(t *testing.T) {
	stub := newResolverStub(nil)
	got, err := DeriveKickerOrder(context.Background(), []domain.DraftPick{kicker(1, 1, 1, "ghost", "A", "B")}, stub.resolve)
	require.NoError(t, err)
	assert.Equal(t, domain.UnknownUsername, got[0].Username)
}

func TestDeriveKickerOrder_PlayerName(t *testing.T) {
	tests := []struct {
		first, last, want string
	}{
		{"Justin", "Tucker", "Justin Tucker"},
		{"", "Tucker", "Tucker"},
		{"Justin", "", "Justin"},
		{"", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got, err := DeriveKickerOrder(context.Background(), []domain.DraftPick{kicker(1, 1, 1, "", tt.first, tt.last)}, newResolverStub(nil).resolve)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got[0].PlayerName)
		})
	}
}

func TestDeriveKickerOrder_StableSort(t *testing.T) {
	picks := []domain.DraftPick{
		kicker(9, 2, 1, "", "Late", "One"),
		kicker(4, 1, 2, "", "Tie", "First"),
		kicker(4, 1, 3, "", "Tie", "Second"),
		kicker(1, 1, 1, "", "Early", "One"),
		kicker(4, 1, 1, "", "Tie", "Third"),
	}

	got, err := DeriveKickerOrder(context.Background(), picks, newResolverStub(nil).resolve)
	require.NoError(t, err)

	var names []string
	for _, k := range got {
		names = append(names, k.PlayerName)
	}
	assert.Equal(t, []string{"Early One", "Tie First", "Tie Second", "Tie Third", "Late One"}, names)
}

func TestDeriveKickerOrder_LabelsWrapAtLeagueSize(t *testing.T) {
	var picks []domain.DraftPick
	// 7 kickers in a league whose highest kicker slot is 3
	for i := 0; i < 7; i++ {
		picks = append(picks, kicker(i+1, i/3+1, i%3+1, "", "K", fmt.Sprint(i)))
	}

	got, err := DeriveKickerOrder(context.Background(), picks, newResolverStub(nil).resolve)
	require.NoError(t, err)

	want := []string{"1.01", "1.02", "1.03", "2.01", "2.02", "2.03", "3.01"}
	for i, k := range got {
		assert.Equal(t, want[i], k.RookiePick)
		assert.Equal(t, fmt.Sprintf("%d.%02d", i/3+1, i%3+1), k.RookiePick)
		assert.Equal(t, i/3+1, k.RookieRound)
		assert.Equal(t, i%3+1, k.RookieSlot)
	}
}

func TestDeriveKickerOrder_TwoDigitSlots(t *testing.T) {
	var picks []domain.DraftPick
	for i := 0; i < 12; i++ {
		picks = append(picks, kicker(i+1, 1, i+1, "", "K", fmt.Sprint(i)))
	}

	got, err := DeriveKickerOrder(context.Background(), picks, newResolverStub(nil).resolve)
	require.NoError(t, err)
	assert.Equal(t, "1.09", got[8].RookiePick)
	assert.Equal(t, "1.12", got[11].RookiePick)
}

func TestDeriveKickerOrder_Idempotent(t *testing.T) {
	stub := newResolverStub(map[string]string{"u1": "one", "u2": "two"})
	picks := []domain.DraftPick{
		kicker(30, 3, 2, "u2", "B", "B"),
		kicker(11, 1, 1, "u1", "A", "A"),
		kicker(20, 2, 4, "u1", "C", "C"),
	}

	first, err := DeriveKickerOrder(context.Background(), picks, stub.resolve)
	require.NoError(t, err)
	second, err := DeriveKickerOrder(context.Background(), picks, stub.resolve)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	// memo is per call
	assert.Equal(t, 2, stub.calls["u1"])
}

func TestLeagueSize(t *testing.T) {
	tests := []struct {
		name    string
		kickers []domain.KickerPick
		want    int
	}{
		{name: "max slot", kickers: []domain.KickerPick{{DraftSlot: 4}, {DraftSlot: 10}, {DraftSlot: 2}}, want: 10},
		{name: "missing slots fall back to count", kickers: []domain.KickerPick{{}, {}, {}}, want: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LeagueSize(tt.kickers))
		})
	}
}
