package service

import (
	"context"
	"kicker-tracker/internal/api"
	"kicker-tracker/internal/domain"
	"sync"
)

type FakeSleeper struct {
	GetDraftPicksFunc func(ctx context.Context, draftID string) ([]api.DraftPick, error)
	GetUserFunc       func(ctx context.Context, userID string) (*api.User, error)

	mu        sync.Mutex
	userCalls []string
}

func (f *FakeSleeper) GetDraftPicks(ctx context.Context, draftID string) ([]api.DraftPick, error) {
	if f.GetDraftPicksFunc != nil {
		return f.GetDraftPicksFunc(ctx, draftID)
	}
	return nil, nil
}

func (f *FakeSleeper) GetUser(ctx context.Context, userID string) (*api.User, error) {
	f.mu.Lock()
	f.userCalls = append(f.userCalls, userID)
	f.mu.Unlock()
	if f.GetUserFunc != nil {
		return f.GetUserFunc(ctx, userID)
	}
	name := userID + "_name"
	return &api.User{UserID: userID, Username: &name}, nil
}

func (f *FakeSleeper) UserCalls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.userCalls...)
}

type FakeLookupStore struct {
	RecordFunc func(ctx context.Context, lookup domain.Lookup) error
	RecentFunc func(ctx context.Context, limit int) ([]domain.Lookup, error)
}

func (f *FakeLookupStore) Record(ctx context.Context, lookup domain.Lookup) error {
	if f.RecordFunc != nil {
		return f.RecordFunc(ctx, lookup)
	}
	return nil
}

func (f *FakeLookupStore) Recent(ctx context.Context, limit int) ([]domain.Lookup, error) {
	if f.RecentFunc != nil {
		return f.RecentFunc(ctx, limit)
	}
	return []domain.Lookup{}, nil
}
