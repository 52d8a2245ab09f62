package server

import (
	"context"
	"kicker-tracker/internal/domain"
)

type FakeKickerService struct {
	GetKickerOrderFunc func(ctx context.Context, rawDraftID string) ([]domain.KickerPick, error)
	RecentLookupsFunc  func(ctx context.Context, limit int) ([]domain.Lookup, error)
}

func (f *FakeKickerService) GetKickerOrder(ctx context.Context, rawDraftID string) ([]domain.KickerPick, error) {
	if f.GetKickerOrderFunc != nil {
		return f.GetKickerOrderFunc(ctx, rawDraftID)
	}
	return []domain.KickerPick{}, nil
}

func (f *FakeKickerService) RecentLookups(ctx context.Context, limit int) ([]domain.Lookup, error) {
	if f.RecentLookupsFunc != nil {
		return f.RecentLookupsFunc(ctx, limit)
	}
	return []domain.Lookup{}, nil
}
