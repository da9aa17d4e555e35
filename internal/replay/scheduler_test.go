package replay

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/actions-insider/webhook-ingest/internal/store"
)

func TestScheduler_PushAll_NoOrganizations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStore := store.NewMockStore(ctrl)
	mockStore.EXPECT().ListFetchOwners(gomock.Any()).Return(nil, nil)

	called := false
	s := NewScheduler(mockStore, func() (*Driver, error) {
		called = true
		return nil, nil
	}, "", time.Hour, time.Minute)

	if err := s.PushAll(context.Background(), time.Hour); err != nil {
		t.Errorf("PushAll want nil got %v", err)
	}
	if called {
		t.Errorf("driver should not be created without organizations")
	}
}

func TestScheduler_PushAll_DriverPerOrganization(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStore := store.NewMockStore(ctrl)
	mockStore.EXPECT().ListFetchOwners(gomock.Any()).Return([]store.Owner{{ID: 1, Login: "a"}, {ID: 2, Login: "b"}}, nil)

	created := make(chan struct{}, 2)
	s := NewScheduler(mockStore, func() (*Driver, error) {
		created <- struct{}{}
		return nil, ErrNoTokens
	}, "", time.Hour, time.Minute)

	err := s.PushAll(context.Background(), time.Hour)
	if !errors.Is(err, ErrNoTokens) {
		t.Errorf("err want ErrNoTokens got %v", err)
	}
	if len(created) != 2 {
		t.Errorf("drivers created want 2 got %d", len(created))
	}
}

func TestScheduler_PushAll_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStore := store.NewMockStore(ctrl)
	mockStore.EXPECT().ListFetchOwners(gomock.Any()).Return(nil, errors.New("db down"))

	s := NewScheduler(mockStore, nil, "", time.Hour, time.Minute)
	if err := s.PushAll(context.Background(), time.Hour); err == nil {
		t.Errorf("PushAll want error")
	}
}

func TestScheduler_RunRejectsBadSchedule(t *testing.T) {
	s := NewScheduler(nil, nil, "not a schedule", time.Hour, time.Minute)
	if err := s.Run(context.Background()); err == nil {
		t.Errorf("Run want error for invalid schedule")
	}
}

func TestScheduler_RunStopsOnCancel(t *testing.T) {
	s := NewScheduler(nil, nil, DefaultSchedule, time.Hour, time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run want nil got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop")
	}
}
