package ingest

import (
	"context"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/actions-insider/webhook-ingest/internal/github"
	"github.com/actions-insider/webhook-ingest/internal/store"
	"github.com/actions-insider/webhook-ingest/internal/webhook"
)

func TestUpserter_NilShortCircuits(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStore := store.NewMockStore(ctrl)
	u := NewUpserter(mockStore)
	ctx := context.Background()

	if id, err := u.Owner(ctx, nil); id != nil || err != nil {
		t.Errorf("Owner(nil) want nil,nil got %v,%v", id, err)
	}
	if id, err := u.Repository(ctx, nil); id != nil || err != nil {
		t.Errorf("Repository(nil) want nil,nil got %v,%v", id, err)
	}
	if id, err := u.Workflow(ctx, nil, 1); id != nil || err != nil {
		t.Errorf("Workflow(nil) want nil,nil got %v,%v", id, err)
	}
	if id, err := u.RepositoryFromAPI(ctx, nil); id != nil || err != nil {
		t.Errorf("RepositoryFromAPI(nil) want nil,nil got %v,%v", id, err)
	}
}

func TestUpserter_PayloadAndAPIConverge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStore := store.NewMockStore(ctrl)
	u := NewUpserter(mockStore)
	ctx := context.Background()

	wantOwner := &store.Owner{ID: 2, Login: "octo-org", EntityType: store.EntityTypeOrganization}
	wantRepo := &store.Repository{ID: 10, Name: "service", OwnerID: 2}
	mockStore.EXPECT().UpsertOwner(gomock.Any(), wantOwner).Return(nil).Times(2)
	mockStore.EXPECT().UpsertRepository(gomock.Any(), wantRepo).Return(nil).Times(2)

	owner := &webhook.Account{ID: 2, Login: "octo-org", Type: store.EntityTypeOrganization}
	if _, err := u.Repository(ctx, &webhook.Repository{ID: 10, Name: "service", Owner: owner}); err != nil {
		t.Fatalf("Repository: %v", err)
	}
	apiRepo := &github.Repository{ID: 10, Name: "service", Owner: github.Account{ID: 2, Login: "octo-org", Type: "Organization"}}
	if _, err := u.RepositoryFromAPI(ctx, apiRepo); err != nil {
		t.Fatalf("RepositoryFromAPI: %v", err)
	}
}

func TestUpserter_Workflow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStore := store.NewMockStore(ctrl)

	var captured *store.Workflow
	mockStore.EXPECT().UpsertWorkflow(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, w *store.Workflow) error {
		captured = w
		return nil
	})

	id, err := NewUpserter(mockStore).WorkflowFromAPI(context.Background(), &github.Workflow{ID: 7, Name: "CI", Path: "ci.yml", State: "active"}, 10)
	if err != nil {
		t.Fatalf("WorkflowFromAPI: %v", err)
	}
	if *id != 7 || captured.RepositoryID != 10 || captured.State != "active" {
		t.Errorf("unexpected workflow row %+v", captured)
	}
}
