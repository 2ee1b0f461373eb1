package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/donapoint/donapoint/internal/api"
	"github.com/donapoint/donapoint/internal/models"
	"github.com/donapoint/donapoint/internal/session"
)

// ErrNotLoggedIn is returned by operations that need an authenticated
// session before any request can be made.
var ErrNotLoggedIn = errors.New("not logged in")

// CreatorService covers profile management and the creator directory.
type CreatorService interface {
	// UpdateProfile patches the current user's profile and refreshes the
	// session's cached copy.
	UpdateProfile(ctx context.Context, update models.CreatorUpdate) (*models.Creator, error)

	// RequestVerification asks the backend to mark the current user
	// verified, unlocking point creation.
	RequestVerification(ctx context.Context) (*models.Creator, error)

	ListAll(ctx context.Context) ([]models.Creator, error)
	Verify(ctx context.Context, id int64) (*models.Creator, error)
	Unverify(ctx context.Context, id int64) (*models.Creator, error)
}

type creatorService struct {
	client  api.Client
	session *session.Manager
}

func NewCreatorService(client api.Client, sess *session.Manager) CreatorService {
	return &creatorService{client: client, session: sess}
}

func (s *creatorService) UpdateProfile(ctx context.Context, update models.CreatorUpdate) (*models.Creator, error) {
	user := s.session.CurrentUser()
	if user == nil {
		return nil, ErrNotLoggedIn
	}

	updated, err := s.client.UpdateCreator(ctx, user.ID, update)
	if err != nil {
		return nil, fmt.Errorf("updating profile: %w", err)
	}

	s.session.SetUser(updated)
	return updated, nil
}

func (s *creatorService) RequestVerification(ctx context.Context) (*models.Creator, error) {
	user := s.session.CurrentUser()
	if user == nil {
		return nil, ErrNotLoggedIn
	}

	updated, err := s.client.VerifyCreator(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	s.session.SetUser(updated)
	return updated, nil
}

func (s *creatorService) ListAll(ctx context.Context) ([]models.Creator, error) {
	return s.client.ListCreators(ctx)
}

func (s *creatorService) Verify(ctx context.Context, id int64) (*models.Creator, error) {
	return s.client.AdminVerifyCreator(ctx, id)
}

func (s *creatorService) Unverify(ctx context.Context, id int64) (*models.Creator, error) {
	return s.client.AdminUnverifyCreator(ctx, id)
}
