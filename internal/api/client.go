package api

import (
	"context"
	"io"

	"github.com/donapoint/donapoint/internal/models"
)

// PointQuery is the server-side part of a listing request. When Lat/Lng are
// set the backend returns only points within RadiusKm.
type PointQuery struct {
	Location *models.Location
	RadiusKm float64
}

// Client is the typed surface of the donation-point REST backend.
//
// Contract:
//   - Every authenticated call carries the current bearer token.
//   - Any 401 clears the session (via the unauthorized hook) before the
//     error is returned; callers only need to match ErrUnauthorized.
//   - Validation rejections come back as *APIError with the backend's
//     detail message untouched.
//
// All methods must honor context cancellation/timeouts.
type Client interface {
	Login(ctx context.Context, idToken string) (string, error)
	GetMe(ctx context.Context) (*models.Creator, error)
	UpdateCreator(ctx context.Context, id int64, update models.CreatorUpdate) (*models.Creator, error)
	VerifyCreator(ctx context.Context, id int64) (*models.Creator, error)

	ListPoints(ctx context.Context, query PointQuery) ([]models.DonationPoint, error)
	GetPoint(ctx context.Context, id int64) (*models.DonationPoint, error)
	CreatePoint(ctx context.Context, input models.PointCreate, image *ImageUpload) (*models.DonationPoint, error)
	UpdatePoint(ctx context.Context, id int64, update models.PointUpdate) (*models.DonationPoint, error)

	ListCreators(ctx context.Context) ([]models.Creator, error)
	AdminVerifyCreator(ctx context.Context, id int64) (*models.Creator, error)
	AdminUnverifyCreator(ctx context.Context, id int64) (*models.Creator, error)
}

// ImageUpload is an optional attachment for CreatePoint.
type ImageUpload struct {
	FileName string
	Reader   io.Reader
}
