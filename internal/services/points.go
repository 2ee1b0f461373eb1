// Package services contains the application services sitting between the
// terminal views and the API gateway: point listing with filtering, point
// creation with advisory validation, and creator profile management.
package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/thoas/go-funk"

	"github.com/donapoint/donapoint/internal/api"
	"github.com/donapoint/donapoint/internal/logging"
	"github.com/donapoint/donapoint/internal/models"
)

// ErrInvalidInput marks client-side validation rejections. These never
// reach the backend; the checks only mirror its rules to save round-trips.
var ErrInvalidInput = errors.New("invalid input")

// PointService defines the point-facing operations for the views.
//
// Contract:
//   - List: fetch points matching the filter, nearest first when a
//     location is known. Free-text matching happens client-side (the
//     backend has no text search yet).
//   - Get/Update: pass-through with the gateway's error surfacing.
//   - Create: advisory validation, then exactly one multipart submission.
type PointService interface {
	List(ctx context.Context, filter models.Filter, loc *models.Location) ([]models.DonationPoint, error)
	Get(ctx context.Context, id int64) (*models.DonationPoint, error)
	Create(ctx context.Context, input models.PointCreate, imagePath string) (*models.DonationPoint, error)
	Update(ctx context.Context, id int64, update models.PointUpdate) (*models.DonationPoint, error)
}

type pointService struct {
	client   api.Client
	validate *validator.Validate
	radiusKm float64
	log      logging.Logger
}

// NewPointService binds a PointService to the API client. radiusKm bounds
// location-based listings.
func NewPointService(client api.Client, radiusKm float64, log logging.Logger) PointService {
	return &pointService{
		client:   client,
		validate: validator.New(),
		radiusKm: radiusKm,
		log:      log,
	}
}

func (s *pointService) List(ctx context.Context, filter models.Filter, loc *models.Location) ([]models.DonationPoint, error) {
	query := api.PointQuery{}
	if loc != nil {
		query.Location = loc
		query.RadiusKm = s.radiusKm
	}

	points, err := s.client.ListPoints(ctx, query)
	if err != nil {
		return nil, err
	}

	if search := strings.ToLower(strings.TrimSpace(filter.Search)); search != "" {
		points = funk.Filter(points, func(p models.DonationPoint) bool {
			return strings.Contains(strings.ToLower(p.OrganizationName), search) ||
				strings.Contains(strings.ToLower(p.Address), search) ||
				strings.Contains(strings.ToLower(p.Description), search)
		}).([]models.DonationPoint)
	}

	if filter.VerifiedOnly != nil {
		points, err = s.filterByCreatorVerified(ctx, points, *filter.VerifiedOnly)
		if err != nil {
			return nil, err
		}
	}

	if loc != nil {
		sort.SliceStable(points, func(i, j int) bool {
			pi := models.Location{Lat: points[i].Latitude, Lng: points[i].Longitude}
			pj := models.Location{Lat: points[j].Latitude, Lng: points[j].Longitude}
			return models.DistanceKm(*loc, pi) < models.DistanceKm(*loc, pj)
		})
	}

	return points, nil
}

// filterByCreatorVerified joins points against the creator directory, since
// point records carry only the creator id.
func (s *pointService) filterByCreatorVerified(ctx context.Context, points []models.DonationPoint, wantVerified bool) ([]models.DonationPoint, error) {
	creators, err := s.client.ListCreators(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading creator directory: %w", err)
	}

	verified := make(map[int64]bool, len(creators))
	for _, c := range creators {
		verified[c.ID] = c.Verified
	}

	return funk.Filter(points, func(p models.DonationPoint) bool {
		return verified[p.CreatorID] == wantVerified
	}).([]models.DonationPoint), nil
}

func (s *pointService) Get(ctx context.Context, id int64) (*models.DonationPoint, error) {
	return s.client.GetPoint(ctx, id)
}

func (s *pointService) Update(ctx context.Context, id int64, update models.PointUpdate) (*models.DonationPoint, error) {
	return s.client.UpdatePoint(ctx, id, update)
}

func (s *pointService) Create(ctx context.Context, input models.PointCreate, imagePath string) (*models.DonationPoint, error) {
	if err := s.validateCreate(input); err != nil {
		return nil, err
	}

	var image *api.ImageUpload
	if imagePath != "" {
		f, err := os.Open(imagePath)
		if err != nil {
			return nil, fmt.Errorf("opening image: %w", err)
		}
		defer f.Close()
		image = &api.ImageUpload{FileName: filepath.Base(imagePath), Reader: f}
	}

	point, err := s.client.CreatePoint(ctx, input, image)
	if err != nil {
		return nil, err
	}

	s.log.Info(ctx, "donation point created", "id", point.ID, "organization", point.OrganizationName)
	return point, nil
}

// validateCreate mirrors the backend's bounds so obviously bad submissions
// never cost a round-trip. The backend stays the authority.
func (s *pointService) validateCreate(input models.PointCreate) error {
	err := s.validate.Struct(input)
	if err == nil {
		return nil
	}

	var verr validator.ValidationErrors
	if !errors.As(err, &verr) || len(verr) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	switch field := verr[0].StructField(); field {
	case "OrganizationName":
		return fmt.Errorf("%w: organization name is required", ErrInvalidInput)
	case "Address":
		return fmt.Errorf("%w: address is required", ErrInvalidInput)
	case "Latitude":
		return fmt.Errorf("%w: latitude must be between -90 and 90", ErrInvalidInput)
	case "Longitude":
		return fmt.Errorf("%w: longitude must be between -180 and 180", ErrInvalidInput)
	default:
		return fmt.Errorf("%w: %s", ErrInvalidInput, verr[0])
	}
}
