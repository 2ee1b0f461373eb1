package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/donapoint/donapoint/internal/api"
	"github.com/donapoint/donapoint/internal/models"
	"github.com/donapoint/donapoint/internal/services"
)

// userMessage translates errors into what the user should see: backend
// rejections verbatim, transport problems as a generic line.
func userMessage(err error) string {
	var apiErr *api.APIError
	switch {
	case errors.As(err, &apiErr):
		return apiErr.Error()
	case errors.Is(err, api.ErrUnavailable):
		return "server unavailable, try again later"
	case errors.Is(err, api.ErrUnauthorized):
		return "please login first"
	case errors.Is(err, api.ErrForbidden):
		return "you are not allowed to do that"
	case errors.Is(err, api.ErrNotFound):
		return "not found"
	case errors.Is(err, services.ErrInvalidInput):
		return err.Error()
	default:
		return err.Error()
	}
}

func printPoints(points []models.DonationPoint, loc *models.Location) {
	if len(points) == 0 {
		printlnFn("No donation points found.")
		return
	}

	for _, p := range points {
		line := fmt.Sprintf("#%d  %s — %s [%s]", p.ID, p.OrganizationName, p.Address, p.Status)
		if loc != nil {
			d := models.DistanceKm(*loc, models.Location{Lat: p.Latitude, Lng: p.Longitude})
			line += fmt.Sprintf(" (%.1f km)", d)
		}
		printlnFn(line)
	}
}

func printPoint(p *models.DonationPoint) {
	printlnFn(fmt.Sprintf("#%d %s", p.ID, p.OrganizationName))
	printlnFn("  address:   " + p.Address)
	printlnFn(fmt.Sprintf("  location:  %.5f, %.5f", p.Latitude, p.Longitude))
	printlnFn("  status:    " + string(p.Status))
	if p.Description != "" {
		printlnFn("  about:     " + p.Description)
	}
	if p.StartDate != nil {
		printlnFn("  starts:    " + p.StartDate.Format("2006-01-02"))
	}
	if p.EndDate != nil {
		printlnFn("  ends:      " + p.EndDate.Format("2006-01-02"))
	}
	if len(p.Images) > 0 {
		printlnFn("  images:    " + strings.Join(p.Images, ", "))
	}
}

func printCreator(c *models.Creator) {
	verified := "no"
	if c.Verified {
		verified = "yes"
	}
	printlnFn(fmt.Sprintf("#%d %s <%s> verified: %s", c.ID, c.Name, c.Email, verified))
}
