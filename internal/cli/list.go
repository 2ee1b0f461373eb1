package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/donapoint/donapoint/internal/models"
)

// List applies a new filter and fetches matching points. "list" alone
// clears the text filter; "list food bank" searches for "food bank";
// "list verified" keeps only points from verified creators.
func (a *App) List(ctx context.Context, args []string) error {
	filter := models.Filter{}

	if len(args) > 0 && args[0] == "verified" {
		yes := true
		filter.VerifiedOnly = &yes
		args = args[1:]
	}
	filter.Search = strings.Join(args, " ")

	a.mu.Lock()
	a.filter = filter
	a.mu.Unlock()

	a.refresh(ctx)
	return nil
}

// Show fetches and prints a single point by id.
func (a *App) Show(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: show <id>")
		return nil
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		printlnFn("Not a point id: " + args[0])
		return nil
	}

	point, err := a.points.Get(ctx, id)
	if err != nil {
		printlnFn("Could not load point: " + userMessage(err))
		return nil
	}

	printPoint(point)
	if loc := a.currentLocation(); loc != nil {
		d := models.DistanceKm(*loc, models.Location{Lat: point.Latitude, Lng: point.Longitude})
		printlnFn(fmt.Sprintf("  distance:  %.1f km", d))
	}
	return nil
}

// Locate records the user's coordinates; subsequent listings are limited
// to the configured radius around them, nearest first. "locate off" clears
// the location again.
func (a *App) Locate(ctx context.Context, args []string) error {
	if len(args) == 1 && args[0] == "off" {
		a.mu.Lock()
		a.location = nil
		a.mu.Unlock()
		a.lister.SetLocation(nil)
		printlnFn("Location cleared.")
		return nil
	}

	if len(args) != 2 {
		printlnFn("Usage: locate <lat> <lng> (or 'locate off')")
		return nil
	}

	lat, errLat := strconv.ParseFloat(args[0], 64)
	lng, errLng := strconv.ParseFloat(args[1], 64)
	if errLat != nil || errLng != nil || lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		printlnFn("Coordinates must be numbers with latitude in [-90, 90] and longitude in [-180, 180].")
		return nil
	}

	loc := &models.Location{Lat: lat, Lng: lng}
	a.mu.Lock()
	a.location = loc
	a.mu.Unlock()
	a.lister.SetLocation(loc)

	printlnFn(fmt.Sprintf("Location set to %.5f, %.5f (radius %.0f km).", lat, lng, a.config.SearchRadiusKm))
	a.refresh(ctx)
	return nil
}
