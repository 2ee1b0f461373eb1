package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/donapoint/donapoint/internal/models"
)

// Create collects a new point's attributes interactively and submits them
// as one multipart request. Coordinates can be typed in or taken from the
// location set via 'locate'; both paths end up in the same fields.
func (a *App) Create(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("You need to login to create donation points.")
		return nil
	}
	if !a.session.IsVerified() {
		printlnFn("Only verified creators can create donation points. Use 'verifyme' first.")
		return nil
	}

	input := models.PointCreate{}
	var err error

	input.OrganizationName, err = GetSimpleText(a.reader, "Organization name", os.Stdout)
	if err != nil {
		return err
	}
	input.Address, err = GetSimpleText(a.reader, "Address", os.Stdout)
	if err != nil {
		return err
	}

	coordsSet := false
	if loc := a.currentLocation(); loc != nil {
		use, err := GetSimpleText(a.reader, fmt.Sprintf("Use current location %.5f, %.5f? (y/n)", loc.Lat, loc.Lng), os.Stdout)
		if err != nil {
			return err
		}
		if use == "y" || use == "yes" {
			input.Latitude = loc.Lat
			input.Longitude = loc.Lng
			coordsSet = true
		}
	}

	if !coordsSet {
		lat, ok, err := GetFloat(a.reader, "Latitude", os.Stdout)
		if err != nil {
			printlnFn(err.Error())
			return nil
		}
		if !ok {
			printlnFn("Latitude and longitude are required.")
			return nil
		}
		input.Latitude = lat

		lng, ok, err := GetFloat(a.reader, "Longitude", os.Stdout)
		if err != nil {
			printlnFn(err.Error())
			return nil
		}
		if !ok {
			printlnFn("Latitude and longitude are required.")
			return nil
		}
		input.Longitude = lng
	}

	input.Description, err = GetSimpleText(a.reader, "Description (optional)", os.Stdout)
	if err != nil {
		return err
	}
	input.StartDate, err = GetDate(a.reader, "Start date YYYY-MM-DD (optional)", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return nil
	}
	input.EndDate, err = GetDate(a.reader, "End date YYYY-MM-DD (optional)", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return nil
	}

	imagePath, err := GetSimpleText(a.reader, "Image file path (optional)", os.Stdout)
	if err != nil {
		return err
	}

	point, err := a.points.Create(ctx, input, imagePath)
	if err != nil {
		// Form state is kept only in the user's head here, but the message
		// is the backend's (or the validator's) verbatim.
		printlnFn("Could not create point: " + userMessage(err))
		return nil
	}

	printlnFn(fmt.Sprintf("Donation point #%d created.", point.ID))
	a.refresh(ctx)
	return nil
}
