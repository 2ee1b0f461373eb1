package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/donapoint/donapoint/internal/models"
)

// Update patches an existing point. Only status, description, and end date
// are editable; empty answers leave a field untouched.
func (a *App) Update(ctx context.Context, args []string) error {
	if !a.isLoggedIn() {
		printlnFn("You need to login to update donation points.")
		return nil
	}
	if len(args) == 0 {
		printlnFn("Usage: update <id>")
		return nil
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		printlnFn("Not a point id: " + args[0])
		return nil
	}

	update := models.PointUpdate{}

	status, err := GetSimpleText(a.reader, "Status (ongoing/ended, empty keeps current)", os.Stdout)
	if err != nil {
		return err
	}
	switch status {
	case "":
	case string(models.StatusOngoing):
		s := models.StatusOngoing
		update.Status = &s
	case string(models.StatusEnded):
		s := models.StatusEnded
		update.Status = &s
	default:
		printlnFn("Status must be 'ongoing' or 'ended'.")
		return nil
	}

	desc, err := GetSimpleText(a.reader, "Description (empty keeps current)", os.Stdout)
	if err != nil {
		return err
	}
	if desc != "" {
		update.Description = &desc
	}

	endDate, err := GetDate(a.reader, "End date YYYY-MM-DD (empty keeps current)", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return nil
	}
	update.EndDate = endDate

	if update.Status == nil && update.Description == nil && update.EndDate == nil {
		printlnFn("Nothing to update.")
		return nil
	}

	point, err := a.points.Update(ctx, id, update)
	if err != nil {
		printlnFn("Could not update point: " + userMessage(err))
		return nil
	}

	printlnFn(fmt.Sprintf("Donation point #%d updated.", point.ID))
	a.refresh(ctx)
	return nil
}
