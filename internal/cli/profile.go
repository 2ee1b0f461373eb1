package cli

import (
	"context"
	"os"

	"github.com/donapoint/donapoint/internal/models"
)

// Profile edits the current user's name and email. Empty answers keep the
// existing value; the session's cached user is refreshed on success.
func (a *App) Profile(ctx context.Context) error {
	user := a.session.CurrentUser()
	if user == nil {
		printlnFn("You need to login to edit your profile.")
		return nil
	}

	printCreator(user)

	update := models.CreatorUpdate{}

	name, err := GetSimpleText(a.reader, "Name (empty keeps current)", os.Stdout)
	if err != nil {
		return err
	}
	if name != "" {
		update.Name = &name
	}

	email, err := GetSimpleText(a.reader, "Email (empty keeps current)", os.Stdout)
	if err != nil {
		return err
	}
	if email != "" {
		update.Email = &email
	}

	if update.Name == nil && update.Email == nil {
		printlnFn("Nothing to update.")
		return nil
	}

	updated, err := a.creators.UpdateProfile(ctx, update)
	if err != nil {
		printlnFn("Could not update profile: " + userMessage(err))
		return nil
	}

	printlnFn("Profile updated.")
	printCreator(updated)
	return nil
}

// RequestVerification asks the backend to verify the current account.
func (a *App) RequestVerification(ctx context.Context) error {
	user := a.session.CurrentUser()
	if user == nil {
		printlnFn("You need to login first.")
		return nil
	}
	if user.Verified {
		printlnFn("Your account is already verified.")
		return nil
	}

	updated, err := a.creators.RequestVerification(ctx)
	if err != nil {
		printlnFn("Verification request failed: " + userMessage(err))
		return nil
	}

	if updated.Verified {
		printlnFn("Your account is now verified. You can create donation points.")
	} else {
		printlnFn("Verification requested; your account is pending review.")
	}
	return nil
}
