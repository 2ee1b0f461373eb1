package cli

import (
	"context"
	"strconv"

	"github.com/donapoint/donapoint/internal/models"
)

// Creators lists every creator account. The backend gates who may call
// this; the client just surfaces its answer.
func (a *App) Creators(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("You need to login first.")
		return nil
	}

	creators, err := a.creators.ListAll(ctx)
	if err != nil {
		printlnFn("Could not load creators: " + userMessage(err))
		return nil
	}

	if len(creators) == 0 {
		printlnFn("No creators found.")
		return nil
	}
	for i := range creators {
		printCreator(&creators[i])
	}
	return nil
}

func (a *App) VerifyCreator(ctx context.Context, args []string) error {
	return a.setCreatorVerified(ctx, args, a.creators.Verify, "Usage: verify <id>")
}

func (a *App) UnverifyCreator(ctx context.Context, args []string) error {
	return a.setCreatorVerified(ctx, args, a.creators.Unverify, "Usage: unverify <id>")
}

func (a *App) setCreatorVerified(ctx context.Context, args []string,
	call func(context.Context, int64) (*models.Creator, error), usage string) error {
	if !a.isLoggedIn() {
		printlnFn("You need to login first.")
		return nil
	}
	if len(args) == 0 {
		printlnFn(usage)
		return nil
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		printlnFn("Not a creator id: " + args[0])
		return nil
	}

	updated, err := call(ctx, id)
	if err != nil {
		printlnFn("Could not change verification: " + userMessage(err))
		return nil
	}

	printCreator(updated)
	return nil
}
