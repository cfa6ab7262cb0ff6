package main

import (
	"context"
	"flag"
	"fmt"
	"text/tabwriter"

	domainerrors "placebook/internal/domain/errors"
	"placebook/internal/view"

	"github.com/pkg/errors"
)

func handleFavorites(ctx context.Context, a *app, args []string) error {
	if len(args) == 0 {
		return errors.New("fav needs an action: ls, add, await, rm, toggle or clear")
	}

	action, rest := args[0], args[1:]
	switch action {
	case "ls":
		return listFavorites(ctx, a)
	case "clear":
		if err := a.favorites.Clear(ctx); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "Awaited list cleared")

		return nil
	}

	cmd := flag.NewFlagSet("fav "+action, flag.ContinueOnError)
	id := cmd.String("id", "", "Place id")
	if err := cmd.Parse(rest); err != nil {
		return errors.Wrapf(err, "failed to parse fav %s flags", action)
	}
	if *id == "" {
		return errors.Errorf("--id flag is required for fav %s", action)
	}

	switch action {
	case "add", "await":
		return addFavorite(ctx, a, *id, action == "await")
	case "rm":
		return a.favorites.Remove(ctx, *id)
	case "toggle":
		return a.favorites.ToggleExpanded(ctx, *id)
	default:
		return errors.Errorf("unknown fav action %q", action)
	}
}

func listFavorites(ctx context.Context, a *app) error {
	entries, err := a.favorites.List(ctx)
	if err != nil {
		return err
	}

	cards := view.ProjectFavorites(entries, a.cfg.Favorites.DescriptionLimit)

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTYPE\tDESCRIPTION")
	for _, card := range cards {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", card.Entry.ID, card.Entry.Name, card.Entry.Type, card.Description.Shown)
	}

	return w.Flush()
}

// addFavorite snapshots a place from a fresh listing
func addFavorite(ctx context.Context, a *app, id string, navigate bool) error {
	if _, err := a.directory.ListAll(ctx); err != nil {
		return err
	}

	place, ok := a.directory.Get(id)
	if !ok {
		return domainerrors.ErrNotFound.WithDetails(id)
	}

	if navigate {
		return a.favorites.Await(ctx, place)
	}
	if err := a.favorites.Add(ctx, place); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Added %s to the awaited list\n", place.Name)

	return nil
}
