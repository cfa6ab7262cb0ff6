package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"strings"
	"text/tabwriter"

	"placebook/internal/domain/entity"
	domainerrors "placebook/internal/domain/errors"
	"placebook/internal/geo"
	"placebook/internal/view"

	"github.com/pkg/errors"
)

func handleList(ctx context.Context, a *app, args []string) error {
	cmd := flag.NewFlagSet("list", flag.ContinueOnError)
	mine := cmd.Bool("mine", false, "Show only places you created")
	expand := cmd.String("expand", "", "Comma-separated ids whose description is shown in full")
	if err := cmd.Parse(args); err != nil {
		return errors.Wrap(err, "failed to parse list flags")
	}

	result, err := a.session.Bootstrap(ctx)
	if err != nil {
		return err
	}

	var user entity.User
	if result.User != nil {
		user = *result.User
	} else if *mine {
		if result.UserError != nil {
			return result.UserError
		}

		return domainerrors.ErrAuthRequired
	}

	cards := view.ProjectList(result.Places, view.ListOptions{
		User:             user,
		OwnedOnly:        *mine,
		AdminOverride:    a.cfg.Places.AdminOverride,
		Expanded:         parseIDSet(*expand),
		DescriptionLimit: a.cfg.Places.DescriptionLimit,
	})

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTYPE\tLAT\tLNG\tOWNER\tFLAGS\tDESCRIPTION")
	for _, card := range cards {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.6f\t%.6f\t%s\t%s\t%s\n",
			card.Place.ID,
			card.Place.Name,
			card.Place.Type,
			card.Place.Location.Latitude,
			card.Place.Location.Longitude,
			card.Place.CreatedBy.Name,
			cardFlags(card),
			card.Description.Shown,
		)
	}

	return w.Flush()
}

func cardFlags(card view.PlaceCard) string {
	var flags []string
	if card.Owned {
		flags = append(flags, "mine")
	}
	if card.CanEdit {
		flags = append(flags, "editable")
	}
	if card.Description.IsTruncated {
		flags = append(flags, "more")
	}
	if len(flags) == 0 {
		return "-"
	}

	return strings.Join(flags, ",")
}

func handleCreate(ctx context.Context, a *app, args []string) error {
	cmd := flag.NewFlagSet("create", flag.ContinueOnError)
	name := cmd.String("name", "", "Place name")
	description := cmd.String("description", "", "Free-form description")
	placeType := cmd.String("type", "", "Category: "+strings.Join(entity.KnownPlaceTypes(), ", "))
	address := cmd.String("address", "", "Human-readable address")
	lat := cmd.Float64("lat", math.NaN(), "Latitude of the marker")
	lng := cmd.Float64("lng", math.NaN(), "Longitude of the marker")
	refresh := cmd.Bool("refresh", false, "List again once the place is created")
	if err := cmd.Parse(args); err != nil {
		return errors.Wrap(err, "failed to parse create flags")
	}

	if math.IsNaN(*lat) || math.IsNaN(*lng) {
		return errors.New("--lat and --lng flags are required for create command")
	}

	draft := entity.PlaceDraft{
		Name:        *name,
		Description: *description,
		Type:        *placeType,
		Address:     *address,
		Location:    entity.LatLng{Latitude: *lat, Longitude: *lng},
	}

	if !*refresh {
		place, err := a.directory.Create(ctx, draft)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Created %s (%s)\n", place.Name, place.ID)

		return nil
	}

	place, places, err := a.directory.CreateAndRefresh(ctx, draft)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Created %s (%s), %d places listed\n", place.Name, place.ID, len(places))

	return nil
}

func handleUpdate(ctx context.Context, a *app, args []string) error {
	cmd := flag.NewFlagSet("update", flag.ContinueOnError)
	id := cmd.String("id", "", "Place id")
	name := cmd.String("name", "", "New name")
	description := cmd.String("description", "", "New description")
	if err := cmd.Parse(args); err != nil {
		return errors.Wrap(err, "failed to parse update flags")
	}

	// only flags given on the command line are sent
	var patch entity.PlacePatch
	cmd.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "name":
			patch.Name = name
		case "description":
			patch.Description = description
		}
	})

	if _, err := loadManageable(ctx, a, *id); err != nil {
		return err
	}

	place, err := a.directory.Update(ctx, *id, patch)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Updated %s (%s)\n", place.Name, place.ID)

	return nil
}

func handleDelete(ctx context.Context, a *app, args []string) error {
	cmd := flag.NewFlagSet("delete", flag.ContinueOnError)
	id := cmd.String("id", "", "Place id")
	if err := cmd.Parse(args); err != nil {
		return errors.Wrap(err, "failed to parse delete flags")
	}

	place, err := loadManageable(ctx, a, *id)
	if err != nil {
		return err
	}

	if err := a.directory.Delete(ctx, *id); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Deleted %s (%s)\n", place.Name, place.ID)

	return nil
}

// loadManageable refreshes the directory and checks locally that the signed-in
// user may change the place; the server enforces the same rule.
func loadManageable(ctx context.Context, a *app, id string) (entity.Place, error) {
	if id == "" {
		return entity.Place{}, errors.New("--id flag is required")
	}

	user, err := a.session.Current(ctx)
	if err != nil {
		return entity.Place{}, err
	}

	if _, err := a.directory.ListAll(ctx); err != nil {
		return entity.Place{}, err
	}

	place, ok := a.directory.Get(id)
	if !ok {
		return entity.Place{}, domainerrors.ErrNotFound.WithDetails(id)
	}
	if !a.directory.CanManage(place, user) {
		return entity.Place{}, domainerrors.ErrForbidden
	}

	return place, nil
}

func handleRegion(ctx context.Context, a *app, _ []string) error {
	places, err := a.directory.ListAll(ctx)
	if err != nil {
		return err
	}

	fallback := a.cfg.Places.DefaultRegion
	region := view.Region(places, geo.Region{
		Latitude:       fallback.Latitude,
		Longitude:      fallback.Longitude,
		LatitudeDelta:  fallback.LatitudeDelta,
		LongitudeDelta: fallback.LongitudeDelta,
	})

	fmt.Fprintf(a.out, "center=%.6f,%.6f span=%.6f,%.6f places=%d\n",
		region.Latitude, region.Longitude, region.LatitudeDelta, region.LongitudeDelta, len(places))

	return nil
}

// parseIDSet splits a comma-separated id list, ignoring blanks
func parseIDSet(raw string) map[string]bool {
	set := make(map[string]bool)
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			set[id] = true
		}
	}

	return set
}
