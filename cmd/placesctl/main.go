// Command placesctl is the terminal client of the places service: it signs in,
// browses and edits places and keeps the device-local awaited list.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	domainerrors "placebook/internal/domain/errors"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - login, logout, whoami: session
// - list, create, update, delete, region: places
// - fav: awaited places

type handlerFunc func(ctx context.Context, a *app, args []string) error

var commands = map[string]handlerFunc{
	"login":  handleLogin,
	"logout": handleLogout,
	"whoami": handleWhoami,
	"list":   handleList,
	"create": handleCreate,
	"update": handleUpdate,
	"delete": handleDelete,
	"region": handleRegion,
	"fav":    handleFavorites,
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", describeError(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, command string, args []string) error {
	if command == "help" || command == "-h" || command == "--help" {
		printUsage()

		return nil
	}

	handler, ok := commands[command]
	if !ok {
		printUsage()

		return errors.Errorf("unknown subcommand %q", command)
	}

	a, err := newApp(ctx, os.Stdout)
	if err != nil {
		return err
	}
	defer a.close()

	return handler(ctx, a, args)
}

// describeError prefers the message a user can act on over the wrapped chain
func describeError(err error) string {
	var remoteErr *domainerrors.RemoteError
	if errors.As(err, &remoteErr) {
		return remoteErr.Message()
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if details := appErr.Details(); details != "" {
			return appErr.Message() + ": " + details
		}

		return appErr.Message()
	}

	return err.Error()
}

func printUsage() {
	fmt.Println("Usage: placesctl <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  login       Sign in and remember the token")
	fmt.Println("  logout      Forget the token and the signed-in user")
	fmt.Println("  whoami      Show the signed-in user")
	fmt.Println("  list        List places (-mine, -expand id,...)")
	fmt.Println("  create      Create a place (-name, -lat, -lng, ...)")
	fmt.Println("  update      Edit the name or description of a place you own")
	fmt.Println("  delete      Delete a place you own")
	fmt.Println("  region      Show the map region covering every place")
	fmt.Println("  fav         Manage awaited places (ls, add, await, rm, toggle, clear)")
	fmt.Println("")
	fmt.Println("Use 'placesctl <command> -h' for more information about a command.")
}
