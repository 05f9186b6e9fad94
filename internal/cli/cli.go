// Package cli implements the userbook command line: argument parsing,
// dispatch to the registry operations, and the gui server command. Run
// returns errors instead of exiting; cmd/userbook owns print-and-exit.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/akarin/userbook/internal/command"
	"github.com/akarin/userbook/internal/config"
	"github.com/akarin/userbook/internal/model/user"
)

const usage = `usage: userbook [-data FILE] <command> [arguments]

Commands:
  add <first-name> <last-name> <email> <phone-number>
        store a new user entry in the file
  get <id>
        print a user's data by their unique id
  remove <id>
        remove a user entry from the file
  reset
        permanently delete all user data
  show
        print all user data, sorted by id
  gui
        serve the graphical front end over HTTP`

var validate = validator.New()

// Run executes one userbook command. User-facing output goes to stdout;
// every failure comes back as an error for the caller to print.
func Run(ctx context.Context, args []string, stdout io.Writer) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	flags := flag.NewFlagSet("userbook", flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	dataFlag := flags.String("data", "", "file to load and save user data")
	if err := flags.Parse(args); err != nil {
		return usageError(err.Error())
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	switch {
	case *dataFlag != "":
		cfg.DataFile = *dataFlag
	case cfg.DataFile == "":
		return errors.New("couldn't determine the data file path, use -data or USERBOOK_DATA")
	}

	rest := flags.Args()
	if len(rest) == 0 {
		return usageError("missing command")
	}
	name, cmdArgs := rest[0], rest[1:]

	if err := prepareDataFile(cfg.DataFile); err != nil {
		return err
	}

	switch name {
	case "add":
		return runAdd(cfg.DataFile, cmdArgs, stdout)
	case "get":
		return runGet(cfg.DataFile, cmdArgs, stdout)
	case "remove":
		return runRemove(cfg.DataFile, cmdArgs)
	case "reset":
		if len(cmdArgs) != 0 {
			return usageError("reset takes no arguments")
		}
		_, err := command.Reset(cfg.DataFile)
		if err != nil {
			return fmt.Errorf("couldn't reset the data file: %w", err)
		}
		return nil
	case "show":
		if len(cmdArgs) != 0 {
			return usageError("show takes no arguments")
		}
		if err := command.Show(cfg.DataFile, stdout); err != nil {
			return fmt.Errorf("couldn't write users: %w", err)
		}
		return nil
	case "gui":
		return runGUI(ctx, cfg)
	default:
		return usageError(fmt.Sprintf("unknown command %q", name))
	}
}

func runAdd(dataFile string, args []string, stdout io.Writer) error {
	if len(args) != 4 {
		return usageError("add expects <first-name> <last-name> <email> <phone-number>")
	}

	u := user.User{
		FirstName: args[0],
		LastName:  args[1],
		Email:     args[2],
		Phone:     args[3],
	}
	if err := validate.Struct(u); err != nil {
		return fmt.Errorf("invalid user data: %w", err)
	}

	id, err := command.Add(dataFile, u)
	if err != nil {
		return fmt.Errorf("user couldn't be added: %w", err)
	}
	fmt.Fprintf(stdout, "Added user %d.\n", id)
	return nil
}

func runGet(dataFile string, args []string, stdout io.Writer) error {
	id, err := parseID(args, "get")
	if err != nil {
		return err
	}

	u, err := command.Get(dataFile, id)
	if err != nil {
		return fmt.Errorf("couldn't get user: %w", err)
	}
	return command.WriteUser(stdout, id, u)
}

func runRemove(dataFile string, args []string) error {
	id, err := parseID(args, "remove")
	if err != nil {
		return err
	}

	if _, err := command.Remove(dataFile, id); err != nil {
		return fmt.Errorf("couldn't remove user: %w", err)
	}
	return nil
}

func parseID(args []string, name string) (int, error) {
	if len(args) != 1 {
		return 0, usageError(name + " expects <id>")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil || id < 0 {
		return 0, fmt.Errorf("invalid id %q: must be a non-negative integer", args[0])
	}
	return id, nil
}

// prepareDataFile creates the data file's parent directory and rejects a
// path that exists but is not a regular file.
func prepareDataFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("the data path %s must be a file, specify another one", path)
	}
	return nil
}

func usageError(message string) error {
	return fmt.Errorf("%s\n\n%s", message, usage)
}
