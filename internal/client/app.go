package client

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-auth-service/internal/adapter"
	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/models"
)

const usage = `usage: client [-a address] [-request-timeout d] <command> [args]

commands:
  register -username u -password p -email e -rut r [-name n] [-first-lastname l] [-second-lastname l] [-role r]
  login    -username u -password p
  list
  get      <id>
  update   -id n -username u -email e -rut r [-password p] [-name n] [-first-lastname l] [-second-lastname l] [-role r]
  delete   <id>
  version
`

type command func(ctx context.Context, args []string) error

type App struct {
	api adapter.UserAPI
	out io.Writer

	commands map[string]command

	logger *logger.Logger
}

func NewApp(api adapter.UserAPI, out io.Writer, logger *logger.Logger) *App {
	a := &App{
		api:    api,
		out:    out,
		logger: logger,
	}
	a.commands = map[string]command{
		"register": a.register,
		"login":    a.login,
		"list":     a.list,
		"get":      a.get,
		"update":   a.update,
		"delete":   a.delete,
		"version":  a.version,
	}
	return a
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(a.out, usage)
		return ErrMissingCommand
	}

	name := args[0]
	cmd, ok := a.commands[name]
	if !ok {
		fmt.Fprint(a.out, usage)
		return fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}

	a.logger.Debug().Str("command", name).Msg("running client command")
	if err := cmd(ctx, args[1:]); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

func (a *App) register(ctx context.Context, args []string) error {
	fs, user := userFlagSet("register")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArguments, err)
	}

	registered, err := a.api.Register(ctx, *user)
	if err != nil {
		return err
	}
	return a.print(registered)
}

func (a *App) login(ctx context.Context, args []string) error {
	var credentials models.Credentials

	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&credentials.Username, "username", "", "username")
	fs.StringVar(&credentials.Password, "password", "", "password")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArguments, err)
	}

	user, err := a.api.Login(ctx, credentials.Username, credentials.Password)
	if err != nil {
		return err
	}
	return a.print(user)
}

func (a *App) list(ctx context.Context, _ []string) error {
	users, err := a.api.ListUsers(ctx)
	if err != nil {
		return err
	}
	return a.print(users)
}

func (a *App) get(ctx context.Context, args []string) error {
	id, err := idArgument(args)
	if err != nil {
		return err
	}

	user, err := a.api.GetUser(ctx, id)
	if err != nil {
		return err
	}
	return a.print(user)
}

func (a *App) update(ctx context.Context, args []string) error {
	fs, user := userFlagSet("update")
	fs.Int64Var(&user.ID, "id", 0, "id of the user to update")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArguments, err)
	}
	if user.ID <= 0 {
		return fmt.Errorf("%w: -id is required", ErrInvalidArguments)
	}

	updated, err := a.api.UpdateUser(ctx, *user)
	if err != nil {
		return err
	}
	return a.print(updated)
}

func (a *App) delete(ctx context.Context, args []string) error {
	id, err := idArgument(args)
	if err != nil {
		return err
	}

	if err = a.api.DeleteUser(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "user %d deleted\n", id)
	return nil
}

func (a *App) version(ctx context.Context, _ []string) error {
	v, err := a.api.ServerVersion(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, v)
	return nil
}

func (a *App) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func userFlagSet(name string) (*flag.FlagSet, *models.User) {
	user := new(models.User)

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&user.Name, "name", "", "given name")
	fs.StringVar(&user.FirstLastname, "first-lastname", "", "first surname")
	fs.StringVar(&user.SecondLastname, "second-lastname", "", "second surname")
	fs.StringVar(&user.Email, "email", "", "email")
	fs.StringVar(&user.Username, "username", "", "username")
	fs.StringVar(&user.Password, "password", "", "password")
	fs.StringVar(&user.Role, "role", "", "role")
	fs.StringVar(&user.RUT, "rut", "", "RUT, e.g. 12345678-5")

	return fs, user
}

func idArgument(args []string) (int64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%w: expected exactly one id", ErrInvalidArguments)
	}
	id, err := strconv.ParseInt(strings.TrimSpace(args[0]), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: id %q is not a number", ErrInvalidArguments, args[0])
	}
	return id, nil
}
