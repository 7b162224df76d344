package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// execIface is the command surface the REPL dispatches to. App satisfies
// it; tests provide a recording stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error

	Show(ctx context.Context) error
	EditHero(ctx context.Context) error
	EditAbout(ctx context.Context) error
	EditStats(ctx context.Context) error
	SetHeroImage(ctx context.Context, path string) error
	ClearHeroImage(ctx context.Context) error
	Preview(ctx context.Context, path string) error

	ListPrograms(ctx context.Context) error
	AddProgram(ctx context.Context) error
	EditProgram(ctx context.Context, id string) error
	DeleteProgram(ctx context.Context, id string) error

	ListAdmins(ctx context.Context) error
	AddAdmin(ctx context.Context) error
	DeleteAdmin(ctx context.Context, email string) error
	ChangePassword(ctx context.Context, email string) error

	Export(ctx context.Context, name string) error
	Import(ctx context.Context, name string) error
	Reset(ctx context.Context) error
}

const (
	helpSignedOut = `Available commands:
  login             sign in
  import <file>     restore a backup document
  exit | quit       leave the console`

	helpSignedIn = `Available commands:
  show                   print the site content
  hero | about | stats   edit a section
  heroimage <path>       embed an image file as the hero background
  clearimage             remove the hero background
  preview [file]         write an HTML preview of the site
  programs               list programs
  addprogram             add a program
  editprogram <id>       edit a program
  delprogram <id>        delete a program
  admins                 list admin accounts
  addadmin               add an admin account
  deladmin <email>       remove an admin account
  passwd <email>         change an admin password
  export [name]          write a backup document
  import [name]          restore a backup document
  reset                  delete all records and restore the defaults
  whoami                 show the current session
  logout                 sign out
  exit | quit            leave the console`
)

// publicCommands run without a session.
var publicCommands = map[string]bool{
	"help": true, "login": true, "import": true, "exit": true, "quit": true,
}

// runREPL reads one command per line from reader and dispatches it to a.
// Handler errors are reported on w as user messages; the loop keeps going.
// It returns on EOF, "exit", "quit" or when ctx is done.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		if ctx.Err() != nil {
			return
		}

		fmt.Fprintf(w, "siteadmin (%s)> ", statusFn())
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			fmt.Fprintln(w)
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]
		arg := strings.Join(args, " ")

		if !publicCommands[cmd] && !a.isLoggedIn() {
			fmt.Fprintln(w, userMessage(errNotLoggedIn))
			continue
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(w, helpSignedIn)
			} else {
				fmt.Fprintln(w, helpSignedOut)
			}
			continue
		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return
		}

		err = dispatch(ctx, a, cmd, arg)
		if errors.Is(err, errUnknownCommand) {
			fmt.Fprintln(w, "Unknown command:", cmd)
			continue
		}
		if err != nil {
			fmt.Fprintln(w, userMessage(err))
		}
	}
}

var errUnknownCommand = errors.New("unknown command")

func dispatch(ctx context.Context, a execIface, cmd, arg string) error {
	switch cmd {
	case "login":
		return a.Login(ctx)
	case "logout":
		return a.Logout(ctx)
	case "whoami":
		return a.WhoAmI(ctx)

	case "show":
		return a.Show(ctx)
	case "hero":
		return a.EditHero(ctx)
	case "about":
		return a.EditAbout(ctx)
	case "stats":
		return a.EditStats(ctx)
	case "heroimage":
		if arg == "" {
			return usage("heroimage <path>")
		}
		return a.SetHeroImage(ctx, arg)
	case "clearimage":
		return a.ClearHeroImage(ctx)
	case "preview":
		return a.Preview(ctx, arg)

	case "programs":
		return a.ListPrograms(ctx)
	case "addprogram":
		return a.AddProgram(ctx)
	case "editprogram":
		if arg == "" {
			return usage("editprogram <id>")
		}
		return a.EditProgram(ctx, arg)
	case "delprogram":
		if arg == "" {
			return usage("delprogram <id>")
		}
		return a.DeleteProgram(ctx, arg)

	case "admins":
		return a.ListAdmins(ctx)
	case "addadmin":
		return a.AddAdmin(ctx)
	case "deladmin":
		if arg == "" {
			return usage("deladmin <email>")
		}
		return a.DeleteAdmin(ctx, arg)
	case "passwd":
		if arg == "" {
			return usage("passwd <email>")
		}
		return a.ChangePassword(ctx, arg)

	case "export":
		return a.Export(ctx, arg)
	case "import":
		return a.Import(ctx, arg)
	case "reset":
		return a.Reset(ctx)
	}
	return errUnknownCommand
}
