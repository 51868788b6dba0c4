package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for REPL output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	handleError(ctx context.Context, err error)

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	DeleteAccount(ctx context.Context) error

	List(ctx context.Context, args []string) error
	Search(ctx context.Context, args []string) error
	Sort(ctx context.Context, args []string) error
	New(ctx context.Context) error
	Edit(ctx context.Context, args []string) error
	Show(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
}

// runREPL reads commands line by line from reader and dispatches them to a.
//
// Prompt & Commands
//
//	Not logged in:
//	  - help                 show available commands
//	  - register             create an account and log in
//	  - login                log in
//	  - exit | quit          leave the program
//
//	Logged in:
//	  - (l)ist [mode]        list notes, optionally switching sort mode
//	  - search [text]        filter the list by text; no text clears it
//	  - sort [mode]          show or set the sort mode
//	  - new                  create a note
//	  - edit [id]            edit a note
//	  - show [id]            print a note
//	  - delete [id]          delete a note
//	  - whoami               print the logged-in user
//	  - logout               log out
//	  - deleteaccount        remove the account; notes are kept
//	  - exit | quit          leave the program
//
// Command errors are reported through a.handleError and the loop continues.
// The loop exits on end of input or on "exit"/"quit".
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("nk %s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist [mode], search [text], sort [mode], new, edit [id], show [id], delete [id], whoami, logout, deleteaccount, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			cmdErr = a.Register(ctx)

		case "login":
			cmdErr = a.Login(ctx)

		case "logout":
			cmdErr = a.Logout(ctx)

		case "whoami":
			cmdErr = a.WhoAmI(ctx)

		case "deleteaccount":
			cmdErr = a.DeleteAccount(ctx)

		case "l", "list":
			cmdErr = a.List(ctx, args)

		case "search":
			cmdErr = a.Search(ctx, args)

		case "sort":
			cmdErr = a.Sort(ctx, args)

		case "new":
			cmdErr = a.New(ctx)

		case "edit":
			cmdErr = a.Edit(ctx, args)

		case "show":
			cmdErr = a.Show(ctx, args)

		case "delete":
			cmdErr = a.Delete(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			a.handleError(ctx, cmdErr)
		}
		if err != nil {
			return
		}
	}
}
