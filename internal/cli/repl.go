package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = func(a ...any) { fmt.Println(a...) }

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	List(ctx context.Context, args []string) error
	Show(ctx context.Context, args []string) error
	Locate(ctx context.Context, args []string) error
	Create(ctx context.Context) error
	Update(ctx context.Context, args []string) error
	Profile(ctx context.Context) error
	RequestVerification(ctx context.Context) error
	Creators(ctx context.Context) error
	VerifyCreator(ctx context.Context, args []string) error
	UnverifyCreator(ctx context.Context, args []string) error
}

// runREPL starts a simple read–eval–print loop for the donapoint CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Anyone can browse; authenticated commands are listed only once logged in.
// Command handlers print their own errors; the loop stays resilient and
// focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("dp %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		var err error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: list [text], show <id>, locate <lat> <lng>, create, update <id>, profile, verifyme, creators, verify <id>, unverify <id>, whoami, logout, exit")
			} else {
				printlnFn("Available commands: list [text], show <id>, locate <lat> <lng>, login, exit")
			}
		case "login":
			err = a.Login(ctx)
		case "logout":
			err = a.Logout(ctx)
		case "whoami":
			err = a.Whoami(ctx)
		case "list", "l":
			err = a.List(ctx, args)
		case "show":
			err = a.Show(ctx, args)
		case "locate":
			err = a.Locate(ctx, args)
		case "create":
			err = a.Create(ctx)
		case "update":
			err = a.Update(ctx, args)
		case "profile":
			err = a.Profile(ctx)
		case "verifyme":
			err = a.RequestVerification(ctx)
		case "creators":
			err = a.Creators(ctx)
		case "verify":
			err = a.VerifyCreator(ctx, args)
		case "unverify":
			err = a.UnverifyCreator(ctx, args)
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			printlnFn("Unknown command: " + cmd)
		}

		if err != nil {
			printlnFn("error: " + err.Error())
		}
	}
}
