package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Doctors(ctx context.Context) error
	Centers(ctx context.Context) error
	Patients(ctx context.Context) error
	Admins(ctx context.Context) error
	Schedules(ctx context.Context) error
	Comments(ctx context.Context) error
	Payments(ctx context.Context) error
	Campaigns(ctx context.Context) error
	Password(ctx context.Context) error
}

// runREPL starts the console's read-eval-print loop.
//
// It reads a line from the scanner, parses the first token as the command,
// and dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on scanner EOF or when the user types "exit" or "quit".
//
// Errors returned by command handlers are ignored here; handlers report their
// own errors. This keeps the loop focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("admin %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: dashboard, doctors, centers, patients, admins, schedules, comments, payments, email, password, logout, exit")
			} else {
				printlnFn("Available commands: login, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "dashboard":
			_ = a.Dashboard(ctx)

		case "doctors":
			_ = a.Doctors(ctx)

		case "centers":
			_ = a.Centers(ctx)

		case "patients":
			_ = a.Patients(ctx)

		case "admins":
			_ = a.Admins(ctx)

		case "schedules":
			_ = a.Schedules(ctx)

		case "comments":
			_ = a.Comments(ctx)

		case "payments":
			_ = a.Payments(ctx)

		case "email":
			_ = a.Campaigns(ctx)

		case "password":
			_ = a.Password(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
