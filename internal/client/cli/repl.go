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
	List(ctx context.Context) error
	Filter(ctx context.Context) error
	More(ctx context.Context) error
	Refresh(ctx context.Context) error
	Show(ctx context.Context, id string) error
	Add(ctx context.Context) error
	Edit(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Media(ctx context.Context, id string, paths []string) error
	QR(ctx context.Context, id string) error
	Share(ctx context.Context, id string) error
	Stats(ctx context.Context) error
	Report(ctx context.Context, format, path string) error
}

const helpLoggedIn = `Available commands:
  (l)ist            show the loaded gemstones
  filter            set search/filter/sort criteria
  more              load the next page
  refresh           refetch the current query
  show <id>         show one gemstone with its audit trail
  add               add a gemstone
  edit <id>         edit a gemstone
  delete <id>       delete a gemstone
  media <id> <file> [file...]   upload photos/videos
  qr <id>           save the QR code label as PNG
  share <id>        print a shareable caption
  stats             collection statistics
  report csv|pdf <file>         export a report
  logout, exit`

// runREPL starts a read-eval-print loop for the GemVault CLI.
//
// It reads a line from the scanner, parses the first token as the command and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on scanner EOF or when the user types "exit" or
// "quit". Commands other than help/login require an active session.
//
// Errors returned by command handlers are ignored here; handlers notify the
// user themselves. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("gv %s> ", statusFn()))
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

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn("Available commands: login, exit")
			}
			continue
		case "login":
			_ = a.Login(ctx)
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		if !a.isLoggedIn() {
			printlnFn("Please login first ('login')")
			continue
		}

		switch cmd {
		case "logout":
			_ = a.Logout(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "filter":
			_ = a.Filter(ctx)

		case "more":
			_ = a.More(ctx)

		case "refresh":
			_ = a.Refresh(ctx)

		case "show":
			if len(args) != 1 {
				printlnFn("Usage: show <id>")
				continue
			}
			_ = a.Show(ctx, args[0])

		case "add":
			_ = a.Add(ctx)

		case "edit":
			if len(args) != 1 {
				printlnFn("Usage: edit <id>")
				continue
			}
			_ = a.Edit(ctx, args[0])

		case "delete":
			if len(args) != 1 {
				printlnFn("Usage: delete <id>")
				continue
			}
			_ = a.Delete(ctx, args[0])

		case "media":
			if len(args) < 2 {
				printlnFn("Usage: media <id> <file> [file...]")
				continue
			}
			_ = a.Media(ctx, args[0], args[1:])

		case "qr":
			if len(args) != 1 {
				printlnFn("Usage: qr <id>")
				continue
			}
			_ = a.QR(ctx, args[0])

		case "share":
			if len(args) != 1 {
				printlnFn("Usage: share <id>")
				continue
			}
			_ = a.Share(ctx, args[0])

		case "stats":
			_ = a.Stats(ctx)

		case "report":
			if len(args) != 2 {
				printlnFn("Usage: report csv|pdf <file>")
				continue
			}
			_ = a.Report(ctx, args[0], args[1])

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
