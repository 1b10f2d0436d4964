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
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Feed(ctx context.Context) error
	Show(ctx context.Context, args []string) error
	NewPost(ctx context.Context) error
	Like(ctx context.Context, args []string) error
	Unlike(ctx context.Context, args []string) error
	Tap(ctx context.Context, args []string) error
	Comment(ctx context.Context, args []string) error
	Products(ctx context.Context) error
	AddProduct(ctx context.Context) error
	Categories(ctx context.Context) error
	Search(ctx context.Context, args []string) error
	NextPage(ctx context.Context) error
	Profile(ctx context.Context, args []string) error
	WhoAmI(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the TravelFeed CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate
//	  - feed           — browse the public feed
//	  - search         — search posts, products or users
//	  - exit | quit    — leave the program
//
//	Logged in, additionally:
//	  - post           — create a post with images
//	  - like <id>      — like a post
//	  - unlike <id>    — remove a like
//	  - tap <id>       — double-tap gesture (likes if not yet liked)
//	  - comment <id>   — comment on a post
//	  - products       — list marketplace items
//	  - addproduct     — create a listing
//	  - categories     — list categories
//	  - next           — next search page
//	  - profile <id>   — show a user's profile
//	  - whoami         — show the logged-in user
//	  - logout         — log out
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("tf %s> ", statusFn()))
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
				printlnFn("Available commands: feed, show, post, like, unlike, tap, comment, products, addproduct, categories, search, next, profile, whoami, logout, exit")
			} else {
				printlnFn("Available commands: register, login, feed, search, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "feed":
			_ = a.Feed(ctx)

		case "show":
			_ = a.Show(ctx, args)

		case "post":
			_ = a.NewPost(ctx)

		case "like":
			_ = a.Like(ctx, args)

		case "unlike":
			_ = a.Unlike(ctx, args)

		case "tap":
			_ = a.Tap(ctx, args)

		case "comment":
			_ = a.Comment(ctx, args)

		case "products":
			_ = a.Products(ctx)

		case "addproduct":
			_ = a.AddProduct(ctx)

		case "categories":
			_ = a.Categories(ctx)

		case "search":
			_ = a.Search(ctx, args)

		case "next":
			_ = a.NextPage(ctx)

		case "profile":
			_ = a.Profile(ctx, args)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
