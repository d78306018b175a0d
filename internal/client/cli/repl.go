package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL dispatches to.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	watching() bool

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error

	Home(ctx context.Context, category string) error
	History(ctx context.Context) error
	WatchLater(ctx context.Context) error
	Liked(ctx context.Context) error
	Channel(ctx context.Context, id string) error

	Profile(ctx context.Context) error
	Avatar(ctx context.Context, path string) error
	Cover(ctx context.Context, path string) error

	Watch(ctx context.Context, id string) error
	Comments(ctx context.Context) error
	Replies(ctx context.Context, commentID string) error
	Reply(ctx context.Context, commentID string) error
	CancelReply(ctx context.Context) error
	Comment(ctx context.Context) error
	LikeComment(ctx context.Context, commentID string) error
	LikeVideo(ctx context.Context) error
	Dislike(ctx context.Context) error
	Save(ctx context.Context) error
	Subscribe(ctx context.Context) error
}

const (
	helpAnonymous = "Available commands: register, login, home [category], channel <id>, watch <id>, exit"
	helpSignedIn  = "Available commands: whoami, home [category], history, watchlater, liked, channel <id>, " +
		"profile, avatar <file>, cover <file>, watch <id>, logout, exit"
	helpWatching = "On this video: comments, replies <id>, reply <id>, cancel, comment, like <commentId>, " +
		"likevideo, dislike, save, subscribe"
)

// withArg runs fn with the single argument of a command, or prints its
// usage when the argument is missing.
func withArg(args []string, usage string, fn func(string) error) {
	if len(args) == 0 {
		printlnFn("Usage:", usage)
		return
	}
	_ = fn(args[0])
}

// runREPL starts the read–eval–print loop of the vidhub CLI.
//
// It reads a line from in, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on EOF or when the user types "exit" or "quit".
//
// The prompt shows the current status (from statusFn). The commands on the
// open video are only listed by help while a video is open.
//
// Errors returned by command handlers are ignored here; handlers report
// their own failures. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, in *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("vidhub %s> ", statusFn()))
		line, err := readLine(in)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpSignedIn)
			} else {
				printlnFn(helpAnonymous)
			}
			if a.watching() {
				printlnFn(helpWatching)
			}

		case "register":
			_ = a.Register(ctx)
		case "login":
			_ = a.Login(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "whoami":
			_ = a.WhoAmI(ctx)

		case "home":
			_ = a.Home(ctx, strings.Join(args, " "))
		case "history":
			_ = a.History(ctx)
		case "watchlater":
			_ = a.WatchLater(ctx)
		case "liked":
			_ = a.Liked(ctx)
		case "channel":
			withArg(args, "channel <id>", func(id string) error { return a.Channel(ctx, id) })

		case "profile":
			_ = a.Profile(ctx)
		case "avatar":
			withArg(args, "avatar <file>", func(p string) error { return a.Avatar(ctx, p) })
		case "cover":
			withArg(args, "cover <file>", func(p string) error { return a.Cover(ctx, p) })

		case "watch":
			withArg(args, "watch <id>", func(id string) error { return a.Watch(ctx, id) })
		case "comments":
			_ = a.Comments(ctx)
		case "replies":
			withArg(args, "replies <commentId>", func(id string) error { return a.Replies(ctx, id) })
		case "reply":
			withArg(args, "reply <commentId>", func(id string) error { return a.Reply(ctx, id) })
		case "cancel":
			_ = a.CancelReply(ctx)
		case "comment":
			_ = a.Comment(ctx)
		case "like":
			withArg(args, "like <commentId>", func(id string) error { return a.LikeComment(ctx, id) })
		case "likevideo":
			_ = a.LikeVideo(ctx)
		case "dislike":
			_ = a.Dislike(ctx)
		case "save":
			_ = a.Save(ctx)
		case "subscribe":
			_ = a.Subscribe(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
