// Command bithunter is a terminal client for the BitHunter backend: log in,
// inspect the current session, and tail the realtime event stream.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/bithunter/bithunter-go/config"
	"github.com/bithunter/bithunter-go/core/credentials"
	"github.com/bithunter/bithunter-go/core/gateway"
	"github.com/bithunter/bithunter-go/core/realtime"
	"github.com/bithunter/bithunter-go/core/session"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func usage() error {
	fmt.Fprintln(os.Stderr, `usage: bithunter <command>

commands:
  login <username>   authenticate and persist the credential
  logout             clear the persisted credential
  status             show the current session
  watch              tail the realtime event stream`)
	return errors.New("missing or unknown command")
}

func run(args []string) error {
	if len(args) == 0 {
		return usage()
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	credPath := cfg.CredentialsFile
	if credPath == "" {
		credPath, err = credentials.DefaultFilePath()
		if err != nil {
			return err
		}
	}
	creds := credentials.NewFile(credPath)

	gw, err := gateway.New(cfg.Gateway, gateway.WithLogger(log))
	if err != nil {
		return err
	}

	store := session.New(creds, gw, session.WithLogger(log))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch args[0] {
	case "login":
		if len(args) < 2 {
			return errors.New("login requires a username")
		}
		return login(ctx, store, gw, args[1])
	case "logout":
		store.Logout(ctx)
		fmt.Println("logged out")
		return nil
	case "status":
		return status(ctx, store)
	case "watch":
		return watch(ctx, store, cfg)
	default:
		return usage()
	}
}

func login(ctx context.Context, store *session.Store, gw *gateway.Client, username string) error {
	fmt.Fprint(os.Stderr, "password: ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return err
	}
	password := strings.TrimRight(line, "\r\n")

	sess, err := store.Login(ctx, username, password)
	if err != nil {
		var authErr *gateway.AuthError
		if errors.As(err, &authErr) {
			switch authErr.Reason {
			case gateway.ReasonInvalidCredentials:
				return errors.New("invalid username or password")
			case gateway.ReasonNetworkUnavailable:
				return errors.New("backend unreachable, try again later")
			default:
				return errors.New("backend answered with an unexpected response")
			}
		}
		return err
	}

	user, err := gw.Profile(ctx, sess.Token)
	if err != nil {
		// The session is established either way.
		fmt.Printf("signed in as %s\n", sess.Identity.Username)
		return nil
	}
	fmt.Printf("signed in as %s <%s>\n", user.Username, user.Email)
	return nil
}

func status(ctx context.Context, store *session.Store) error {
	store.Restore(ctx)
	sess := store.Revalidate(ctx)

	if !sess.IsAuthenticated() {
		fmt.Println("anonymous")
		return nil
	}
	fmt.Printf("authenticated as %s (subject %s), token expires %s\n",
		sess.Identity.Username, sess.Identity.Subject,
		sess.Identity.ExpiresAt.Local().Format("2006-01-02 15:04:05"))
	return nil
}

func watch(ctx context.Context, store *session.Store, cfg config.Config) error {
	store.Restore(ctx)
	go store.AutoRevalidate(ctx, cfg.Session.RevalidateInterval)

	conn, err := realtime.Dial(ctx, cfg.Realtime, store)
	if err != nil {
		return err
	}
	defer conn.Close()

	go func() {
		<-ctx.Done()
		conn.Close()
	}()

	for {
		ev, err := conn.Next()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		fmt.Printf("%s %s\n", ev.Type, ev.Payload)
	}
}
