// Command usermgr creates board accounts and resets passwords from a shell.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/open-textbook/anonboard/domain"
	"github.com/open-textbook/anonboard/internal/config"
	"github.com/open-textbook/anonboard/internal/repository/database"
	"github.com/open-textbook/anonboard/internal/usecase/user"
)

func main() {
	var (
		createUser = flag.Bool("create", false, "Create a new user")
		resetPass  = flag.Bool("passwd", false, "Reset a user's password")
		username   = flag.String("username", "", "Username for user operations")
		name       = flag.String("name", "", "Display name for user creation")
	)
	flag.Parse()

	if *createUser == *resetPass || *username == "" {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -create -username john -name \"John Doe\"\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -passwd -username john\n", os.Args[0])
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load config: ", err)
	}
	cfg.Log.SetupLogger()

	db, err := database.Open(cfg.Database)
	if err != nil {
		log.Fatal("failed to open database: ", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logrus.Errorf("got error when closing the DB connection: %v", err)
		}
	}()
	if err := database.Migrate(db); err != nil {
		log.Fatal("failed to migrate database: ", err)
	}

	svc := user.NewService(database.NewUserRepository(db), []byte(cfg.JWT.Secret), cfg.JWT.TTL)

	password, err := promptPassword(os.Stdin, os.Stderr)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	switch {
	case *createUser:
		u, err := svc.Register(ctx, *name, *username, password)
		if err != nil {
			log.Fatalf("failed to create user: %v", describe(err))
		}
		fmt.Printf("created user %q with id %d\n", u.Username, u.ID)
	case *resetPass:
		if err := svc.SetPassword(ctx, *username, password); err != nil {
			log.Fatalf("failed to update password: %v", describe(err))
		}
		fmt.Printf("password updated for %q\n", *username)
	}
}

// promptPassword asks twice and returns the password when both entries match.
// Input is hidden when in is a terminal.
func promptPassword(in *os.File, out io.Writer) (string, error) {
	read := func() (string, error) {
		fd := int(in.Fd())
		if term.IsTerminal(fd) {
			b, err := term.ReadPassword(fd)
			fmt.Fprintln(out)
			return string(b), err
		}
		return readLine(in)
	}
	return confirmPassword(read, out)
}

func confirmPassword(read func() (string, error), out io.Writer) (string, error) {
	fmt.Fprint(out, "Enter password: ")
	password, err := read()
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	fmt.Fprint(out, "Confirm password: ")
	confirm, err := read()
	if err != nil {
		return "", fmt.Errorf("failed to read password confirmation: %w", err)
	}
	if password != confirm {
		return "", errors.New("passwords do not match")
	}
	if len(password) < domain.MinPasswordLength {
		return "", fmt.Errorf("password must be at least %d characters long", domain.MinPasswordLength)
	}
	return password, nil
}

var stdinReader *bufio.Reader

func readLine(r io.Reader) (string, error) {
	if stdinReader == nil {
		stdinReader = bufio.NewReader(r)
	}
	line, err := stdinReader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func describe(err error) string {
	switch {
	case errors.Is(err, domain.ErrConflict):
		return "username already taken"
	case errors.Is(err, domain.ErrNotFound):
		return "no such user"
	case errors.Is(err, domain.ErrBadParamInput):
		return "invalid username or password"
	}
	return err.Error()
}
