// Command editor edits content documents from the command line.
//
//	editor login
//	editor export about > about.json
//	editor import about about.json
//	editor import --section ourStory about about.json
//	editor logout
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/editor"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/pkg/logger"
)

type options struct {
	api          string
	redisAddr    string
	statePath    string
	prefix       string
	username     string
	section      string
	checkVersion bool
	verbose      bool
}

func main() {
	var opts options
	pflag.StringVar(&opts.api, "api", envOr("REFERME_API_URL", "http://localhost:5000/api/v1"), "content API base URL")
	pflag.StringVar(&opts.redisAddr, "redis", os.Getenv("REFERME_EDITOR_REDIS"), "Redis address for the session and offline copies; empty keeps them in the state file")
	pflag.StringVar(&opts.statePath, "state", os.Getenv("REFERME_EDITOR_STATE"), "state file for the session and offline copies (default <user config dir>/referme/editor.json)")
	pflag.StringVar(&opts.prefix, "prefix", "referme:editor:", "Redis key prefix")
	pflag.StringVarP(&opts.username, "username", "u", "admin", "admin username for login")
	pflag.StringVarP(&opts.section, "section", "s", "", "import: save only this top-level section")
	pflag.BoolVar(&opts.checkVersion, "check-version", true, "import: reject the save when the document changed since it was read")
	pflag.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")
	pflag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: editor [flags] login | logout | export <domain> | import <domain> <file>")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if err := run(opts, pflag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, "editor:", err)
		os.Exit(1)
	}
}

func run(opts options, args []string) error {
	if len(args) == 0 {
		pflag.Usage()
		return errors.New("missing command")
	}

	level := "warn"
	if opts.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Config{Level: level, Encoding: "console", Development: opts.verbose})
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	store, closeStore, err := openStore(opts)
	if err != nil {
		return err
	}
	defer closeStore()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	client := editor.NewClient(opts.api, editor.WithTokenSource(editor.StoredToken(store)))
	auth := editor.NewHTTPAuth(client, store, log)

	switch cmd := args[0]; cmd {
	case "login":
		return login(ctx, auth, opts.username)
	case "logout":
		return auth.Logout(ctx)
	case "export":
		if len(args) != 2 {
			return errors.New("export needs a domain")
		}
		e, err := editor.New(args[1], editor.Options{Client: client, Store: store, Logger: log})
		if err != nil {
			return err
		}
		if err := e.Hydrate(ctx); err != nil {
			log.Warn("Exporting fallback copy", zap.Error(err))
		}
		return e.Export(os.Stdout)
	case "import":
		if len(args) != 3 {
			return errors.New("import needs a domain and a file")
		}
		return importFile(ctx, opts, client, store, log, args[1], args[2])
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func importFile(ctx context.Context, opts options, client *editor.Client, store editor.KVStore, log *zap.Logger, domain, path string) error {
	e, err := editor.New(domain, editor.Options{Client: client, Store: store, Logger: log, CheckVersion: opts.checkVersion})
	if err != nil {
		return err
	}
	if err := e.Hydrate(ctx); err != nil {
		return fmt.Errorf("reading current %s document: %w", domain, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := e.Import(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	if opts.section != "" {
		err = e.SaveSectionMerged(ctx, opts.section)
	} else {
		err = e.Save(ctx)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "%s saved, version %d\n", domain, e.Version())
	return nil
}

func login(ctx context.Context, auth editor.AuthProvider, username string) error {
	fmt.Fprint(os.Stderr, "Password: ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return fmt.Errorf("read password: %w", err)
	}
	session, err := auth.Login(ctx, editor.Credentials{Username: username, Password: strings.TrimRight(line, "\r\n")})
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Signed in as %s until %s\n", session.Username, session.ExpiresAt.Local().Format(time.RFC1123))
	return nil
}

func openStore(opts options) (editor.KVStore, func(), error) {
	if opts.redisAddr == "" {
		path := opts.statePath
		if path == "" {
			var err error
			if path, err = editor.DefaultStatePath(); err != nil {
				return nil, nil, fmt.Errorf("locating state file: %w", err)
			}
		}
		return editor.NewFileStore(path), func() {}, nil
	}
	client := redis.NewClient(&redis.Options{Addr: opts.redisAddr})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("connecting to redis: %w", err)
	}
	return editor.NewRedisStore(client, opts.prefix), func() { _ = client.Close() }, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
