package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/di"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/security"
)

func main() {
	hashPassword := pflag.Bool("hash-password", false, "read a password from stdin, print its bcrypt hash for admin.password_hash and exit")
	pflag.Parse()

	if *hashPassword {
		if err := printPasswordHash(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	app := fx.New(
		// Load all application modules via DI
		di.AppModule,

		// Print startup banner
		fx.Invoke(di.PrintBanner),

		// Configure fx logger to use zap
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger}
		}),
	)

	app.Run()
}

func printPasswordHash() error {
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return fmt.Errorf("read password: %w", err)
	}
	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return fmt.Errorf("password must not be empty")
	}
	hash, err := security.NewPasswordHasher(bcrypt.DefaultCost).Hash(password)
	if err != nil {
		return err
	}
	fmt.Println(hash)
	return nil
}
