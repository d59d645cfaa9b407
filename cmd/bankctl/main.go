package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/amirhossein-jamali/party-bank/internal/domain/entity"
	"github.com/amirhossein-jamali/party-bank/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/party-bank/internal/infrastructure/adapter/logger"
	timeadapter "github.com/amirhossein-jamali/party-bank/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/party-bank/internal/infrastructure/app"
	"github.com/amirhossein-jamali/party-bank/internal/infrastructure/config"
)

const usage = `bankctl administers the party bank.

Usage:
  bankctl migrate
  bankctl register -name NAME
  bankctl balance  -user ID
  bankctl adjust   -user ID -amount N [-desc TEXT]

Configuration is read the same way as the API server (PB_ENV, configs/, PB_* variables).
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "bankctl %s: %v\n", os.Args[1], err)
		os.Exit(1)
	}
}

var commands = map[string]bool{"migrate": true, "register": true, "balance": true, "adjust": true}

func run(ctx context.Context, command string, args []string) error {
	if !commands[command] {
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}

	fs := flag.NewFlagSet(command, flag.ContinueOnError)
	name := fs.String("name", "", "guest name")
	userID := fs.String("user", "", "guest id")
	amount := fs.Int64("amount", 0, "signed coin change")
	desc := fs.String("desc", "Manual adjustment", "ledger description")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	// Schema changes only happen on request
	cfg.Database.AutoMigrate = command == "migrate"

	cliLogger, err := logger.NewZapLogger(logger.Options{Level: logger.ParseLevel(cfg.Logger.Level)})
	if err != nil {
		return err
	}
	defer cliLogger.Flush()

	bank, err := app.Build(ctx, cfg, cliLogger, nil)
	if err != nil {
		return err
	}
	defer bank.Close()

	switch command {
	case "migrate":
		if bank.DB == nil {
			return errors.New("migrate needs the postgres database driver")
		}
		version, err := migration.NewMigrationManager(bank.DB.DB(), cliLogger, timeadapter.NewRealTimeProvider()).GetCurrentVersion(ctx)
		if err != nil {
			return err
		}
		return printJSON(map[string]string{"schemaVersion": version})

	case "register":
		guest, err := bank.Users.RegisterUser(ctx, *name)
		if err != nil {
			return err
		}
		return printJSON(map[string]any{"userId": guest.ID, "name": guest.Name, "balance": guest.Balance()})

	case "balance":
		balance, err := bank.Users.GetUserBalance(ctx, *userID)
		if err != nil {
			return err
		}
		return printJSON(balance)

	case "adjust":
		change, err := bank.Users.ModifyBalance(ctx, *userID, *amount, entity.TypeAdjustment, *desc)
		if err != nil {
			return err
		}
		return printJSON(change)
	}
	return nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
