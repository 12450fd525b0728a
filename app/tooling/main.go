package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"sync"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jrazmi/pollschema/app/tooling/commands"
	"github.com/jrazmi/pollschema/infrastructure/postgresdb"
	"github.com/jrazmi/pollschema/sdk/environment"
	"github.com/jrazmi/pollschema/sdk/logger"
)

var build = "develop"
var appName = "TOOLING"

func processCommands(ctx context.Context, log *logger.Logger, command string, args []string, connect commands.Connect) error {
	switch command {
	case "migrate":
		log.InfoContext(ctx, "running migration")
		if err := commands.Migrate(ctx, log, args, connect, os.Stdout); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		return nil

	case "reflect-schema":
		log.InfoContext(ctx, "running schema reflection")
		if err := commands.ReflectSchema(ctx, log.Logger, args, connect); err != nil {
			return fmt.Errorf("reflect schema failed: %w", err)
		}
		return nil

	case "drift":
		return commands.Drift(ctx, log.Logger, args, connect, os.Stdout)

	case "validate":
		return commands.Validate(ctx, log.Logger, args, os.Stdin, os.Stdout)

	default:
		printHelp()
		return nil
	}
}

func printHelp() {
	fmt.Println("Available commands:")
	fmt.Println("  migrate        - apply the embedded migrations to the database (-status to list them)")
	fmt.Println("  reflect-schema - reflect current database schema to JSON/SQL files")
	fmt.Println("  drift          - compare the database (or a -json snapshot) with the model registry")
	fmt.Println("  validate       - validate a JSON payload: -model Poll -shape createArgs -file payload.json")
	fmt.Println()
	fmt.Println("Use 'go run app/tooling/main.go <command> --help' for command-specific help.")
}

func run(ctx context.Context, log *logger.Logger) error {
	log.InfoContext(ctx, "startup", "GOMAXPROCS", runtime.GOMAXPROCS(0), "build", build)

	var command string
	if len(os.Args) > 1 {
		command = os.Args[1]
	}
	if command == "help" || command == "--help" || command == "-h" {
		printHelp()
		return nil
	}

	// DATA INFRASTRUCTURE
	// ==============================================================================
	// Only commands that need a live database open the pool.
	var pg *pgxpool.Pool
	connect := sync.OnceValues(func() (*pgxpool.Pool, error) {
		pool, err := postgresdb.NewFromEnv(appName, postgresdb.WithLogger(log.Logger))
		if err != nil {
			return nil, fmt.Errorf("configuring postgres support: %w", err)
		}
		log.InfoContext(ctx, "init", "service", "postgres")
		pg = pool
		return pool, nil
	})
	defer func() {
		if pg != nil {
			log.InfoContext(ctx, "shutdown", "status", "closing database connection")
			pg.Close()
		}
	}()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err := processCommands(ctx, log, command, os.Args[min(len(os.Args), 2):], connect)
	if errors.Is(err, commands.ErrHelp) {
		return nil
	}
	return err
}

func main() {
	environment.LoadEnv()

	log, err := logger.NewFromEnv(appName)
	if err != nil {
		fmt.Println("oh no we couldn't even get logging going.")
		os.Exit(1)
	}
	ctx := context.Background()

	if err = run(ctx, log); err != nil {
		log.ErrorContext(ctx, "run", "err", err)
		os.Exit(1)
	}
}
