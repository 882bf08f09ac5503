package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"github.com/alexanderramin/autowatch/internal/cli"
	"github.com/alexanderramin/autowatch/internal/config"
	"github.com/alexanderramin/autowatch/internal/credential"
	"github.com/alexanderramin/autowatch/internal/gql"
	"github.com/alexanderramin/autowatch/internal/logger"
	"github.com/alexanderramin/autowatch/internal/platform"
	"github.com/alexanderramin/autowatch/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	runID := uuid.New().String()
	log = log.With(zap.String("run_id", runID))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Fall back to line-based prompts when stdin is piped.
	interactive := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	prompter := cli.NewPrompter(os.Stdin, os.Stderr, !interactive)

	observer := gql.NewLogObserver(log)
	trace := func(line string) { log.Debug("graphql trace", zap.String("line", line)) }

	connect := func(token string) service.Platform {
		newClient := func(endpoint string) gql.Client {
			return gql.NewClient(gql.Options{
				Endpoint: endpoint,
				Token:    token,
				Timeout:  cfg.Timeout,
				Headers:  map[string]string{"X-Run-Id": runID},
				Observer: observer,
				Debug:    trace,
			})
		}
		return platform.New(newClient(cfg.ProgressURL()), newClient(cfg.OutlineURL()))
	}

	resolver := &credential.Resolver{Prompt: prompter, Log: log}

	app := &cli.App{
		Watch: service.NewWatchService(resolver, connect, prompter, log, service.NewLogUseCaseObserver(log)),
	}

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}
