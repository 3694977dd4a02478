package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/pawararyan169/job-portal/internal/client/api"
	"github.com/pawararyan169/job-portal/internal/client/cli"
	"github.com/pawararyan169/job-portal/internal/client/session"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, out io.Writer) int {
	baseURL := os.Getenv("JOBPORTAL_API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	cachePath := os.Getenv("JOBPORTAL_SESSION_FILE")
	if cachePath == "" {
		cachePath = session.DefaultPath()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := cli.NewApp(api.New(baseURL), session.NewCache(cachePath), out)
	if err := app.Run(ctx, args); err != nil {
		if !errors.Is(err, cli.ErrUsage) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		return 1
	}
	return 0
}
