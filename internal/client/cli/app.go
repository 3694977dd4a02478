// Package cli is the command-line front end for the job portal API. It
// drives the API client and the local session cache: login saves an
// identity, logout clears it, and start replays the same cold-start
// routing the mobile shell performs.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/pawararyan169/job-portal/internal/client/api"
	"github.com/pawararyan169/job-portal/internal/client/session"
	"github.com/pawararyan169/job-portal/internal/domain"
	"github.com/pawararyan169/job-portal/internal/transport/http/dto"
)

// ErrUsage is returned when the arguments do not name a valid command.
var ErrUsage = errors.New("usage error")

type App struct {
	api   *api.Client
	cache *session.Cache
	out   io.Writer
}

func NewApp(apiClient *api.Client, cache *session.Cache, out io.Writer) *App {
	return &App{api: apiClient, cache: cache, out: out}
}

// Run dispatches a single command. args is everything after the program
// name, e.g. ["login", "-email", "a@x.com", "-password", "pw"].
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.usage()
		return ErrUsage
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "register":
		return a.register(ctx, rest)
	case "login":
		return a.login(ctx, rest)
	case "logout":
		return a.logout()
	case "start":
		return a.start()
	case "whoami":
		return a.whoami(ctx)
	case "complete-profile":
		return a.completeProfile(ctx)
	case "feed":
		return a.feed(ctx)
	case "post":
		return a.postJob(ctx, rest)
	case "help", "-h", "--help":
		a.usage()
		return nil
	default:
		fmt.Fprintf(a.out, "unknown command %q\n\n", cmd)
		a.usage()
		return ErrUsage
	}
}

func (a *App) usage() {
	fmt.Fprint(a.out, `usage: jobctl <command> [flags]

commands:
  register          create an account (-email -name -password -confirm [-recruiter])
  login             sign in and cache the session (-email -password)
  logout            drop the cached session
  start             show the screen a cold start would open
  whoami            show the signed-in identity
  complete-profile  mark the profile as complete
  feed              list current job postings
  post              publish a job listing (recruiters, -title -company ...)
  help              show this message
`)
}

func (a *App) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.out)
	return fs
}

// token loads the cached session and fails with the same message the
// server would use when no one is signed in.
func (a *App) token() (*session.Identity, error) {
	id, err := a.cache.Load()
	if err != nil {
		return nil, err
	}
	if id == nil {
		return nil, errors.New("not signed in, run `jobctl login` first")
	}
	return id, nil
}

func (a *App) register(ctx context.Context, args []string) error {
	fs := a.newFlagSet("register")
	var (
		email     = fs.String("email", "", "account email")
		name      = fs.String("name", "", "display name")
		password  = fs.String("password", "", "password")
		confirm   = fs.String("confirm", "", "password confirmation")
		recruiter = fs.Bool("recruiter", false, "register as a recruiter")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	req := dto.RegisterRequest{
		Email:           *email,
		Name:            *name,
		Password:        *password,
		ConfirmPassword: *confirm,
		IsRecruiter:     *recruiter,
	}
	resp, err := a.api.Register(ctx, req)
	if err != nil {
		return a.report(err)
	}
	fmt.Fprintf(a.out, "%s (%s)\n", resp.Message, resp.UserEmail)
	return nil
}

func (a *App) login(ctx context.Context, args []string) error {
	fs := a.newFlagSet("login")
	var (
		email    = fs.String("email", "", "account email")
		password = fs.String("password", "", "password")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	resp, err := a.api.Login(ctx, *email, *password)
	if err != nil {
		return a.report(err)
	}

	id := session.Identity{
		UserID:          resp.UserID,
		Email:           strings.ToLower(strings.TrimSpace(*email)),
		Token:           resp.Token,
		Role:            resp.UserType,
		ProfileComplete: resp.IsProfileComplete,
	}
	if err := a.cache.Save(id); err != nil {
		return fmt.Errorf("signed in but could not cache the session: %w", err)
	}
	fmt.Fprintf(a.out, "%s signed in as %s (%s)\n", resp.Message, id.Email, id.Role)
	return nil
}

func (a *App) logout() error {
	if err := a.cache.Clear(); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "signed out")
	return nil
}

func (a *App) start() error {
	d := <-session.Bootstrap(a.cache)
	switch d.Route {
	case session.RouteLogin:
		fmt.Fprintln(a.out, "start screen: login")
	case session.RouteRecruiterDashboard:
		fmt.Fprintf(a.out, "start screen: recruiter dashboard (user %s)\n", d.UserID)
	case session.RouteProfileSetup:
		fmt.Fprintf(a.out, "start screen: profile setup (user %s, %s)\n", d.UserID, d.Email)
	case session.RouteHome:
		fmt.Fprintf(a.out, "start screen: job feed (user %s)\n", d.UserID)
	}
	return nil
}

func (a *App) whoami(ctx context.Context) error {
	id, err := a.token()
	if err != nil {
		return err
	}
	resp, err := a.api.Me(ctx, id.Token)
	if err != nil {
		return a.report(err)
	}
	fmt.Fprintf(a.out, "%s <%s> role=%s profileComplete=%t\n", resp.Name, resp.Email, resp.UserType, resp.IsProfileComplete)
	return nil
}

func (a *App) completeProfile(ctx context.Context) error {
	id, err := a.token()
	if err != nil {
		return err
	}
	resp, err := a.api.CompleteProfile(ctx, id.Token)
	if err != nil {
		return a.report(err)
	}

	id.ProfileComplete = resp.IsProfileComplete
	if err := a.cache.Save(*id); err != nil {
		return fmt.Errorf("profile updated but could not refresh the cached session: %w", err)
	}
	fmt.Fprintln(a.out, resp.Message)
	return nil
}

func (a *App) feed(ctx context.Context) error {
	resp, err := a.api.Feed(ctx)
	if err != nil {
		return a.report(err)
	}
	if len(resp.Jobs) == 0 {
		fmt.Fprintln(a.out, "no jobs posted yet")
		return nil
	}
	for _, j := range resp.Jobs {
		fmt.Fprintf(a.out, "%s - %s, %s [%s] %s\n", j.Title, j.Company, j.Location, j.JobType, j.PostDate)
	}
	return nil
}

func (a *App) postJob(ctx context.Context, args []string) error {
	fs := a.newFlagSet("post")
	var (
		title       = fs.String("title", "", "job title")
		company     = fs.String("company", "", "company name")
		location    = fs.String("location", "", "location")
		salary      = fs.String("salary", "", "salary range")
		description = fs.String("description", "", "full description")
		jobType     = fs.String("type", "", "employment type")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	id, err := a.token()
	if err != nil {
		return err
	}
	req := dto.PostJobRequest{
		Title:       *title,
		Company:     *company,
		Location:    *location,
		SalaryRange: *salary,
		Description: *description,
		JobType:     *jobType,
	}
	resp, err := a.api.PostJob(ctx, id.Token, req)
	if err != nil {
		return a.report(err)
	}
	fmt.Fprintf(a.out, "%s (job %s)\n", resp.Message, resp.JobID)
	return nil
}

// report prints the server's human-readable message when the error
// carries one, then returns the error so the caller can exit nonzero.
func (a *App) report(err error) error {
	var de *domain.Error
	if errors.As(err, &de) && de.Message != "" {
		fmt.Fprintln(a.out, de.Message)
	}
	return err
}
