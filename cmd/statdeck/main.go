package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"statdeck/internal/bootstrap"
	"statdeck/internal/demoapi"
	"statdeck/internal/platform/config"
	"statdeck/internal/platform/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type globalFlags struct {
	stateDir   string
	configPath string
	baseURL    string
}

func newRootCmd() *cobra.Command {
	var flags globalFlags
	var screen string

	root := &cobra.Command{
		Use:           "statdeck",
		Short:         "Terminal analytics dashboard",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd.Context(), &flags, screen)
		},
	}
	root.PersistentFlags().StringVar(&flags.stateDir, "state-dir", "", "directory for config, session and logs (default: user config dir)")
	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "config file path (default: <state-dir>/config.yaml)")
	root.PersistentFlags().StringVar(&flags.baseURL, "base-url", "", "analytics server base URL (overrides "+config.EnvServer+")")
	root.Flags().StringVar(&screen, "screen", "", "screen to open after sign-in")

	root.AddCommand(newTUICmd(&flags))
	root.AddCommand(newLoginCmd(&flags))
	root.AddCommand(newLogoutCmd(&flags))
	root.AddCommand(newWhoAmICmd(&flags))
	root.AddCommand(newStatsCmd(&flags))
	root.AddCommand(newSeriesCmd(&flags))
	root.AddCommand(newUsersCmd(&flags))
	root.AddCommand(newReportCmd(&flags))
	root.AddCommand(newDemoAPICmd())
	return root
}

func loadApp(flags *globalFlags) (*bootstrap.App, error) {
	cfg, err := config.Load(config.Overrides{
		StateDir:   flags.stateDir,
		ConfigPath: flags.configPath,
		BaseURL:    flags.baseURL,
		Getenv:     os.Getenv,
	})
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	app, err := bootstrap.New(cfg, logger)
	if err != nil {
		_ = logger.Sync()
		return nil, err
	}
	return app, nil
}

// withApp runs fn against a freshly wired app and closes it afterwards.
func withApp(flags *globalFlags, fn func(app *bootstrap.App) error) error {
	app, err := loadApp(flags)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()
	return fn(app)
}

func runTUI(ctx context.Context, flags *globalFlags, screen string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	return withApp(flags, func(app *bootstrap.App) error {
		return bootstrap.RunTUI(ctx, app, screen)
	})
}

func newTUICmd(flags *globalFlags) *cobra.Command {
	var screen string
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Run the statdeck terminal UI",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd.Context(), flags, screen)
		},
	}
	cmd.Flags().StringVar(&screen, "screen", "", "screen to open after sign-in: dashboard|analytics|users|settings")
	return cmd
}

func newLoginCmd(flags *globalFlags) *cobra.Command {
	var email, password, token, userJSON string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(flags, func(app *bootstrap.App) error {
				ctx := cmd.Context()
				if token != "" {
					user := map[string]any{}
					if userJSON != "" {
						if err := json.Unmarshal([]byte(userJSON), &user); err != nil {
							return fmt.Errorf("--user must be a JSON object: %w", err)
						}
					}
					out, err := app.AuthCLI.LoginWithToken(ctx, token, user)
					if err != nil {
						return err
					}
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "stored session for %s\n", out.UserName)
					return nil
				}
				if password == "" {
					p, err := promptLine(cmd, "Password: ")
					if err != nil {
						return err
					}
					password = p
				}
				out, err := app.AuthCLI.Login(ctx, email, password)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "logged in as %s\n", out.UserName)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password (prompted when omitted)")
	cmd.Flags().StringVar(&token, "token", "", "adopt an existing token instead of signing in")
	cmd.Flags().StringVar(&userJSON, "user", "", "user record JSON stored with --token")
	return cmd
}

func promptLine(cmd *cobra.Command, prompt string) (string, error) {
	_, _ = fmt.Fprint(cmd.ErrOrStderr(), prompt)
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func newLogoutCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(flags, func(app *bootstrap.App) error {
				if err := app.AuthCLI.Logout(cmd.Context()); err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "logged out")
				return nil
			})
		},
	}
}

func newWhoAmICmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the stored session user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(flags, func(app *bootstrap.App) error {
				out, err := app.AuthCLI.WhoAmI(cmd.Context())
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.UserName)
				return nil
			})
		},
	}
}

func newStatsCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print the dashboard headline numbers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(flags, func(app *bootstrap.App) error {
				out, err := app.AnalyticsCLI.Stats(cmd.Context())
				if err != nil {
					return err
				}
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				for _, c := range out.Cards {
					_, _ = fmt.Fprintf(w, "%s\t%s\n", c.Title, c.Value)
				}
				return w.Flush()
			})
		},
	}
}

func newSeriesCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "series",
		Short: "Print the daily analytics series",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(flags, func(app *bootstrap.App) error {
				out, err := app.AnalyticsCLI.Series(cmd.Context())
				if err != nil {
					return err
				}
				if len(out.Points) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no analytics data")
					return nil
				}
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				_, _ = fmt.Fprintln(w, "DATE\tREVENUE\tVISITORS\tORDERS\tCONVERSION")
				for _, p := range out.Points {
					_, _ = fmt.Fprintf(w, "%s\t%.2f\t%.0f\t%.0f\t%s\n", p.Label, p.Revenue, p.Visitors, p.Orders, p.ConversionRate.Display)
				}
				return w.Flush()
			})
		},
	}
}

func newUsersCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List users",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(flags, func(app *bootstrap.App) error {
				out, err := app.UsersCLI.ListUsers(cmd.Context())
				if err != nil {
					return err
				}
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				_, _ = fmt.Fprintln(w, "NAME\tEMAIL\tROLE\tSTATUS\tLAST ACTIVE")
				for _, u := range out.Users {
					_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", u.Name, u.Email, u.Role, u.Status, u.LastActive)
				}
				if err := w.Flush(); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\n%d active, %d inactive\n", out.Active, out.Inactive)
				return nil
			})
		},
	}
}

func newReportCmd(flags *globalFlags) *cobra.Command {
	var raw bool
	var width int
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render a markdown analytics report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(flags, func(app *bootstrap.App) error {
				md, err := app.AnalyticsCLI.Report(cmd.Context())
				if err != nil {
					return err
				}
				if raw {
					_, _ = fmt.Fprint(cmd.OutOrStdout(), md)
					return nil
				}
				style := "light"
				if app.Config.DarkMode {
					style = "dark"
				}
				r, err := glamour.NewTermRenderer(
					glamour.WithStylePath(style),
					glamour.WithWordWrap(width),
				)
				if err != nil {
					return fmt.Errorf("markdown renderer: %w", err)
				}
				out, err := r.Render(md)
				if err != nil {
					return fmt.Errorf("render report: %w", err)
				}
				_, _ = fmt.Fprint(cmd.OutOrStdout(), out)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "print markdown without rendering")
	cmd.Flags().IntVar(&width, "width", 100, "wrap width")
	return cmd
}

func newDemoAPICmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "demo-api",
		Short: "Serve fixture analytics data for local use",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := zap.NewProduction()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			srv, err := demoapi.New(demoapi.DefaultFixture(time.Now()), logger)
			if err != nil {
				return err
			}
			server := &http.Server{
				Addr:              addr,
				Handler:           srv.Routes(),
				ReadHeaderTimeout: 5 * time.Second,
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() { errCh <- server.ListenAndServe() }()
			logger.Info("demo api listening",
				zap.String("addr", addr),
				zap.String("email", demoapi.DemoEmail),
				zap.String("password", demoapi.DemoPassword),
			)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "demo api on %s (login %s / %s)\n", addr, demoapi.DemoEmail, demoapi.DemoPassword)

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
			}
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8787", "listen address")
	return cmd
}
