package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/Shivansh-2508/PGT-Portal/internal/cli/login"
	"github.com/Shivansh-2508/PGT-Portal/internal/cli/tui"
	"github.com/Shivansh-2508/PGT-Portal/internal/cli/ui"
	"github.com/Shivansh-2508/PGT-Portal/internal/domain"
	"github.com/Shivansh-2508/PGT-Portal/internal/domain/entity"
	"github.com/Shivansh-2508/PGT-Portal/pkg/logger"
)

var (
	loginUsername string
	loginRole     string
	loginPlain    bool
)

// loginCmd is the login command
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "sign in to the portal as staff or student",
	Long: `Sign in to the Pinnacle Group Tuitions portal.

The session returned by the server is saved in ~/.pgtctl/storage.db and
reused until you log out. If a session is already saved, login goes
straight to the dashboard without contacting the server.`,
	Example: `  # Interactive form
  $ pgtctl login

  # Pre-select the role and username
  $ pgtctl login --role staff -u admin

  # Line-by-line prompts instead of the full-screen form
  $ pgtctl login --plain`,
	Args: cobra.NoArgs,
	RunE: runLogin,
}

func init() {
	loginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "username to sign in with")
	loginCmd.Flags().StringVarP(&loginRole, "role", "r", "", "user type: staff or student")
	loginCmd.Flags().BoolVar(&loginPlain, "plain", false, "use line prompts instead of the full-screen form")

	// Silence usage to avoid showing help on every error
	loginCmd.SilenceUsage = true
}

func runLogin(cmd *cobra.Command, args []string) error {
	var role entity.Role
	if loginRole != "" {
		r, ok := entity.ParseRole(loginRole)
		if !ok {
			err := domain.NewInvalidRoleError(loginRole)
			ui.PrintError("%s", ui.ErrorMessage(err))
			return err
		}
		role = r
	}

	a, err := newApp()
	if err != nil {
		ui.PrintError("%v", err)
		return fmt.Errorf("setup failed")
	}
	defer a.Close()

	ctx := logger.WithContext(context.Background(), a.logger.With("command", "login"))

	var opts []login.Option
	if loginPlain {
		opts = append(opts, login.WithNoticeHandler(ui.PrintNotice))
	}

	view := login.NewView(a.client, a.sessions, a.repo, a.logger, opts...)
	view.Initialize(ctx)

	// flags apply after Initialize, which resets the role selection
	if role != entity.RoleNone {
		view.SelectRole(role)
	}
	if loginUsername != "" {
		view.SetUsername(loginUsername)
	}

	var route string
	if loginPlain {
		route, err = runPlainLogin(ctx, a, view)
	} else {
		route, err = tui.NewLoginProgram(ctx, view).Run()
	}
	if err != nil {
		return err
	}

	switch route {
	case login.RouteDash:
		printDashboard(a)
	case login.RouteRegister:
		ui.PrintInfo("Student registration is at %s on the portal.", login.RouteRegister)
	default:
		ui.PrintWarning("login cancelled")
	}

	return nil
}

// runPlainLogin drives the login view with survey prompts
func runPlainLogin(ctx context.Context, a *app, view *login.View) (string, error) {
	if route, ok := view.Redirect(); ok {
		return route, nil
	}

	ui.PrintPortalBanner()

	for {
		if view.Role() == entity.RoleNone {
			var choice string
			prompt := &survey.Select{
				Message: "User type:",
				Options: []string{entity.RoleStaff.Title(), entity.RoleStudent.Title()},
			}
			if err := survey.AskOne(prompt, &choice); err != nil {
				ui.PrintError("failed to read user type: %v", err)
				return "", fmt.Errorf("input failed")
			}
			r, _ := entity.ParseRole(choice)
			view.SelectRole(r)
		}

		if view.Username() == "" {
			var username string
			prompt := &survey.Input{Message: "Username:"}
			if err := survey.AskOne(prompt, &username, survey.WithValidator(survey.Required)); err != nil {
				ui.PrintError("failed to read username: %v", err)
				return "", fmt.Errorf("input failed")
			}
			view.SetUsername(username)
		}

		var password string
		prompt := &survey.Password{Message: "Password:"}
		if err := survey.AskOne(prompt, &password, survey.WithValidator(survey.Required)); err != nil {
			ui.PrintError("failed to read password: %v", err)
			return "", fmt.Errorf("input failed")
		}
		view.SetPassword(password)

		ui.PrintInfo("Connecting to %s...", a.client.Server())

		err := view.Login(ctx)
		if route, ok := view.Redirect(); ok {
			return route, nil
		}

		msg := ui.ErrorMessage(err)
		if err == nil {
			msg = "The server did not return an account id"
		}
		ui.PrintErrorBox("Login Failed", msg)
		if domain.IsStorage(err) || errors.Is(err, domain.ErrSubmitInFlight) {
			return "", fmt.Errorf("login failed")
		}

		retry := true
		if err := survey.AskOne(&survey.Confirm{Message: "Try again?", Default: true}, &retry); err != nil || !retry {
			return "", fmt.Errorf("authentication failed")
		}
	}
}
