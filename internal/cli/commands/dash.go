package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Shivansh-2508/PGT-Portal/internal/cli/ui"
	"github.com/Shivansh-2508/PGT-Portal/internal/domain"
)

// dashCmd shows the signed-in account
var dashCmd = &cobra.Command{
	Use:     "dash",
	Aliases: []string{"whoami"},
	Short:   "show the signed-in account",
	Args:    cobra.NoArgs,
	RunE:    runDash,
}

func init() {
	dashCmd.SilenceUsage = true
}

func runDash(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		ui.PrintError("%v", err)
		return fmt.Errorf("setup failed")
	}
	defer a.Close()

	s, ok, err := a.repo.Load(context.Background())
	if err != nil {
		ui.PrintError("%s", ui.ErrorMessage(err))
		return err
	}
	if !ok || !s.IsAuthenticated() {
		ui.PrintError("not logged in")
		ui.PrintInfo("Run 'pgtctl login' to sign in.")
		return domain.ErrNotLoggedIn
	}

	a.sessions.Set(s)
	printDashboard(a)
	return nil
}

// printDashboard renders the session held by the app's session context
func printDashboard(a *app) {
	s := a.sessions.Current()
	ui.PrintSuccessBox("✓ Signed in", ui.RenderSessionTree(s))
	fmt.Fprintln(ui.Output)
	ui.PrintInfo("Server: %s", a.client.Server())
	ui.PrintHint("pgtctl logout", "Forget this session")
}
