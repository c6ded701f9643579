package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Shivansh-2508/PGT-Portal/internal/cli/ui"
)

// logoutCmd removes the saved session
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "forget the saved session",
	Args:  cobra.NoArgs,
	RunE:  runLogout,
}

func init() {
	logoutCmd.SilenceUsage = true
}

func runLogout(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		ui.PrintError("%v", err)
		return fmt.Errorf("setup failed")
	}
	defer a.Close()

	if err := a.repo.Delete(context.Background()); err != nil {
		ui.PrintError("%s", ui.ErrorMessage(err))
		return err
	}
	a.sessions.Clear()

	ui.PrintSuccess("Logged out")
	return nil
}
