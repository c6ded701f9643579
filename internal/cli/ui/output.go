package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
)

// PortalTitle is the heading shown on every screen
const PortalTitle = "Pinnacle Group Tuitions"

// Output receives everything printed by this package
var Output io.Writer = color.Output

var (
	// Color definitions for terminal output
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan)
	hintColor    = color.New(color.Faint)

	bannerStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("86")).Padding(0, 1)
	bannerTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86")).Align(lipgloss.Center).Width(56)
)

func printMarked(c *color.Color, mark, format string, args ...interface{}) {
	c.Fprintf(Output, "%s %s\n", mark, fmt.Sprintf(format, args...))
}

// PrintSuccess prints a success message
func PrintSuccess(format string, args ...interface{}) {
	printMarked(successColor, "✓", format, args...)
}

// PrintError prints an error message
func PrintError(format string, args ...interface{}) {
	printMarked(errorColor, "✗", format, args...)
}

// PrintWarning prints a warning message
func PrintWarning(format string, args ...interface{}) {
	printMarked(warningColor, "⚠", format, args...)
}

// PrintInfo prints an info message
func PrintInfo(format string, args ...interface{}) {
	printMarked(infoColor, "ℹ", format, args...)
}

// PrintNotice prints the informational banner shown while a login is slow
func PrintNotice(message string) {
	fmt.Fprintln(Output, Styles.Notice.Render(message))
}

// PrintHint prints a follow-up command with a short description
func PrintHint(command, description string) {
	fmt.Fprintf(Output, "  %s %s\n",
		Styles.Bold.Render(fmt.Sprintf("%-24s", command)),
		hintColor.Sprintf("# %s", description),
	)
}

// PrintPortalBanner prints the portal title
func PrintPortalBanner() {
	fmt.Fprintln(Output, bannerStyle.Render(bannerTitleStyle.Render(PortalTitle)))
}

func printBox(box lipgloss.Style, c *color.Color, title, content string) {
	fmt.Fprintln(Output, box.Render(c.Sprint(title)+"\n\n"+content))
}

// PrintSuccessBox prints a success message in a box
func PrintSuccessBox(title, content string) {
	printBox(Styles.SuccessBox, successColor, title, content)
}

// PrintErrorBox prints an error message in a box
func PrintErrorBox(title, content string) {
	printBox(Styles.ErrorBox, errorColor, title, content)
}
