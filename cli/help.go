package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattsolo1/servr/tui/theme"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

const maxHelpWidth = 72
const minHelpWidth = 40

// getTerminalWidth returns the terminal width capped at maxHelpWidth.
func getTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < minHelpWidth {
		return maxHelpWidth
	}
	if width > maxHelpWidth {
		return maxHelpWidth
	}
	return width
}

// wrapText wraps text to the specified width, preserving existing line breaks.
func wrapText(text string, width int) string {
	if width <= 0 {
		width = maxHelpWidth
	}

	var result []string
	for _, paragraph := range strings.Split(text, "\n") {
		if len(paragraph) <= width {
			result = append(result, paragraph)
			continue
		}

		var line string
		for _, word := range strings.Fields(paragraph) {
			if line == "" {
				line = word
			} else if len(line)+1+len(word) <= width {
				line += " " + word
			} else {
				result = append(result, line)
				line = word
			}
		}
		if line != "" {
			result = append(result, line)
		}
	}
	return strings.Join(result, "\n")
}

// SetStyledHelp applies consistent servr styling to a command's help output.
// Call this on the root command before Execute().
func SetStyledHelp(cmd *cobra.Command) {
	cmd.SetHelpFunc(styledHelpFunc)
}

func styledHelpFunc(cmd *cobra.Command, args []string) {
	t := theme.DefaultTheme
	title := lipgloss.NewStyle().Bold(true).Foreground(t.Colors.Blue)
	section := lipgloss.NewStyle().Bold(true).Foreground(t.Colors.Violet)

	width := getTerminalWidth() - 2

	fmt.Println(" " + title.Render(strings.ToUpper(cmd.CommandPath())))

	description := cmd.Long
	if description == "" {
		description = cmd.Short
	}
	if description != "" {
		for _, line := range strings.Split(wrapText(description, width), "\n") {
			fmt.Println(" " + t.Muted.Render(line))
		}
	}

	if cmd.Runnable() {
		fmt.Println()
		fmt.Println(" " + section.Render("USAGE"))
		fmt.Println("  " + t.Normal.Render(cmd.UseLine()))
	}

	if cmd.HasAvailableSubCommands() {
		fmt.Println()
		fmt.Println(" " + section.Render("COMMANDS"))
		for _, sub := range cmd.Commands() {
			if !sub.IsAvailableCommand() {
				continue
			}
			fmt.Printf("  %s  %s\n",
				t.Info.Render(fmt.Sprintf("%-10s", sub.Name())),
				t.Muted.Render(sub.Short))
		}
	}

	flags := cmd.Flags()
	if flags.HasAvailableFlags() {
		fmt.Println()
		fmt.Println(" " + section.Render("FLAGS"))
		flags.VisitAll(func(f *pflag.Flag) {
			if f.Hidden {
				return
			}
			name := "--" + f.Name
			if f.Shorthand != "" {
				name = "-" + f.Shorthand + ", " + name
			}
			fmt.Printf("  %s  %s\n",
				t.Info.Render(fmt.Sprintf("%-18s", name)),
				t.Muted.Render(f.Usage))
		})
	}

	if cmd.HasAvailableSubCommands() {
		fmt.Println()
		fmt.Println(" " + t.Muted.Render(fmt.Sprintf("Use '%s <command> --help' for details.", cmd.CommandPath())))
	}
}
