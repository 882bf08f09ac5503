package cli

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/autowatch/internal/cli/formatter"
	"github.com/alexanderramin/autowatch/internal/domain"
)

// autowatchHuhTheme returns a huh theme using the Gruvbox palette.
func autowatchHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorGreen).SetString("[•] ")
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorDim).SetString("[ ] ")
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// promptKeyMap lets esc abort a prompt in addition to ctrl+c.
func promptKeyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit"))
	return km
}

func subjectOptions(subjects []domain.Subject) []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(subjects))
	for _, s := range subjects {
		options = append(options, huh.NewOption(s.Name, s.ID))
	}
	return options
}

func unitOptions(units []domain.Unit) []huh.Option[int] {
	options := make([]huh.Option[int], 0, len(units))
	for i, u := range units {
		label := fmt.Sprintf("%d. %s", i+1, u.Label())
		switch n := len(u.Videos()); n {
		case 0:
			label += formatter.Dim(" (no videos)")
		case 1:
			label += formatter.Dim(" (1 video)")
		default:
			label += formatter.Dim(fmt.Sprintf(" (%d videos)", n))
		}
		options = append(options, huh.NewOption(label, i))
	}
	return options
}

// wizardSelectSubjects creates a huh form to pick any number of subjects.
func wizardSelectSubjects(subjects []domain.Subject, result *[]string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Which subjects?").
				Description("space to toggle, enter to confirm").
				Options(subjectOptions(subjects)...).
				Filterable(true).
				Value(result),
		),
	).WithTheme(autowatchHuhTheme()).WithShowHelp(false)
}

// wizardSelectUnits creates a huh form to pick units of one subject.
func wizardSelectUnits(subject domain.Subject, units []domain.Unit, result *[]int) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[int]().
				Title(fmt.Sprintf("Which units of %s?", subject.Name)).
				Options(unitOptions(units)...).
				Height(min(len(units)+2, 15)).
				Value(result),
		),
	).WithTheme(autowatchHuhTheme()).WithShowHelp(false)
}

// wizardInputToken creates a huh form for the bearer token with masked echo.
func wizardInputToken(result *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Bearer token").
				Description("Paste the token from the platform; surrounding quotes are removed.").
				EchoMode(huh.EchoModePassword).
				Value(result),
		),
	).WithTheme(autowatchHuhTheme()).WithShowHelp(false)
}
