package tui

import (
	"fmt"

	"github.com/Mutie886/aims-directory-generator/pkg/config"
	"github.com/Mutie886/aims-directory-generator/pkg/records"
	"github.com/Mutie886/aims-directory-generator/pkg/session"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

var (
	// These act as fallbacks initially; GetTheme refreshes them from the
	// saved accent color.
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// GetTheme loads the user's saved accent color and constructs the UI theme.
func GetTheme() *huh.Theme {
	cfg, err := config.Load()
	baseColor := "39" // Default AIMS blue

	if err == nil && cfg != nil && cfg.AccentColor != "" {
		baseColor = cfg.AccentColor
	}

	// Update the global lipgloss accent so plain print statements pick up
	// the color too.
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(baseColor))

	return GetCustomTheme(baseColor)
}

// GetCustomTheme returns a huh.Theme built around the provided lipgloss color
// string. Used for live-previewing styles before they are saved.
func GetCustomTheme(baseColor string) *huh.Theme {
	t := huh.ThemeCharm()
	p := lipgloss.Color(baseColor)

	// Inject the dynamic color into the active inputs, cursors, borders,
	// and buttons.
	t.Focused.Title = t.Focused.Title.Foreground(p).Bold(true)
	t.Focused.Base = t.Focused.Base.Border(lipgloss.RoundedBorder()).BorderForeground(p).Padding(0, 1)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(p)
	t.Focused.MultiSelectSelector = t.Focused.MultiSelectSelector.Foreground(p)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(p)
	t.Focused.SelectedPrefix = t.Focused.SelectedPrefix.Foreground(p)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(p)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(p)
	t.Focused.FocusedButton = t.Focused.FocusedButton.Foreground(lipgloss.Color("0")).Background(p)

	// Softer borders for unfocused elements
	t.Blurred.Base = t.Blurred.Base.Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1)

	return t
}

// RunTUI launches the main menu interactive experience. Loaded rosters and
// the last generation result persist between runs via the session store.
func RunTUI() error {
	st, err := session.Load()
	if err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("Welcome to the AIMS Workspace Generator!"))

	for {
		fmt.Printf("\nLoaded: %d students, %d courses\n", len(st.Students), len(st.Courses))

		var action string
		menu := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("What would you like to do?").
					Options(
						huh.NewOption("📤 Load Lists From Files", "upload"),
						huh.NewOption("📝 Manual Input", "manual"),
						huh.NewOption("📋 Load Example Data", "example"),
						huh.NewOption("🏗️ Generate Workspace", "generate"),
						huh.NewOption("📊 View Last Results", "results"),
						huh.NewOption("⚙️ Settings", "config"),
						huh.NewOption("🔄 Reset Session Data", "reset"),
						huh.NewOption("Quit", "quit"),
					).
					Value(&action),
			),
		).WithTheme(GetTheme())

		if err := menu.Run(); err != nil {
			return err
		}

		switch action {
		case "upload":
			err = runUploadTUI(st)
		case "manual":
			err = runManualInputTUI(st)
		case "example":
			st.Students = records.ExampleStudents()
			st.Courses = records.ExampleCourses()
			if err = session.Save(st); err == nil {
				fmt.Println(accentStyle.Render("✅ Example data loaded."))
			}
		case "generate":
			err = runGenerateTUI(st)
		case "results":
			err = runResultsTUI(st)
		case "config":
			err = RunConfigTUI()
		case "reset":
			*st = session.State{}
			if err = session.Clear(); err == nil {
				fmt.Println(accentStyle.Render("✅ Session data reset."))
			}
		case "quit":
			return nil
		}

		if err != nil {
			return err
		}
	}
}
