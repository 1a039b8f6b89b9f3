package tui

import (
	"fmt"
	"strings"

	"github.com/Mutie886/aims-directory-generator/pkg/config"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// RunConfigTUI launches the interactive experience for managing configurations
func RunConfigTUI() error {
	for {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		var action string

		initialForm := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Configuration Settings").
					Options(
						huh.NewOption("Set Accent Color (Theme)", "theme"),
						huh.NewOption("Set Default Workspace Name", "workspace"),
						huh.NewOption("View Current Config", "view"),
						huh.NewOption("Back to Main Menu", "back"),
					).
					Value(&action),
			),
		).WithTheme(GetTheme())

		if err := initialForm.Run(); err != nil {
			return err
		}

		if action == "back" {
			return nil
		}

		if action == "theme" {
			err = runSetThemeTUI(cfg)
		} else if action == "workspace" {
			err = runSetWorkspaceTUI(cfg)
		} else if action == "view" {
			fmt.Println(accentStyle.Render("\n--- Current Configuration (~/.aimsgen.json) ---"))
			fmt.Printf("Default Workspace: %s\n", cfg.WorkspaceName())
			if cfg.AccentColor == "" {
				fmt.Println("Accent Color: default")
			} else {
				fmt.Printf("Accent Color: %s\n", cfg.AccentColor)
			}
			fmt.Println()
		}

		if err != nil {
			return err
		}
	}
}

func runSetWorkspaceTUI(cfg *config.AppConfig) error {
	name := cfg.WorkspaceName()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Default workspace folder name").
				Description("Used whenever a generation run does not name its own folder.").
				Value(&name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("folder name cannot be empty")
					}
					return nil
				}),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.DefaultWorkspace = strings.TrimSpace(name)
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Default workspace name saved as: %s\n", cfg.DefaultWorkspace)))
	return nil
}

func colorBlock(color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("██")
}

func runSetThemeTUI(cfg *config.AppConfig) error {
	var input string

	inputForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Choose an Accent Color").
				Description("Select a curated Charm style or choose Custom to enter your own Hex.").
				Options(
					huh.NewOption(fmt.Sprintf("%s AIMS Blue", colorBlock("39")), "39"),
					huh.NewOption(fmt.Sprintf("%s Kigali Sunset", colorBlock("205")), "205"),
					huh.NewOption(fmt.Sprintf("%s Savanna Green", colorBlock("42")), "42"),
					huh.NewOption(fmt.Sprintf("%s Charm Purple", colorBlock("99")), "99"),
					huh.NewOption("✨ Custom Hex Code", "custom"),
				).
				Value(&input),
		),
	).WithTheme(GetTheme())

	if err := inputForm.Run(); err != nil {
		return err
	}

	if input == "custom" {
		var hexInput string
		hexForm := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Enter a Hex Color Code").
					Description("Include the `#` symbol. Example: #FF00FF").
					Placeholder("#").
					Value(&hexInput).
					Validate(func(str string) error {
						if len(str) != 7 || !strings.HasPrefix(str, "#") {
							return fmt.Errorf("must be a valid 6-character hex code starting with #")
						}
						return nil
					}),
			),
		).WithTheme(GetTheme())

		if err := hexForm.Run(); err != nil {
			return err
		}
		cfg.AccentColor = hexInput
	} else {
		cfg.AccentColor = input
	}

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("\n✅ The theme color is now saved.\n"))
	return nil
}
