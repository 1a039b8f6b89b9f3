package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Mutie886/aims-directory-generator/pkg/archive"
	"github.com/Mutie886/aims-directory-generator/pkg/config"
	"github.com/Mutie886/aims-directory-generator/pkg/session"
	"github.com/Mutie886/aims-directory-generator/pkg/workspace"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
)

// runGenerateTUI materializes the workspace for the loaded rosters and shows
// the result summary.
func runGenerateTUI(st *session.State) error {
	if !st.HasData() {
		fmt.Println(errorStyle.Render("Load students and courses first (upload, manual input, or example data)."))
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	workspaceName := cfg.WorkspaceName()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Workspace folder name").
				Description(fmt.Sprintf("%d students × %d courses will be generated.", len(st.Students), len(st.Courses))).
				Value(&workspaceName).
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

	var result *workspace.Result
	_ = spinner.New().
		Title(fmt.Sprintf("Creating directory structure in %s...", workspaceName)).
		Action(func() {
			result = workspace.Build(st.Students, st.Courses, workspaceName)
		}).
		Run()

	st.LastResult = result
	if err := session.Save(st); err != nil {
		return err
	}

	renderResult(result)
	return offerPostActions(result)
}

// runResultsTUI re-displays the last generation result from the session.
func runResultsTUI(st *session.State) error {
	if st.LastResult == nil {
		fmt.Println(warnStyle.Render("No generation results yet. Generate a workspace first."))
		return nil
	}

	renderResult(st.LastResult)
	return offerPostActions(st.LastResult)
}

// renderResult prints the generation metrics and any per-unit issues.
func renderResult(r *workspace.Result) {
	abs, err := filepath.Abs(r.BaseFolder)
	if err != nil {
		abs = r.BaseFolder
	}

	fmt.Println(accentStyle.Render("\n🎉 Workspace generation complete!"))
	fmt.Printf("Workspace path:      %s\n", abs)
	fmt.Printf("Students processed:  %d\n", r.StudentsProcessed)
	fmt.Printf("Student folders:     %d created, %d skipped\n", r.StudentsCreated, r.StudentsSkipped)
	fmt.Printf("Course folders:      %d created, %d skipped\n", r.CourseFoldersCreated, r.CourseFoldersSkipped)
	fmt.Printf("README files:        %d created, %d skipped\n", r.ReadmesCreated, r.ReadmesSkipped)

	for _, issue := range r.Issues {
		fmt.Println(warnStyle.Render(fmt.Sprintf("⚠ %s: %s", issue.Path, issue.Reason)))
	}
}

// offerPostActions lets the user preview the tree and pack the workspace
// into a zip. An archive failure leaves the built tree valid on disk.
func offerPostActions(result *workspace.Result) error {
	var wantTree, wantZip bool

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Preview the folder tree?").
				Value(&wantTree),
			huh.NewConfirm().
				Title("Create a zip archive for download?").
				Value(&wantZip),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	if wantTree {
		fmt.Println()
		fmt.Println(workspace.RenderTree(result.BaseFolder))
	}

	if wantZip {
		var name string
		var zipErr error
		_ = spinner.New().
			Title("Creating zip archive...").
			Action(func() {
				name, zipErr = archive.Pack(result.BaseFolder)
			}).
			Run()

		if zipErr != nil {
			fmt.Println(errorStyle.Render(fmt.Sprintf("Failed to create archive: %v", zipErr)))
			return nil
		}
		fmt.Println(accentStyle.Render(fmt.Sprintf("✅ Created %s", name)))
	}

	return nil
}
