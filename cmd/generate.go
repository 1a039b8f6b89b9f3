package cmd

import (
	"fmt"
	"os"

	"github.com/Mutie886/aims-directory-generator/pkg/archive"
	"github.com/Mutie886/aims-directory-generator/pkg/config"
	"github.com/Mutie886/aims-directory-generator/pkg/records"
	"github.com/Mutie886/aims-directory-generator/pkg/workspace"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the workspace directly from list files",
	Long:  `Create the student/course directory structure from CSV or text files without using the interactive TUI.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		studentsPath, _ := cmd.Flags().GetString("students")
		coursesPath, _ := cmd.Flags().GetString("courses")
		root, _ := cmd.Flags().GetString("root")
		showTree, _ := cmd.Flags().GetBool("tree")
		makeZip, _ := cmd.Flags().GetBool("zip")

		if root == "" {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			root = cfg.WorkspaceName()
		}

		studentData, err := os.ReadFile(studentsPath)
		if err != nil {
			return fmt.Errorf("failed to read student list: %w", err)
		}
		courseData, err := os.ReadFile(coursesPath)
		if err != nil {
			return fmt.Errorf("failed to read course list: %w", err)
		}

		students, studentIssues, studentEnc := records.ParseStudentData(studentData)
		courses, courseIssues, courseEnc := records.ParseCourseData(courseData)

		fmt.Printf("Decoded %s as %s, %s as %s\n", studentsPath, studentEnc, coursesPath, courseEnc)
		printIssues(studentIssues)
		printIssues(courseIssues)

		if len(students) == 0 {
			return fmt.Errorf("no valid students found in %s", studentsPath)
		}
		if len(courses) == 0 {
			return fmt.Errorf("no valid courses found in %s", coursesPath)
		}

		var result *workspace.Result
		_ = spinner.New().
			Title(fmt.Sprintf("Generating %s for %d students × %d courses...", root, len(students), len(courses))).
			Action(func() {
				result = workspace.Build(students, courses, root)
			}).
			Run()

		fmt.Println(result.Summary())
		for _, issue := range result.Issues {
			fmt.Fprintf(os.Stderr, "warning: %s: %s\n", issue.Path, issue.Reason)
		}

		if showTree {
			fmt.Println(workspace.RenderTree(root))
		}

		if makeZip {
			name, err := archive.Pack(root)
			if err != nil {
				return fmt.Errorf("failed to create archive: %w", err)
			}
			fmt.Printf("Created %s\n", name)
		}

		return nil
	},
}

func printIssues(issues []records.Issue) {
	for _, issue := range issues {
		fmt.Fprintf(os.Stderr, "warning: line %d %q: %s\n", issue.Line, issue.Input, issue.Reason)
	}
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringP("students", "s", "", "Student list file ('Lastname, Firstname' per line)")
	generateCmd.Flags().StringP("courses", "c", "", "Course list file (one course per line)")
	generateCmd.Flags().StringP("root", "r", "", "Workspace folder name (default from config)")
	generateCmd.Flags().Bool("tree", false, "Print the generated directory tree")
	generateCmd.Flags().Bool("zip", false, "Pack the workspace into a zip archive")
	generateCmd.MarkFlagRequired("students")
	generateCmd.MarkFlagRequired("courses")
}
