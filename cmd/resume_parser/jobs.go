package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-parser/internal/config"
	"github.com/jonathan/resume-parser/internal/db"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Manage saved job postings",
	Long:  "Save, list, and delete job postings in the local SQLite database.",
}

var jobsDBPath string

var jobsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Save a job posting",
	RunE:  runJobsAdd,
}

var (
	jobsAddTitle           string
	jobsAddCompany         string
	jobsAddDescription     string
	jobsAddDescriptionFile string
	jobsAddApplyLink       string
)

var jobsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved job postings",
	RunE:  runJobsList,
}

var jobsListPretty bool

var jobsDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a saved job posting",
	Args:  cobra.ExactArgs(1),
	RunE:  runJobsDelete,
}

func init() {
	jobsCmd.PersistentFlags().StringVar(&jobsDBPath, "db", "", "Path to SQLite database (defaults to DATABASE_PATH or jobs.db)")

	jobsAddCmd.Flags().StringVar(&jobsAddTitle, "title", "", "Job title (required)")
	jobsAddCmd.Flags().StringVar(&jobsAddCompany, "company", "", "Company name (required)")
	jobsAddCmd.Flags().StringVar(&jobsAddDescription, "description", "", "Job description text")
	jobsAddCmd.Flags().StringVar(&jobsAddDescriptionFile, "description-file", "", "Path to job description text file")
	jobsAddCmd.Flags().StringVar(&jobsAddApplyLink, "apply-link", "", "Application URL")
	_ = jobsAddCmd.MarkFlagRequired("title")
	_ = jobsAddCmd.MarkFlagRequired("company")

	jobsListCmd.Flags().BoolVarP(&jobsListPretty, "pretty", "p", false, "Indent JSON output")

	jobsCmd.AddCommand(jobsAddCmd)
	jobsCmd.AddCommand(jobsListCmd)
	jobsCmd.AddCommand(jobsDeleteCmd)
	rootCmd.AddCommand(jobsCmd)
}

// openJobsDB resolves the database path from the --db flag, the environment,
// then the hard default.
func openJobsDB(ctx context.Context) (*db.DB, error) {
	path := jobsDBPath
	if path == "" {
		path = os.Getenv("DATABASE_PATH")
	}
	if path == "" {
		path = config.DefaultDatabasePath
	}

	database, err := db.Open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return database, nil
}

func runJobsAdd(_ *cobra.Command, _ []string) error {
	if jobsAddDescription != "" && jobsAddDescriptionFile != "" {
		return fmt.Errorf("cannot use --description with --description-file")
	}

	description := jobsAddDescription
	if jobsAddDescriptionFile != "" {
		data, err := os.ReadFile(jobsAddDescriptionFile)
		if err != nil {
			return fmt.Errorf("failed to read job description: %w", err)
		}
		description = string(data)
	}

	ctx := context.Background()
	database, err := openJobsDB(ctx)
	if err != nil {
		return err
	}
	defer database.Close()

	id, err := database.SaveJob(ctx, jobsAddTitle, jobsAddCompany, description, jobsAddApplyLink)
	if err != nil {
		return fmt.Errorf("failed to save job: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Saved job %d: %s @ %s\n", id, jobsAddTitle, jobsAddCompany)
	return nil
}

func runJobsList(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	database, err := openJobsDB(ctx)
	if err != nil {
		return err
	}
	defer database.Close()

	jobs, err := database.ListJobs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list jobs: %w", err)
	}

	jsonBytes, err := marshalJSON(jobs, jobsListPretty)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Fprintf(os.Stdout, "%s\n", jsonBytes)

	return nil
}

func runJobsDelete(_ *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid job ID: %s", args[0])
	}

	ctx := context.Background()
	database, err := openJobsDB(ctx)
	if err != nil {
		return err
	}
	defer database.Close()

	deleted, err := database.DeleteJob(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}
	if !deleted {
		return fmt.Errorf("job not found: %d", id)
	}

	fmt.Fprintf(os.Stdout, "Deleted job %d\n", id)
	return nil
}
