package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tony-kipkemboi/granola-extractor/config"
	"github.com/tony-kipkemboi/granola-extractor/internal/app"
	"github.com/tony-kipkemboi/granola-extractor/internal/domain/meeting"
	"github.com/tony-kipkemboi/granola-extractor/internal/domain/meeting/usecases"
	"github.com/tony-kipkemboi/granola-extractor/internal/output"
	"github.com/tony-kipkemboi/granola-extractor/internal/version"
)

type Dependencies struct {
	App    *app.App
	Config *config.Config
}

func NewRootCmd(deps *Dependencies) *cobra.Command {
	var (
		dateFilter    string
		monthFilter   string
		searchFilter  string
		listOnly      bool
		cacheOverride string
	)

	rootCmd := &cobra.Command{
		Use:   "granola [output-dir]",
		Short: "Extract Granola meeting transcripts to markdown",
		Long: "Read meetings from the Granola app's local cache and write each one as a\n" +
			"markdown file with metadata, notes, and the full transcript, organized\n" +
			"into year/month folders.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := output.NewFormatter(cmd.OutOrStdout())

			filter, err := usecases.ParseFilter(dateFilter, monthFilter, searchFilter)
			if err != nil {
				return err
			}

			application := deps.App
			if cacheOverride != "" {
				cfg := *deps.Config
				cfg.CachePath = config.ExpandTilde(cacheOverride)
				application = app.New(&cfg)
			}

			meetings, err := application.Extract.Execute(filter)
			if err != nil {
				return err
			}

			if listOnly {
				renderList(formatter, meetings, filter)
				return nil
			}

			if len(meetings) == 0 {
				formatter.Info(noMatchMessage(filter))
				return nil
			}

			outputDir := deps.Config.OutputDir
			if len(args) == 1 {
				outputDir = config.ExpandTilde(args[0])
			}

			formatter.ExportStarted(outputDir, len(meetings))
			if desc := filter.Describe(); desc != "" {
				formatter.FilterApplied(desc)
			}

			result := application.Export.Execute(meetings, outputDir)
			for _, path := range result.Saved {
				formatter.Saved(path)
			}
			for _, failure := range result.Failures {
				formatter.WriteFailed(failure.Path, failure.Err)
			}
			if result.SkippedNoStart > 0 {
				formatter.Warning(fmt.Sprintf("Skipped %d meeting(s) without a start time", result.SkippedNoStart))
			}
			formatter.Success(fmt.Sprintf("Saved %d transcript(s) to %s", len(result.Saved), outputDir))

			if n := len(result.Failures); n > 0 {
				return fmt.Errorf("failed to write %d of %d transcript(s)", n, n+len(result.Saved))
			}
			return nil
		},
	}

	rootCmd.Flags().StringVar(&dateFilter, "date", "", "Only meetings on this date (YYYY-MM-DD)")
	rootCmd.Flags().StringVar(&monthFilter, "month", "", "Only meetings in this month (YYYY-MM)")
	rootCmd.Flags().StringVar(&searchFilter, "search", "", "Only meetings whose title contains this text")
	rootCmd.Flags().BoolVarP(&listOnly, "list", "l", false, "List matching meetings without writing files")
	rootCmd.Flags().StringVar(&cacheOverride, "cache", "", "Path to the Granola cache file")
	rootCmd.MarkFlagsMutuallyExclusive("date", "month", "search")

	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(version.Full() + "\n")

	rootCmd.AddCommand(NewDoctorCmd(deps))

	return rootCmd
}

func renderList(f *output.Formatter, meetings []meeting.Meeting, filter usecases.Filter) {
	if len(meetings) == 0 {
		f.Info(noMatchMessage(filter))
		return
	}
	f.MeetingListHeader(len(meetings))
	for i := range meetings {
		m := &meetings[i]
		date := "Unknown date"
		if !m.Start.IsZero() {
			date = m.Start.Format("2006-01-02 03:04 PM")
		}
		duration := ""
		if minutes, ok := m.DurationMinutes(); ok {
			duration = fmt.Sprintf("%.1f min", minutes)
		}
		f.MeetingListItem(i+1, date, truncateTitle(m.Title, 50), duration)
	}
}

func noMatchMessage(filter usecases.Filter) string {
	if filter.IsZero() {
		return "No meetings with transcripts found"
	}
	return "No meetings match filter: " + filter.Describe()
}

func truncateTitle(title string, max int) string {
	runes := []rune(title)
	if len(runes) <= max {
		return title
	}
	return string(runes[:max])
}
