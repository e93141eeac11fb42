package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tony-kipkemboi/granola-extractor/internal/domain/meeting/usecases"
	"github.com/tony-kipkemboi/granola-extractor/internal/output"
)

func NewDoctorCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that the Granola cache can be read",
		RunE: func(cmd *cobra.Command, args []string) error {
			f := output.NewFormatter(cmd.OutOrStdout())
			ok := true

			if _, err := os.Stat(deps.Config.CachePath); err != nil {
				f.SetupCheck("Granola cache", false, "not found at "+deps.Config.CachePath+". Install Granola and record a meeting first")
				ok = false
			} else {
				f.SetupCheck("Granola cache", true, deps.Config.CachePath)

				meetings, err := deps.App.Extract.Execute(usecases.Filter{})
				if err != nil {
					f.SetupCheck("Cache contents", false, err.Error())
					ok = false
				} else {
					f.SetupCheck("Cache contents", true, fmt.Sprintf("%d meeting(s) with transcripts", len(meetings)))
				}
			}

			f.SetupCheck("Output directory", true, deps.Config.OutputDir)

			if ok {
				f.Success("\nReady to extract!")
			} else {
				f.Warning("\nSome checks failed.")
			}
			return nil
		},
	}
}
