package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/city-rec/dropin-cli/internal/engine"
)

var shareFlags struct {
	category    string
	subcategory string
	program     string
	locations   []string
	age         string
	decode      string
}

var shareCmd = &cobra.Command{
	Use:   "share",
	Short: "Encode filters as a shareable query string, or decode one",
	Long: "Encodes the given filters into a URL query string that recreates " +
		"the search. Date and time are not included: a shared link always " +
		"opens on the recipient's current date and time. Use --decode to " +
		"turn a query string back into a filter.",
	RunE: runShare,
}

func init() {
	shareCmd.Flags().StringVar(&shareFlags.category, "category", "", "category id")
	shareCmd.Flags().StringVar(&shareFlags.subcategory, "subcategory", "", "subcategory id")
	shareCmd.Flags().StringVar(&shareFlags.program, "program", "", "exact program title")
	shareCmd.Flags().StringSliceVar(&shareFlags.locations, "location", nil, "location name, repeatable")
	shareCmd.Flags().StringVar(&shareFlags.age, "age", "", "participant age in years")
	shareCmd.Flags().StringVar(&shareFlags.decode, "decode", "", "decode a query string instead of encoding")

	rootCmd.AddCommand(shareCmd)
}

func runShare(cmd *cobra.Command, args []string) error {
	if shareFlags.decode != "" {
		f, err := engine.DecodeQuery(shareFlags.decode)
		if err != nil {
			return err
		}
		now := time.Now()
		f.Date = engine.DefaultDate(now)
		f.Time = engine.DefaultTime(now)
		return printJSON(cmd, f)
	}

	f := engine.Filter{
		Category:    shareFlags.category,
		Subcategory: shareFlags.subcategory,
		CourseTitle: shareFlags.program,
		Locations:   shareFlags.locations,
		Age:         shareFlags.age,
	}
	if f.IsZero() {
		cmd.Println("")
		return nil
	}
	cmd.Println(f.EncodeQuery())
	return nil
}
