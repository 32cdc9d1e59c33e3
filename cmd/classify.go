package main

import (
	"github.com/spf13/cobra"

	"github.com/city-rec/dropin-cli/internal/taxonomy"
)

var classifyFlags struct {
	ageMin string
	ageMax string
	format string
}

var classifyCmd = &cobra.Command{
	Use:   "classify <title>",
	Short: "Classify a program title onto the category taxonomy",
	Args:  cobra.ExactArgs(1),
	RunE:  runClassify,
}

func init() {
	classifyCmd.Flags().StringVar(&classifyFlags.ageMin, "age-min", "", "program minimum age, as it appears in the dataset")
	classifyCmd.Flags().StringVar(&classifyFlags.ageMax, "age-max", "", "program maximum age, or \"None\"")
	classifyCmd.Flags().StringVar(&classifyFlags.format, "format", "table", "output format: table or json")

	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	table, err := loadTable()
	if err != nil {
		return err
	}

	title := args[0]
	labels := table.Classify(title, classifyFlags.ageMin, classifyFlags.ageMax)
	icon := table.IconFor(title, classifyFlags.ageMin, classifyFlags.ageMax)

	if classifyFlags.format == "json" {
		return printJSON(cmd, struct {
			Title  string           `json:"title"`
			Labels []taxonomy.Label `json:"labels"`
			Icon   string           `json:"icon"`
		}{title, labels, icon})
	}

	if len(labels) == 0 {
		cmd.Printf("%s: uncategorized (icon %s)\n", title, icon)
		return nil
	}
	cmd.Printf("%s (icon %s)\n", title, icon)
	for _, l := range labels {
		cmd.Printf("  %s / %s\n", l.Category, l.Subcategory)
	}
	return nil
}
