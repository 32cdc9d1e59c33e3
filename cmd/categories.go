package main

import (
	"github.com/spf13/cobra"

	"github.com/city-rec/dropin-cli/internal/engine"
)

var categoriesFlags struct {
	category string
	format   string
	titles   bool
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List taxonomy categories and their subcategories",
	RunE:  runCategories,
}

func init() {
	categoriesCmd.Flags().StringVar(&categoriesFlags.category, "category", "", "limit to one category id")
	categoriesCmd.Flags().BoolVar(&categoriesFlags.titles, "titles", false, "also list the program titles under the selection (loads the dataset)")
	categoriesCmd.Flags().StringVar(&categoriesFlags.format, "format", "table", "output format: table or json")

	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(cmd *cobra.Command, args []string) error {
	table, err := loadTable()
	if err != nil {
		return err
	}

	if categoriesFlags.titles {
		snap, err := loadSnapshot(cmd.Context())
		if err != nil {
			return err
		}
		eng := engine.New(table)
		titles := eng.TitleOptions(snap.Sessions, engine.Filter{Category: categoriesFlags.category})
		if categoriesFlags.format == "json" {
			return printJSON(cmd, titles)
		}
		for _, t := range titles {
			cmd.Println(t)
		}
		return nil
	}

	if categoriesFlags.category != "" {
		cat := table.Category(categoriesFlags.category)
		if cat == nil {
			cmd.Printf("unknown category %q\n", categoriesFlags.category)
			return nil
		}
		if categoriesFlags.format == "json" {
			return printJSON(cmd, cat)
		}
		cmd.Printf("%s (%s)\n", cat.Name, cat.ID)
		for _, sub := range table.Subcategories(cat.ID) {
			cmd.Printf("  %s (%s)\n", sub.Name, sub.ID)
		}
		return nil
	}

	cats := table.Categories()
	if categoriesFlags.format == "json" {
		return printJSON(cmd, cats)
	}
	for i := range cats {
		cmd.Printf("%s (%s)\n", cats[i].Name, cats[i].ID)
		for _, sub := range table.Subcategories(cats[i].ID) {
			cmd.Printf("  %s (%s)\n", sub.Name, sub.ID)
		}
	}
	return nil
}
