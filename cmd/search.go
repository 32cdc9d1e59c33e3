package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/city-rec/dropin-cli/internal/engine"
)

var searchFlags struct {
	category    string
	subcategory string
	program     string
	locations   []string
	date        string
	time        string
	age         string
	sortOrder   string
	format      string
	showMap     bool
}

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search drop-in sessions with optional filters",
	Long: "Loads the datasets and prints the sessions matching the given " +
		"category, program, location, date, time, and age filters.",
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchFlags.category, "category", "", "category id (e.g. swimming, sports)")
	searchCmd.Flags().StringVar(&searchFlags.subcategory, "subcategory", "", "subcategory id within the category")
	searchCmd.Flags().StringVar(&searchFlags.program, "program", "", "exact program title")
	searchCmd.Flags().StringSliceVar(&searchFlags.locations, "location", nil, "location name, repeatable")
	searchCmd.Flags().StringVar(&searchFlags.date, "date", "", "ISO date (YYYY-MM-DD), \"this-week\", or empty for any date")
	searchCmd.Flags().StringVar(&searchFlags.time, "time", "", "clock time (HH:MM or H:MM AM/PM), or \"Any time\"")
	searchCmd.Flags().StringVar(&searchFlags.age, "age", "", "participant age in years")
	searchCmd.Flags().StringVar(&searchFlags.sortOrder, "sort", "location-name", "ordering: location-name, earliest, latest, open-longest")
	searchCmd.Flags().StringVar(&searchFlags.format, "format", "table", "output format: table or json")
	searchCmd.Flags().BoolVar(&searchFlags.showMap, "map", false, "print unique mappable locations instead of sessions")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	table, err := loadTable()
	if err != nil {
		return err
	}
	snap, err := loadSnapshot(cmd.Context())
	if err != nil {
		return err
	}

	f := engine.Filter{
		Category:    searchFlags.category,
		Subcategory: searchFlags.subcategory,
		CourseTitle: searchFlags.program,
		Locations:   searchFlags.locations,
		Date:        searchFlags.date,
		Time:        searchFlags.time,
		Age:         searchFlags.age,
	}

	eng := engine.New(table)
	results := eng.Search(snap.Sessions, snap.Locations, snap.FacilityIndex, f)
	engine.Sort(results, engine.ParseOrder(searchFlags.sortOrder))

	zap.L().Debug("search complete",
		zap.Int("matched", len(results)),
		zap.Int("sessions", len(snap.Sessions)),
	)

	if searchFlags.showMap {
		pins := engine.MapLocations(results, snap.Locations, snap.FacilityIndex, cfg.Display.City, cfg.Display.Province)
		return printJSON(cmd, pins)
	}

	if searchFlags.format == "json" {
		return printJSON(cmd, results)
	}
	printResultTable(results)
	return nil
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printResultTable(results []engine.Result) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PROGRAM\tLOCATION\tDAY\tDATE\tSTART\tEND\tAGES\tCATEGORY")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.CourseTitle,
			r.Location,
			r.DayOfWeek,
			r.Date,
			engine.FormatAMPM(r.StartTime),
			engine.FormatAMPM(r.EndTime),
			r.AgeRange,
			r.Category,
		)
	}
	_ = w.Flush()
	fmt.Printf("\n%d session(s)\n", len(results))
}
