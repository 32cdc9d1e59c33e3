package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/city-rec/dropin-cli/internal/engine"
)

var locationsFlags struct {
	all    bool
	format string
}

var locationsCmd = &cobra.Command{
	Use:   "locations",
	Short: "List locations that offer drop-in programs",
	RunE:  runLocations,
}

func init() {
	locationsCmd.Flags().BoolVar(&locationsFlags.all, "all", false, "include locations with no scheduled programs")
	locationsCmd.Flags().StringVar(&locationsFlags.format, "format", "table", "output format: table or json")

	rootCmd.AddCommand(locationsCmd)
}

func runLocations(cmd *cobra.Command, args []string) error {
	snap, err := loadSnapshot(cmd.Context())
	if err != nil {
		return err
	}

	locs := snap.Locations
	if !locationsFlags.all {
		locs = engine.LocationsWithPrograms(snap.Sessions, snap.Locations)
	}

	if locationsFlags.format == "json" {
		return printJSON(cmd, locs)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tADDRESS\tTYPE")
	for _, loc := range locs {
		addr := strings.ReplaceAll(loc.FormatAddress(cfg.Display.City, cfg.Display.Province), "\n", ", ")
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", loc.LocationID, loc.Name, addr, loc.Type)
	}
	_ = w.Flush()
	fmt.Printf("\n%d location(s)\n", len(locs))
	return nil
}
