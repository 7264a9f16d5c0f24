package main

import (
	"github.com/spf13/cobra"

	"github.com/ventapel/prospect-cli/internal/discovery"
)

var (
	searchCity     string
	searchSize     string
	searchKeywords []string
	searchPage     int
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Discover and rank companies with decision-maker contacts",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := initStages()
		if err != nil {
			return err
		}

		result, err := s.Engine.Search(cmd.Context(), discovery.SearchFilters{
			City:     searchCity,
			Size:     searchSize,
			Keywords: searchKeywords,
			Page:     searchPage,
		})
		if err != nil {
			return err
		}

		return printJSON(result)
	},
}

func init() {
	searchCmd.Flags().StringVar(&searchCity, "city", "", "restrict to one city in the target region")
	searchCmd.Flags().StringVar(&searchSize, "size", "", `employee range token (default "11,500")`)
	searchCmd.Flags().StringSliceVar(&searchKeywords, "keywords", nil, "industry keywords (default vocabulary when empty)")
	searchCmd.Flags().IntVar(&searchPage, "page", 1, "result page")
	rootCmd.AddCommand(searchCmd)
}
