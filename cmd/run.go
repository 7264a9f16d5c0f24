package main

import (
	"github.com/spf13/cobra"

	"github.com/ventapel/prospect-cli/internal/discovery"
	"github.com/ventapel/prospect-cli/internal/pipeline"
)

var (
	runCity       string
	runSize       string
	runKeywords   []string
	runPage       int
	runLimit      int
	runSkipIntel  bool
	runSkipEnrich bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full pipeline: discover, gather intel, enrich, score",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := initStages()
		if err != nil {
			return err
		}

		result, err := s.Pipeline.Run(cmd.Context(),
			discovery.SearchFilters{
				City:     runCity,
				Size:     runSize,
				Keywords: runKeywords,
				Page:     runPage,
			},
			pipeline.Options{
				Limit:      runLimit,
				SkipIntel:  runSkipIntel,
				SkipEnrich: runSkipEnrich,
			},
		)
		if err != nil {
			return err
		}

		return printJSON(result)
	},
}

func init() {
	runCmd.Flags().StringVar(&runCity, "city", "", "restrict to one city in the target region")
	runCmd.Flags().StringVar(&runSize, "size", "", `employee range token (default "11,500")`)
	runCmd.Flags().StringSliceVar(&runKeywords, "keywords", nil, "industry keywords (default vocabulary when empty)")
	runCmd.Flags().IntVar(&runPage, "page", 1, "result page")
	runCmd.Flags().IntVar(&runLimit, "limit", 0, "cap the number of companies carried through the pipeline (0 = all)")
	runCmd.Flags().BoolVar(&runSkipIntel, "skip-intel", false, "skip web signal gathering")
	runCmd.Flags().BoolVar(&runSkipEnrich, "skip-enrich", false, "skip contact enrichment")
	rootCmd.AddCommand(runCmd)
}
