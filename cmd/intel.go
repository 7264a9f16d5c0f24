package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/ventapel/prospect-cli/internal/model"
)

var (
	intelName     string
	intelIndustry string
	intelDomain   string
)

var intelCmd = &cobra.Command{
	Use:   "intel",
	Short: "Gather web buying signals and compute the opportunity score",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := initStages()
		if err != nil {
			return err
		}
		if s.Extractor == nil {
			return eris.Wrap(model.ErrConfiguration, "serper key not configured (set PROSPECT_SERPER_KEY)")
		}
		if intelName == "" {
			return eris.New("intel: --name is required")
		}

		bundle := s.Extractor.Gather(cmd.Context(), model.Company{
			Name:          intelName,
			Industry:      intelIndustry,
			PrimaryDomain: intelDomain,
		})

		return printJSON(bundle)
	},
}

func init() {
	intelCmd.Flags().StringVar(&intelName, "name", "", "company name")
	intelCmd.Flags().StringVar(&intelIndustry, "industry", "", "company industry")
	intelCmd.Flags().StringVar(&intelDomain, "domain", "", "company domain")
	rootCmd.AddCommand(intelCmd)
}
