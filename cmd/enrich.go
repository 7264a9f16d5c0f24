package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/ventapel/prospect-cli/internal/model"
)

var (
	enrichName     string
	enrichCompany  string
	enrichLinkedin string
	enrichEmail    string
	enrichVerified bool
)

var enrichCmd = &cobra.Command{
	Use:   "enrich",
	Short: "Look up missing contact details via the paid provider",
	Long:  "Runs the enrichment waterfall for one contact. The provider is only called when the contact has no verified email; one credit is consumed per answered lookup.",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := initStages()
		if err != nil {
			return err
		}
		if s.Enricher == nil {
			return eris.Wrap(model.ErrConfiguration, "lusha key not configured (set PROSPECT_LUSHA_KEY)")
		}
		if enrichName == "" && enrichLinkedin == "" {
			return eris.New("enrich: --name or --linkedin is required")
		}

		contact := model.Contact{
			Name:        enrichName,
			LinkedinURL: enrichLinkedin,
		}
		if enrichEmail != "" {
			contact.Emails = []string{enrichEmail}
			if enrichVerified {
				contact.EmailStatus = model.EmailVerified
			}
		}
		contact.NeedsEnrichment = len(contact.Emails) == 0 || contact.EmailStatus != model.EmailVerified

		result, err := s.Enricher.Enrich(cmd.Context(), contact, enrichCompany)
		if err != nil {
			return err
		}

		return printJSON(result)
	},
}

func init() {
	enrichCmd.Flags().StringVar(&enrichName, "name", "", "contact full name")
	enrichCmd.Flags().StringVar(&enrichCompany, "company", "", "company name for disambiguation")
	enrichCmd.Flags().StringVar(&enrichLinkedin, "linkedin", "", "LinkedIn profile URL (preferred lookup key)")
	enrichCmd.Flags().StringVar(&enrichEmail, "email", "", "known email, if any")
	enrichCmd.Flags().BoolVar(&enrichVerified, "verified", false, "the known email is verified (skips the lookup)")
	rootCmd.AddCommand(enrichCmd)
}
