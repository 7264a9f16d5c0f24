package main

import (
	"encoding/json"
	"io"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/ventapel/prospect-cli/internal/model"
)

var scoreInput string

// scoreDocument is the input envelope for the score command. Intel is
// optional; without it the scorers fall back to company data alone.
type scoreDocument struct {
	Company model.Company       `json:"company"`
	Contact model.Contact       `json:"contact"`
	Intel   *model.SignalBundle `json:"intel,omitempty"`
}

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Produce a PPVVC lead score for one company and contact",
	Long:  "Reads a JSON document with company, contact, and optional intel fields from --input (or stdin) and prints the lead score. Scoring always completes: when the model is unavailable or returns garbage the deterministic fallback answers.",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := initStages()
		if err != nil {
			return err
		}

		var r io.Reader = os.Stdin
		if scoreInput != "" {
			f, err := os.Open(scoreInput)
			if err != nil {
				return eris.Wrap(err, "score: open input")
			}
			defer f.Close()
			r = f
		}

		var doc scoreDocument
		if err := json.NewDecoder(r).Decode(&doc); err != nil {
			return eris.Wrap(err, "score: decode input")
		}
		if doc.Company.Name == "" {
			return eris.New("score: company.name is required")
		}

		score, err := s.Scorer.Score(cmd.Context(), doc.Company, doc.Contact, doc.Intel)
		if err != nil {
			return err
		}

		return printJSON(score)
	},
}

func init() {
	scoreCmd.Flags().StringVar(&scoreInput, "input", "", "path to the JSON input document (stdin when empty)")
	rootCmd.AddCommand(scoreCmd)
}
