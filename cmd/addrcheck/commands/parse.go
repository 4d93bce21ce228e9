package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"handoff-address/internal/models"

	"github.com/spf13/cobra"
)

func parseCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "parse [address]",
		Short:   "Parse a free-text address such as \"123 Main St, New York, NY 10001\"",
		Args:    cobra.MinimumNArgs(1),
		Example: `  addrcheck parse "123 Main St, New York, NY 10001"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			addr := opts.trans.ParseFreeText(strings.Join(args, " "), opts.strict())
			return opts.report(cmd.OutOrStdout(), addr)
		},
	}
}

func placeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "place [file|-]",
		Short: "Parse a place-detail JSON record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}

			detail, err := decodePlace(r)
			if err != nil {
				return err
			}
			return opts.report(cmd.OutOrStdout(), opts.trans.ParseStructured(detail, opts.strict()))
		},
	}
}

// decodePlace accepts either a bare record or a provider details response
// wrapping it in "result".
func decodePlace(r io.Reader) (models.PlaceDetail, error) {
	var envelope struct {
		Result *models.PlaceDetail `json:"result"`
		models.PlaceDetail
	}
	if err := json.NewDecoder(r).Decode(&envelope); err != nil {
		return models.PlaceDetail{}, fmt.Errorf("decode place record: %w", err)
	}
	if envelope.Result != nil {
		return *envelope.Result, nil
	}
	return envelope.PlaceDetail, nil
}
