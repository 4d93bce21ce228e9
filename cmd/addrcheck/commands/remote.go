package commands

import (
	"context"
	"time"

	"handoff-address/internal/models"
	"handoff-address/internal/repositories"
	"handoff-address/internal/services"
	"handoff-address/pkg/places"

	"github.com/spf13/cobra"
)

const remoteTimeout = 30 * time.Second

func (o *options) service() (*services.AddressService, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, err
	}
	client := places.NewClient(places.Options{
		BaseURL: cfg.Places.BaseURL,
		APIKey:  cfg.Places.APIKey,
		Country: cfg.Places.Country,
		Types:   cfg.Places.Types,
		Timeout: cfg.Places.Timeout,
	})
	return services.NewAddressService(o.trans, client, repositories.NewNoopPlaceCache(), services.AddressServiceConfig{
		Country: cfg.Places.Country,
	}), nil
}

func suggestCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "suggest [query]",
		Short: "List autocomplete suggestions for a partial address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.service()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), remoteTimeout)
			defer cancel()

			res, err := svc.Suggest(ctx, args[0])
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), models.SuggestResponse{
				Suggestions:  res.Suggestions,
				FallbackMode: res.FallbackMode,
			})
		},
	}
}

func resolveCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve [place-id]",
		Short: "Fetch the place record for a suggestion and parse it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.service()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), remoteTimeout)
			defer cancel()

			addr, err := svc.Resolve(ctx, args[0], opts.strict())
			if err != nil {
				return err
			}
			return opts.report(cmd.OutOrStdout(), addr)
		},
	}
}
