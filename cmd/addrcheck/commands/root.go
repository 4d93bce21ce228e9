package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"handoff-address/internal/models"
	"handoff-address/internal/transformers"
	"handoff-address/pkg/config"
	"handoff-address/pkg/logger"

	"github.com/spf13/cobra"
)

// ErrInvalidAddress is returned with --fail-invalid when a parse reports defects.
var ErrInvalidAddress = errors.New("address has validation errors")

type options struct {
	lenient     bool
	failInvalid bool
	configPath  string
	verbose     bool

	trans transformers.AddressTransformer
}

func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{trans: transformers.NewAddressTransformer()}

	root := &cobra.Command{
		Use:           "addrcheck",
		Short:         "Normalize and validate US postal addresses",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := "ERROR"
			if opts.verbose {
				level = "DEBUG"
			}
			logger.InitLogger(cmd.ErrOrStderr(), level)
		},
	}

	root.PersistentFlags().BoolVar(&opts.lenient, "lenient", false, "only check for missing fields")
	root.PersistentFlags().BoolVar(&opts.failInvalid, "fail-invalid", false, "exit non-zero when the address is invalid")
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default $CONFIG_PATH or configs/config.yaml)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log debug output to stderr")

	root.AddCommand(
		parseCmd(opts),
		placeCmd(opts),
		suggestCmd(opts),
		resolveCmd(opts),
		tokenCmd(opts),
	)
	return root
}

func (o *options) strict() bool {
	return !o.lenient
}

func (o *options) loadConfig() (*config.Config, error) {
	path := o.configPath
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path == "" {
		path = "configs/config.yaml"
	}
	return config.LoadConfig(path)
}

// report prints addr and applies --fail-invalid.
func (o *options) report(w io.Writer, addr models.CanonicalAddress) error {
	if err := writeJSON(w, addr); err != nil {
		return err
	}
	if o.failInvalid && !addr.IsValid() {
		return ErrInvalidAddress
	}
	return nil
}

func writeJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
