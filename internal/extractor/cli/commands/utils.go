package commands

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	clierrors "github.com/spacerocks/neofeed/internal/extractor/cli/errors"
)

// NoArgs validates args and returns an error if there are any args.
func NoArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return nil
	}

	_ = cmd.Help()

	if cmd.HasSubCommands() {
		return clierrors.NewUsageError(errors.Errorf("unknown command: %q for %q", args[0], cmd.Name()))
	}

	return clierrors.NewUsageError(errors.Errorf("%q accepts no arguments", cmd.Name()))
}

// FlagErrorFunc processes errors of CLI flags.
func FlagErrorFunc(cmd *cobra.Command, err error) error {
	if err == nil {
		return nil
	}

	_ = cmd.Help()

	return clierrors.NewUsageError(err)
}

// ValidateFlag wraps validation failure of flag value into usage error.
func ValidateFlag(cmd *cobra.Command, name, value string, validate func(string) error) error {
	if !cmd.Flags().Changed(name) {
		return nil
	}

	if err := validate(value); err != nil {
		return FlagErrorFunc(cmd, errors.WithMessagef(err, "invalid value of --%s flag", name))
	}

	return nil
}
