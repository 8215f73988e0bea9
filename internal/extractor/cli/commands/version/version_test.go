package version

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spacerocks/neofeed/internal/extractor/cli/options"
	"github.com/spacerocks/neofeed/internal/extractor/cli/streams"
)

func TestNewVersionCommand(t *testing.T) {
	out := new(bytes.Buffer)

	cliOpts := &options.CliOptions{}
	cliOpts.SetVersion("1.0.0")
	cliOpts.SetOut(streams.NewOut(out))

	cmd := NewVersionCommand(cliOpts)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	require.Equal(t, "neofeed version 1.0.0", strings.TrimSpace(out.String()))
}

func TestVersionCommandRejectsArgs(t *testing.T) {
	out := new(bytes.Buffer)

	cliOpts := &options.CliOptions{}
	cliOpts.SetOut(streams.NewOut(out))

	cmd := NewVersionCommand(cliOpts)
	cmd.SetArgs([]string{"extra"})
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	require.ErrorContains(t, cmd.Execute(), `"version" accepts no arguments`)
}
