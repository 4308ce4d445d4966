package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tuncb/dfixxer/pkg/config"
)

func newInitConfigCommand() *cobra.Command {
	flags := runFlags{}

	cmd := &cobra.Command{
		Use:   "init-config <path>...",
		Short: "Write a commented default dfixxer.toml",
		Long: `init-config writes a fully commented dfixxer.toml, reflecting every
built-in default, to the given path. It refuses to overwrite an existing file.
--multi expands its argument the same way update/check do, but init-config
always writes a single template, so only the first resolved path is used.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runInitConfig(args, flags)
		},
	}

	addConfigFlag(cmd, &flags)
	cmd.Flags().Lookup("config").Usage = "accepted for CLI parity; init-config does not read a config"
	addMultiFlag(cmd, &flags)

	return cmd
}

func runInitConfig(args []string, flags runFlags) error {
	paths, err := expandPaths(args, flags.multi)
	if err != nil {
		return err
	}
	path := paths[0]

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists; remove it first to regenerate", path)
	}

	if err := os.WriteFile(path, []byte(config.DefaultTemplate()), 0o644); err != nil { //nolint:gosec // config files are not sensitive.
		return fmt.Errorf("write %s: %w", path, err)
	}

	fmt.Fprintf(os.Stdout, "Created default configuration file: %s\n", path)
	return nil
}
