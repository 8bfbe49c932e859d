package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/soonlabs/binance-api-key-audit/pkg/services/config"
)

type ProfilesCmd struct {
	credentialsPath string
	output          io.Writer
}

// NewProfilesCmd lists the profile names in the credentials file. Names
// only — key material is never printed.
func NewProfilesCmd(output io.Writer) *cobra.Command {
	pc := &ProfilesCmd{output: output}
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List credential profiles",
		RunE:  pc.run,
	}

	cmd.Flags().StringVar(&pc.credentialsPath, "credentials", "", "Path to the ini credentials file")

	return cmd
}

func (pc *ProfilesCmd) run(cmd *cobra.Command, _ []string) error {
	path := pc.credentialsPath
	if path == "" {
		path = config.DefaultCredentialsPath()
	}

	registry, err := config.NewRegistry(path)
	if err != nil {
		return err
	}

	profiles, err := registry.GetProfiles(cmd.Context())
	if err != nil {
		return err
	}

	for _, profile := range profiles {
		fmt.Fprintln(pc.output, profile)
	}
	return nil
}
