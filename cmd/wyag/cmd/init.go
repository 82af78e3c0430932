package cmd

import (
	"fmt"

	"github.com/bivsbon/wyag"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var initCmd = &cobra.Command{
	Use:   "init [directory]",
	Short: "Initialize a new empty repository",
	Long:  "Create the metadata directory, default configuration and empty object database of a new repository.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	path := "."
	if len(args) > 0 {
		path = args[0]
	}

	opts, err := repoOptions()
	if err != nil {
		return err
	}
	opts = append(opts, wyag.WithDefaultBranch(viper.GetString(keyDefaultBranch)))

	repo, err := wyag.Initialize(path, opts...)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized empty repository in %s\n", repo.GitDir())
	return nil
}
