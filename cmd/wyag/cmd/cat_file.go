package cmd

import (
	"github.com/bivsbon/wyag"
	"github.com/spf13/cobra"
)

var catFileCmd = &cobra.Command{
	Use:       "cat-file <type> <object>",
	Short:     "Provide content of repository object",
	Long:      "Write the raw payload of an object to standard output. type is one of commit, tree, tag or blob.",
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{"commit", "tree", "tag", "blob"},
	RunE:      runCatFile,
}

func init() {
	rootCmd.AddCommand(catFileCmd)
}

func runCatFile(cmd *cobra.Command, args []string) error {
	kind, err := wyag.ParseKind(args[0])
	if err != nil {
		return err
	}

	opts, err := repoOptions()
	if err != nil {
		return err
	}
	repo, err := wyag.Locate(".", true, opts...)
	if err != nil {
		return err
	}

	data, err := wyag.CatFile(repo, args[1], kind)
	if err != nil {
		return err
	}

	_, err = cmd.OutOrStdout().Write(data)
	return err
}
