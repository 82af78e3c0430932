package cmd

import (
	"fmt"
	"os"

	"github.com/bivsbon/wyag"
	"github.com/sourcegraph/conc/pool"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var hashObjectCmd = &cobra.Command{
	Use:   "hash-object [-t <type>] [-w] <path>...",
	Short: "Compute object id and optionally create an object from a file",
	Long: "Compute the identifier of each file's content and, with -w, write it into the object database. " +
		"Identifiers are printed one per line in argument order.",
	Args: cobra.MinimumNArgs(1),
	RunE: runHashObject,
}

func init() {
	rootCmd.AddCommand(hashObjectCmd)

	hashObjectCmd.Flags().StringP("type", "t", string(wyag.KindBlob), "object type: commit, tree, tag or blob")
	hashObjectCmd.Flags().BoolP("write", "w", false, "actually write the object into the database")
	hashObjectCmd.Flags().IntP("jobs", "j", 0, "number of files hashed in parallel (default 4)")

	viper.BindPFlag(keyJobs, hashObjectCmd.Flags().Lookup("jobs"))
}

func runHashObject(cmd *cobra.Command, args []string) error {
	typ, _ := cmd.Flags().GetString("type")
	write, _ := cmd.Flags().GetBool("write")

	kind, err := wyag.ParseKind(typ)
	if err != nil {
		return err
	}

	var repo *wyag.Repository
	if write {
		opts, err := repoOptions()
		if err != nil {
			return err
		}
		if repo, err = wyag.Locate(".", true, opts...); err != nil {
			return err
		}
	}

	jobs := viper.GetInt(keyJobs)
	if jobs < 1 {
		jobs = 1
	}

	ids := make([]string, len(args))
	p := pool.New().WithErrors().WithMaxGoroutines(jobs)
	for i, path := range args {
		p.Go(func() error {
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			id, err := wyag.HashObject(repo, kind, data)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			ids[i] = id
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return err
	}

	for _, id := range ids {
		fmt.Fprintln(cmd.OutOrStdout(), id)
	}
	return nil
}
