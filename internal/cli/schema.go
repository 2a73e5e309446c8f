package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vaughan-dsouza/goposts/internal/db"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the PostgreSQL DDL for the posts table",
	Long: `Print the CREATE TABLE statement the postgres store expects.

goposts never changes the database schema itself; pipe this into psql
(goposts schema | psql "$DATABASE_URL") before the first start.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprint(cmd.OutOrStdout(), db.Schema())
		return err
	},
}
