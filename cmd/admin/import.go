package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/jeongjingoo/tech/internal/services"
)

func (cli *commandLine) importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Upsert schools from an .xlsx or .xls file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			f, err := os.Open(path)
			if err != nil {
				return errors.Wrap(err, "open sheet")
			}
			defer f.Close()

			res, err := services.NewImporter(cli.stores.Schools, cli.log).ImportFile(cmd.Context(), filepath.Base(path), f)
			if err != nil {
				return err
			}
			fmt.Fprintf(cli.out, "batch %s: %d added, %d updated, %d errors\n", res.BatchID, res.Added, res.Updated, res.Errors)
			return nil
		},
	}
}
