package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jeongjingoo/tech/internal/repository"
)

var readPasswordFunc = term.ReadPassword // mockable

type commandLine struct {
	stores repository.Stores
	log    logrus.FieldLogger
	out    io.Writer

	// open connects the stores; nil when they are preset.
	open func(ctx context.Context) (func(), error)
	// ensureIndexes is nil for backends without indexes.
	ensureIndexes func(ctx context.Context) error
}

func (cli *commandLine) rootCmd() *cobra.Command {
	var closeFn func()
	root := &cobra.Command{
		Use:          "admin",
		Short:        "TechCenter maintenance commands",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cli.open == nil {
				return nil
			}
			fn, err := cli.open(cmd.Context())
			if err != nil {
				return err
			}
			closeFn = fn
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if closeFn != nil {
				closeFn()
			}
		},
	}
	root.SetOut(cli.out)
	root.AddCommand(
		cli.ensureIndexesCmd(),
		cli.addTechnicianCmd(),
		cli.hashPasswordsCmd(),
		cli.importCmd(),
	)
	return root
}

func (cli *commandLine) ensureIndexesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ensure-indexes",
		Short: "Create the collection indexes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cli.ensureIndexes == nil {
				fmt.Fprintln(cli.out, "storage backend has no indexes")
				return nil
			}
			if err := cli.ensureIndexes(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cli.out, "indexes ensured")
			return nil
		},
	}
}

// promptPassword reads a password without echoing it.
func (cli *commandLine) promptPassword(label string) (string, error) {
	fmt.Fprint(cli.out, label)
	pwd, err := readPasswordFunc(int(os.Stdin.Fd()))
	fmt.Fprintln(cli.out)
	if err != nil {
		return "", err
	}
	return string(pwd), nil
}
