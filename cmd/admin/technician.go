package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jeongjingoo/tech/internal/models"
	"github.com/jeongjingoo/tech/internal/services"
)

var errEmptyPassword = errors.New("password must not be empty")

func (cli *commandLine) addTechnicianCmd() *cobra.Command {
	var tech models.Technician
	cmd := &cobra.Command{
		Use:   "add-technician",
		Short: "Register a technician; the password is prompted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pwd, err := cli.promptPassword("Enter password: ")
			if err != nil {
				return err
			}
			if strings.TrimSpace(pwd) == "" {
				return errEmptyPassword
			}
			if tech.Password, err = services.HashPassword(pwd); err != nil {
				return err
			}
			if err := cli.stores.Technicians.Insert(cmd.Context(), &tech); err != nil {
				return err
			}
			fmt.Fprintf(cli.out, "technician %s added (%s)\n", tech.LoginID, tech.ID.Hex())
			return nil
		},
	}
	cmd.Flags().StringVar(&tech.LoginID, "id", "", "login id")
	cmd.Flags().StringVar(&tech.Name, "name", "", "display name")
	cmd.Flags().StringVar(&tech.Team, "team", "", "team, e.g. 1팀")
	cmd.Flags().StringVar(&tech.PhoneNumber, "phone", "", "phone number")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

// hashPasswordsCmd rehashes technicians still stored with a plaintext password.
func (cli *commandLine) hashPasswordsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-passwords",
		Short: "Hash any plaintext technician passwords",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			techs, err := cli.stores.Technicians.List(ctx)
			if err != nil {
				return err
			}

			var n int
			for _, t := range techs {
				stored, err := cli.stores.Technicians.FindByLoginID(ctx, t.LoginID)
				if err != nil {
					return err
				}
				if stored.Password == "" || services.IsHashed(stored.Password) {
					continue
				}
				hash, err := services.HashPassword(stored.Password)
				if err != nil {
					return err
				}
				if err := cli.stores.Technicians.SetPassword(ctx, stored.ID, hash); err != nil {
					return err
				}
				cli.log.WithField("technician", stored.LoginID).Info("password hashed")
				n++
			}
			fmt.Fprintf(cli.out, "%d password(s) hashed\n", n)
			return nil
		},
	}
}
