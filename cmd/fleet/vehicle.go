package main

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/techteamdev9/Fleet-Manager/internal/catalog"
	"github.com/techteamdev9/Fleet-Manager/internal/models"
)

func newVehicleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vehicle",
		Short: "Vehicle management commands",
	}

	cmd.AddCommand(newVehicleListCmd())
	cmd.AddCommand(newVehicleAddCmd())
	cmd.AddCommand(newVehicleUpdateCmd())
	cmd.AddCommand(newVehicleDeleteCmd())
	cmd.AddCommand(newVehicleHistoryCmd())
	cmd.AddCommand(newVehicleStatusesCmd())
	return cmd
}

func newVehicleListCmd() *cobra.Command {
	var (
		configPath string
		username   string
		search     string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List vehicles",
		Long:  "Lists vehicles matching the optional search term. Filtering happens on the server.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVehicleList(cmd, configPath, username, search)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "fleet.yaml", "path to Fleet Manager config file")
	cmd.Flags().StringVarP(&username, "username", "u", "", "login username (defaults to config)")
	cmd.Flags().StringVarP(&search, "search", "s", "", "search term for license, tool, or status")
	return cmd
}

func runVehicleList(cmd *cobra.Command, configPath, username, search string) error {
	cfg, client, err := clientFromConfig(configPath)
	if err != nil {
		return err
	}
	if _, err := login(cmd, cfg, client, username); err != nil {
		return err
	}

	vehicles, err := client.Vehicles(cmd.Context(), strings.TrimSpace(search))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(vehicles) == 0 {
		fmt.Fprintln(out, "No vehicles found.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tLICENSE\tTOOL\tSTATUS")
	for _, v := range vehicles {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", v.ID, v.LicenseNumber, v.ToolCode, v.Status)
	}
	w.Flush()
	return nil
}

func newVehicleAddCmd() *cobra.Command {
	var (
		configPath string
		username   string
		license    string
		tool       string
		status     string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a vehicle",
		Long:  "Creates a vehicle. Requires an admin login; the server enforces the same rule.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !catalog.Contains(status) {
				return fmt.Errorf("unknown status %q; run 'fleet vehicle statuses' for the list", status)
			}
			return runVehicleAdd(cmd, configPath, username, models.VehiclePayload{
				LicenseNumber: strings.TrimSpace(license),
				ToolCode:      strings.TrimSpace(tool),
				Status:        status,
			})
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "fleet.yaml", "path to Fleet Manager config file")
	cmd.Flags().StringVarP(&username, "username", "u", "", "login username (defaults to config)")
	cmd.Flags().StringVar(&license, "license", "", "license number (required)")
	cmd.Flags().StringVar(&tool, "tool", "", "tool code (required)")
	cmd.Flags().StringVar(&status, "status", catalog.Default(), "vehicle status")
	cmd.MarkFlagRequired("license")
	cmd.MarkFlagRequired("tool")
	return cmd
}

func runVehicleAdd(cmd *cobra.Command, configPath, username string, payload models.VehiclePayload) error {
	cfg, client, err := clientFromConfig(configPath)
	if err != nil {
		return err
	}
	if _, err := login(cmd, cfg, client, username); err != nil {
		return err
	}

	v, err := client.CreateVehicle(cmd.Context(), payload)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Added vehicle %d (%s)\n", v.ID, v.LicenseNumber)
	return nil
}

func newVehicleUpdateCmd() *cobra.Command {
	var (
		configPath string
		username   string
		license    string
		tool       string
		status     string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a vehicle",
		Long:  "Sends a full replacement of the vehicle's license, tool code, and status.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid vehicle id %q", args[0])
			}
			if !catalog.Contains(status) {
				return fmt.Errorf("unknown status %q; run 'fleet vehicle statuses' for the list", status)
			}
			return runVehicleUpdate(cmd, configPath, username, id, models.VehiclePayload{
				LicenseNumber: license,
				ToolCode:      tool,
				Status:        status,
			})
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "fleet.yaml", "path to Fleet Manager config file")
	cmd.Flags().StringVarP(&username, "username", "u", "", "login username (defaults to config)")
	cmd.Flags().StringVar(&license, "license", "", "license number (required)")
	cmd.Flags().StringVar(&tool, "tool", "", "tool code (required)")
	cmd.Flags().StringVar(&status, "status", catalog.Default(), "vehicle status")
	cmd.MarkFlagRequired("license")
	cmd.MarkFlagRequired("tool")
	return cmd
}

func runVehicleUpdate(cmd *cobra.Command, configPath, username string, id int, payload models.VehiclePayload) error {
	cfg, client, err := clientFromConfig(configPath)
	if err != nil {
		return err
	}
	if _, err := login(cmd, cfg, client, username); err != nil {
		return err
	}

	if err := client.UpdateVehicle(cmd.Context(), id, payload); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Updated vehicle %d\n", id)
	return nil
}

func newVehicleDeleteCmd() *cobra.Command {
	var (
		configPath string
		username   string
		yes        bool
	)

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a vehicle",
		Long:  "Deletes a vehicle after confirmation. Use --yes to skip the prompt.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid vehicle id %q", args[0])
			}
			return runVehicleDelete(cmd, configPath, username, id, yes)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "fleet.yaml", "path to Fleet Manager config file")
	cmd.Flags().StringVarP(&username, "username", "u", "", "login username (defaults to config)")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

func runVehicleDelete(cmd *cobra.Command, configPath, username string, id int, yes bool) error {
	cfg, client, err := clientFromConfig(configPath)
	if err != nil {
		return err
	}
	if _, err := login(cmd, cfg, client, username); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !yes {
		fmt.Fprintf(out, "Delete vehicle %d? [y/N]: ", id)
		line, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		answer := strings.ToLower(strings.TrimSpace(line))
		if answer != "y" && answer != "yes" {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}
	}

	if err := client.DeleteVehicle(cmd.Context(), id); err != nil {
		return err
	}

	fmt.Fprintf(out, "Deleted vehicle %d\n", id)
	return nil
}

func newVehicleHistoryCmd() *cobra.Command {
	var (
		configPath string
		username   string
	)

	cmd := &cobra.Command{
		Use:   "history <id>",
		Short: "Show a vehicle's status history",
		Long:  "Prints the vehicle's status log, most recent first.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid vehicle id %q", args[0])
			}
			return runVehicleHistory(cmd, configPath, username, id)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "fleet.yaml", "path to Fleet Manager config file")
	cmd.Flags().StringVarP(&username, "username", "u", "", "login username (defaults to config)")
	return cmd
}

func runVehicleHistory(cmd *cobra.Command, configPath, username string, id int) error {
	cfg, client, err := clientFromConfig(configPath)
	if err != nil {
		return err
	}
	if _, err := login(cmd, cfg, client, username); err != nil {
		return err
	}

	entries, err := client.History(cmd.Context(), id)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(entries) == 0 {
		fmt.Fprintln(out, "No history for this vehicle.")
		return nil
	}

	models.SortHistoryDesc(entries)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TIMESTAMP\tSTATUS")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\n", e.Timestamp, e.Status)
	}
	w.Flush()
	return nil
}

func newVehicleStatusesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "statuses",
		Short: "List the known vehicle statuses",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			for _, status := range catalog.Statuses {
				fmt.Fprintln(out, status)
			}
		},
	}
}
