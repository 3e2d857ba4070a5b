package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/techteamdev9/Fleet-Manager/internal/api"
	"github.com/techteamdev9/Fleet-Manager/internal/config"
	"github.com/techteamdev9/Fleet-Manager/internal/models"
)

// clientFromConfig loads config and returns an API client bound to the
// configured server.
func clientFromConfig(configPath string) (*config.Config, *api.Client, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	client, err := api.New(cfg.Server.BaseURL, time.Duration(cfg.Server.TimeoutSeconds)*time.Second)
	if err != nil {
		return nil, nil, err
	}
	return cfg, client, nil
}

// login resolves credentials and establishes a session on the client. The
// username comes from the flag, then the config, then an interactive prompt;
// the password is always prompted, without echo when stdin is a terminal.
func login(cmd *cobra.Command, cfg *config.Config, client *api.Client, username string) (models.Session, error) {
	if username == "" {
		username = cfg.Username
	}
	if username == "" {
		fmt.Fprint(cmd.OutOrStdout(), "Username: ")
		line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil {
			return models.Session{}, fmt.Errorf("read username: %w", err)
		}
		username = strings.TrimSpace(line)
	}

	password, err := readPassword(cmd)
	if err != nil {
		return models.Session{}, err
	}

	session, err := client.Login(cmd.Context(), username, password)
	if err != nil {
		return models.Session{}, fmt.Errorf("login as %s: %w", username, err)
	}
	return session, nil
}

func readPassword(cmd *cobra.Command) (string, error) {
	fmt.Fprint(cmd.OutOrStdout(), "Password: ")

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		raw, err := term.ReadPassword(fd)
		fmt.Fprintln(cmd.OutOrStdout())
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return string(raw), nil
	}

	// Piped input, e.g. tests or scripts.
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
