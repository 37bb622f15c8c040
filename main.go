// ABOUTME: Entry point for the kindred relationship CLI and TUI
// ABOUTME: Routes commands to the remote relationship-OS API client
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/kindredhq/kindred/api"
	"github.com/kindredhq/kindred/cli"
	"github.com/kindredhq/kindred/config"
	"github.com/kindredhq/kindred/engine"
	"github.com/kindredhq/kindred/session"
	"github.com/kindredhq/kindred/store"
	"github.com/kindredhq/kindred/tui"
)

const version = "0.2.0"

func main() {
	// Global flags
	showVersion := flag.Bool("version", false, "Show version and exit")
	debug := flag.Bool("debug", false, "Enable debug logging of API traffic")
	dataDir := flag.String("data-dir", "", "Local state directory (default: ~/.local/share/kindred/kv)")

	_ = flag.CommandLine.Parse(os.Args[1:])

	if *showVersion {
		fmt.Printf("kindred version %s\n", version)
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(0)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if *debug {
		cfg.Debug = true
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}
	cfg.InitLogger()

	kv, err := openKV(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open local state store")
	}
	defer kv.Close()

	sess := session.New(kv, nil)
	opts := []api.Option{api.WithTokenSource(sess.Token)}
	if cfg.Debug {
		opts = append(opts, api.WithDebugLogging(true))
	}
	client := api.New(cfg.APIBaseURL, opts...)
	sess.SetClient(client)

	app := &cli.App{
		Client:  client,
		Session: sess,
		Presets: engine.NewPresets(kv),
		Out:     os.Stdout,
	}

	command := args[0]
	commandArgs := args[1:]

	var cmdErr error
	switch command {
	case "auth":
		cmdErr = runAuth(app, commandArgs)
	case "contacts":
		cmdErr = runContacts(app, commandArgs)
	case "interactions":
		cmdErr = runInteractions(app, commandArgs)
	case "intros":
		cmdErr = runIntros(app, commandArgs)
	case "followups":
		cmdErr = runFollowups(app, commandArgs)
	case "analytics":
		cmdErr = runAnalytics(app, commandArgs)
	case "presets":
		cmdErr = runPresets(app, commandArgs)
	case "tui":
		cmdErr = tui.Run(client, sess)
	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}

	if cmdErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", cmdErr)
		os.Exit(1)
	}
}

func openKV(cfg *config.Config) (store.KV, error) {
	if cfg.DataDir != "" {
		return store.Open(cfg.DataDir)
	}
	return store.OpenDefault()
}

func runAuth(app *cli.App, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("auth requires a subcommand: login, register, logout, whoami")
	}
	switch args[0] {
	case "login":
		return cli.LoginCommand(app, args[1:])
	case "register":
		return cli.RegisterCommand(app, args[1:])
	case "logout":
		return cli.LogoutCommand(app, args[1:])
	case "whoami":
		return cli.WhoamiCommand(app, args[1:])
	default:
		return fmt.Errorf("unknown auth command: %s", args[0])
	}
}

func runContacts(app *cli.App, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("contacts requires a subcommand: list, get, add, update, delete, export")
	}
	switch args[0] {
	case "list":
		return cli.ListContactsCommand(app, args[1:])
	case "get":
		return cli.GetContactCommand(app, args[1:])
	case "add":
		return cli.AddContactCommand(app, args[1:])
	case "update":
		return cli.UpdateContactCommand(app, args[1:])
	case "delete":
		return cli.DeleteContactCommand(app, args[1:])
	case "export":
		return cli.ExportContactsCommand(app, args[1:])
	default:
		return fmt.Errorf("unknown contacts command: %s", args[0])
	}
}

func runInteractions(app *cli.App, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("interactions requires a subcommand: list, log")
	}
	switch args[0] {
	case "list":
		return cli.ListInteractionsCommand(app, args[1:])
	case "log":
		return cli.LogInteractionCommand(app, args[1:])
	default:
		return fmt.Errorf("unknown interactions command: %s", args[0])
	}
}

func runIntros(app *cli.App, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("intros requires a subcommand: list, suggested, request, update")
	}
	switch args[0] {
	case "list":
		return cli.ListIntrosCommand(app, args[1:])
	case "suggested":
		return cli.SuggestedIntrosCommand(app, args[1:])
	case "request":
		return cli.RequestIntroCommand(app, args[1:])
	case "update":
		return cli.UpdateIntroCommand(app, args[1:])
	default:
		return fmt.Errorf("unknown intros command: %s", args[0])
	}
}

func runFollowups(app *cli.App, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("followups requires a subcommand: list, actions")
	}
	switch args[0] {
	case "list":
		return cli.FollowupListCommand(app, args[1:])
	case "actions":
		return cli.ActionsCommand(app, args[1:])
	default:
		return fmt.Errorf("unknown followups command: %s", args[0])
	}
}

func runAnalytics(app *cli.App, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("analytics requires a subcommand: dashboard, at-risk")
	}
	switch args[0] {
	case "dashboard":
		return cli.DashboardCommand(app, args[1:])
	case "at-risk":
		return cli.AtRiskCommand(app, args[1:])
	default:
		return fmt.Errorf("unknown analytics command: %s", args[0])
	}
}

func runPresets(app *cli.App, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("presets requires a subcommand: list, save, delete")
	}
	switch args[0] {
	case "list":
		return cli.ListPresetsCommand(app, args[1:])
	case "save":
		return cli.SavePresetCommand(app, args[1:])
	case "delete":
		return cli.DeletePresetCommand(app, args[1:])
	default:
		return fmt.Errorf("unknown presets command: %s", args[0])
	}
}

func printUsage() {
	fmt.Printf(`kindred v%s - Relationship operating system client

USAGE:
  kindred [global flags] <command> <subcommand> [flags]

GLOBAL FLAGS:
  --version              Show version and exit
  --debug                Log API requests and responses
  --data-dir <path>      Local state directory (default: ~/.local/share/kindred/kv)

AUTH:
  kindred auth login --email <email> --password <pw>
  kindred auth register --email <email> --password <pw> --name <name>
  kindred auth logout
  kindred auth whoami

CONTACTS:
  kindred contacts list     List contacts
    --search <text>            Match name, email, company, tags, notes
    --min-strength <1-5>       Minimum relationship strength
    --sector <sector>          Exact sector membership
    --last-contact <bucket>    30, 60, 90, or 90+
    --sort <mode>              name (default), recent, strength
    --preset <index>           Apply a saved filter preset
    --page <n>                 Fetch a single server page

  kindred contacts get --id <id>     Contact detail with interaction history
  kindred contacts add               Create a contact (--first-name required)
  kindred contacts update --id <id>  Update fields; --archive / --unarchive
  kindred contacts delete --id <id>  Delete a contact
  kindred contacts export            Export filtered contacts
    --format <csv|json>        Output format (default: csv)
    --dir <path>               Output directory (default: .)

INTERACTIONS:
  kindred interactions list [--contact <id>]
  kindred interactions log --contact <id> --type <MEETING|CALL|EMAIL|MESSAGE|SOCIAL|EVENT|OTHER>
    --date <YYYY-MM-DD> --sentiment <POSITIVE|NEUTRAL|NEGATIVE> --notes <text>
    --topics <a,b,c> --action "text|owner|YYYY-MM-DD" (repeatable)

INTRODUCTIONS:
  kindred intros list                All introductions
  kindred intros suggested           Suggested pairings ranked by match score
  kindred intros request --source <id> --target <id> [--reason <text>] [--context <text>]
  kindred intros update --id <id> --status <PENDING|MADE|COMPLETED|DECLINED>

FOLLOW-UPS:
  kindred followups list [--urgent-only]
  kindred followups actions          Pending action items across interactions

ANALYTICS:
  kindred analytics dashboard
  kindred analytics at-risk

PRESETS:
  kindred presets list
  kindred presets save --name <name> [filter flags]
  kindred presets delete --index <n>

TUI:
  kindred tui                        Full-screen interactive interface

EXAMPLES:
  kindred auth login --email ada@example.com --password secret
  kindred contacts list --min-strength 4 --sort strength
  kindred contacts export --format csv --last-contact 90+
  kindred followups list --urgent-only

`, version)
}
