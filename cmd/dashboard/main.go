package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/mohan-dev-portfolio/Nebula-Saas-Dashboard/internal/config"
	"github.com/mohan-dev-portfolio/Nebula-Saas-Dashboard/internal/console"
	"github.com/mohan-dev-portfolio/Nebula-Saas-Dashboard/internal/dispatch"
	"github.com/mohan-dev-portfolio/Nebula-Saas-Dashboard/internal/logger"
	"github.com/mohan-dev-portfolio/Nebula-Saas-Dashboard/internal/prefs"
	"github.com/mohan-dev-portfolio/Nebula-Saas-Dashboard/internal/repository"
	"github.com/mohan-dev-portfolio/Nebula-Saas-Dashboard/internal/service"
	"github.com/mohan-dev-portfolio/Nebula-Saas-Dashboard/internal/view"
)

func main() {
	dotenvErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading config: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(cfg.LogLevel)
	if dotenvErr != nil {
		log.Warn().Msg("no .env file found")
	}

	var prefStore prefs.Store
	sqliteStore, err := prefs.Open(cfg.PrefsPath)
	if err != nil {
		log.Warn().Err(err).Msg("preference db unavailable, theme will not persist")
		prefStore = &prefs.Memory{}
	} else {
		defer sqliteStore.Close()
		prefStore = sqliteStore
	}

	store := repository.New()
	if cfg.SeedDemoData {
		store = repository.NewSeeded()
	}
	if theme, ok, err := prefStore.Theme(); err != nil {
		log.Warn().Err(err).Msg("could not read persisted theme")
	} else if ok {
		store.SetTheme(theme)
	}

	out := os.Stdout
	registry := view.NewRegistry(log)
	view.Bind(registry, store, cfg.RecentUsersLimit, console.NewRenderer(out))

	users := service.NewUserService(store, registry, log)
	billing := service.NewBillingService(store, registry, log)
	charts := service.NewChartService(store, registry, log)
	settings := service.NewSettingsService(store, registry, prefStore, log)

	d := dispatch.New(store, users, billing, charts, settings, registry,
		console.NewNotifier(out), cfg.RecentUsersLimit, log)

	registry.RenderAll()
	runShell(d, out)
}

// runShell reads commands from stdin and feeds them to the dispatcher,
// standing in for the browser's event handlers.
func runShell(d *dispatch.Dispatcher, out *os.File) {
	fmt.Fprintln(out, "\ncommands: search, filter, add, edit, delete, plan, period, theme, page, export, cancel, quit")
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Fprint(out, "> ")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "quit" || line == "exit" {
			return
		}
		if line != "" {
			handleCommand(d, out, line)
		}
		fmt.Fprint(out, "> ")
	}
}

func handleCommand(d *dispatch.Dispatcher, out *os.File, line string) {
	cmd, rest, _ := strings.Cut(line, " ")
	switch cmd {
	case "search":
		d.Dispatch(dispatch.Event{Kind: dispatch.EventSearch, Payload: dispatch.SearchPayload{Term: rest}})
	case "filter":
		status, plan, _ := strings.Cut(rest, " ")
		d.Dispatch(dispatch.Event{Kind: dispatch.EventFilter, Payload: dispatch.FilterPayload{Status: status, Plan: plan}})
	case "add":
		// add <name>;<email>;<plan>
		parts := strings.SplitN(rest, ";", 3)
		p := dispatch.AddUserPayload{}
		if len(parts) > 0 {
			p.Name = strings.TrimSpace(parts[0])
		}
		if len(parts) > 1 {
			p.Email = strings.TrimSpace(parts[1])
		}
		if len(parts) > 2 {
			p.Plan = strings.TrimSpace(parts[2])
		}
		d.Dispatch(dispatch.Event{Kind: dispatch.EventAddUser, Payload: p})
	case "edit":
		// edit <id> field=value;field=value
		id, fields, _ := strings.Cut(rest, " ")
		p := dispatch.EditUserPayload{ID: id}
		for _, pair := range strings.Split(fields, ";") {
			key, value, ok := strings.Cut(pair, "=")
			if !ok {
				continue
			}
			value = strings.TrimSpace(value)
			v := value
			switch strings.TrimSpace(key) {
			case "name":
				p.Name = &v
			case "email":
				p.Email = &v
			case "status":
				p.Status = &v
			case "plan":
				p.Plan = &v
			}
		}
		d.Dispatch(dispatch.Event{Kind: dispatch.EventEditUser, Payload: p})
	case "delete":
		d.Dispatch(dispatch.Event{Kind: dispatch.EventDeleteUser, Payload: dispatch.DeleteUserPayload{ID: rest}})
	case "plan":
		d.Dispatch(dispatch.Event{Kind: dispatch.EventChangePlan, Payload: dispatch.ChangePlanPayload{Tier: rest}})
	case "period":
		chart, period, _ := strings.Cut(rest, " ")
		d.Dispatch(dispatch.Event{Kind: dispatch.EventSetChartPeriod, Payload: dispatch.ChartPeriodPayload{Chart: chart, Period: period}})
	case "theme":
		d.Dispatch(dispatch.Event{Kind: dispatch.EventSetTheme, Payload: dispatch.ThemePayload{Mode: rest}})
	case "page":
		d.Dispatch(dispatch.Event{Kind: dispatch.EventSetActivePage, Payload: dispatch.PagePayload{Page: rest}})
	case "export":
		d.Dispatch(dispatch.Event{Kind: dispatch.EventExportUsers, Payload: dispatch.ExportUsersPayload{To: out}})
	case "cancel":
		d.Dispatch(dispatch.Event{Kind: dispatch.EventCancelSubscription, Payload: dispatch.CancelSubscriptionPayload{Reason: rest}})
	default:
		fmt.Fprintf(out, "unknown command %q\n", cmd)
	}
}
