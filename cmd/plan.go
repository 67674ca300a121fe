package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/giantswarm/pullsecret-sync/internal/app"
	"github.com/giantswarm/pullsecret-sync/internal/reconciler"
)

var (
	planFlags  appFlags
	planOutput string
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show what a sync pass would change, without changing anything",
	Long: `Reads the central credential secret and all active namespaces and prints,
for every (namespace, registry) pair, what serve would do:

  SECRET          skip, create, unchanged or update
  SERVICEACCOUNT  whether the reference still has to be added

Only get and list requests are sent to the cluster.`,
	Args: cobra.NoArgs,
	RunE: runPlan,
}

func runPlan(cmd *cobra.Command, args []string) error {
	cfg := planFlags.config()
	// Keep logs out of the table unless asked for.
	if !planFlags.debug {
		cfg.LogOutput = io.Discard
	} else {
		cfg.LogOutput = cmd.ErrOrStderr()
	}

	application, err := app.NewApplication(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	entries, err := application.Plan(ctx)
	if err != nil {
		return err
	}

	switch planOutput {
	case "", "table":
		renderPlan(cmd.OutOrStdout(), entries)
		return nil
	case "json", "yaml":
		return writePlan(cmd.OutOrStdout(), entries, planOutput)
	default:
		return fmt.Errorf("unsupported output format %q (want table, json or yaml)", planOutput)
	}
}

// planRow is the machine readable form of a reconciler.PlanEntry.
type planRow struct {
	Namespace    string `json:"namespace"`
	Registry     string `json:"registry"`
	Secret       string `json:"secret,omitempty"`
	NeedsBinding bool   `json:"needsBinding"`
	Error        string `json:"error,omitempty"`
}

// writePlan prints the plan as JSON or YAML.
func writePlan(w io.Writer, entries []reconciler.PlanEntry, format string) error {
	sortPlan(entries)

	rows := make([]planRow, 0, len(entries))
	for _, e := range entries {
		row := planRow{
			Namespace:    e.Namespace,
			Registry:     e.Registry,
			Secret:       strings.ToLower(string(e.Outcome)),
			NeedsBinding: e.NeedsBinding,
		}
		if e.Err != nil {
			row.Error = e.Err.Error()
		}
		rows = append(rows, row)
	}

	var (
		data []byte
		err  error
	)
	if format == "yaml" {
		data, err = yaml.Marshal(rows)
	} else {
		data, err = json.MarshalIndent(rows, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return fmt.Errorf("failed to encode plan: %w", err)
	}
	_, err = w.Write(data)
	return err
}

func sortPlan(entries []reconciler.PlanEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Namespace != entries[j].Namespace {
			return entries[i].Namespace < entries[j].Namespace
		}
		return entries[i].Registry < entries[j].Registry
	})
}

// renderPlan prints the plan as a table sorted by namespace and registry.
func renderPlan(w io.Writer, entries []reconciler.PlanEntry) {
	sortPlan(entries)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{
		text.FgHiCyan.Sprint("NAMESPACE"),
		text.FgHiCyan.Sprint("REGISTRY"),
		text.FgHiCyan.Sprint("SECRET"),
		text.FgHiCyan.Sprint("SERVICEACCOUNT"),
	})

	changes, failures := 0, 0
	for _, e := range entries {
		secret, account := planCells(e)
		if e.Err != nil {
			failures++
		} else if e.Outcome.Written() || e.NeedsBinding {
			changes++
		}
		t.AppendRow(table.Row{e.Namespace, e.Registry, secret, account})
	}

	t.AppendFooter(table.Row{"", "", fmt.Sprintf("%d change(s)", changes), fmt.Sprintf("%d error(s)", failures)})
	t.Render()
}

func planCells(e reconciler.PlanEntry) (secret, account string) {
	if e.Err != nil {
		return text.FgRed.Sprint("error"), text.FgRed.Sprint(e.Err.Error())
	}

	switch e.Outcome {
	case reconciler.OutcomeSkipped:
		return text.FgHiBlack.Sprint("skip"), text.FgHiBlack.Sprint("-")
	case reconciler.OutcomeCreated:
		secret = text.FgGreen.Sprint("create")
	case reconciler.OutcomeUpdated:
		secret = text.FgYellow.Sprint("update")
	default:
		secret = "unchanged"
	}

	if e.NeedsBinding {
		return secret, text.FgGreen.Sprint("add reference")
	}
	return secret, "ok"
}

func init() {
	rootCmd.AddCommand(planCmd)
	planFlags.register(planCmd)
	planCmd.Flags().StringVarP(&planOutput, "output", "o", "table", "Output format: table, json or yaml")
}
