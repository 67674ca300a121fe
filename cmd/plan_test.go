package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/stretchr/testify/assert"

	"github.com/giantswarm/pullsecret-sync/internal/reconciler"
)

func TestRenderPlan(t *testing.T) {
	text.DisableColors()
	defer text.EnableColors()

	entries := []reconciler.PlanEntry{
		{Namespace: "team-b", Registry: "reg.example.com", Outcome: reconciler.OutcomeSkipped},
		{Namespace: "team-a", Registry: "reg.example.com", Outcome: reconciler.OutcomeCreated, NeedsBinding: true},
		{Namespace: "team-a", Registry: "other.example.com", Outcome: reconciler.OutcomeUnchanged},
		{Namespace: "default", Registry: "reg.example.com", Outcome: reconciler.OutcomeUpdated},
		{Namespace: "broken", Registry: "reg.example.com", Err: errors.New("forbidden")},
	}

	var buf bytes.Buffer
	renderPlan(&buf, entries)
	// go-pretty upper-cases headers and footers.
	out := strings.ToLower(buf.String())

	for _, want := range []string{"namespace", "create", "add reference", "unchanged", "update", "skip", "forbidden", "2 change(s)", "1 error(s)"} {
		assert.Contains(t, out, want)
	}

	// Rows are sorted by namespace, then registry.
	order := []string{"broken", "default", "other.example.com", "team-b"}
	last := -1
	for _, s := range order {
		idx := strings.Index(out, s)
		assert.Greater(t, idx, last, "expected %q after previous rows", s)
		last = idx
	}
}

func TestPlanCells(t *testing.T) {
	text.DisableColors()
	defer text.EnableColors()

	tests := []struct {
		name        string
		entry       reconciler.PlanEntry
		wantSecret  string
		wantAccount string
	}{
		{"skip", reconciler.PlanEntry{Outcome: reconciler.OutcomeSkipped}, "skip", "-"},
		{"create", reconciler.PlanEntry{Outcome: reconciler.OutcomeCreated, NeedsBinding: true}, "create", "add reference"},
		{"unchanged bound", reconciler.PlanEntry{Outcome: reconciler.OutcomeUnchanged}, "unchanged", "ok"},
		{"update", reconciler.PlanEntry{Outcome: reconciler.OutcomeUpdated}, "update", "ok"},
		{"error", reconciler.PlanEntry{Err: errors.New("boom")}, "error", "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			secret, account := planCells(tt.entry)
			assert.Equal(t, tt.wantSecret, secret)
			assert.Equal(t, tt.wantAccount, account)
		})
	}
}

func TestWritePlan(t *testing.T) {
	entries := []reconciler.PlanEntry{
		{Namespace: "team-a", Registry: "reg.example.com", Outcome: reconciler.OutcomeCreated, NeedsBinding: true},
		{Namespace: "broken", Registry: "reg.example.com", Err: errors.New("forbidden")},
	}

	var js bytes.Buffer
	assert.NoError(t, writePlan(&js, entries, "json"))
	assert.Contains(t, js.String(), `"secret": "created"`)
	assert.Contains(t, js.String(), `"needsBinding": true`)
	assert.Contains(t, js.String(), `"error": "forbidden"`)
	assert.Less(t, strings.Index(js.String(), "broken"), strings.Index(js.String(), "team-a"))

	var ym bytes.Buffer
	assert.NoError(t, writePlan(&ym, entries, "yaml"))
	assert.Contains(t, ym.String(), "- error: forbidden")
	assert.Contains(t, ym.String(), "namespace: team-a")
}
