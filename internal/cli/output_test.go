package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/kshitizgarg19/payoff-builder/internal/config"
)

func newOutputForTest(t *testing.T, colorEnabled bool, jsonFlag bool) (*Output, *bytes.Buffer) {
	t.Helper()
	cfg := config.Default()
	cfg.UI.ColorEnabled = colorEnabled
	app := &App{Config: cfg}

	cmd := &cobra.Command{}
	cmd.Flags().Bool("json", jsonFlag, "")
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	return app.NewOutput(cmd), buf
}

func TestNewOutputNoColorOffTerminal(t *testing.T) {
	// Even with ui.color_enabled the writer is a buffer, not a terminal.
	output, buf := newOutputForTest(t, true, false)
	output.Success("done")
	if strings.Contains(buf.String(), "\033[") {
		t.Errorf("non-terminal output should carry no escape codes: %q", buf.String())
	}
	if strings.TrimSpace(buf.String()) != "done" {
		t.Errorf("got %q", buf.String())
	}
}

func TestNewOutputHonorsColorConfig(t *testing.T) {
	output, _ := newOutputForTest(t, false, false)
	if output.colorEnabled {
		t.Error("ui.color_enabled=false must disable color")
	}
}

func TestNewOutputJSONMode(t *testing.T) {
	output, buf := newOutputForTest(t, true, true)
	if !output.IsJSON() {
		t.Fatal("expected JSON mode")
	}
	if err := output.JSON(map[string]int{"n": 1}); err != nil {
		t.Fatalf("JSON: %v", err)
	}
	if !strings.Contains(buf.String(), `"n": 1`) {
		t.Errorf("got %q", buf.String())
	}
}

func TestIsTerminalNonFileWriter(t *testing.T) {
	if isTerminal(&bytes.Buffer{}) {
		t.Error("a buffer is not a terminal")
	}
}

func TestColoredOutputCarriesCodes(t *testing.T) {
	buf := &bytes.Buffer{}
	output := &Output{writer: buf, colorEnabled: true}
	output.Error("boom")
	if !strings.HasPrefix(buf.String(), ColorRed) {
		t.Errorf("expected red escape prefix, got %q", buf.String())
	}
	if got := output.FormatPnL(5); !strings.Contains(got, ColorGreen) {
		t.Errorf("positive P&L should be green: %q", got)
	}
}
