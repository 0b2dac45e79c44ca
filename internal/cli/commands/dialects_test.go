package commands

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/curatorsigma/critic/internal/config"
)

func withConfig(cfg *config.Config) context.Context {
	return config.NewContext(context.Background(), cfg)
}

func TestNewDialectsCommand_ListsBuiltInDialects(t *testing.T) {
	cmd := NewDialectsCommand()
	cmd.SetContext(withConfig(&config.Config{}))
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	output := buf.String()
	for _, want := range []string{"atg", "anchor", "language", "example"} {
		if !strings.Contains(output, want) {
			t.Errorf("output should contain %q, got: %s", want, output)
		}
	}
}

func TestNewDialectsCommand_RestrictsToSeedFile(t *testing.T) {
	seedPath := writeSeedFile(t, "atg:\n  - example\nanchor:\n  - example\nlanguage:\n  - example\n")

	cmd := NewDialectsCommand()
	cmd.SetContext(withConfig(&config.Config{DialectsSeedFile: seedPath}))
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(buf.String(), "example") {
		t.Errorf("output should still list the seeded example dialect, got: %s", buf.String())
	}
}

func TestNewDialectsCommand_UnknownSeedNameFails(t *testing.T) {
	seedPath := writeSeedFile(t, "atg:\n  - nonexistent\n")

	cmd := NewDialectsCommand()
	cmd.SetContext(withConfig(&config.Config{DialectsSeedFile: seedPath}))
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))

	if err := cmd.Execute(); err == nil {
		t.Error("Execute() expected an error for an unknown seeded dialect name")
	}
}
