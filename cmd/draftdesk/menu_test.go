package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorewood/draftdesk/internal/output"
)

func TestMenuTrigger(t *testing.T) {
	tests := []struct {
		item string
		want string
	}{
		{"about", "{\"event\":\"tw-about\"}\n"},
		{"reset_layout", "{\"event\":\"tw-reset-layout\"}\n"},
		{"quit", ""},
	}

	for _, tt := range tests {
		t.Run(tt.item, func(t *testing.T) {
			isolateEnv(t)

			stdout, _, err := execute(t, "", "menu", "trigger", tt.item)
			if err != nil {
				t.Fatalf("menu trigger: %v", err)
			}
			if stdout != tt.want {
				t.Errorf("stdout = %q, want %q", stdout, tt.want)
			}
		})
	}
}

func TestMenuTrigger_Unknown(t *testing.T) {
	isolateEnv(t)

	_, stderr, err := execute(t, "", "menu", "trigger", "settings")
	if err == nil {
		t.Fatal("expected error for unknown item")
	}
	if code := output.GetExitCode(err); code != output.ExitUserError {
		t.Errorf("exit code = %d, want %d", code, output.ExitUserError)
	}
	if !strings.Contains(stderr, "unknown menu item") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestMenuList_JSON(t *testing.T) {
	isolateEnv(t)

	stdout, _, err := execute(t, "", "menu", "list", "--json")
	if err != nil {
		t.Fatalf("menu list: %v", err)
	}

	var result struct {
		Title string              `json:"title"`
		Items []map[string]string `json:"items"`
	}
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("output should be JSON: %v\n%s", err, stdout)
	}
	if result.Title != "ThreadWriter" {
		t.Errorf("title = %q", result.Title)
	}
	var ids []string
	for _, item := range result.Items {
		ids = append(ids, item["id"])
	}
	if got := strings.Join(ids, ","); got != "about,reset_layout,quit" {
		t.Errorf("items = %s", got)
	}
}

func TestMenuList_Human(t *testing.T) {
	isolateEnv(t)

	stdout, _, err := execute(t, "", "menu", "list")
	if err != nil {
		t.Fatalf("menu list: %v", err)
	}
	for _, want := range []string{"ThreadWriter", "about: About", "reset_layout: Reset layout", "quit: Quit"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout should contain %q: %q", want, stdout)
		}
	}
}

func TestMenu_ScriptedKeysWriteEvents(t *testing.T) {
	isolateEnv(t)
	events := filepath.Join(t.TempDir(), "events.jsonl")
	if err := os.WriteFile(events, []byte("{\"event\":\"earlier\"}\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	// Down to Reset layout, select it, then select About, then quit.
	if _, _, err := execute(t, "j\rk\rq", "menu", "--events", events); err != nil {
		t.Fatalf("menu: %v", err)
	}

	data, err := os.ReadFile(events)
	if err != nil {
		t.Fatal(err)
	}
	want := "{\"event\":\"earlier\"}\n{\"event\":\"tw-reset-layout\"}\n{\"event\":\"tw-about\"}\n"
	if string(data) != want {
		t.Errorf("events file = %q, want %q", data, want)
	}
}

func TestMenu_EventsFileUnwritable(t *testing.T) {
	isolateEnv(t)
	events := filepath.Join(t.TempDir(), "missing", "events.jsonl")

	_, _, err := execute(t, "q", "menu", "--events", events)
	if err == nil {
		t.Fatal("expected error for unwritable events file")
	}
	if code := output.GetExitCode(err); code != output.ExitSystemError {
		t.Errorf("exit code = %d, want %d", code, output.ExitSystemError)
	}
}
