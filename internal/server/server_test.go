package server

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/aces-framework/aces-governance/internal/config"
	"github.com/aces-framework/aces-governance/internal/docs"
	"github.com/aces-framework/aces-governance/internal/govtest"
)

func newTestServerConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	return cfg
}

func call(t *testing.T, method string) string {
	t.Helper()
	root, err := docs.Open(govtest.NewGovernanceRepo(t))
	if err != nil {
		t.Fatalf("open root: %v", err)
	}
	s, err := New(root, newTestServerConfig(t), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	msg := json.RawMessage(`{"jsonrpc":"2.0","id":1,"method":"` + method + `"}`)
	resp := s.HandleMessage(context.Background(), msg)
	out, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal response: %v", err)
	}
	return string(out)
}

func TestNew_RegistersTools(t *testing.T) {
	out := call(t, "tools/list")

	for _, name := range []string{
		"list_adrs", "get_adr", "get_standard", "get_architecture",
		"search_governance", "get_template", "check_repo_compliance",
		"check_dependency_direction", "propose_adr", "check_standards_update_needed",
	} {
		if !strings.Contains(out, `"name":"`+name+`"`) {
			t.Errorf("tool %s not registered", name)
		}
	}
}

func TestNew_RegistersResources(t *testing.T) {
	out := call(t, "resources/list")

	for _, uri := range []string{"governance://standards", "governance://architecture", "governance://adrs"} {
		if !strings.Contains(out, uri) {
			t.Errorf("resource %s not registered", uri)
		}
	}
}

func TestNew_RegistersPrompt(t *testing.T) {
	if out := call(t, "prompts/list"); !strings.Contains(out, `"name":"governance-review"`) {
		t.Errorf("governance-review prompt not registered: %s", out)
	}
}

func TestServerInstructions_MentionSiblingLayout(t *testing.T) {
	if !strings.Contains(serverInstructions(), "sibling directories") {
		t.Error("instructions should describe the sibling-directory layout")
	}
}
