package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spindlewrit/spindlewrit/internal/cli"
	"github.com/spindlewrit/spindlewrit/internal/config"
	"github.com/spindlewrit/spindlewrit/internal/extract"
)

func TestBuildExtractClient(t *testing.T) {
	tests := []struct {
		name        string
		offline     bool
		flagKey     string
		envKey      string
		wantOK      bool
		wantOffline bool
		wantOutput  string
	}{
		{
			name:        "offline ignores missing key",
			offline:     true,
			wantOK:      true,
			wantOffline: true,
			wantOutput:  "offline extraction client",
		},
		{
			name:    "flag key selects live client",
			flagKey: "key-from-flag",
			wantOK:  true,
		},
		{
			name:   "env key selects live client",
			envKey: "key-from-env",
			wantOK: true,
		},
		{
			name:       "no key fails",
			wantOK:     false,
			wantOutput: "GEMMA_API_KEY",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fromTaskOffline = tt.offline
			fromTaskAPIKey = tt.flagKey
			t.Setenv("GEMMA_API_KEY", tt.envKey)
			t.Setenv("TASKSTORE_URL", "")
			defer func() {
				fromTaskOffline = false
				fromTaskAPIKey = ""
			}()

			var buf bytes.Buffer
			cfg := config.Default()
			client, ok := buildExtractClient(cli.NewPrinter(&buf), &cfg)

			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v (output: %s)", ok, tt.wantOK, buf.String())
			}
			if tt.wantOK {
				_, isOffline := client.(*extract.OfflineClient)
				if isOffline != tt.wantOffline {
					t.Errorf("client = %T, wantOffline %v", client, tt.wantOffline)
				}
			}
			if tt.wantOutput != "" && !strings.Contains(buf.String(), tt.wantOutput) {
				t.Errorf("output %q does not contain %q", buf.String(), tt.wantOutput)
			}
		})
	}
}
