package main

import (
	"testing"
)

func TestCommandStructure(t *testing.T) {
	// Test that all commands are properly registered
	if rootCmd == nil {
		t.Error("rootCmd should not be nil")
	}

	subcommands := rootCmd.Commands()
	expectedCommands := []string{"install", "uninstall", "status", "doctor", "config", "version"}
	foundCommands := make(map[string]bool)

	for _, cmd := range subcommands {
		foundCommands[cmd.Name()] = true
	}

	for _, expected := range expectedCommands {
		if !foundCommands[expected] {
			t.Errorf("Expected command '%s' not found in rootCmd", expected)
		}
	}
}

func TestConfigSubcommands(t *testing.T) {
	if configCmd == nil {
		t.Error("configCmd should not be nil")
	}

	subcommands := configCmd.Commands()
	foundValidate := false

	for _, cmd := range subcommands {
		if cmd.Name() == "validate" {
			foundValidate = true
			break
		}
	}

	if !foundValidate {
		t.Error("Expected 'validate' subcommand not found in configCmd")
	}
}

func TestInstallCmdFlags(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		wantDryRun  bool
		wantEnvFile string
	}{
		{
			name:        "no flags",
			args:        []string{},
			wantDryRun:  false,
			wantEnvFile: "",
		},
		{
			name:        "with dry-run flag",
			args:        []string{"--dry-run"},
			wantDryRun:  true,
			wantEnvFile: "",
		},
		{
			name:        "with env-file flag",
			args:        []string{"--env-file", "/etc/reviewcron.env"},
			wantDryRun:  false,
			wantEnvFile: "/etc/reviewcron.env",
		},
		{
			name:        "with both flags",
			args:        []string{"--dry-run", "--env-file", "deploy.env"},
			wantDryRun:  true,
			wantEnvFile: "deploy.env",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Reset flags
			installDryRun = false
			installEnvFile = ""

			installCmd.SetArgs(tt.args)
			_ = installCmd.ParseFlags(tt.args)

			if installDryRun != tt.wantDryRun {
				t.Errorf("installDryRun = %v, want %v", installDryRun, tt.wantDryRun)
			}
			if installEnvFile != tt.wantEnvFile {
				t.Errorf("installEnvFile = %v, want %v", installEnvFile, tt.wantEnvFile)
			}
		})
	}
}

func TestStatusCmdFlags(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		wantOutput  string
		wantHistory int
	}{
		{
			name:        "defaults",
			args:        []string{},
			wantOutput:  "text",
			wantHistory: 5,
		},
		{
			name:        "json output",
			args:        []string{"--output", "json"},
			wantOutput:  "json",
			wantHistory: 5,
		},
		{
			name:        "short output flag",
			args:        []string{"-o", "yaml"},
			wantOutput:  "yaml",
			wantHistory: 5,
		},
		{
			name:        "history disabled",
			args:        []string{"--history", "0"},
			wantOutput:  "text",
			wantHistory: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Reset flags
			statusOutput = "text"
			statusHistory = 5

			statusCmd.SetArgs(tt.args)
			_ = statusCmd.ParseFlags(tt.args)

			if statusOutput != tt.wantOutput {
				t.Errorf("statusOutput = %v, want %v", statusOutput, tt.wantOutput)
			}
			if statusHistory != tt.wantHistory {
				t.Errorf("statusHistory = %v, want %v", statusHistory, tt.wantHistory)
			}
		})
	}
}
