package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// runRegister implements the "register" subcommand: it writes (or updates) an
// .mcp.json entry pointing at this binary so MCP clients can launch the
// server. Any args after "--" are forwarded to the server on startup.
//
//	librarian-mcp register [directory] [-- server args...]
func runRegister(args []string) {
	directory := "."
	var serverArgs []string
	for i, arg := range args {
		if arg == "--" {
			serverArgs = args[i+1:]
			break
		}
		if i == 0 {
			directory = arg
		}
	}

	binaryPath, err := os.Executable()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error detecting binary path: %v\n", err)
		os.Exit(1)
	}
	if resolved, err := filepath.EvalSymlinks(binaryPath); err == nil {
		binaryPath = resolved
	}

	absDir, err := filepath.Abs(directory)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving directory %s: %v\n", directory, err)
		os.Exit(1)
	}
	configPath := filepath.Join(absDir, ".mcp.json")

	if err := writeServerEntry(configPath, binaryPath, serverArgs); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing config: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Registered \"librarian\" in %s\n", configPath)
}

// writeServerEntry merges the server entry into an existing .mcp.json, or
// creates the file if absent.
func writeServerEntry(configPath string, binaryPath string, serverArgs []string) error {
	config := map[string]any{}
	if data, err := os.ReadFile(configPath); err == nil {
		if err := json.Unmarshal(data, &config); err != nil {
			return fmt.Errorf("parsing existing config %s: %w", configPath, err)
		}
	}

	servers, ok := config["mcpServers"].(map[string]any)
	if !ok {
		servers = map[string]any{}
		config["mcpServers"] = servers
	}
	servers["librarian"] = map[string]any{
		"command": binaryPath,
		"args":    serverArgs,
	}

	output, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	output = append(output, '\n')

	if err := os.WriteFile(configPath, output, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", configPath, err)
	}
	return nil
}
