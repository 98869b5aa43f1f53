package main

import "testing"

func TestResolveModelDirFlagWins(t *testing.T) {
	cfg := fileConfig{ModelDir: "/from/config"}
	if got := resolveModelDir("/from/flag", cfg); got != "/from/flag" {
		t.Fatalf("resolveModelDir = %q, want /from/flag", got)
	}
}

func TestResolveModelDirFallsBackToConfig(t *testing.T) {
	cfg := fileConfig{ModelDir: "/from/config"}
	if got := resolveModelDir("", cfg); got != "/from/config" {
		t.Fatalf("resolveModelDir = %q, want /from/config", got)
	}
}
