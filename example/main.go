// FILE: lixenwraith/settings/example/main.go
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/lixenwraith/settings"
)

// DemoConfig is the typed view of the demo settings.
type DemoConfig struct {
	Token   string `setting:"token"`
	Prefix  string `setting:"prefix"`
	Verbose int    `setting:"verbose"`
	Color   bool   `setting:"color"`
}

// DemoDefaults supplies the mapping layer.
type DemoDefaults struct {
	Prefix string `setting:"prefix"`
	Color  bool   `setting:"color"`
}

const appName = "demo app"

func main() {
	// =========================================================================
	// PART 1: INITIAL SETUP
	// Write an rc file in a scratch directory and point the loader at it.
	// =========================================================================
	log.Println("---")
	log.Println("➡️  PART 1: Creating rc file...")

	dir, err := os.MkdirTemp("", "settings-demo")
	if err != nil {
		log.Fatalf("❌ Failed to create scratch directory: %v", err)
	}
	rcPath := filepath.Join(dir, settings.ConfigFileName(settings.DeriveName(appName)))

	defer func() {
		log.Println("---")
		log.Println("🧹 Cleaning up...")
		os.RemoveAll(dir)
		os.Unsetenv("DEMO_APP_PREFIX")
	}()

	rc := "token from-file\nprefix ?\nverbose\n"
	if err := os.WriteFile(rcPath, []byte(rc), 0600); err != nil {
		log.Fatalf("❌ Failed to write rc file: %v", err)
	}
	log.Printf("✅ Wrote %s", rcPath)

	// =========================================================================
	// PART 2: ALL FIVE SOURCES
	// Lowest priority first: file, mapping, environment, string, tokens.
	// =========================================================================
	log.Println("---")
	log.Println("➡️  PART 2: Resolving five layered sources...")

	os.Setenv("DEMO_APP_PREFIX", "$")
	log.Println("   (Set environment variable DEMO_APP_PREFIX=$)")

	defaults, err := settings.MappingFromStruct(DemoDefaults{Prefix: "!", Color: true})
	if err != nil {
		log.Fatalf("❌ Failed to build mapping: %v", err)
	}

	loader, err := settings.NewBuilder().
		WithName(appName).
		WithOptions(
			settings.Option{Names: []string{"-t", "--token"}, Help: "bot token"},
			settings.Option{Names: []string{"-p", "--prefix"}, Help: "command prefix"},
			settings.Option{Names: []string{"-v", "--verbose"}, Help: "verbosity", Kind: settings.KindCount},
			settings.Option{Names: []string{"--color"}, Help: "colored output", Kind: settings.KindFlag},
			settings.Option{Names: []string{"-c", "--config"}, Help: "rc file", ConfigPath: true},
		).
		WithSources(
			settings.FileSource{},
			defaults,
			settings.EnvSource{Prefix: settings.DeriveName(appName)},
			settings.StringSource("-vv --color=false"),
			settings.List("--config", rcPath, "--token", "from-args"),
		).
		Build()
	if err != nil {
		log.Fatalf("❌ Builder failed: %v", err)
	}

	s, err := loader.Load()
	if err != nil {
		log.Fatalf("❌ Load failed: %v", err)
	}
	log.Println("✅ Settings resolved.")
	fmt.Print(s.Debug())

	// =========================================================================
	// PART 3: TYPED ACCESS AND ROUND TRIP
	// =========================================================================
	log.Println("---")
	log.Println("➡️  PART 3: Scanning and saving...")

	var cfg DemoConfig
	if err := s.Scan(&cfg); err != nil {
		log.Fatalf("❌ Scan failed: %v", err)
	}
	printCurrentState(&cfg)

	// Counts read as integers directly, without a struct.
	if n, err := s.Int("verbose"); err == nil {
		log.Printf("✅ Verbosity level %d", n)
	}

	saved := filepath.Join(dir, "saved.rc")
	if err := s.Save(saved); err != nil {
		log.Fatalf("❌ Save failed: %v", err)
	}
	log.Printf("✅ Saved resolved settings to %s", saved)

	fmt.Println(loader.Help())
}

func printCurrentState(cfg *DemoConfig) {
	fmt.Println("   --------------------------------------------------")
	fmt.Printf("     Token:   %s\n", cfg.Token)
	fmt.Printf("     Prefix:  %s\n", cfg.Prefix)
	fmt.Printf("     Verbose: %d\n", cfg.Verbose)
	fmt.Printf("     Color:   %t\n", cfg.Color)
	fmt.Println("   --------------------------------------------------")
}
