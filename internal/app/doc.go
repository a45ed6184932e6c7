// Package app provides the orchestration layer for the lux application.
//
// It is the composition root: it loads configuration and preferences,
// sets up file logging, performs the initial library scan, starts the
// background rescanner, and launches the TUI. Business logic lives in
// the domain packages (config, library, gallery, ui); this package
// only connects them.
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()           Read ~/.config/lux/config.toml
//	       ├─────> logging.Initialize()    Optional zap file logging
//	       ├─────> prefs.Load()            Saved theme preference
//	       ├─────> library.Scan()          Initial scan into the store
//	       ├─────> library.StartScanner()  Background rescans
//	       └─────> ui.Run()                Start TUI (blocks)
//
// The rescanner goroutine keeps the shared library.Store fresh while
// the UI reads snapshots at its own cadence, so adding or removing
// files in a watched directory shows up without restarting.
package app
