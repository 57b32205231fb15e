// Package main is the entry point for the scoutahead CLI tool, which ingests
// series timelines, runs per-game analytics and builds team scouting reports.
package main

import "scoutahead/cmd"

func main() {
	cmd.Execute()
}
