//go:build !rp2350

package main

// boardName selects the built-in board config. Override with
// -ldflags "-X main.boardName=<name>".
var boardName = "pico"
