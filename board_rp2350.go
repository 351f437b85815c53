//go:build rp2350

package main

var boardName = "pico2"
