// Command picobutton-sim runs the button/LED firmware on the host against
// simulated pins, driven by a line script.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
