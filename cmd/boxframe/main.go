package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/lixenwraith/boxframe/terminal"
)

func main() {
	// Panic Recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mBOXFRAME CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
