package utils

import (
	"fmt"
)

func PrintHelp() {
	fmt.Println("Usage: lockfix [flags] [lockfile...]")
	fmt.Println()
	fmt.Println("Removes trailing commas that sit right before a closing brace.")
	fmt.Println("With no lockfile, the configured lockfiles (default: bun.lock) are")
	fmt.Println("looked up in the project root.")
}

func PrintVersion() {
	fmt.Println(AppVersion)
}

// AppVersion is the current version of the application.
var AppVersion = "dev"

// SetVersion sets the application version.
func SetVersion(v string) {
	AppVersion = v
}
