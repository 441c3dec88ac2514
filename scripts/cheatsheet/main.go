package main

import (
	"fmt"
	"os"

	"github.com/yeager/snap-l10n/pkg/cheatsheet"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run scripts/cheatsheet/main.go [generate|check]")
		os.Exit(1)
	}

	switch os.Args[1] {
	case "generate":
		cheatsheet.Generate()
	case "check":
		cheatsheet.Check()
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		os.Exit(1)
	}
}
