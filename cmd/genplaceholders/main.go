package main

import (
	"flag"
	"fmt"
	"os"

	"chosenoffset.com/shooter/internal/placeholders"
)

func main() {
	out := flag.String("out", "assets", "directory to write placeholder assets into")
	flag.Parse()

	fmt.Println("Shooter Placeholder Asset Generator")
	fmt.Println("===================================")
	fmt.Println()

	written, err := placeholders.GenerateAndSave(*out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	for _, path := range written {
		fmt.Printf("  wrote %s\n", path)
	}

	fmt.Println()
	fmt.Println("Done! Placeholder assets are ready to use.")
}
