package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

// Utility to seed local accounts: prints the bcrypt hash of each
// password given on the command line.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: genhash <password> [password...]")
		os.Exit(1)
	}
	for _, pass := range os.Args[1:] {
		hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
		if err != nil {
			fmt.Println("Error:", err)
			continue
		}
		fmt.Printf("Password: %s\nHash: %s\n\n", pass, string(hash))
	}
}
