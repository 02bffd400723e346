// Command hashpw prints a bcrypt hash suitable for STAFF_PASSWORD_HASH.
//
//	go run ./cmd/hashpw -cost 12 'front-desk-password'
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/iliyamo/hotel-reservation/internal/utils"
)

func main() {
	cost := flag.Int("cost", 10, "bcrypt cost")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: hashpw [-cost N] <password>")
		os.Exit(2)
	}
	hash, err := utils.HashPassword(flag.Arg(0), *cost)
	if err != nil {
		fmt.Fprintln(os.Stderr, "hash failed:", err)
		os.Exit(1)
	}
	fmt.Println(hash)
}
