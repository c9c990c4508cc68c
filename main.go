package main

import (
	"log"

	"github.com/samuelfneumann/portalworld/cmd"
)

func main() {
	if err := cmd.RootCommand().Execute(); err != nil {
		log.Fatal(err)
	}
}
