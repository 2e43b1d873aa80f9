package main

import (
	"log"

	"github.com/translationdesk/platform-go/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
