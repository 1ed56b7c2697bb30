package main

import (
	"log"

	"github.com/marble-stack/financial-planning/cmd/tracking/cmd"
)

func main() {
	err := cmd.Execute()
	if err != nil {
		log.Fatal(err)
	}
}
