package main

import (
	"log"

	"github.com/opentribunal/casework-backend/cmd"
)

func main() {
	if err := cmd.RunServer(); err != nil {
		log.Fatal(err)
	}
}
