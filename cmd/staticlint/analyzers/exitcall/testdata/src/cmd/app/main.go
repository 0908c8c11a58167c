package main

import (
	"log"
	"os"
)

func main() {
	if len(os.Args) > 2 {
		log.Fatalln("too many args")
	}
	os.Exit(0)
}
