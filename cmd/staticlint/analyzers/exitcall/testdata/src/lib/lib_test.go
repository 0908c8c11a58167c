package lib

import (
	"log"
	"os"
)

func mustNotFail(err error) {
	if err != nil {
		log.Fatalln(err)
	}
	os.Exit(0)
}
