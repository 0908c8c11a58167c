package lib

import (
	"errors"
	"log"
	"os"
)

func Stop(code int) {
	os.Exit(code) // want "call of os.Exit outside package main"
}

func Check(err error) {
	if err != nil {
		log.Fatalln("check error:", err) // want "call of log.Fatalln outside package main"
	}
}

func CheckLogger(logger *log.Logger, err error) {
	if err != nil {
		logger.Fatalf("check error: %v", err) // want `call of \(\*log.Logger\).Fatalf outside package main`
	}
}

func Wrap(err error) error {
	if err != nil {
		return errors.New("wrapped")
	}
	return nil
}
