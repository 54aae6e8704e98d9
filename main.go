package main

import (
	"os"

	"github.com/ms-henglu/xmlmap/cmd"
	"github.com/ms-henglu/xmlmap/internal/log"
)

var version = "v0.1.0"

func main() {
	if err := cmd.NewRootCmd(version).Execute(); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}
