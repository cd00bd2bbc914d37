package main

import (
	"fmt"
	"log"
	"os"

	"github.com/hausasoft/hausasoft-go/core"
	logsvc "github.com/hausasoft/hausasoft-go/services/logger"
)

func main() {
	conf := core.NewConfig()

	std := log.New(os.Stdout, "CLI : ", log.LstdFlags)
	var logger core.Logger
	if conf.Debug {
		logger = logsvc.NewConsoleLogger(std)
	} else {
		rl := logsvc.NewRollbarLogger(std, conf)
		rl.Enable(conf.RollbarToken != "")
		logger = rl
	}

	cli := newCommandLine(conf, logger)
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
