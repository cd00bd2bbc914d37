package main

import (
	"context"
	"flag"
	"fmt"
)

func (cli *commandLine) chat(args []string) error {
	chatCmd := flag.NewFlagSet("chat", flag.ExitOnError)
	prompt := chatCmd.String("prompt", "", "What to ask the AI tutor.")
	if err := chatCmd.Parse(args); err != nil {
		return err
	}
	if *prompt == "" {
		chatCmd.Usage()
		return errHelp
	}

	text, err := cli.client.SendAIMessage(context.Background(), *prompt)
	if err != nil {
		return err
	}
	fmt.Fprintln(cli.out, text)
	return nil
}
