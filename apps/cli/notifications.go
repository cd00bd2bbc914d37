package main

import (
	"context"
	"flag"
	"fmt"
)

func (cli *commandLine) notifications(args []string) error {
	notifCmd := flag.NewFlagSet("notifications", flag.ExitOnError)
	markRead := notifCmd.Int("mark-read", 0, "ID of a notification to mark as read.")
	if err := notifCmd.Parse(args); err != nil {
		return err
	}
	if err := cli.requireSession(); err != nil {
		return err
	}

	ctx := context.Background()
	if *markRead > 0 {
		n, err := cli.client.MarkNotificationRead(ctx, *markRead)
		if err != nil {
			return err
		}
		fmt.Fprintf(cli.out, "Marked read: #%d %s\n", n.ID, n.Message)
		return nil
	}

	notifs, err := cli.client.Notifications(ctx)
	if err != nil {
		return err
	}
	if len(notifs) == 0 {
		fmt.Fprintln(cli.out, "No notifications.")
		return nil
	}
	for _, n := range notifs {
		marker := " "
		if !n.Read {
			marker = "*"
		}
		fmt.Fprintf(cli.out, "%s #%d [%s] %s (%s)\n", marker, n.ID, n.Type, n.Message, n.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
