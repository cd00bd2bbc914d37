package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/hausasoft/hausasoft-go/core/session"
)

func (cli *commandLine) pay(args []string) error {
	payCmd := flag.NewFlagSet("pay", flag.ExitOnError)
	course := payCmd.Int("course", 0, "ID of the course to pay for.")
	if err := payCmd.Parse(args); err != nil {
		return err
	}
	if *course <= 0 {
		payCmd.Usage()
		return errHelp
	}
	// only students buy courses
	if err := cli.requireSession(session.RoleStudent); err != nil {
		return err
	}

	p, err := cli.client.InitiatePayment(context.Background(), *course)
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "Payment %s started. Complete checkout at:\n%s\n", p.PaymentID, p.PaymentURL)
	return nil
}

func (cli *commandLine) payStatus(args []string) error {
	statusCmd := flag.NewFlagSet("paystatus", flag.ExitOnError)
	id := statusCmd.String("id", "", "The payment ID returned by pay.")
	if err := statusCmd.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		statusCmd.Usage()
		return errHelp
	}
	if err := cli.requireSession(); err != nil {
		return err
	}

	st, err := cli.client.CheckPaymentStatus(context.Background(), *id)
	if err != nil {
		return err
	}
	if st.Message != "" {
		fmt.Fprintf(cli.out, "%s: %s\n", st.Status, st.Message)
	} else {
		fmt.Fprintln(cli.out, st.Status)
	}
	return nil
}
