package main

import (
	"context"
	"flag"
	"fmt"
	"syscall"

	"github.com/hausasoft/hausasoft-go/core/session"
)

func (cli *commandLine) login(args []string) error {
	loginCmd := flag.NewFlagSet("login", flag.ExitOnError)
	email := loginCmd.String("email", "", "The account's email. The password will be prompted next.")
	if err := loginCmd.Parse(args); err != nil {
		return err
	}
	if *email == "" {
		loginCmd.Usage()
		return errHelp
	}

	fmt.Fprint(cli.out, "Enter password:")
	pwd, err := readPasswordFunc(syscall.Stdin)
	fmt.Fprintln(cli.out)
	if err != nil {
		return err
	}

	res := cli.mgr.Login(context.Background(), *email, string(pwd))
	fmt.Fprintln(cli.out, res.Message)
	if !res.Success {
		return errHelp
	}
	return nil
}

func (cli *commandLine) register(args []string) error {
	registerCmd := flag.NewFlagSet("register", flag.ExitOnError)
	name := registerCmd.String("name", "", "Your display name.")
	email := registerCmd.String("email", "", "The account's email.")
	role := registerCmd.String("role", string(session.RoleStudent), "One of: student, instructor.")
	if err := registerCmd.Parse(args); err != nil {
		return err
	}
	if *name == "" || *email == "" {
		registerCmd.Usage()
		return errHelp
	}

	fmt.Fprint(cli.out, "Enter password:")
	pwd, err := readPasswordFunc(syscall.Stdin)
	fmt.Fprintln(cli.out)
	if err != nil {
		return err
	}
	fmt.Fprint(cli.out, "Confirm password:")
	confirm, err := readPasswordFunc(syscall.Stdin)
	fmt.Fprintln(cli.out)
	if err != nil {
		return err
	}

	res := cli.mgr.Register(context.Background(), session.NewAccount{
		Name:            *name,
		Email:           *email,
		Password:        string(pwd),
		PasswordConfirm: string(confirm),
		Role:            session.Role(*role),
	})
	fmt.Fprintln(cli.out, res.Message)
	if !res.Success {
		return errHelp
	}
	return nil
}

func (cli *commandLine) logout() error {
	if err := cli.mgr.Logout(); err != nil {
		return err
	}
	fmt.Fprintln(cli.out, "Logged out.")
	return nil
}

func (cli *commandLine) whoami() error {
	cur := cli.mgr.Current()
	if !cur.Authenticated() {
		fmt.Fprintln(cli.out, "Not logged in.")
		return nil
	}
	fmt.Fprintf(cli.out, "%s <%s> (%s)\n", cur.User.Name, cur.User.Email, cur.User.Role)
	return nil
}
