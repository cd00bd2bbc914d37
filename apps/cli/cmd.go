package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	apiclient "github.com/hausasoft/hausasoft-go/api"
	"github.com/hausasoft/hausasoft-go/core"
	"github.com/hausasoft/hausasoft-go/core/session"
	filestore "github.com/hausasoft/hausasoft-go/storage/session/file"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp        = errors.New("help provided")
	errNotLoggedIn = errors.New("you are not logged in; run: hausasoft login")
)

type commandLine struct {
	mgr    *session.Manager
	client *apiclient.Client
	out    io.Writer
}

func newCommandLine(conf *core.Config, logger core.Logger) *commandLine {
	store := filestore.New(conf.SessionFile, logger)

	// the authenticator needs the manager for tokens and the manager needs
	// the client for credentials; late-bound closures break the cycle
	var mgr *session.Manager
	auth := apiclient.NewAuthenticator(
		nil,
		apiclient.TokenSourceFunc(func() string {
			if mgr == nil {
				return ""
			}
			return mgr.Token()
		}),
		func(rejected string) {
			if mgr != nil {
				mgr.HandleUnauthorized(rejected)
			}
		},
	)
	client := apiclient.NewClientFromConfig(conf, auth, logger)
	mgr = session.NewManager(client, store, logger)

	return &commandLine{mgr: mgr, client: client, out: os.Stdout}
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  login -email EMAIL                 - log in; the password is prompted next")
	fmt.Fprintln(cli.out, "  register -name NAME -email EMAIL -role student|instructor")
	fmt.Fprintln(cli.out, "                                     - create an account; passwords are prompted next")
	fmt.Fprintln(cli.out, "  logout                             - end the current session")
	fmt.Fprintln(cli.out, "  whoami                             - show the current session")
	fmt.Fprintln(cli.out, "  notifications [-mark-read ID]      - list notifications, optionally marking one read")
	fmt.Fprintln(cli.out, "  pay -course ID                     - start a payment for a course")
	fmt.Fprintln(cli.out, "  paystatus -id PAYMENT_ID           - poll a payment's status")
	fmt.Fprintln(cli.out, "  chat -prompt TEXT                  - ask the AI tutor")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	switch args[1] {
	case "login":
		return cli.login(args[2:])
	case "register":
		return cli.register(args[2:])
	case "logout":
		return cli.logout()
	case "whoami":
		return cli.whoami()
	case "notifications":
		return cli.notifications(args[2:])
	case "pay":
		return cli.pay(args[2:])
	case "paystatus":
		return cli.payStatus(args[2:])
	case "chat":
		return cli.chat(args[2:])
	default:
		cli.printUsage()
		return errHelp
	}
}

// requireSession gates authenticated commands, optionally on specific roles.
func (cli *commandLine) requireSession(roles ...session.Role) error {
	d := session.Authorize(cli.mgr.Current(), roles...)
	switch d.Verdict {
	case session.Allow:
		return nil
	case session.DenyUnauthenticated:
		return errNotLoggedIn
	default:
		return fmt.Errorf("this command is not available for your role (see %s)", d.RedirectTarget)
	}
}
