// Package cli implements the qanyare command line client.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/qanyare/restaurant-service/internal/cart"
	"github.com/qanyare/restaurant-service/internal/client"
	"github.com/qanyare/restaurant-service/internal/localstore"
	"github.com/qanyare/restaurant-service/internal/session"
)

// app is the state shared by the commands of one invocation
type app struct {
	apiURL  string
	dataDir string

	store   localstore.Store
	api     *client.Client
	session *session.Session
	cart    *cart.Cart
	out     io.Writer
}

type printer struct{ w io.Writer }

func (p printer) Notify(message string) { fmt.Fprintln(p.w, message) }

// NewRootCommand builds the command tree. Call the returned cleanup once the
// command has run to release the local store.
func NewRootCommand() (*cobra.Command, func() error) {
	a := &app{}

	root := &cobra.Command{
		Use:           "qanyare",
		Short:         "Browse the Qanyare menu, order and manage the restaurant from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.open(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.apiURL, "api", envOr("QANYARE_API_URL", "http://localhost:8080"), "base URL of the restaurant API")
	root.PersistentFlags().StringVar(&a.dataDir, "data-dir", envOr("QANYARE_DATA_DIR", defaultDataDir()), "directory for the local cart and session")

	root.AddCommand(
		a.menuCommand(),
		a.categoriesCommand(),
		a.cartCommand(),
		a.checkoutCommand(),
		a.loginCommand(),
		a.logoutCommand(),
		a.whoamiCommand(),
		a.statsCommand(),
		a.ordersCommand(),
		a.myOrdersCommand(),
		a.orderStatusCommand(),
	)
	return root, a.close
}

// Run executes the CLI with args, writing to stdout and stderr
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	root, cleanup := NewRootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	return errors.Join(err, cleanup())
}

func (a *app) open(cmd *cobra.Command) error {
	store, err := localstore.Open(a.dataDir)
	if err != nil {
		return err
	}
	a.store = store
	a.out = cmd.OutOrStdout()

	notifier := printer{w: cmd.ErrOrStderr()}
	a.api = client.New(a.apiURL)
	a.session = session.New(store, a.api, notifier)
	a.api.SetToken(a.session.Token())
	a.cart = cart.New(store, notifier)
	return nil
}

func (a *app) close() error {
	if a.store == nil {
		return nil
	}
	err := a.store.Close()
	a.store = nil
	return err
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func defaultDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".qanyare"
	}
	return filepath.Join(dir, "qanyare")
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

func money(amount int64) string {
	return "KSh " + strconv.FormatInt(amount, 10)
}
