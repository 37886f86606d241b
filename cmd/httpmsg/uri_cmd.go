package main

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ghettovoice/httpmsg/log"
	"github.com/ghettovoice/httpmsg/uri"
)

type uriCommandOpts struct {
	Scheme   string
	Host     string
	Port     int
	NoPort   bool
	Path     string
	Query    string
	Fragment string
	User     string
	Password string
	Validate bool
	Redact   bool
}

func newURICommand() *cobra.Command {
	opts := &uriCommandOpts{}
	cmd := &cobra.Command{
		Use:     "uri <uri>",
		Short:   "Parse a URI, apply overrides and print its components",
		Aliases: []string{"u"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := uri.Parse(args[0])
			if err != nil {
				return err
			}
			if u, err = applyURIOverrides(cmd, u, opts); err != nil {
				return err
			}

			log.Default().LogAttrs(cmd.Context(), slog.LevelDebug, "URI parsed", slog.Any("uri", u))

			printURI(cmd, u, opts.Redact)
			if opts.Validate {
				if err := u.Validate(); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "valid:     true")
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.Scheme, "scheme", "", "Replace the scheme")
	flags.StringVar(&opts.Host, "host", "", "Replace the host")
	flags.IntVar(&opts.Port, "port", 0, "Replace the port (1-65535)")
	flags.BoolVar(&opts.NoPort, "no-port", false, "Remove the port")
	flags.StringVar(&opts.Path, "path", "", "Replace the path")
	flags.StringVar(&opts.Query, "query", "", "Replace the query (without '?')")
	flags.StringVar(&opts.Fragment, "fragment", "", "Replace the fragment (without '#')")
	flags.StringVar(&opts.User, "user", "", "Replace the user")
	flags.StringVar(&opts.Password, "password", "", "Replace the password, used with --user")
	flags.BoolVar(&opts.Validate, "validate", false, "Validate the resulting URI")
	flags.BoolVar(&opts.Redact, "redact", false, "Hide the password in the output")
	cmd.MarkFlagsMutuallyExclusive("port", "no-port")

	return cmd
}

func applyURIOverrides(cmd *cobra.Command, u uri.URI, opts *uriCommandOpts) (uri.URI, error) {
	flags := cmd.Flags()

	var err error
	if flags.Changed("scheme") {
		if u, err = u.WithScheme(opts.Scheme); err != nil {
			return u, err
		}
	}
	if flags.Changed("host") {
		if u, err = u.WithHost(opts.Host); err != nil {
			return u, err
		}
	}
	if flags.Changed("port") {
		if u, err = u.WithPort(opts.Port); err != nil {
			return u, err
		}
	}
	if opts.NoPort {
		u = u.WithoutPort()
	}
	if flags.Changed("path") {
		if u, err = u.WithPath(opts.Path); err != nil {
			return u, err
		}
	}
	if flags.Changed("query") {
		if u, err = u.WithQuery(opts.Query); err != nil {
			return u, err
		}
	}
	if flags.Changed("fragment") {
		if u, err = u.WithFragment(opts.Fragment); err != nil {
			return u, err
		}
	}
	if flags.Changed("user") || flags.Changed("password") {
		user := u.User()
		if flags.Changed("user") {
			user = opts.User
		}
		if u, err = u.WithUserInfo(user, opts.Password); err != nil {
			return u, err
		}
	}
	return u, nil
}

func printURI(cmd *cobra.Command, u uri.URI, redact bool) {
	var port string
	if p, ok := u.Port(); ok {
		port = strconv.FormatUint(uint64(p), 10)
	}

	var (
		opts     *uri.RenderOptions
		userInfo = u.UserInfo()
	)
	if redact {
		opts = &uri.RenderOptions{RedactPassword: true}
		if u.Password() != "" {
			userInfo = u.User() + ":xxxxx"
		}
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "scheme:    %s\n", u.Scheme())
	fmt.Fprintf(w, "user info: %s\n", userInfo)
	fmt.Fprintf(w, "host:      %s\n", u.Host())
	fmt.Fprintf(w, "port:      %s\n", port)
	fmt.Fprintf(w, "path:      %s\n", u.Path())
	fmt.Fprintf(w, "query:     %s\n", u.Query())
	fmt.Fprintf(w, "fragment:  %s\n", u.Fragment())
	fmt.Fprintf(w, "authority: %s\n", u.RenderAuthority(opts))
	fmt.Fprintf(w, "uri:       %s\n", u.Render(opts))
}
