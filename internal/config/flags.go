package config

import (
	"flag"
	"os"
	"time"

	"github.com/SISDRUG/bankoffice/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string          base URL of the admin REST API
//	-idp string        base URL of the identity provider
//	-realm string      identity-provider realm
//	-client-id string  OAuth client id
//	-t int             request timeout in seconds
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-idp", "-realm", "-client-id", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the admin REST API")
	fs.StringVar(&cfg.IdpURL, "idp", cfg.IdpURL, "base URL of the identity provider")
	fs.StringVar(&cfg.Realm, "realm", cfg.Realm, "identity provider realm")
	fs.StringVar(&cfg.ClientID, "client-id", cfg.ClientID, "OAuth client id")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
