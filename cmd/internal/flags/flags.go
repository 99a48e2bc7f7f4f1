// Package flags carries the flag, env, and config-file wiring shared by
// all binaries.
package flags

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.senan.xyz/flagconf"

	"github.com/ohFRY/cratetools"
	"github.com/ohFRY/cratetools/notifications"
	"github.com/ohFRY/cratetools/rekordbox"
	"github.com/ohFRY/cratetools/tagpolicy"
)

func EnvPrefix(prefix string) {
	flagconf.ReadEnvPrefix = func(_ *flag.FlagSet) string {
		return prefix
	}
}

func Parse() {
	userConfig, _ := os.UserConfigDir()
	defaultConfigPath := filepath.Join(userConfig, cratetools.Name, "config")
	configPath := flag.String("config-path", defaultConfigPath, "path config file")

	printVersion := flag.Bool("version", false, "print the version")
	printConfig := flag.Bool("config", false, "print the parsed config")

	flag.TextVar(&logLevel, "log-level", &logLevel, "set the logging level")

	flag.Parse()
	flagconf.ParseEnv()
	flagconf.ParseConfig(*configPath)

	if *printVersion {
		fmt.Printf("%s %s\n", flag.CommandLine.Name(), cratetools.Version)
		os.Exit(0)
	}
	if *printConfig {
		flag.VisitAll(func(f *flag.Flag) {
			fmt.Printf("%-16s %s\n", f.Name, f.Value)
		})
		os.Exit(0)
	}
}

func Notifications() *notifications.Notifications {
	var r notifications.Notifications
	flag.Var(&notificationsParser{&r}, "notification-uri", "add a shoutrrr notification uri for an event")
	return &r
}

func Keep() tagpolicy.AllowList {
	r := tagpolicy.AllowList{}
	flag.Func("keep", "tag key to preserve on top of the allow-list",
		func(s string) error { r.Add(s); return nil })
	return r
}

func Platform() *rekordbox.Platform {
	r := rekordbox.CurrentPlatform()
	flag.Var(&platformParser{&r}, "platform", "path conventions of the exported locations (posix or windows)")
	return &r
}
