package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/ohFRY/cratetools"
	"github.com/ohFRY/cratetools/cmd/internal/flags"
	"github.com/ohFRY/cratetools/fileutil"
	"github.com/ohFRY/cratetools/notifications"
	"github.com/ohFRY/cratetools/tagpolicy"
	"github.com/ohFRY/cratetools/tags"
)

func init() {
	flag := flag.CommandLine
	flag.Usage = func() {
		fmt.Fprintf(flag.Output(), "Usage:\n")
		fmt.Fprintf(flag.Output(), "  $ %s [<options>] <path>...\n", flag.Name())
		fmt.Fprintf(flag.Output(), "\n")
		fmt.Fprintf(flag.Output(), "Options:\n")
		flag.PrintDefaults()
	}
}

func main() {
	defer flags.ExitError()
	var (
		notifs     = flags.Notifications()
		keep       = flags.Keep()
		policyPath = flag.String("policy", "", "path to a yaml keep-list replacing the default allow-list")
		dryRun     = flag.Bool("dry-run", false, "dry run")
	)
	flags.EnvPrefix("cratetools")
	flags.Parse()

	allow := tagpolicy.DefaultAllowList()
	if *policyPath != "" {
		var err error
		allow, err = tagpolicy.LoadAllowList(*policyPath)
		if err != nil {
			slog.Error("loading policy", "err", err)
			return
		}
	}
	for k := range keep {
		allow.Add(k)
	}

	// walk the working directory by default, or some user provided paths
	dirs := flag.Args()
	if len(dirs) == 0 {
		dirs = []string{"."}
	}

	paths := make(chan string)
	go func() {
		for _, dir := range dirs {
			err := fileutil.WalkFiles(dir, tags.CanRead, func(path string) error {
				paths <- path
				return nil
			})
			if err != nil {
				slog.Error("walking paths", "err", err)
			}
		}
		close(paths)
	}()

	// each file's cleanup is independent and idempotent, safe to fan out
	var doneN, cleanedN, removedN, errN atomic.Uint32
	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range paths {
				res, err := cratetools.CleanFile(path, allow, *dryRun)
				if err != nil {
					slog.Error("cleaning file", "path", path, "err", err)
					errN.Add(1)
					continue
				}
				doneN.Add(1)
				if len(res.Removed) == 0 {
					continue
				}
				cleanedN.Add(1)
				removedN.Add(uint32(len(res.Removed)))
				slog.Info("cleaned file", "path", path, "removed", len(res.Removed), "dry-run", *dryRun)
				slog.Debug("removed tags", "path", path, "keys", res.Removed)
			}
		}()
	}
	wg.Wait()

	ctx := context.Background()
	slog := slog.With("files", doneN.Load(), "cleaned", cleanedN.Load(), "tags", removedN.Load(), "errs", errN.Load())
	if errN.Load() > 0 {
		notifs.Sendf(ctx, notifications.Errors, "cleanup finished with %d errors", errN.Load())
		slog.Error("cleanup finished with errors")
		return
	}
	notifs.Send(ctx, notifications.Complete, "cleanup finished")
	slog.Info("cleanup finished")
}
