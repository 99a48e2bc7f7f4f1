package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"go.senan.xyz/table/table"

	"github.com/ohFRY/cratetools"
	"github.com/ohFRY/cratetools/cmd/internal/flags"
	"github.com/ohFRY/cratetools/notifications"
	"github.com/ohFRY/cratetools/rekordbox"
	"github.com/ohFRY/cratetools/tagpolicy"
)

func init() {
	flag := flag.CommandLine
	flag.Usage = func() {
		fmt.Fprintf(flag.Output(), "Usage:\n")
		fmt.Fprintf(flag.Output(), "  $ %s [<options>] <collection-xml>\n", flag.Name())
		fmt.Fprintf(flag.Output(), "\n")
		fmt.Fprintf(flag.Output(), "Options:\n")
		flag.PrintDefaults()
	}
}

func main() {
	defer flags.ExitError()
	var (
		notifs      = flags.Notifications()
		platform    = flags.Platform()
		missingPath = flag.String("missing-log", "missing_files.txt", "path of the missing files log")
		dryRun      = flag.Bool("dry-run", false, "dry run")
	)
	flags.EnvPrefix("cratetools")
	flags.Parse()

	xmlPath := flag.Arg(0)
	if xmlPath == "" {
		slog.Error("no collection export provided")
		return
	}

	f, err := os.Open(xmlPath)
	if err != nil {
		slog.Error("opening export", "err", err)
		return
	}
	tracks, err := rekordbox.ParseCollection(f)
	f.Close()
	if err != nil {
		slog.Error("parsing export", "err", err)
		return
	}
	slog.Info("found tracks in export", "n", len(tracks))

	if *dryRun {
		printPlan(tracks, *platform)
		return
	}

	missing, err := cratetools.CreateMissingLog(*missingPath)
	if err != nil {
		slog.Error("creating missing log", "err", err)
		return
	}
	defer missing.Close()

	var updatedN, missingN, errN int
	for _, track := range tracks {
		path := rekordbox.ResolveLocation(track.Location, *platform)

		plan, err := tagpolicy.PlanOverwrite(track.AverageBpm, track.Tonality)
		if err != nil {
			slog.Error("planning track", "track", track.Name, "err", err)
			errN++
			continue
		}
		if _, err := os.Stat(path); err != nil {
			slog.Warn("file not found", "path", path)
			if err := missing.Add(track); err != nil {
				slog.Error("logging missing file", "err", err)
			}
			missingN++
			continue
		}
		if err := cratetools.ImportFile(path, plan); err != nil {
			slog.Error("updating file", "path", path, "err", err)
			errN++
			continue
		}
		slog.Info("updated file", "artist", track.Artist, "track", track.Name, "bpm", plan.BPMText(), "key", plan.Key)
		updatedN++
	}

	ctx := context.Background()
	slog := slog.With("updated", updatedN, "missing", missingN, "errs", errN)
	if errN > 0 {
		notifs.Sendf(ctx, notifications.Errors, "import finished with %d errors", errN)
		slog.Error("import finished with errors")
		return
	}
	notifs.Send(ctx, notifications.Complete, "import finished")
	slog.Info("import finished")
}

func printPlan(tracks []rekordbox.Track, platform rekordbox.Platform) {
	if len(tracks) == 0 {
		return
	}
	t := table.NewStringWriter()
	for _, track := range tracks {
		path := rekordbox.ResolveLocation(track.Location, platform)

		bpm, key := track.AverageBpm, track.Tonality
		if plan, err := tagpolicy.PlanOverwrite(track.AverageBpm, track.Tonality); err == nil {
			bpm, key = plan.BPMText(), plan.Key
		}
		status := "ok"
		if _, err := os.Stat(path); err != nil {
			status = "missing"
		}
		fmt.Fprintf(t, "%s\t%s\t%s\t%s\t%s\n", track.Artist, track.Name, bpm, key, status)
	}
	for _, row := range strings.Split(strings.TrimRight(t.String(), "\n"), "\n") {
		fmt.Println(row)
	}
}
