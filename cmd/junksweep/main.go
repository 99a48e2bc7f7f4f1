package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	"go.senan.xyz/natcmp"
	"go.senan.xyz/table/table"

	"github.com/ohFRY/cratetools/cmd/internal/flags"
	"github.com/ohFRY/cratetools/junkfile"
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
		patternsPath = flag.String("patterns-file", "", "path to a yaml file with extra junk patterns")
		dryRun       = flag.Bool("dry-run", false, "dry run")
		yes          = flag.Bool("yes", false, "skip the confirmation prompt")
	)
	flags.EnvPrefix("cratetools")
	flags.Parse()

	patterns := junkfile.DefaultPatterns()
	if *patternsPath != "" {
		extra, err := junkfile.LoadPatterns(*patternsPath)
		if err != nil {
			slog.Error("loading patterns", "err", err)
			return
		}
		patterns = append(patterns, extra...)
	}

	roots := flag.Args()
	if len(roots) == 0 {
		roots = []string{"."}
	}

	var found []string
	for _, root := range roots {
		paths, err := junkfile.Find(root, patterns)
		if err != nil {
			slog.Error("finding junk", "root", root, "err", err)
			return
		}
		found = append(found, paths...)
	}
	if len(found) == 0 {
		slog.Info("no junk found")
		return
	}

	slices.SortFunc(found, natcmp.Compare)
	printFound(found)

	if *dryRun {
		slog.Info("dry run, nothing removed", "found", len(found))
		return
	}
	if !*yes && !confirm(len(found)) {
		slog.Info("cancelled")
		return
	}

	var filesN, dirsN, errN int
	for _, path := range found {
		isDir, err := junkfile.Remove(path)
		if err != nil {
			slog.Error("removing", "path", path, "err", err)
			errN++
			continue
		}
		if isDir {
			dirsN++
		} else {
			filesN++
		}
		slog.Debug("removed", "path", path, "dir", isDir)
	}

	slog := slog.With("files", filesN, "dirs", dirsN, "errs", errN)
	if errN > 0 {
		slog.Error("sweep finished with errors")
		return
	}
	slog.Info("sweep finished")
}

const maxListed = 10

func printFound(found []string) {
	t := table.NewStringWriter()
	for i, path := range found {
		if i == maxListed {
			fmt.Fprintf(t, "...\tand %d more\n", len(found)-maxListed)
			break
		}
		kind := "file"
		if info, err := os.Lstat(path); err == nil && info.IsDir() {
			kind = "dir"
		}
		fmt.Fprintf(t, "%s\t%s\n", kind, path)
	}
	for _, row := range strings.Split(strings.TrimRight(t.String(), "\n"), "\n") {
		fmt.Println(row)
	}
}

func confirm(n int) bool {
	fmt.Printf("remove all %d junk paths? (y/N): ", n)
	answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}
