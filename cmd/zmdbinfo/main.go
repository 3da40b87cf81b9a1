package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/bgrewell/usage"
	"github.com/bgrewell/zmdb-kit"
	"github.com/bgrewell/zmdb-kit/pkg/logging"
	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/mattn/go-runewidth"
	"github.com/theckman/yacspin"
	"golang.org/x/term"
)

// summaryColumns returns the table column widths to use, capped to the
// terminal width when stdout is a tty.
func summaryColumns(stdoutFd uintptr) (title, artist int) {
	title, artist = 36, 24
	if w, _, err := term.GetSize(int(stdoutFd)); err == nil && w > 0 {
		avail := w - 10
		if avail < title+artist {
			title = avail * 3 / 5
			artist = avail - title
		}
	}
	return
}

func padTo(s string, width int) string {
	s = runewidth.Truncate(s, width, "...")
	return s + strings.Repeat(" ", width-runewidth.StringWidth(s))
}

func main() {
	u := usage.NewUsage(
		usage.WithApplicationName("zmdbinfo"),
		usage.WithApplicationDescription("zmdbinfo inspects a ZMDB media catalog file, printing track, album, video, picture, playlist, podcast, and audiobook counts and a summary table."),
	)

	help := u.AddBooleanOption("h", "help", false, "Show this help message", "optional", nil)
	verbose := u.AddBooleanOption("v", "verbose", false, "Enable trace-level logging to stderr", "", nil)
	classic := u.AddBooleanOption("c", "classic", false, "Parse as a Classic-family catalog (default: HD)", "", nil)
	strict := u.AddBooleanOption("s", "strict", false, "Fail on a corrupt header instead of returning an empty library", "", nil)
	path := u.AddArgument(1, "zmdb-path", "Path to the ZMDB catalog file", "")
	parsed := u.Parse()

	if !parsed {
		u.PrintError(fmt.Errorf("failed to parse arguments"))
		os.Exit(1)
	}
	if *help {
		u.PrintUsage()
		os.Exit(0)
	}
	if path == nil || *path == "" {
		u.PrintError(fmt.Errorf("path to the ZMDB catalog file must be provided"))
		os.Exit(1)
	}

	data, err := os.ReadFile(*path)
	if err != nil {
		u.PrintError(fmt.Errorf("failed to read %s: %w", *path, err))
		os.Exit(1)
	}

	useColor := isatty.IsTerminal(os.Stdout.Fd())
	stdout := colorable.NewColorableStdout()
	color.NoColor = !useColor

	family := zmdb.FamilyHD
	if *classic {
		family = zmdb.FamilyClassic
	}

	opts := []zmdb.Option{zmdb.WithStrict(*strict)}
	if *verbose {
		opts = append(opts, zmdb.WithLogger(logging.NewSimpleLogger(os.Stderr, logging.TRACE, useColor)))
	}

	var spinner *yacspin.Spinner
	if useColor {
		spinner, err = yacspin.New(yacspin.Config{
			Frequency:       100 * time.Millisecond,
			CharSet:         yacspin.CharSets[9],
			Suffix:          " extracting catalog",
			SuffixAutoColon: true,
			Colors:          []string{"fgCyan"},
		})
		if err == nil {
			_ = spinner.Start()
		}
	}

	lib, err := zmdb.Extract(data, family, opts...)

	if spinner != nil {
		_ = spinner.Stop()
	}
	if err != nil {
		u.PrintError(fmt.Errorf("failed to extract catalog: %w", err))
		os.Exit(1)
	}

	bold := color.New(color.FgCyan, color.Bold)
	bold.Fprintln(stdout, "=== ZMDB Catalog ===")
	fmt.Fprintf(stdout, "Tracks:     %d\n", lib.TrackCount())
	fmt.Fprintf(stdout, "Albums:     %d\n", lib.AlbumCount())
	fmt.Fprintf(stdout, "Videos:     %d\n", lib.VideoCount())
	fmt.Fprintf(stdout, "Pictures:   %d\n", lib.PictureCount())
	fmt.Fprintf(stdout, "Playlists:  %d\n", lib.PlaylistCount())
	fmt.Fprintf(stdout, "Podcasts:   %d\n", lib.PodcastCount())
	fmt.Fprintf(stdout, "Audiobooks: %d\n", lib.AudiobookCount())
	bold.Fprintln(stdout, "====================")

	if len(lib.Tracks) == 0 {
		return
	}

	titleW, artistW := summaryColumns(os.Stdout.Fd())
	header := color.New(color.FgYellow, color.Bold)
	header.Fprintf(stdout, "\n%s  %s  %s\n", padTo("Title", titleW), padTo("Artist", artistW), "Album")
	for _, track := range lib.Tracks {
		fmt.Fprintf(stdout, "%s  %s  %s\n", padTo(track.Title, titleW), padTo(track.ArtistName, artistW), track.AlbumName)
	}
}
