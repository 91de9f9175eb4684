package main

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/bjaus/tablemend"
)

// Version is filled when building with make, but *not* when installing
// via "go install".
var Version string

var rootCmd = &cobra.Command{
	Use:   "tablemend [file...]",
	Short: "Fix invalid Markdown tables.",
	Long: "Rewrites malformed Markdown tables with the smallest possible edit while\n" +
		"leaving valid tables and non-table text untouched. Reads stdin when no\n" +
		"files are given.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if version, _ := cmd.Flags().GetBool("version"); version {
			fmt.Printf("tablemend %s\n", versionString())
			return nil
		}
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			log.SetLevel(log.DebugLevel)
		}
		write, _ := cmd.Flags().GetBool("write")
		diff, _ := cmd.Flags().GetBool("diff")
		align, _ := cmd.Flags().GetBool("align")
		noColor, _ := cmd.Flags().GetBool("no-color")

		fixer := tablemend.Fixer{AlignColumns: align}
		color := !noColor && term.IsTerminal(int(os.Stdout.Fd()))

		if len(args) == 0 {
			if write {
				return fmt.Errorf("cannot use -w with stdin")
			}
			return processStdin(fixer, diff, color)
		}

		failed := false
		for _, path := range args {
			if err := processFile(fixer, path, write, diff, color); err != nil {
				log.Errorf("%s: %v", path, err)
				failed = true
			}
		}
		if failed {
			return fmt.Errorf("some files could not be processed")
		}
		return nil
	},
}

func versionString() string {
	if Version != "" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		return info.Main.Version
	}
	return "(unknown version)"
}

func processStdin(fixer tablemend.Fixer, diff, color bool) error {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return err
	}
	text := string(data)
	fixed := fixer.Fix(text)
	if diff {
		printDiff(text, fixed, color)
		return nil
	}
	_, err = io.WriteString(os.Stdout, fixed)
	return err
}

func processFile(fixer tablemend.Fixer, path string, write, diff, color bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	text := string(data)
	fixed, changes := fixer.FixWithChanges(text)
	log.Debugf("%s: %d block(s) rewritten", path, len(changes))

	switch {
	case diff:
		printDiff(text, fixed, color)
		return nil
	case write:
		if len(changes) == 0 {
			return nil
		}
		info, err := os.Stat(path)
		if err != nil {
			return err
		}
		if err := os.WriteFile(path, []byte(fixed), info.Mode().Perm()); err != nil {
			return err
		}
		log.Infof("%s: fixed %d table(s)", path, len(changes))
		return nil
	default:
		_, err := io.WriteString(os.Stdout, fixed)
		return err
	}
}

func printDiff(before, after string, color bool) {
	out := tablemend.UnifiedDiff(before, after)
	if !color {
		fmt.Print(out)
		return
	}
	for _, line := range strings.SplitAfter(out, "\n") {
		switch {
		case strings.HasPrefix(line, "+"):
			fmt.Printf("\x1b[32m%s\x1b[0m", line)
		case strings.HasPrefix(line, "-"):
			fmt.Printf("\x1b[31m%s\x1b[0m", line)
		default:
			fmt.Print(line)
		}
	}
}

func init() {
	rootCmd.Flags().BoolP("write", "w", false, "rewrite files in place instead of printing to stdout")
	rootCmd.Flags().Bool("diff", false, "print a diff of the changes instead of the fixed text")
	rootCmd.Flags().Bool("align", false, "pad rewritten cells to uniform column width")
	rootCmd.Flags().Bool("no-color", false, "disable colorized diff output")
	rootCmd.Flags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.Flags().Bool("version", false, "report version of this executable")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
