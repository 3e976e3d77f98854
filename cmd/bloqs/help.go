package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: bloqs <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build      Build self-contained HTML documents from markdown")
	fmt.Fprintln(w, "  check      Verify embedded scripts run in headless Chrome")
	fmt.Fprintln(w, "  assets     List or export the built-in assets")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'bloqs help <command>' for details on a specific command.")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: bloqs build <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Build one self-contained HTML document per markdown file.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown file or directory (optional if config has input.defaultDir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>         Output file or directory")
	fmt.Fprintln(w, "  -c, --config <name>         Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>           Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Resources:")
	fmt.Fprintln(w, "      --script <name>         Named script to embed (repeatable)")
	fmt.Fprintln(w, "      --style <name>          Named style to embed (repeatable)")
	fmt.Fprintln(w, "      --inline-script <file>  .js file to embed inline (repeatable)")
	fmt.Fprintln(w, "      --inline-style <file>   .css file to embed inline (repeatable)")
	fmt.Fprintln(w, "      --asset-path <dir>      Read named resources from dir")
	fmt.Fprintln(w, "      --no-compress           Embed scripts uncompressed")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "      --title <s>             Document title (\"\" = auto from H1)")
	fmt.Fprintln(w, "      --lang <s>              Document language (default: en)")
	fmt.Fprintln(w, "      --highlight <style>     Code highlighting style (default: github)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet                 Only show errors")
	fmt.Fprintln(w, "  -v, --verbose               Show detailed timing")
}

// printCheckUsage prints usage for the check command.
func printCheckUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: bloqs check <file.html>... [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Open documents in headless Chrome and verify that the bootstrap")
	fmt.Fprintln(w, "scripts, and any named scripts given with --guard, ran at load time.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -g, --guard <name>          Script name whose load guard must be set (repeatable)")
	fmt.Fprintln(w, "  -t, --timeout <dur>         Page load timeout (default: 30s)")
	fmt.Fprintln(w, "  -q, --quiet                 Only show errors")
	fmt.Fprintln(w, "  -v, --verbose               List every guard checked")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  ROD_BROWSER_BIN             Chrome binary to use")
	fmt.Fprintln(w, "  ROD_NO_SANDBOX=1            Disable the Chrome sandbox (Docker/CI)")
}

// printAssetsUsage prints usage for the assets command.
func printAssetsUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: bloqs assets [--export <dir>] [--force]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "List the built-in assets, or copy them into a directory to use")
	fmt.Fprintln(w, "as a starting point for --asset-path.")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "build":
		printBuildUsage(env.Stdout)
	case "check":
		printCheckUsage(env.Stdout)
	case "assets":
		printAssetsUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: bloqs version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: bloqs help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
