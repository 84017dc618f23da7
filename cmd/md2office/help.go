package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2office <command> [flags] [args]")
	fmt.Fprintln(w, "       md2office <input> [flags]      (same as convert)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert     Convert text, markdown or HTML files to docx, pptx and more")
	fmt.Fprintln(w, "  serve       Serve the export API over HTTP")
	fmt.Fprintln(w, "  theme       Print the resolved theme as YAML")
	fmt.Fprintln(w, "  completion  Generate shell completion script")
	fmt.Fprintln(w, "  version     Show version information")
	fmt.Fprintln(w, "  help        Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'md2office help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2office convert <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert files to office documents. Plain text is classified line by line;")
	fmt.Fprintln(w, "markdown and HTML are parsed.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    File or directory (optional if config has input.defaultDir)")
	fmt.Fprintln(w, "           Extensions: .md .markdown .txt .text .html .htm")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output directory, or file when it ends in the format extension")
	fmt.Fprintln(w, "  -f, --format <s>          Format: docx, pptx, pdf, txt, html (default: docx)")
	fmt.Fprintln(w, "      --syntax <s>          Syntax: plain, markdown, html (default: from extension)")
	fmt.Fprintln(w, "  -t, --title <s>           Document title (default: input file name)")
	fmt.Fprintln(w, "      --slides              With --format html, preview as slides")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Styling:")
	fmt.Fprintln(w, "      --theme <name>        Theme name or YAML file path")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom asset directory (themes/, styles/)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Note: pdf and txt write the input text unchanged.")
}

// printServeUsage prints usage for the serve command.
func printServeUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2office serve [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Serve the export API over HTTP.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Endpoints:")
	fmt.Fprintln(w, "  POST /export/{format}?filename=&syntax=&slides=   Body is the content")
	fmt.Fprintln(w, "  GET  /healthz")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -a, --addr <addr>         Listen address (default :8080)")
	fmt.Fprintln(w, "      --max-body <bytes>    Maximum request body (default 4 MiB)")
	fmt.Fprintln(w, "      --log-json            Write request logs as JSON")
	fmt.Fprintln(w, "      --theme <name>        Theme name or YAML file path")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom asset directory")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only log warnings and errors")
	fmt.Fprintln(w, "  -v, --verbose             Log debug messages")
}

// printThemeUsage prints usage for the theme command.
func printThemeUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2office theme [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the resolved theme as YAML. Save the output, edit it, and pass")
	fmt.Fprintln(w, "it back with --theme to customize colors, fonts and slide geometry.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -l, --list                List built-in theme names")
	fmt.Fprintln(w, "      --theme <name>        Theme name or YAML file path")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom asset directory")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "serve":
		printServeUsage(env.Stdout)
	case "theme":
		printThemeUsage(env.Stdout)
	case "completion":
		printCompletionUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: md2office version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: md2office help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
