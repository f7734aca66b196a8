package cli

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Fill /name/ markers in XML and HTML documents"
	MsgRootLong        = "markbind finds /name/ markers in the text and attributes of an XML or HTML\ndocument, binds every occurrence to its name and rewrites them all from a\nsingle value."
	MsgRenderShort     = "Substitute marker values and write the document"
	MsgMarkersShort    = "List the markers bound under a root element"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages"

	// Long help
	MsgRenderLong = `Render opens a document, binds every marker under the root element and
applies values from --values files (TOML, YAML or JSON) and --set pairs.
Later sources win. Values for names that never appear are ignored.

Text after a marker in the same text node is replaced along with the
marker unless --isolate is given.`
	MsgRenderExample = `  # Fill a page from a TOML file
  markbind render index.html --values site.toml

  # Only touch the #app subtree and write the result elsewhere
  markbind render page.xml --root '#app' --set greeting=Hi -o out.xml`
	MsgMarkersExample = `  markbind markers index.html --root '#app'
  markbind markers feed.xml --output json`

	MsgCompletionLong = `To load completions:

Bash:
  $ source <(markbind completion bash)

Zsh:
  $ markbind completion zsh > "${fpath[1]}/_markbind"

Fish:
  $ markbind completion fish > ~/.config/fish/completions/markbind.fish
`

	// Status messages
	MsgManWritten = "Man pages written to %s\n"
	MsgRendered = "Rendered %s -> %s\n"

	// Error messages
	MsgErrNoCommand    = "no command specified"
	MsgErrOutputFormat = "invalid --output value: %w"
	MsgErrRender       = "failed to render %s: %w"
	MsgErrMarkers      = "failed to list markers in %s: %w"
	MsgErrManPages     = "failed to write man pages to %s: %w"

	// Flag descriptions
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagRoot        = "Root element selector (#id, etree path for XML, CSS for HTML)"
	MsgFlagValues      = "Values file (.toml, .yaml, .yml, .json); repeatable"
	MsgFlagSet         = "Set a value as name=value; repeatable"
	MsgFlagFormat      = "Document format: auto, xml or html"
	MsgFlagOut         = "Write to this file instead of stdout"
	MsgFlagInPlace     = "Rewrite the input file"
	MsgFlagIsolate     = "Keep literal text that follows a marker"
	MsgFlagShallow     = "Only scan attributes of nested elements, not their children"
	MsgFlagAllAttrs    = "Bind every marker in an attribute value, not only the first"
	MsgFlagIndent      = "Reindent XML output with this many spaces (0 keeps whitespace)"
	MsgFlagStripMarkup = "Strip markup from string values"
	MsgFlagOutput      = "Output format: auto, term, text or json"
)

// Config generation
const (
	MsgGenConfigShort = "Print or write the default configuration"
	MsgGenConfigLong  = `Print the built-in defaults as TOML. With --write the defaults are saved
as markbind.toml in the current directory, unless that file already exists.`
	MsgConfigWritten = "Wrote %s\n"
	MsgFlagWrite     = "Write markbind.toml instead of printing"
)

// MsgUsageTemplate is the help layout shared by every command.
const MsgUsageTemplate = `{{boldUpper "Usage:"}}{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}{{if gt (len .Aliases) 0}}

{{boldUpper "Aliases:"}}
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

{{boldUpper "Examples:"}}
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}{{$cmds := .Commands}}{{if eq (len .Groups) 0}}

{{boldUpper "Commands:"}}{{range $cmds}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{else}}{{range $group := .Groups}}

{{bold .Title}}{{range $cmds}}{{if (and (eq .GroupID $group.ID) (or .IsAvailableCommand (eq .Name "help")))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

{{boldUpper "Flags:"}}
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

{{boldUpper "Global Flags:"}}
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}
`
