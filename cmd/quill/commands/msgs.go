package commands

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort = "A streaming pretty-printer for structured data"
	MsgRootLong = `quill renders structured data (JSON, YAML, TOML, XML) as readable,
width-aware text. Values are laid out on one line while they fit and
wrap into indented blocks when they do not; cyclic and shared values
print as placeholders instead of looping forever.`

	MsgRenderShort = "Render input files (or stdin) as formatted text"
	MsgRenderLong = `Render reads structured data and pretty-prints it.

With no file arguments, input is read from stdin and treated as JSON
unless --format says otherwise. File arguments are decoded according to
their extension, with --format as the override.`

	MsgConfigShort     = "Manage quill configuration"
	MsgConfigInitShort = "Write a commented starter config file"
	MsgConfigShowShort = "Show the effective configuration"
	MsgConfigPathShort = "Print the config file location"
	MsgVersionShort    = "Print version information"
	MsgTopicsShort     = "Display available documentation topics"
	MsgTopicsLong      = "Display a list of all available help topics that provide additional documentation beyond command help."
	MsgCompletionShort = "Generate shell completion script"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig   = "Config file (default is $XDG_CONFIG_HOME/quill/quill.toml)"
	MsgFlagFormat   = "Input format: json, yaml, toml or xml (default: detect by extension)"
	MsgFlagWidth    = "Column after which breakable tokens wrap (0 expands everything)"
	MsgFlagIndent   = "Spaces per nesting level"
	MsgFlagExpand   = "Break at every breakable point, same as --width=0"
	MsgFlagRaw      = "Skip registered renderers and use the generic layout"
	MsgFlagColor    = "Color output: auto, always or never"
	MsgFlagAnnotate = "Prefix record renderings with their type name"
	MsgFlagOutput   = "Write output to file instead of stdout"
)
