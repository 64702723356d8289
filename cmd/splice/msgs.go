package splice

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Recursive template expansion for source trees"
	MsgBuildShort      = "Expand the source tree into the destination"
	MsgWatchShort      = "Rebuild whenever the source tree changes"
	MsgGenconfigShort  = "Print or write a starter configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgWatching        = "Watching %s for changes (Ctrl-C to stop)"
	MsgChanged         = "%d file(s) changed, rebuilding"
	MsgRebuilt         = "Wrote %d file(s) in %s"
	MsgUnresolvedNames = "Unresolved names: %s"
	MsgWatchStopped    = "Stopped watching"
	MsgConfigWritten   = "Wrote %s\n"
	MsgDestInSource    = "Output %s is inside the source; changes there are ignored"

	// Error messages
	MsgErrConfigExist     = "%s already exists"
	MsgErrDestHoldsSource = "cannot watch: output %s contains the source %s"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun  = "Compile without writing any files"
	MsgFlagConfig  = "Configuration file (default: splice.toml or splice.yaml in the working directory)"
	MsgFlagFormat  = "Output format: auto, term, text or json"
	MsgFlagSrc     = "Source file or directory (default ./src)"
	MsgFlagOut     = "Output root that --dest is resolved against (default .)"
	MsgFlagDest    = "Destination directory under the output root (default .)"
	MsgFlagData    = "Data value as key=value, repeatable"
	MsgFlagSyntax  = "Configuration syntax: toml or yaml"
	MsgFlagWrite   = "Write the configuration file instead of printing it"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/build-long.txt
	msgBuildLongRaw string
	MsgBuildLong    = strings.TrimSpace(msgBuildLongRaw)

	//go:embed msgs/build-example.txt
	msgBuildExampleRaw string
	MsgBuildExample    = strings.TrimRight(msgBuildExampleRaw, "\n")

	//go:embed msgs/watch-long.txt
	msgWatchLongRaw string
	MsgWatchLong    = strings.TrimSpace(msgWatchLongRaw)

	//go:embed msgs/genconfig-long.txt
	msgGenconfigLongRaw string
	MsgGenconfigLong    = strings.TrimSpace(msgGenconfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
