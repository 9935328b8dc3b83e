package cli

var (
	Version   = ""
	CommitSHA = ""
)

// Globals defines global flags available to all commands.
type Globals struct {
	Telemetry bool `help:"Show timing telemetry for operations."`
}

type Commands struct {
	Globals

	Check  CheckCmd  `cmd:"" help:"Lex a filter expression and report scan failures."`
	Tokens TokensCmd `cmd:"" help:"Dump the token stream of a filter expression."`
	Watch  WatchCmd  `cmd:"" help:"Watch a filter file and re-check it on change."`
}
