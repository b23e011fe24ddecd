// Package cli implements the sitemon command-line interface.
//
// Commands are cobra.Command values registered on rootCmd in init
// functions. Each RunE loads the configuration through loadConfig, which
// applies the persistent flag overrides (--interval, --timeout, --tick,
// --history, -o, --site) on top of the discovered config file and then
// validates the result.
//
// # Command Structure
//
//	sitemon             - Live dashboard (same as monitor)
//	sitemon monitor     - Live dashboard; one printed round without a TTY
//	sitemon check       - One probe round, exit 1 if any site is down
//	sitemon validate    - Validate config and list sites
//	sitemon init        - Create .sitemon.yaml
//	sitemon version     - Print build information
//	sitemon completion  - Shell completion scripts
//
// # Output
//
// Human output goes through the ui package. With --json, commands write a
// JSONEnvelope instead, and errors are reported in the same envelope.
// Commands that have already printed their result signal failure with an
// errors.ExitError so Execute only sets the exit code.
package cli
