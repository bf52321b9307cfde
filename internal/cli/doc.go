// Package cli implements the retry command line.
//
// # Flags and Precedence
//
// Every backoff setting can come from a flag, a RETRY_* environment variable,
// the YAML config file or the built-in default, in that order. Flag parsing
// stops at the first positional argument, so the supervised command keeps its
// own flags:
//
//	retry -n 5 -m fixed -d 2s -- curl -fsS -o /dev/null http://localhost/health
//
// The names --retries, --duration and --method are accepted as aliases of
// --attempts, --min-delay and --strategy. --retries takes the total number of
// runs like --attempts, so "--retries 3" launches at most three times, one
// fewer than when it counted only the runs after the first.
//
// # Output
//
// The child inherits stdin, stdout and stderr. Between failed attempts the
// command prints "failed, retrying..." on stderr, and a final failure is
// reported as "retry failed: <message>" with exit status 1. Colours are only
// used when stderr is a terminal.
//
// --dry-run prints the schedule as a table and exits without launching.
package cli
