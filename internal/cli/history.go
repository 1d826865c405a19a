package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/barlingo/mandelplane/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	RunID string
	Kind  string
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List journaled computations",
		Long: `List the computations recorded in the journal, ordered by run and
sequence number.

Example:
  mandelplane history --db ./mandelplane.db
  mandelplane history --db ./mandelplane.db --kind escape --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.RunID, "run", "", "only show records of this run ID")
	cmd.Flags().StringVar(&opts.Kind, "kind", "", "only show records of this kind (gcd|pair|point|escape|grid)")

	return cmd
}

func runHistory(opts *HistoryOptions, cmd *cobra.Command) error {
	s, err := openSession(opts.RootOptions, cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	if s.journal == nil {
		return s.out.Fail(ExitCommandError, ErrCodeStore, "history needs a journal: pass --db or set database in the config file")
	}

	records, err := s.journal.List(s.ctx, store.Filter{RunID: opts.RunID, Kind: opts.Kind})
	if err != nil {
		return s.out.FailWrap(ExitCommandError, ErrCodeStore, "reading journal", err)
	}
	s.out.VerboseLog("Found %d record(s)", len(records))

	var text strings.Builder
	for _, r := range records {
		fmt.Fprintf(&text, "%s #%d %s %s -> %s\n", r.RunID, r.Seq, r.Kind, formatFields(r.Input), formatFields(r.Output))
	}

	return s.out.Success(records, text.String())
}

// formatFields renders a map as space-separated key=value pairs in key order.
func formatFields(m map[string]string) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + m[k]
	}
	return strings.Join(parts, " ")
}
