package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ppiankov/storylint/internal/wordlist"
)

var wordsOverwrite bool

// Short names accepted by "words add"
var listAliases = map[string]string{
	"noun":       wordlist.NounExceptions,
	"verb":       wordlist.VerbExceptions,
	"ambivalent": wordlist.VerbNounExceptions,
}

// wordsCmd represents the words command
var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Manage the word lists",
	Long: `Manage the exception and term lists used by the analysers.

Lists:
  noun_exceptions       words never counted as nouns when "I" is ignored (noun)
  verb_exceptions       words always tagged as nouns, never verbs (verb)
  verb_noun_exceptions  domain words that may be a noun or a verb (ambivalent)
  vague_terms, escape_clauses, quantifiers, weak_verbs  (read-only)

Word lists are read from wordlists.dir; export the built-in lists with
"storylint words init <dir>" before adding words.`,
}

var wordsAddCmd = &cobra.Command{
	Use:   "add <noun|verb|ambivalent> <word>",
	Short: "Add a word to an exception list",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		name, err := resolveList(args[0])
		if err != nil {
			return err
		}
		if cfg.WordLists.Dir == "" {
			return errors.New("wordlists.dir is not set: run 'storylint words init <dir>' and configure it")
		}

		store := wordlist.NewFileStore(cfg.WordLists.Dir, logger.Named("wordlist"))
		defer func() { _ = store.Close() }()

		if err := store.Append(name, args[1]); err != nil {
			return fmt.Errorf("add word: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✓ Added %q to %s\n", strings.ToLower(strings.TrimSpace(args[1])), store.Path(name))
		return nil
	},
}

var wordsListCmd = &cobra.Command{
	Use:   "list <list>",
	Short: "Print a word list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		name, err := resolveList(args[0])
		if err != nil {
			return err
		}

		var store wordlist.Store
		if cfg.WordLists.Dir == "" {
			if store, err = wordlist.NewDefaultStore(); err != nil {
				return fmt.Errorf("load built-in word lists: %w", err)
			}
		} else {
			fs := wordlist.NewFileStore(cfg.WordLists.Dir, logger.Named("wordlist"))
			defer func() { _ = fs.Close() }()
			store = fs
		}

		out := cmd.OutOrStdout()
		for _, word := range store.Get(name) {
			fmt.Fprintln(out, word)
		}
		return nil
	},
}

var wordsInitCmd = &cobra.Command{
	Use:   "init <dir>",
	Short: "Export the built-in word lists to a directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		written, err := wordlist.WriteDefaults(args[0], wordsOverwrite)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(written) == 0 {
			fmt.Fprintf(out, "All word lists already exist in %s (use --overwrite to replace them)\n", args[0])
			return nil
		}
		for _, path := range written {
			fmt.Fprintf(out, "✓ %s\n", path)
		}
		fmt.Fprintf(out, "\nSet wordlists.dir to %s to use them.\n", args[0])
		return nil
	},
}

// resolveList maps an alias or full list name to a list name
func resolveList(arg string) (string, error) {
	arg = strings.ToLower(strings.TrimSpace(arg))
	if name, ok := listAliases[arg]; ok {
		return name, nil
	}
	if wordlist.Known(arg) {
		return arg, nil
	}
	return "", fmt.Errorf("%w: %s", wordlist.ErrUnknownList, arg)
}

func init() {
	rootCmd.AddCommand(wordsCmd)
	wordsCmd.AddCommand(wordsAddCmd)
	wordsCmd.AddCommand(wordsListCmd)
	wordsCmd.AddCommand(wordsInitCmd)

	wordsInitCmd.Flags().BoolVar(&wordsOverwrite, "overwrite", false, "replace existing list files")
}
