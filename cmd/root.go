package cmd

import (
	"io"
	"os"

	"github.com/bendaprile/recifree-cli/internal/display"
	"github.com/bendaprile/recifree-cli/internal/list"
	"github.com/bendaprile/recifree-cli/internal/recipes"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	flagListFile string
	flagJSON     bool
	flagQuery    string
	flagTag      string
	flagLimit    int
	flagChecked  bool
	flagCopy     bool
)

var rootCmd = &cobra.Command{
	Use:   "recifree",
	Short: "Manage a grocery shopping list built from recipes",
	Long: "Terminal shopping list for the bundled recipe catalog.\n" +
		"Add whole recipes to the list, check items off as you shop, and view the\n" +
		"list merged and grouped by grocery-store aisle.\n\n" +
		"Agent-friendly mode: minor syntax issues are auto-corrected when intent is clear " +
		"(for example: -query soup, query=soup, --qeury soup).",
	Example: `  recifree
  recifree recipes --query soup
  recifree add tomato-basil-soup
  recifree aisles
  recifree export --copy`,
	RunE: runList,
}

func init() {
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagListFile, "list", "", "Path of the shopping-list file (default: user config dir)")
	pf.BoolVar(&flagJSON, "json", false, "Output as JSON")
}

// Execute runs the root command.
func Execute() {
	os.Exit(runCLI(os.Args[1:], os.Stdout, os.Stderr))
}

func runCLI(args []string, stdout, stderr io.Writer) int {
	resetCLIState()

	normalizedArgs, notes := normalizeCLIArgs(args)
	for _, note := range notes {
		display.PrintWarning(stderr, "note: "+note)
	}

	if shouldAutoJSON(normalizedArgs, isTTY(stdout)) {
		normalizedArgs = append(normalizedArgs, "--json")
	}

	setCommandIO(rootCmd, stdout, stderr)
	rootCmd.SetArgs(normalizedArgs)

	if err := rootCmd.Execute(); err != nil {
		cliErr := classifyCLIError(err)
		if hasJSONPreference(normalizedArgs) {
			if jerr := printCLIErrorJSON(stderr, cliErr); jerr != nil {
				display.PrintError(stderr, formatCLIErrorText(classifyCLIError(jerr)))
				return ExitInternal
			}
		} else {
			display.PrintError(stderr, formatCLIErrorText(cliErr))
		}
		return cliErr.ExitCode
	}
	return ExitSuccess
}

func setCommandIO(cmd *cobra.Command, stdout, stderr io.Writer) {
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	for _, child := range cmd.Commands() {
		setCommandIO(child, stdout, stderr)
	}
}

func resetCLIState() {
	flagListFile = ""
	flagJSON = false
	flagQuery = ""
	flagTag = ""
	flagLimit = 0
	flagChecked = false
	flagCopy = false
	resetHelpFlags(rootCmd)
}

// resetHelpFlags clears cobra's auto-registered --help flag on every command
// so a prior in-process invocation that requested help does not leak into the
// next runCLI call.
func resetHelpFlags(cmd *cobra.Command) {
	if f := cmd.Flags().Lookup("help"); f != nil {
		_ = f.Value.Set("false")
		f.Changed = false
	}
	for _, child := range cmd.Commands() {
		resetHelpFlags(child)
	}
}

func registerCatalogFilterFlags(f *pflag.FlagSet) {
	f.StringVarP(&flagQuery, "query", "q", "", "Search recipes by keyword in title/description/tags")
	f.StringVarP(&flagTag, "tag", "t", "", "Filter recipes by tag (e.g., vegetarian, weeknight)")
	f.IntVarP(&flagLimit, "limit", "n", 0, "Limit number of results (0 = all)")
}

// openStore loads the shopping list from disk. Load failures degrade to an
// empty list with a warning on stderr; they never abort the command.
func openStore(cmd *cobra.Command) (*list.Store, error) {
	path := flagListFile
	if path == "" {
		p, err := list.DefaultPath()
		if err != nil {
			return nil, internalError("locating shopping list", err)
		}
		path = p
	}
	return list.New(list.NewFileStore(path), cmd.ErrOrStderr()), nil
}

func openCatalog() (*recipes.Catalog, error) {
	c, err := recipes.Load()
	if err != nil {
		return nil, internalError("loading recipe catalog", err)
	}
	return c, nil
}

func runList(cmd *cobra.Command, _ []string) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}

	if flagJSON {
		return display.PrintListJSON(cmd.OutOrStdout(), store.Groups(), store.ItemCount())
	}
	if store.ItemCount() == 0 {
		display.PrintEmptyList(cmd.OutOrStdout())
		return nil
	}
	display.PrintList(cmd.OutOrStdout(), store.Groups(), store.ItemCount())
	return nil
}
