package cli

import (
	"fmt"
	"os"

	"github.com/arthur-debert/markbind/internal/version"
	"github.com/arthur-debert/markbind/pkg/commands/genconfig"
	"github.com/arthur-debert/markbind/pkg/commands/markers"
	"github.com/arthur-debert/markbind/pkg/commands/render"
	"github.com/arthur-debert/markbind/pkg/logging"
	"github.com/arthur-debert/markbind/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	var verbosity int

	rootCmd := &cobra.Command{
		Use:     "markbind",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoCommand)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newMarkersCmd())
	rootCmd.AddCommand(newGenConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	return rootCmd
}

// documentFlags are shared by render and markers.
type documentFlags struct {
	root        string
	valueFiles  []string
	assignments []string
	format      string
	isolate     bool
	shallow     bool
	allAttrs    bool
}

func (f *documentFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.root, "root", "r", "", MsgFlagRoot)
	cmd.Flags().StringArrayVarP(&f.valueFiles, "values", "f", nil, MsgFlagValues)
	cmd.Flags().StringArrayVarP(&f.assignments, "set", "s", nil, MsgFlagSet)
	cmd.Flags().StringVar(&f.format, "format", "", MsgFlagFormat)
	cmd.Flags().BoolVar(&f.isolate, "isolate", false, MsgFlagIsolate)
	cmd.Flags().BoolVar(&f.shallow, "shallow", false, MsgFlagShallow)
	cmd.Flags().BoolVar(&f.allAttrs, "all-attrs", false, MsgFlagAllAttrs)
}

// selector is nil unless --root was given, so an explicit empty root
// still overrides document.selector.
func (f *documentFlags) selector(cmd *cobra.Command) *string {
	if !cmd.Flags().Changed("root") {
		return nil
	}
	return &f.root
}

// overrides maps changed flags onto config keys.
func (f *documentFlags) overrides(cmd *cobra.Command) map[string]interface{} {
	o := map[string]interface{}{}
	flags := cmd.Flags()
	if flags.Changed("format") {
		o["document.format"] = f.format
	}
	if flags.Changed("isolate") {
		o["scan.isolate_markers"] = f.isolate
	}
	if flags.Changed("shallow") {
		o["scan.recursive"] = !f.shallow
	}
	if flags.Changed("all-attrs") {
		o["scan.all_attribute_markers"] = f.allAttrs
	}
	return o
}

func newRenderCmd() *cobra.Command {
	var (
		doc         documentFlags
		out         string
		inPlace     bool
		indent      int
		stripMarkup bool
	)

	cmd := &cobra.Command{
		Use:     "render <file>",
		Short:   MsgRenderShort,
		Long:    MsgRenderLong,
		Example: MsgRenderExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides := doc.overrides(cmd)
			if cmd.Flags().Changed("indent") {
				overrides["output.indent"] = indent
			}
			if cmd.Flags().Changed("strip-markup") {
				overrides["values.strip_markup"] = stripMarkup
			}

			log.Info().
				Str("path", args[0]).
				Bool("in_place", inPlace).
				Msg("Rendering document")

			result, err := render.Render(render.RenderOptions{
				Path:        args[0],
				Selector:    doc.selector(cmd),
				ValueFiles:  doc.valueFiles,
				Assignments: doc.assignments,
				OutPath:     out,
				InPlace:     inPlace,
				Writer:      cmd.OutOrStdout(),
				Overrides:   overrides,
			})
			if err != nil {
				return fmt.Errorf(MsgErrRender, args[0], err)
			}

			if result.Destination != "-" {
				fmt.Fprintf(cmd.ErrOrStderr(), MsgRendered, result.Source, result.Destination)
			}
			return nil
		},
	}

	doc.register(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "", MsgFlagOut)
	cmd.Flags().BoolVarP(&inPlace, "in-place", "i", false, MsgFlagInPlace)
	cmd.Flags().IntVar(&indent, "indent", 0, MsgFlagIndent)
	cmd.Flags().BoolVar(&stripMarkup, "strip-markup", false, MsgFlagStripMarkup)
	cmd.MarkFlagsMutuallyExclusive("out", "in-place")
	return cmd
}

func newMarkersCmd() *cobra.Command {
	var (
		doc    documentFlags
		output string
	)

	cmd := &cobra.Command{
		Use:     "markers <file>",
		Short:   MsgMarkersShort,
		Example: MsgMarkersExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides := doc.overrides(cmd)
			if cmd.Flags().Changed("output") {
				format, err := ui.ParseFormat(output)
				if err != nil {
					return fmt.Errorf(MsgErrOutputFormat, err)
				}
				overrides["output.format"] = string(format)
			}

			result, err := markers.ListMarkers(markers.ListMarkersOptions{
				Path:        args[0],
				Selector:    doc.selector(cmd),
				ValueFiles:  doc.valueFiles,
				Assignments: doc.assignments,
				Overrides:   overrides,
			})
			if err != nil {
				return fmt.Errorf(MsgErrMarkers, args[0], err)
			}

			format, err := ui.ParseFormat(result.OutputFormat)
			if err != nil {
				return fmt.Errorf(MsgErrOutputFormat, err)
			}
			renderer, err := ui.NewRenderer(format, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return renderer.RenderResult(result.Report)
		},
	}

	doc.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "O", "", MsgFlagOutput)
	return cmd
}

func newGenConfigCmd() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:     "gen-config",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := genconfig.GenConfig(genconfig.GenConfigOptions{Write: write})
			if err != nil {
				return err
			}
			if !write {
				_, err := fmt.Fprint(cmd.OutOrStdout(), result.ConfigContent)
				return err
			}
			for _, path := range result.FilesWritten {
				fmt.Fprintf(cmd.OutOrStdout(), MsgConfigWritten, path)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "markbind version %s\n", version.Version)
			if version.Commit != "unknown" {
				fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", version.Commit)
			}
			if version.Date != "unknown" {
				fmt.Fprintf(cmd.OutOrStdout(), "  built:  %s\n", version.Date)
			}
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "man [dir]",
		Short:   MsgManShort,
		GroupID: "misc",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf(MsgErrManPages, dir, err)
			}
			header := &doc.GenManHeader{
				Title:   "MARKBIND",
				Section: "1",
			}
			if err := doc.GenManTree(cmd.Root(), header, dir); err != nil {
				return fmt.Errorf(MsgErrManPages, dir, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgManWritten, dir)
			return nil
		},
	}
}
