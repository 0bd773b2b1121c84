package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"xcm-generator/internal/analyze"
	"xcm-generator/internal/config"
	"xcm-generator/internal/gen"
	"xcm-generator/internal/log"
)

type rootFlags struct {
	configPath string
	logLevel   string
	logJSON    bool
	outputDir  string
	pkgName    string
	dryRun     bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:           "xcm-generator",
		Short:         "generates literal-shape conversions for cross-consensus addressing types",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := log.ParseLevel(flags.logLevel)
			if err != nil {
				return err
			}

			log.SetLogger(level, flags.logJSON, !color.NoColor)

			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "YAML or TOML settings file")
	pf.StringVar(&flags.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	pf.BoolVar(&flags.logJSON, "log-json", false, "log in JSON format")
	pf.StringVarP(&flags.outputDir, "out", "o", "", "output directory, overrides the settings file")
	pf.StringVarP(&flags.pkgName, "pkg", "p", "", "generated package name, overrides the settings file")
	pf.BoolVar(&flags.dryRun, "dry-run", false, "print generated code instead of writing files")

	root.AddCommand(
		newGenerateCmd(flags, "location", "generate conversions into Location",
			func(g *gen.Generator, args []string) ([]gen.GeneratedFile, error) {
				f, err := g.Location(args...)
				if err != nil {
					return nil, err
				}

				return []gen.GeneratedFile{*f}, nil
			}),
		newGenerateCmd(flags, "junctions", "generate tuple conversions into Junctions and the v4 migration",
			func(g *gen.Generator, args []string) ([]gen.GeneratedFile, error) {
				f, err := g.Junctions(args...)
				if err != nil {
					return nil, err
				}

				return []gen.GeneratedFile{*f}, nil
			}),
		newGenerateCmd(flags, "all", "generate every component",
			func(g *gen.Generator, args []string) ([]gen.GeneratedFile, error) {
				return g.All(args...)
			}),
		newCheckCmd(flags),
		newConfigCmd(flags),
	)

	return root
}

// loadConfig reads the settings file if any and applies flag overrides.
func (f *rootFlags) loadConfig() (*config.Config, error) {
	cfg := config.Default()

	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return nil, err
		}

		cfg = loaded
	}

	if f.outputDir != "" {
		cfg.OutputDir = f.outputDir
	}

	if f.pkgName != "" {
		cfg.Package = f.pkgName
	}

	return cfg, nil
}

type generateFunc func(g *gen.Generator, args []string) ([]gen.GeneratedFile, error)

// newGenerateCmd builds a component command. Components take no arguments;
// they are passed through so the generator reports the usage error.
func newGenerateCmd(flags *rootFlags, use, short string, run generateFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.loadConfig()
			if err != nil {
				return err
			}

			genCfg, err := cfg.GeneratorConfig()
			if err != nil {
				return err
			}

			files, err := run(gen.NewGenerator(genCfg), args)
			if err != nil {
				return err
			}

			if flags.dryRun {
				for _, f := range files {
					fmt.Fprintf(cmd.OutOrStdout(), "// %s\n%s", f.Filename, f.Content)
				}

				return nil
			}

			return gen.WriteFiles(files, genCfg.OutputDir)
		},
	}
}

var (
	okStyle   = color.New(color.FgGreen)
	failStyle = color.New(color.FgRed, color.Bold)
)

func newCheckCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check [packages]",
		Short: "check that packages declare what the generated conversions refer to",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.loadConfig()
			if err != nil {
				return err
			}

			genCfg, err := cfg.GeneratorConfig()
			if err != nil {
				return err
			}

			reports, err := analyze.NewChecker(genCfg.Previous.Alias, "").Check(args...)
			if err != nil {
				return err
			}

			failed := 0

			for _, r := range reports {
				for _, d := range r.Diagnostics.Warnings {
					log.Warn(d.String())
				}

				for _, d := range r.Diagnostics.Errors {
					log.Error(d.String())
				}

				for _, d := range r.Diagnostics.Infos {
					log.Debug(d.String())
				}

				status := okStyle.Sprint("ok")
				if !r.Diagnostics.IsValid() {
					status = failStyle.Sprint("FAIL")
					failed++
				}

				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s: %d generated conversions, %d errors, %d warnings\n",
					status, r.PkgPath, r.Generated, len(r.Diagnostics.Errors), len(r.Diagnostics.Warnings))
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d packages failed the check", failed, len(reports))
			}

			return nil
		},
	}
}

func newConfigCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "print the effective settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flags.loadConfig()
			if err != nil {
				return err
			}

			b, err := config.Marshal(cfg)
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(b)

			return err
		},
	}
}
