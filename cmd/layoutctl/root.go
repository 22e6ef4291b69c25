package main

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/grindlemire/go-layout/internal/config"
	"github.com/grindlemire/go-layout/pkg/debug"
)

// app carries state shared by subcommands after PersistentPreRunE.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     config.Config
	stdout  io.Writer
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{v: config.New(), stdout: stdout}

	root := &cobra.Command{
		Use:           "layoutctl",
		Short:         "Compute CSS flexbox and grid layouts for scene files",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(a.v, a.cfgFile)
			if err != nil {
				return err
			}
			a.cfg = cfg
			if err := debug.Init(cfg.Log.Debug()); err != nil {
				return systemError{err}
			}
			if used := a.v.ConfigFileUsed(); used != "" {
				debug.Logf("config loaded from %s", used)
			}
			return nil
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return debug.Close()
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetVersionTemplate("layoutctl {{.Version}}\n")

	flags := root.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "", "config file (default ./layoutctl.yaml)")
	flags.StringP("output", "o", config.FormatTree, "output format: tree, json, yaml or ascii")
	flags.String("log-level", "warn", "log level: debug, info, warn or error")
	_ = a.v.BindPFlag("output.format", flags.Lookup("output"))
	_ = a.v.BindPFlag("log.level", flags.Lookup("log-level"))

	root.AddCommand(newComputeCmd(a), newTracksCmd(a), newVersionCmd(a))
	return root
}
