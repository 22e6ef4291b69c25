package main

import (
	"fmt"

	"github.com/spf13/cobra"

	layout "github.com/grindlemire/go-layout"
)

func newTracksCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tracks LIST",
		Short: "Parse a grid track list and print one track per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			tracks, err := layout.ParseTrackList(args[0])
			if err != nil {
				return err
			}
			for i, t := range tracks {
				if _, err := fmt.Fprintf(a.stdout, "%d\t%s\n", i+1, t); err != nil {
					return systemError{err}
				}
			}
			return nil
		},
	}
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			_, err := fmt.Fprintf(a.stdout, "layoutctl %s\n", version)
			if err != nil {
				return systemError{err}
			}
			return nil
		},
	}
}
