package main

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	layout "github.com/grindlemire/go-layout"
	"github.com/grindlemire/go-layout/internal/scene"
	"github.com/grindlemire/go-layout/pkg/debug"
)

func newComputeCmd(a *app) *cobra.Command {
	var (
		noCache bool
		noRound bool
		jobs    int
	)

	cmd := &cobra.Command{
		Use:   "compute FILE...",
		Short: "Lay out one or more scene files (.yaml, .json, .toml)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, files []string) error {
			opts := []layout.Option{
				layout.WithLogger(debug.Logger()),
				layout.WithRounding(a.cfg.Layout.Rounding && !noRound),
			}
			if noCache || !a.cfg.Layout.Cache {
				opts = append(opts, layout.WithoutCache())
			}
			viewport := layout.Size[float64]{Width: a.cfg.Layout.Width, Height: a.cfg.Layout.Height}

			results, err := computeAll(cmd.Context(), files, viewport, jobs, opts)
			if err != nil {
				return err
			}
			if err := scene.Render(a.stdout, a.cfg.Output.Format, results...); err != nil {
				return systemError{err}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable layout memoization")
	cmd.Flags().BoolVar(&noRound, "no-round", false, "print fractional positions and sizes")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 4, "scenes laid out in parallel")
	return cmd
}

// computeAll lays out every file on its own tree, in parallel, and returns
// the results in argument order. The first failure cancels the rest.
func computeAll(ctx context.Context, files []string, viewport layout.Size[float64], jobs int, opts []layout.Option) ([]scene.Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	results := make([]scene.Result, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(jobs, 1))

	for i, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s, err := scene.Load(path)
			if err != nil {
				return err
			}
			b, err := scene.Build(s, viewport)
			if err != nil {
				return err
			}
			root, err := b.Compute(opts...)
			if err != nil {
				return err
			}
			debug.Logger().Debug("scene laid out",
				zap.String("file", path),
				zap.Int("nodes", b.Tree.Len()),
				zap.Int("computations", b.Tree.Stats().Computations),
			)
			results[i] = scene.Result{Scene: s.Name, Root: root}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
