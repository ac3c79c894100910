package runner

import (
	"context"
	"fmt"

	"github.com/yaklabco/manify/internal/logging"
	"github.com/yaklabco/manify/pkg/fsutil"
	"github.com/yaklabco/manify/pkg/manify"
)

// Run performs one generation. It either consumes the entire input and
// writes all pages, or returns the first error; pages committed before the
// failure are not rolled back.
func Run(ctx context.Context, opts Options) (*Result, error) {
	logger := logging.FromContext(ctx)

	inputPath := opts.effectiveInput()
	input, err := fsutil.ReadFile(ctx, inputPath)
	if err != nil {
		return nil, fmt.Errorf("read input document: %w", err)
	}
	logger.Debug("input loaded",
		logging.FieldInput, inputPath,
		logging.FieldBytes, len(input),
	)

	pages := manify.NewDirPageStore(ctx, opts.pagesDir(), opts.Config.Section)
	gen, err := manify.New(opts.Config, pages)
	if err != nil {
		return nil, err
	}

	aggregate, err := gen.Generate(input)
	if err != nil {
		return nil, fmt.Errorf("generate pages: %w", err)
	}

	aggPath := opts.aggregatePath()
	if err := fsutil.WriteAtomic(ctx, aggPath, aggregate, 0); err != nil {
		return nil, fmt.Errorf("write aggregate page: %w", err)
	}
	logger.Debug("aggregate page written",
		logging.FieldOutput, aggPath,
		logging.FieldBytes, len(aggregate),
	)

	return &Result{
		AggregatePath: aggPath,
		PagePaths:     pages.Paths(),
		Symbols:       gen.Symbols(),
		Stats: Stats{
			InputBytes:     len(input),
			AggregateBytes: len(aggregate),
			SymbolPages:    len(pages.Paths()),
		},
	}, nil
}
