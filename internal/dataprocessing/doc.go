// Package dataprocessing provides the filter-then-aggregate pipeline
// behind the bikeshare analysis tool.
//
// The package is organized into three main components:
//
// 1. Parser: reads a city data file (CSV or Excel) into trip records
// 2. Processor: applies month/day filters and optional outlier removal
// 3. Analyzer: computes the four statistic categories
//
// A typical pass:
//
//	proc := dataprocessing.NewProcessor(cfg, logger)
//	ds, err := proc.Load(ctx, filter)
//	if err != nil {
//	    // report and return to the restart prompt
//	}
//	analyzer := dataprocessing.NewAnalyzer(logger, dataprocessing.AnalyzerConfig{})
//	times := analyzer.TimeStats(ctx, ds)
package dataprocessing
