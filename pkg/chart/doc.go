// Package chart defines the wire format for chartcore datasets and layouts.
//
// This package sits at the serialization boundary between files and the
// engine packages:
//
//   - [Dataset]: the input union, discriminated by [Kind]
//   - [Layout]: the output union, holding whichever geometry or statistics
//     the kind produces
//
// # Datasets
//
// Datasets are JSON or TOML documents, chosen by file extension:
//
//	{
//	  "kind": "pie",
//	  "points": [{"label": "a", "value": 3}, {"label": "b", "value": 1}]
//	}
//
//	kind = "treemap"
//	[root]
//	name = "disk"
//	[[root.children]]
//	name = "docs"
//	value = 120
//
// Which fields a dataset must carry depends on its kind; see
// [Dataset.Validate].
//
// Common operations:
//
//	ds, _ := chart.ReadDatasetFile("sales.toml")
//	data, _ := chart.MarshalLayout(layout)
//	l, _ := chart.UnmarshalLayout(data)
//
// # Layouts
//
// A [Layout] always carries Kind, ID and the canvas size. Exactly one group of
// result fields is populated per kind:
//
//	stats                 Summary, Ticks, Regression
//	density               Density
//	histogram             Bins
//	treemap               Rects
//	pie, gauge, sunburst  Segments
//	chord                 Chord
//	sankey                Sankey
//	wordcloud             Words
//	scatter               Clusters
package chart
