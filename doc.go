// Package timeseg is your in-memory toolkit for annotating time series —
// detecting change points and anomalies, and moving those annotations
// between sparse and dense representations.
//
// 🚀 What is timeseg?
//
//	A small, focused library that brings together:
//		• series/     — validated, integer-indexed numeric sequences + CSV I/O
//		• annotation/ — sparse ⇄ dense conversion for points, segments and
//		  legacy start-only segments, with exact boundary semantics
//		• binseg/     — binary segmentation change point detection driven
//		  by the CUSUM statistic
//		• annotator/  — the shared estimator lifecycle: fit/predict/update,
//		  task tags, and output-shape conversion
//
// ✨ Why choose timeseg?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Exact semantics – every boundary case of the sparse/dense protocol
//     is pinned by tests
//   - Extensible – plug any detector behind the annotator capability
//     interfaces
//
// Quick ASCII example:
//
//	value ▲           ████████
//	      │           ▒
//	      │ ██████████▒
//	      └───────────┴────────▶ time
//	             change point
//
// A mean shift like the one above is scored with the CUSUM statistic and
// reported as a change point; each accepted split is then searched again
// on both sides independently.
//
//	go get github.com/katalvlaran/timeseg
package timeseg
