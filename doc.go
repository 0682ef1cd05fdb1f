// Command junctionbox wires 3-D junction boxes into a single circuit,
// shortest wires first.
//
// What is junctionbox?
//
//	A small Kruskal engine over the complete graph of a point set:
//		• geom/        — Point, Euclidean Distance, the "x,y,z" reader/writer
//		• candidates/  — every pair of boxes, eager sort or lazy min-heap
//		• disjointset/ — circuit tracking: union-find Forest or explicit Lists
//		• circuit/     — the step-by-step construction and its two checkpoints
//		• builder/     — deterministic point sets for tests and benchmarks
//		• config/, logging/, cmd/ — YAML config, slog setup, cobra CLI
//
// The two checkpoints
//
//   - Threshold: after K wires, the three largest circuits and the product
//     of their sizes.
//   - Final: the wire that joins everything into one circuit, and the
//     product of its endpoints' X coordinates.
//
// Quick start:
//
//	junctionbox generate --kind cloud --n 1000 --seed 7 -o boxes.txt
//	junctionbox solve --input boxes.txt --wires 1000
//
// solve counts every examined pair towards K by default, as the puzzle does.
// With --counting merges only wires that join two circuits count, and K must
// leave at least three circuits: at most n-3 for n boxes.
package main
