// Package classify assigns a hue category to every pixel of a buffer.
//
// Classification is purely per-pixel: a pixel's category depends only on its
// own color, never on its neighbors. Colors are converted to HSV and matched
// against configurable hue ranges with saturation and value floors. Pixels
// whose hue is undefined (zero saturation) are always uncategorized, as are
// fully transparent pixels.
//
// The output Grid has the same dimensions as the input buffer, is owned by
// the analysis run that produced it, and is never mutated after creation.
//
// # Determinism
//
// Classification of large buffers is partitioned across worker goroutines by
// row. Each worker writes a disjoint row range, so the resulting grid is
// bit-identical regardless of worker count or scheduling.
package classify
