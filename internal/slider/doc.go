// Package slider implements the pointer interaction engine behind a draggable
// slider control.
//
// # Overview
//
// An Engine turns raw pointer input into a committed numeric value (single
// mode) or a two-sided range (range mode). It is host agnostic: the element
// measurements and pointer capture come from a Host, and every commit is
// published synchronously through the callback installed with WithOnChange.
//
// # Pipeline
//
// A pointer-down resolves a position along the track (Geometry), opens a drag
// Session, and each pointer-move converts the pixel delta from the session
// anchor into a value delta. Every candidate value passes through
// Bounds.Normalize (clamp, then snap to the value list when one is set) before
// it is committed. In range mode the endpoints are kept ordered on every
// commit.
//
// # Geometry
//
// A single thumb's center travels within [thumb/2, width-thumb/2]. In range
// mode the facing edges of the two thumbs travel within [thumb, width-thumb]
// so neither thumb overlaps the other's half. EdgeDirection selects which
// reference point a percentage is reported for.
//
// # Concurrency
//
// An Engine is not safe for concurrent use. Hosts deliver events serially;
// events carrying a pointer id other than the session owner's are ignored.
package slider
