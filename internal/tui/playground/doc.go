// Package playground hosts slider engines in a terminal. Tracks are located
// with bubblezone marks; mouse presses, motion and releases become pointer
// events of a single mouse pointer positioned at cell centers.
package playground
