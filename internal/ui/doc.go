// Package ui implements the terminal interface for lux using the
// Bubble Tea framework.
//
// The interface has two layers: a thumbnail grid backed by the image
// library, and a lightbox overlay that cross-fades between images as
// the user navigates. The lightbox's open/close and fade behavior is
// driven by the gallery state machine and its animation timelines;
// this package only projects that state onto the screen.
//
// Rendering follows the Elm architecture: Model holds all state,
// Update handles messages, View renders the interface. Images are
// decoded off the update loop via commands and cached as color grids.
package ui
