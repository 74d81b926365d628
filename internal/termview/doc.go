// Package termview runs a watch face in a terminal. View rasterizes each
// frame and paints it with half-block cells, two pixels per cell, and
// Controller turns key presses and clicks into engine events.
package termview
