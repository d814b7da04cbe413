// Package chart renders an integration run.
//
// [Render] draws the Euler, midpoint and exact curves with gonum/plot and
// writes a fixed-size PNG. [Terminal] draws the same curves as text for a
// quick look without leaving the shell.
//
// The y axis runs from the smallest Euler value to the largest exact
// value, see [Bounds]. Midpoint values outside that range are clipped.
package chart
