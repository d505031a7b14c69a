// Package view turns image buffers into 8-bit byte snapshots for
// presentation and hands them to a Presenter. The core never opens
// windows itself: a Presenter receives an immutable snapshot plus
// dimensions and decides how to show it. PNGPresenter, which writes the
// snapshots as PNG files, is the default.
package view
