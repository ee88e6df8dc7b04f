// Package device hands validated settings to the DK-BASIC peripheral.
//
// The peripheral picks up its settings from a JSON snapshot on its settings
// volume; Applier writes that snapshot atomically while holding an exclusive
// lock so concurrent applies never interleave.
package device
