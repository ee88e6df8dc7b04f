// Package main hosts the dkbasic CLI entrypoint and command graph.
//
// If the utility runs on DK-BASIC hardware it should be invoked with
// "apply"; anywhere else "validate" checks a mappings file before it is
// copied to the device. Parsing lives in the mappings package; this package
// only resolves flags, sets up logging and reports results.
package main
