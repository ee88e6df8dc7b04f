// Package sourceenv reads prefixed environment variables as lowercase dot paths.
//
// Example:
//
//	vars := sourceenv.Load(sourceenv.Options{Prefix: "DKBASIC_"})
//	level := vars["log.level"] // from DKBASIC_LOG__LEVEL
package sourceenv
