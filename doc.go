// Package mappings validates and normalizes DK-BASIC input-mapping documents.
//
// Quick Start:
//
//	settings, err := sourcefile.Parse(ctx, "/boot/mappings.toml")
//	if err != nil {
//	    var perr *mappings.ParseError
//	    if errors.As(err, &perr) {
//	        fmt.Println(perr.Code)
//	    }
//	}
//
// A document looks like:
//
//	[global]
//	debounce = 200
//	combo_window = 300
//
//	[[freestyle]]
//	character = '$'
//	beats = ["BLB", "MIC"]
//	delays = [150]
//
// Beat tokens: BLB, FLB, BRB, FRB (bongos), SPB (start/pause), MIC (clap microphone).
//
// See example_test.go for detailed usage.
package mappings
