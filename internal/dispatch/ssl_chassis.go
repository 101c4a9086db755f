package dispatch

import "strings"

type chassisDefault struct {
	Provider string
	Type     string
}

// sslChassisDefaults maps a steamship line to the chassis pool it normally
// interchanges with. Used only for container loads, and only when the
// caller did not supply a chassis provider/type explicitly.
var sslChassisDefaults = map[string]chassisDefault{
	"maersk":      {Provider: "DCLI", Type: "40ft Standard"},
	"msc":         {Provider: "TRAC", Type: "40ft Standard"},
	"cma cgm":     {Provider: "DCLI", Type: "40ft Standard"},
	"cosco":       {Provider: "TRAC", Type: "40ft Standard"},
	"evergreen":   {Provider: "FlexiVan", Type: "40ft Standard"},
	"hapag-lloyd": {Provider: "TRAC", Type: "40ft Standard"},
	"one":         {Provider: "DCLI", Type: "40ft Standard"},
	"yang ming":   {Provider: "FlexiVan", Type: "40ft Standard"},
	"zim":         {Provider: "TRAC", Type: "20ft Standard"},
	"hmm":         {Provider: "FlexiVan", Type: "40ft Standard"},
}

// lookupChassisDefaults resolves the default chassis for a steamship line.
// The match is case-insensitive; unknown lines return ok=false and the load
// keeps whatever the caller sent.
func lookupChassisDefaults(ssl string) (chassisDefault, bool) {
	d, ok := sslChassisDefaults[strings.ToLower(strings.TrimSpace(ssl))]
	return d, ok
}
