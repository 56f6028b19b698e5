package usaspending

import (
	"usaspending-client/lib/restyutil"

	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("usaspending")
var restyInstrumentOutput restyutil.InstrumentOutput

// SetRestyInstrumentOutput must be called before NewClient for the
// output to take effect.
func SetRestyInstrumentOutput(out restyutil.InstrumentOutput) {
	restyInstrumentOutput = out
}
