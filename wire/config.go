package wire

import (
	"os"
	"sync/atomic"

	jsoniter "github.com/json-iterator/go"
)

// JSON is the json-iterator configuration every Decoder and Encoder borrows
// its iterators and streams from. HTML characters are written as-is so that
// re-encoded strings match the input.
var JSON = jsoniter.Config{
	EscapeHTML:             false,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
}.Froze()

// Config controls optional decoding behaviors.
// The zero value is the default behavior.
type Config struct {
	// RequireNonEmpty: when true, sequences tagged `rtb:"required,nonempty"`
	// (BidRequest.imp) must be present with at least one element; absence or
	// emptiness fails with ErrEmptyRequiredSequence. When false (default) such
	// members only need to be present, so the default BidRequest round-trips
	// as {"id":"","imp":[]}.
	RequireNonEmpty bool
}

var config atomic.Pointer[Config]

// DefaultConfig returns the process-wide configuration used when a caller
// does not pass its own.
func DefaultConfig() Config { return *config.Load() }

// SetConfig sets the process-wide configuration. It is safe to call while
// other goroutines decode; decodes already running keep the configuration
// they started with.
func SetConfig(c Config) { config.Store(&c) }

func init() {
	var c Config
	// Optional env toggle for test harnesses; default remains unchanged if unset.
	if v := os.Getenv("OPENRTB_REQUIRE_NONEMPTY"); v == "1" || v == "true" {
		c.RequireNonEmpty = true
	}
	config.Store(&c)
}
