package openrtb

import (
	"fmt"
	"io"
	"reflect"

	"go.uber.org/zap"

	"github.com/anirudhraja/openrtb/registry"
	"github.com/anirudhraja/openrtb/wire"
)

// ===== CODEC API =====

// Codec decodes and encodes OpenRTB documents. A Codec is safe for
// concurrent use; descriptors are built once per Go type and cached.
type Codec struct {
	registry *registry.Registry
	config   wire.Config
	logger   *zap.Logger
}

// Option configures a Codec
type Option func(*Codec)

// WithLogger sets the logger decode failures are reported to at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Codec) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithRegistry shares a descriptor registry between codecs.
func WithRegistry(r *registry.Registry) Option {
	return func(c *Codec) {
		if r != nil {
			c.registry = r
		}
	}
}

// WithStrict requires sequences marked nonempty (BidRequest.imp) to hold at
// least one element.
func WithStrict() Option {
	return func(c *Codec) { c.config.RequireNonEmpty = true }
}

// WithConfig replaces the wire configuration.
func WithConfig(config wire.Config) Option {
	return func(c *Codec) { c.config = config }
}

// New creates a new Codec
func New(opts ...Option) *Codec {
	c := &Codec{
		registry: registry.NewRegistry(),
		config:   wire.DefaultConfig(),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Unmarshal decodes data into v, a pointer to an OpenRTB object. v is left
// untouched when decoding fails.
func (c *Codec) Unmarshal(data []byte, v interface{}) error {
	return c.unmarshal(data, v, c.config)
}

func (c *Codec) unmarshal(data []byte, v interface{}, config wire.Config) error {
	err := wire.DecodeMessage(data, v, c.registry, config)
	if err != nil {
		c.logger.Debug("decode failed",
			zap.String("type", typeName(v)),
			zap.String("path", wire.PathOf(err)),
			zap.Error(err),
		)
	}
	return err
}

// Marshal encodes v, an OpenRTB object or a pointer to one.
func (c *Codec) Marshal(v interface{}) ([]byte, error) {
	data, err := wire.EncodeMessage(v, c.registry)
	if err != nil {
		c.logger.Warn("encode failed", zap.String("type", typeName(v)), zap.Error(err))
	}
	return data, err
}

// DecodeBidRequest decodes a bid request document
func (c *Codec) DecodeBidRequest(data []byte) (*BidRequest, error) {
	var req BidRequest
	if err := c.Unmarshal(data, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

// EncodeBidRequest encodes a bid request document
func (c *Codec) EncodeBidRequest(req *BidRequest) ([]byte, error) {
	if req == nil {
		return nil, fmt.Errorf("encode: nil bid request")
	}
	return c.Marshal(req)
}

// DecodeReader reads a whole bid request document from r
func (c *Codec) DecodeReader(r io.Reader) (*BidRequest, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read bid request: %w", err)
	}
	return c.DecodeBidRequest(data)
}

func typeName(v interface{}) string {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil {
		return "<nil>"
	}
	return t.Name()
}

// ===== DEFAULT CODEC =====

var defaultCodec = New()

// Unmarshal decodes data into v with the default codec and the process-wide
// wire configuration.
func Unmarshal(data []byte, v interface{}) error {
	return defaultCodec.unmarshal(data, v, wire.DefaultConfig())
}

// Marshal encodes v with the default codec.
func Marshal(v interface{}) ([]byte, error) {
	return defaultCodec.Marshal(v)
}

// ===== REGISTRY ACCESS =====

func (c *Codec) GetRegistry() *registry.Registry { return c.registry }

// ListMessages registers the bid request object tree and returns the names
// of all known objects.
func (c *Codec) ListMessages() ([]string, error) {
	if err := c.registry.Register(BidRequest{}); err != nil {
		return nil, err
	}
	return c.registry.ListMessages(), nil
}
