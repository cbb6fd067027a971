// Package serializer turns published messages into bytes. Exactly one format
// is active per process.
package serializer

import (
	"fmt"

	"github.com/marko911/geyser-pulse/internal/serializer/flatbuf"
	"github.com/marko911/geyser-pulse/internal/serializer/textual"
	"github.com/marko911/geyser-pulse/pkg/geyser"
)

// Serializer encodes each message kind. Implementations are stateless and
// safe for concurrent use.
type Serializer interface {
	SerializeAccount(*geyser.AccountUpdate) ([]byte, error)
	SerializeMetadata(*geyser.MetadataNotify) ([]byte, error)
	SerializeTransaction(*geyser.TransactionNotify) ([]byte, error)
	SerializeNftOffChainData(*geyser.NftOffChainDataNotify) ([]byte, error)
	SerializeFinalizedSlot(geyser.FinalizedSlot) ([]byte, error)
}

// Format names a wire encoding.
type Format string

const (
	FormatFlatBuffers Format = "flatbuffers"
	FormatJSON        Format = "json"
)

// New returns the serializer for format. An empty format selects FlatBuffers.
func New(format Format) (Serializer, error) {
	switch format {
	case FormatFlatBuffers, "":
		return flatbuf.New(), nil
	case FormatJSON:
		return textual.New(), nil
	default:
		return nil, fmt.Errorf("unknown serializer format %q", format)
	}
}

// Encode serializes msg with the method matching its kind.
func Encode(s Serializer, msg geyser.Message) ([]byte, error) {
	switch m := msg.(type) {
	case *geyser.AccountUpdate:
		return s.SerializeAccount(m)
	case *geyser.TransactionNotify:
		return s.SerializeTransaction(m)
	case *geyser.MetadataNotify:
		return s.SerializeMetadata(m)
	case *geyser.NftOffChainDataNotify:
		return s.SerializeNftOffChainData(m)
	case geyser.FinalizedSlot:
		return s.SerializeFinalizedSlot(m)
	default:
		return nil, fmt.Errorf("serialize: unexpected message %T", msg)
	}
}
