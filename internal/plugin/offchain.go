package plugin

import (
	"unicode/utf8"

	"github.com/gagliardetto/solana-go"
)

// MetadataProgramID owns token metadata accounts.
var MetadataProgramID = solana.MustPublicKeyFromBase58("metaqbxxUerdq28cj1RbAWkYQm3ybzjb6a8bt518x1s")

const (
	// metadataV1Key is the account discriminator of a MetadataV1 account.
	metadataV1Key = 4

	// The URI follows key, update authority, mint, the length-prefixed
	// name (32 bytes) and symbol (10 bytes), and its own length prefix.
	uriOffset = 1 + 32 + 32 + 4 + 32 + 4 + 10 + 4
	uriLen    = 200
)

// MetadataURI extracts the fixed-width URI field of a MetadataV1 account.
// The field is returned unmodified, NUL padding included. Short buffers,
// other account kinds and invalid UTF-8 report false.
func MetadataURI(data []byte) (string, bool) {
	if len(data) < uriOffset+uriLen || data[0] != metadataV1Key {
		return "", false
	}
	raw := data[uriOffset : uriOffset+uriLen]
	if !utf8.Valid(raw) {
		return "", false
	}
	return string(raw), true
}
