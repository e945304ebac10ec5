package serialization

import (
	"time"

	"github.com/born-ml/micrograd/internal/nn"
)

// Format constants.
const (
	MagicBytes       = "BORN"
	FormatVersion    = 2    // With SHA-256 checksum
	HeaderAlignment  = 64   // Align parameter data to 64 bytes
	FixedHeaderSize  = 64   // Fixed header size (0x40 bytes)
	ChecksumSize     = 32   // SHA-256 checksum size (32 bytes)
	ChecksumOffset   = 0x20 // Checksum offset in the fixed header
	ParameterSize    = 8    // Each parameter is one float64
	ModelTypeMLP     = "MLP"
	MaxHeaderSize    = 64 * 1024 * 1024 // 64MB
	MaxParameterName = 256
)

// Flags for the .born format.
const (
	FlagHasMetadata uint32 = 1 << 2 // bit 2: custom metadata included
)

// Header represents the JSON header in a .born file.
type Header struct {
	FormatVersion int               `json:"format_version"` // Version of the .born format
	Version       string            `json:"version"`        // Version of the library that wrote the file
	ModelType     string            `json:"model_type"`     // Always "MLP"
	CreatedAt     time.Time         `json:"created_at"`     // When the file was created
	InputSize     int               `json:"input_size"`     // Number of network inputs
	Layers        []nn.LayerSpec    `json:"layers"`         // Layer architecture
	Parameters    []ParameterMeta   `json:"parameters"`     // Parameter names and offsets
	Metadata      map[string]string `json:"metadata"`       // Custom metadata
}

// ParameterMeta locates one parameter in the data section.
type ParameterMeta struct {
	Name   string `json:"name"`   // Parameter name (e.g., "0.1.weight.2")
	Offset int64  `json:"offset"` // Byte offset in the data section
}

// dataOffset returns where parameter data starts for a JSON header of the
// given size.
func dataOffset(headerSize int64) int64 {
	pos := int64(FixedHeaderSize) + headerSize
	padding := (HeaderAlignment - (pos % HeaderAlignment)) % HeaderAlignment
	return pos + padding
}
