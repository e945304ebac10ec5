package serialization

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/born-ml/micrograd/internal/nn"
)

// ReadFrom reads a .born stream and rebuilds the network it describes.
//
// The fixed header, JSON header and checksum are validated before any
// parameter is loaded. Options are passed to nn.NewMLP; they only affect the
// throwaway initial values that the stored parameters overwrite.
func ReadFrom(r io.Reader, opts ...nn.Option) (*nn.MLP, Header, error) {
	header, data, err := readSections(r)
	if err != nil {
		return nil, Header{}, err
	}

	mlp, err := nn.NewMLP(header.InputSize, header.Layers, opts...)
	if err != nil {
		return nil, Header{}, fmt.Errorf("invalid architecture: %w", err)
	}
	if want := len(mlp.Parameters()); want != len(header.Parameters) {
		return nil, Header{}, fmt.Errorf("%w: architecture has %d, file has %d",
			ErrParameterCount, want, len(header.Parameters))
	}

	stateDict := make(map[string]float64, len(header.Parameters))
	for _, p := range header.Parameters {
		stateDict[p.Name] = math.Float64frombits(binary.LittleEndian.Uint64(data[p.Offset:]))
	}
	if err := mlp.LoadStateDict(stateDict); err != nil {
		return nil, Header{}, fmt.Errorf("failed to load parameters: %w", err)
	}

	return mlp, header, nil
}

// LoadFile reads the .born file at path.
func LoadFile(path string, opts ...nn.Option) (*nn.MLP, Header, error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for model loading
	file, err := os.Open(path)
	if err != nil {
		return nil, Header{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return ReadFrom(file, opts...)
}

// readSections parses the fixed header and JSON header, then reads and
// verifies the data section.
func readSections(r io.Reader) (Header, []byte, error) {
	var header Header

	fixed := make([]byte, FixedHeaderSize)
	if _, err := io.ReadFull(r, fixed); err != nil {
		return header, nil, fmt.Errorf("failed to read fixed header: %w", err)
	}

	// 0x00-0x03: magic
	if string(fixed[0:4]) != MagicBytes {
		return header, nil, ErrInvalidMagic
	}

	// 0x04-0x07: version
	if version := binary.LittleEndian.Uint32(fixed[4:8]); version != FormatVersion {
		return header, nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}

	// 0x10-0x17: header size, 0x18-0x1F: data size
	headerSize := binary.LittleEndian.Uint64(fixed[16:24])
	dataSize := binary.LittleEndian.Uint64(fixed[24:32])
	if headerSize > MaxHeaderSize {
		return header, nil, ErrHeaderTooLarge
	}
	if dataSize%ParameterSize != 0 || dataSize > math.MaxInt32*ParameterSize {
		return header, nil, &ValidationError{Type: "invalid_data_size", Details: fmt.Sprintf("%d bytes", dataSize)}
	}

	// 0x20-0x3F: SHA-256 checksum
	var stored [32]byte
	copy(stored[:], fixed[ChecksumOffset:ChecksumOffset+ChecksumSize])

	headerBytes := make([]byte, headerSize)
	if _, err := io.ReadFull(r, headerBytes); err != nil {
		return header, nil, fmt.Errorf("failed to read header JSON: %w", err)
	}
	if err := json.Unmarshal(headerBytes, &header); err != nil {
		return header, nil, fmt.Errorf("failed to parse header JSON: %w", err)
	}

	//nolint:gosec // G115: headerSize is bounded by MaxHeaderSize
	padding := dataOffset(int64(headerSize)) - FixedHeaderSize - int64(headerSize)
	if _, err := io.CopyN(io.Discard, r, padding); err != nil {
		return header, nil, fmt.Errorf("failed to skip padding: %w", err)
	}

	// The header is validated before the data section is allocated.
	//nolint:gosec // G115: dataSize is bounded above
	if err := ValidateHeader(&header, int64(dataSize)); err != nil {
		return header, nil, err
	}

	data := make([]byte, dataSize)
	if _, err := io.ReadFull(r, data); err != nil {
		return header, nil, fmt.Errorf("failed to read parameter data: %w", err)
	}
	if err := ValidateChecksum(ComputeChecksum(data), stored); err != nil {
		return header, nil, err
	}

	return header, data, nil
}
