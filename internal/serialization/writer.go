package serialization

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/born-ml/micrograd/internal/nn"
)

// Version is the library version recorded in written headers.
const Version = "0.1.0"

// WriteTo writes the network's architecture and parameter values to w in
// .born format.
func WriteTo(w io.Writer, mlp *nn.MLP, metadata map[string]string) error {
	named := mlp.NamedParameters()

	header := Header{
		FormatVersion: FormatVersion,
		Version:       Version,
		ModelType:     ModelTypeMLP,
		CreatedAt:     time.Now().UTC(),
		InputSize:     mlp.NumInputs(),
		Layers:        mlp.Specs(),
		Parameters:    make([]ParameterMeta, len(named)),
		Metadata:      metadata,
	}
	if header.Metadata == nil {
		header.Metadata = make(map[string]string)
	}

	data := make([]byte, len(named)*ParameterSize)
	for i, p := range named {
		offset := i * ParameterSize
		header.Parameters[i] = ParameterMeta{Name: p.Name, Offset: int64(offset)}
		binary.LittleEndian.PutUint64(data[offset:], math.Float64bits(p.Value.Data()))
	}

	headerJSON, err := json.Marshal(header)
	if err != nil {
		return fmt.Errorf("failed to marshal header: %w", err)
	}

	flags := uint32(0)
	if len(header.Metadata) > 0 {
		flags |= FlagHasMetadata
	}

	fixed := make([]byte, FixedHeaderSize)
	copy(fixed[0:4], MagicBytes)
	binary.LittleEndian.PutUint32(fixed[4:8], FormatVersion)
	binary.LittleEndian.PutUint32(fixed[8:12], flags)
	binary.LittleEndian.PutUint64(fixed[16:24], uint64(len(headerJSON)))
	binary.LittleEndian.PutUint64(fixed[24:32], uint64(len(data)))
	checksum := ComputeChecksum(data)
	copy(fixed[ChecksumOffset:ChecksumOffset+ChecksumSize], checksum[:])

	var buf bytes.Buffer
	buf.Write(fixed)
	buf.Write(headerJSON)
	buf.Write(make([]byte, dataOffset(int64(len(headerJSON)))-int64(buf.Len())))
	buf.Write(data)

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write model: %w", err)
	}
	return nil
}

// SaveFile writes the network to path in .born format, replacing any
// existing file.
func SaveFile(path string, mlp *nn.MLP, metadata map[string]string) error {
	//nolint:gosec // G304: File path comes from user input, which is expected for model saving
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if err := WriteTo(file, mlp, metadata); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}
	return nil
}
