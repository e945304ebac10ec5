// Package serialization provides the .born format for saving and loading
// network parameters.
//
// The format keeps the layout of Born's v2 model files:
//
//	Format Structure:
//	  [0x00: 4 bytes: Magic "BORN"]
//	  [0x04: 4 bytes: Version (uint32 LE)]
//	  [0x08: 4 bytes: Flags (uint32 LE)]
//	  [0x0C: 4 bytes: Reserved]
//	  [0x10: 8 bytes: Header Size (uint64 LE)]
//	  [0x18: 8 bytes: Data Size (uint64 LE)]
//	  [0x20: 32 bytes: SHA-256 of the data section]
//	  [0x40: Header: JSON metadata (architecture, parameter names and offsets)]
//	  [Parameter data: float64 LE, 64-byte aligned]
//
// Example usage:
//
//	// Save a network
//	if err := serialization.SaveFile("model.born", mlp, map[string]string{"epoch": "10"}); err != nil {
//	    log.Fatal(err)
//	}
//
//	// Load it back
//	mlp, header, err := serialization.LoadFile("model.born")
//	if err != nil {
//	    log.Fatal(err)
//	}
package serialization
