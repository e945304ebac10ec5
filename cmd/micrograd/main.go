// Package main provides the micrograd CLI.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"maps"
	"math/rand"
	"os"
	"slices"
	"time"

	"github.com/born-ml/micrograd/internal/nn"
	"github.com/born-ml/micrograd/internal/serialization"
)

const version = "v0.1.0"

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "micrograd: %v\n", err)
		os.Exit(1)
	}
}

var errUsage = errors.New("usage: micrograd <version|init|inspect> [flags]")

func run(args []string, stdout io.Writer) error {
	if len(args) == 0 {
		printUsage(stdout)
		return nil
	}

	switch args[0] {
	case "version":
		fmt.Fprintf(stdout, "micrograd %s\n", version)
		return nil
	case "init":
		return runInit(args[1:], stdout)
	case "inspect":
		return runInspect(args[1:], stdout)
	case "help", "-h", "--help":
		printUsage(stdout)
		return nil
	default:
		return fmt.Errorf("unknown command %q\n%w", args[0], errUsage)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "micrograd - scalar autodiff and multi-layer perceptrons")
	fmt.Fprintf(w, "Version: %s\n\n", version)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version    Show version")
	fmt.Fprintln(w, "  init       Create a randomly initialized network file")
	fmt.Fprintln(w, "  inspect    Describe a network file")
}

// runInit creates a network from flags and writes it to a .born file.
func runInit(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	inputs := fs.Int("inputs", 3, "number of network inputs")
	layers := fs.String("layers", "4:tanh,4:tanh,1:tanh", "comma-separated <neurons>[:<activation>] layer list")
	seed := fs.Int64("seed", 0, "random seed for initialization (0 uses the current time)")
	out := fs.String("o", "model.born", "output file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	specs, err := nn.ParseLayerSpecs(*layers)
	if err != nil {
		return err
	}

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	//nolint:gosec // Using math/rand for weight initialization (not security-critical)
	mlp, err := nn.NewMLP(*inputs, specs, nn.WithRand(rand.New(rand.NewSource(s))))
	if err != nil {
		return err
	}

	meta := map[string]string{"seed": fmt.Sprint(s)}
	if err := serialization.SaveFile(*out, mlp, meta); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "wrote %s (%d parameters)\n", *out, len(mlp.Parameters()))
	return nil
}

// runInspect prints the header and structure of a .born file.
func runInspect(args []string, stdout io.Writer) error {
	if len(args) != 1 {
		return fmt.Errorf("inspect expects exactly one file\n%w", errUsage)
	}

	mlp, header, err := serialization.LoadFile(args[0])
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	fmt.Fprintf(stdout, "File:       %s\n", args[0])
	fmt.Fprintf(stdout, "Format:     v%d (written by %s)\n", header.FormatVersion, header.Version)
	fmt.Fprintf(stdout, "Created:    %s\n", header.CreatedAt.Format(time.RFC3339))
	fmt.Fprintf(stdout, "Model:      %s\n", header.ModelType)
	for _, k := range slices.Sorted(maps.Keys(header.Metadata)) {
		fmt.Fprintf(stdout, "Metadata:   %s=%s\n", k, header.Metadata[k])
	}
	fmt.Fprintln(stdout, mlp)
	return nil
}
