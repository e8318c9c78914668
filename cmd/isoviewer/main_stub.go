//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "isoviewer needs the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Build with `go build -tags ebiten ./cmd/isoviewer`, or use ./cmd/isoworld for headless generation.")
	os.Exit(2)
}
