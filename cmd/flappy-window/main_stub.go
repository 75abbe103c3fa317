//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The window build of flappy requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/flappy-window` or build with `-tags ebiten`.")
	fmt.Fprintln(os.Stderr, "For the browser: GOOS=js GOARCH=wasm go build -tags ebiten -o flappy.wasm ./cmd/flappy-window")
	os.Exit(2)
}
