// Command gognn builds, stores and runs SchNet models.
//
//	gognn init --config model.yaml --out weights.zst
//	gognn predict --config model.yaml --weights weights.zst --input structures.json
//	gognn exponent O 2p
//	gognn scaler --input energies.json
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
