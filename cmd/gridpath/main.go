// Command gridpath finds least-cost routes on text maps.
//
//	gridpath solve --map level.txt --from 0,0 --to 9,4
//	gridpath islands --map level.txt
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
