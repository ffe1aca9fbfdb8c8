/*
Copyright 2019 Alexander Eldeib.
*/

package main

import (
	"fmt"
	"os"
)

var version string

func main() {
	if err := NewRootCommand(version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}
}
