// cmd/neoscan-inspect/main.go
package main

import (
	"bytes"
	"fmt"
	"os"

	"neoscan/internal/inspectapp"
)

func main() {
	var out, errBuf bytes.Buffer
	code := inspectapp.Run(os.Args[1:], &out, &errBuf)

	if out.Len() > 0 {
		fmt.Print(out.String())
	}
	if errBuf.Len() > 0 {
		fmt.Fprint(os.Stderr, errBuf.String())
	}
	os.Exit(code)
}
