package main

import (
	"os"

	"gamehub-backend/internal/facade"
)

func main() {
	f := facade.New(os.Stdout)

	f.Operation1()
	f.Operation2()
}
