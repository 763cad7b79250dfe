package main

import (
	"os"

	"github.com/llehouerou/looper/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
