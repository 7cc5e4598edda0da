// Command houseprice is a CLI for estimating house prices from area using
// simple linear regression over a locally stored listing collection.
package main

import (
	"os"

	"github.com/husein14azimi/house-price-prediction-simple-lr/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
