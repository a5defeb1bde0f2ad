/*
Package sprite packs a set of icons into a single sprite sheet, rendered once per
requested pixel ratio, together with a JSON manifest describing where every icon
landed inside the sheet.

The package provides a command line interface, supporting various flags for the
output name, the icon directories and the pixel ratios. To check the supported
commands type:

	$ sprite --help

In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"context"
		"fmt"

		"github.com/esimov/sprite"
	)

	func main() {
		loader := &sprite.Loader{}
		res, err := loader.Load(context.Background(), "icons", "icons-extra")
		if err != nil {
			fmt.Printf("Error loading icons: %s", err.Error())
			return
		}

		gen := &sprite.Generator{Ratios: []float64{1, 2}}
		if _, err := gen.Run(context.Background(), res.Icons, "dist/sprite", sprite.FileWriter{}); err != nil {
			fmt.Printf("Error generating sprites: %s", err.Error())
		}
	}

The sheet is packed once, in ratio 1 units. Every ratio scales the same layout,
so the manifests of all ratios describe the same arrangement.
*/
package sprite
