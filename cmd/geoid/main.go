// Command geoid - операторский CLI для таблиц географических идентификаторов.
//
//	geoid resolve --level commune --name Lyon
//	geoid name --id 2075
//	geoid search --level region ile
//	geoid export --format yaml
//	geoid seed
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
