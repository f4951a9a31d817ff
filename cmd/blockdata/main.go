package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	get "github.com/hashicorp/go-getter"
)

// blockdata downloads material/block definition data from a git source so
// custom registries can be assembled offline.
func main() {
	var (
		base = flag.String("base", "https://github.com/PrismarineJS/minecraft-data.git", "base url")
		set  = flag.String("set", "pc", "data set within the repository")
		ver  = flag.String("version", "1.8", "data version")
		out  = flag.String("o", "./materials", "output dir path")
	)
	flag.Parse()

	if *out == "" {
		fmt.Fprintln(os.Stderr, "error: output dir path required")
		os.Exit(1)
	}
	if *set == "" || *ver == "" {
		fmt.Fprintln(os.Stderr, "error: data set and version required")
		os.Exit(1)
	}

	path := fmt.Sprintf("%s/%s-%s", *out, *set, *ver)
	if err := os.RemoveAll(path); err != nil {
		log.Fatal(err)
	}

	log.Printf("downloading block data into %s", path)

	url := fmt.Sprintf("git::%s//data/%s/%s", *base, *set, *ver)
	if err := get.Get(path, url); err != nil {
		log.Fatal(err)
	}

	log.Printf("done downloading block data into %s", path)
}
