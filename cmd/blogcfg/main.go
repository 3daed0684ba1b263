// Command blogcfg generates the site configuration files of a blog built
// with an external static-site framework.
package main

import (
	"os"

	"git.home.luguber.info/inful/blogcfg/cmd/blogcfg/commands"
)

func main() {
	os.Exit(commands.Main(os.Args[1:], os.Stdout, os.Stderr))
}
