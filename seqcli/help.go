package seqcli

import (
	"fmt"

	"oss.terrastruct.com/seqdiag/lib/xmain"
)

func help(ms *xmain.State) {
	fmt.Fprintf(ms.Stdout, `Usage:
  %[1]s [--watch=false] [--pad=100] file.yaml [file.svg]

%[1]s lays out the sequence diagram described by file.yaml and renders it to file.svg.
Use - to have %[1]s read from stdin or write to stdout.

A sequence document lists entities and a tree of activations:

  entities:
    - {id: user, name: User, kind: actor}
    - {id: api, name: API}
  activations:
    - message: {style: sync, from: user, to: api, label: request}
      reply: {label: response}

Message styles are sync, async, lost, found, create and destroy.

Flags:
%[2]s

Subcommands:
  %[1]s version - Print the version
`, ms.Name, ms.Opts.Help())
}
