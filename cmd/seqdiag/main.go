package main

import (
	"oss.terrastruct.com/seqdiag/lib/xmain"
	"oss.terrastruct.com/seqdiag/seqcli"
)

func main() {
	xmain.Main(seqcli.Run)
}
