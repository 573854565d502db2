package main

import (
	. "github.com/saylorsolutions/modmake"
)

const (
	rdtokenVersion = "0.1.0"
)

func main() {
	b := NewBuild()
	b.Generate().DependsOnRunner("tidy", "", Go().ModTidy())

	rdtoken := NewAppBuild("rdtoken", "cmd/rdtoken", rdtokenVersion)
	rdtoken.Build(func(gb *GoBuild) {
		gb.
			StripDebugSymbols().
			SetVariable("main", "version", rdtokenVersion).
			CgoEnabled(false)
	})
	rdtoken.Variant("windows", "amd64")
	rdtoken.Variant("linux", "amd64")
	rdtoken.Variant("linux", "arm64")
	rdtoken.Variant("darwin", "amd64")
	rdtoken.Variant("darwin", "arm64")
	b.ImportApp(rdtoken)

	b.Execute()
}
