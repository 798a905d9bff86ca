// Command generate produces the ent client for the audit-trail schemas into
// gen/ent. Run from the repository root:
//
//	go run ./db/ent
package main

import (
	"log"

	"entgo.io/ent/entc"
	"entgo.io/ent/entc/gen"
)

func main() {
	err := entc.Generate(
		"./db/ent/schema",
		&gen.Config{
			Target:  "gen/ent",
			Package: "github.com/inkspect/docverify/gen/ent",
			Schema:  "github.com/inkspect/docverify/db/ent/schema",
		},
	)
	if err != nil {
		log.Fatal(err)
	}
}
