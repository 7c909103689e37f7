package xid_test

import (
	"fmt"

	"github.com/omeyang/xerrlog/pkg/util/xid"
)

func ExampleLookup() {
	fn, ok := xid.Lookup("uuidv7")
	fmt.Println(ok, len(fn()))

	_, ok = xid.Lookup("snowflake")
	fmt.Println(ok)
	// Output:
	// true 36
	// false
}

func ExampleNames() {
	fmt.Println(xid.Names())
	// Output: [millis sonyflake uuid uuidv7]
}
