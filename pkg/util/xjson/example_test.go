package xjson_test

import (
	"fmt"

	"github.com/omeyang/xerrlog/pkg/util/xjson"
)

func ExamplePretty() {
	type User struct {
		Name string `json:"name"`
		Age  int    `json:"age"`
	}
	fmt.Println(xjson.Pretty(User{Name: "Alice", Age: 30}))
	// Output:
	// {
	//   "name": "Alice",
	//   "age": 30
	// }
}

func ExamplePrettyE() {
	type Record struct {
		Name string   `json:"name"`
		Tags []string `json:"tags"`
	}
	s, err := xjson.PrettyE(Record{Name: "TypeError", Tags: []string{"a", "b"}}, xjson.WithIndent("    "))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(s)
	// Output:
	// {
	//     "name": "TypeError",
	//     "tags": ["a", "b"]
	// }
}
