package structure_test

import (
	"fmt"

	"github.com/i--storm/structures/field"
	"github.com/i--storm/structures/structure"
)

func Example() {
	user := structure.NewType("User").
		MustAdd("age", field.Must(field.Integer(10))).
		MustAdd("nickname", field.Must(field.Text("anonymous"))).
		MustAdd("codes", field.Must(field.List([]any{665, 666, 667})))

	u := user.New()

	age, _ := u.Get("age")
	fmt.Println(age)

	// values pass the field's coercion on assignment
	_ = u.Set("age", 5.2)
	age, _ = u.Get("age")
	fmt.Println(age)

	nickname, _ := u.Get("nickname")
	fmt.Println(nickname)

	codes, _ := u.Get("codes")
	fmt.Println(codes)
	// Output:
	// 10
	// 5
	// anonymous
	// [665 666 667]
}

func ExampleInstance_IsSet() {
	user := structure.NewType("User").
		MustAdd("age", field.Must(field.Integer(10)))

	u := user.New()
	fmt.Println(u.IsSet("age"))

	_ = u.Set("age", 30)
	fmt.Println(u.IsSet("age"))
	// Output:
	// false
	// true
}
