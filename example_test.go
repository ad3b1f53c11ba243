package typid_test

import (
	"encoding/json"
	"fmt"

	"github.com/PsichiX/typid"
)

type User struct {
	ID typid.ID[User] `json:"id"`
}

type Order struct {
	ID typid.ID[Order] `json:"id"`
}

func ExampleNew() {
	a := User{ID: typid.New[User]()}
	b := User{ID: typid.New[User]()}

	fmt.Println(a.ID == b.ID)
	// Output: false
}

func ExampleParse() {
	id, err := typid.Parse[User]("550e8400-e29b-41d4-a716-446655440000")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(id)
	// Output: 550e8400-e29b-41d4-a716-446655440000
}

func ExampleParse_invalid() {
	_, err := typid.Parse[User]("not-a-uuid")
	fmt.Println(err)
	// Output: typid: invalid identifier "not-a-uuid": invalid UUID length: 10
}

func ExampleFromBytes() {
	id := typid.FromBytes[Order]([16]byte{
		0x55, 0x0e, 0x84, 0x00, 0xe2, 0x9b, 0x41, 0xd4,
		0xa7, 0x16, 0x44, 0x66, 0x55, 0x44, 0x00, 0x00,
	})
	fmt.Println(id)
	// Output: 550e8400-e29b-41d4-a716-446655440000
}

func ExampleID_MarshalJSON() {
	order := Order{ID: typid.MustParse[Order]("550e8400-e29b-41d4-a716-446655440000")}

	data, err := json.Marshal(order)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(string(data))
	// Output: {"id":"550e8400-e29b-41d4-a716-446655440000"}
}
