package doc_test

import (
	"encoding/json"
	"fmt"

	"github.com/matzehuels/jsonapi/pkg/doc"
)

func ExampleDecode() {
	body := []byte(`{"data":{"id":"1","type":"articles","attributes":{"title":"Hello"}}}`)

	d, err := doc.Decode[doc.Object](body)
	if err != nil {
		fmt.Println(err)
		return
	}

	obj, _ := d.Data.One()
	fmt.Println(obj.Kind, obj.ID)
	// Output: articles 1
}

func ExampleDocument_Flatten() {
	body := []byte(`{
		"data": {
			"id": "1",
			"type": "articles",
			"attributes": {"title": "Hello"},
			"relationships": {"author": {"data": {"id": "9", "type": "users"}}}
		},
		"included": [
			{"attributes": {"name": "Dan"}, "id": "9", "type": "users"}
		]
	}`)

	d, err := doc.Decode[doc.Object](body)
	if err != nil {
		fmt.Println(err)
		return
	}

	flat, err := d.Flatten()
	if err != nil {
		fmt.Println(err)
		return
	}

	out, _ := json.Marshal(flat)
	fmt.Println(string(out))
	// Output: {"id":"1","title":"Hello","author":{"id":"9","name":"Dan"}}
}
