package form_test

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/rules"
)

func Example() {
	f := form.New(form.WithInitialValues(form.Values{"email": ""}))
	defer f.Close()

	f.UpdateFieldRules("email", []form.Rule{
		rules.Required(),
		rules.Email(),
	})

	if _, err := f.Validate(context.Background()); err != nil {
		fmt.Println(err)
	}

	f.UpdateField("email", "gopher@example.com")

	values, err := f.Validate(context.Background())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(values["email"])

	// Output:
	// email: This field is required
	// gopher@example.com
}
