package password_test

import (
	"fmt"

	"github.com/quarnos/unixcrypt/password"
)

func ExampleSecure() {
	pw, err := password.Secure(password.DefaultLength)
	if err != nil {
		panic(err)
	}
	fmt.Println(len(pw))
	// Output: 20
}
