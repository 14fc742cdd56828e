package strutil_test

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dmitrymomot/textkit/pkg/strutil"
)

func ExampleToASCII() {
	fmt.Println(strutil.ToASCII("Crème brûlée à la française"))
	// Output: Creme brulee a la francaise
}

func ExampleNewASCIIReader() {
	r := strutil.NewASCIIReader(strings.NewReader("Señor Müller\n"))
	if _, err := io.Copy(os.Stdout, r); err != nil {
		fmt.Println(err)
	}
	// Output: Senor Muller
}

func ExampleHyphenize() {
	fmt.Println(strutil.Hyphenize("  hello world  "))
	fmt.Println(strutil.Hyphenize("a   b"))
	// Output:
	// hello-world
	// a--b
}

func ExampleCamelToSnake() {
	fmt.Println(strutil.CamelToSnake("player22"))
	fmt.Println(strutil.CamelToSnake("HTTPServer"))
	// Output:
	// player_22
	// h_t_t_p_server
}

func ExampleSnakeToCamel() {
	fmt.Println(strutil.SnakeToCamel("foo_bar_baz", false))
	fmt.Println(strutil.SnakeToCamel("foo_bar", true))
	// Output:
	// fooBarBaz
	// FooBar
}

func ExampleSanitizeClient() {
	safe, _ := strutil.SanitizeClient(`<a href="x">Tom's</a>`, false)
	fmt.Println(safe)

	_, err := strutil.SanitizeClient("<b>bold</b>", true)
	fmt.Println(errors.Is(err, strutil.ErrNotImplemented))
	// Output:
	// &lt;a href=&quot;x&quot;&gt;Tom&#039;s&lt;/a&gt;
	// true
}

func ExampleSanitizeXML() {
	fmt.Println(strutil.SanitizeXML("fish &amp; chips & <peas>"))
	// Output: fish &amp; chips &amp; &lt;peas>
}

func ExampleIsDate() {
	fmt.Println(strutil.IsDate("02/29/2020", strutil.DefaultDateFormat))
	fmt.Println(strutil.IsDate("02/30/2020", strutil.DefaultDateFormat))
	fmt.Println(strutil.IsDate("2024-02-29", "yyyy-mm-dd"))
	// Output:
	// true
	// false
	// true
}

func ExampleIsFloat() {
	fmt.Println(strutil.IsFloat("3.14"))
	fmt.Println(strutil.IsFloat("3.140"))
	// Output:
	// true
	// false
}
