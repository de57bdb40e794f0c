package envsub_test

import (
	"os"
	"strings"

	"github.com/lwmacct/260824-go-pkg-envsub/pkg/envsub"
)

// Example 演示基本的流式替换。
func Example() {
	template := "host=${HOST}\nuser=$USER_NAME\n"
	p := envsub.New(strings.NewReader(template), os.Stdout,
		envsub.WithProvider(envsub.Map{
			"HOST":      "localhost",
			"USER_NAME": "root",
		}),
	)
	_ = p.Process()

	// Output:
	// host=localhost
	// user=root
}

// Example_failOnMissing 演示严格模式下未定义变量的报错。
func Example_failOnMissing() {
	p := envsub.New(strings.NewReader("key=${MISSING}"), os.Stdout,
		envsub.WithProvider(envsub.Map{}),
		envsub.WithFailOnMissing(),
	)
	if err := p.Process(); err != nil {
		os.Stdout.WriteString(err.Error() + "\n")
	}

	// Output:
	// key=the variable MISSING is not set
}

// Example_withDelimiter 演示自定义前导字符。
func Example_withDelimiter() {
	p := envsub.New(strings.NewReader("cost=%PRICE dollars"), os.Stdout,
		envsub.WithDelimiter('%'),
		envsub.WithProvider(envsub.Map{"PRICE": "5"}),
	)
	_ = p.Process()

	// Output:
	// cost=5 dollars
}
