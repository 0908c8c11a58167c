package metrics

import (
	"errors"
	"fmt"
)

func Example() {
	lines := []string{"load.value 0.42", "broken-line"}
	for _, line := range lines {
		reading, err := ParseReading(line)
		if errors.Is(err, ErrMalformedReading) {
			fmt.Println(err)
			continue
		}
		fmt.Println(Encode("servers", "web1.example.com", "load", reading, Gauge))
	}

	// Output:
	// servers.web1_example_com.load.load-1m:0.42|g
	// skip line 'broken-line': no separator
}

func ExampleEncode() {
	r := Reading{Key: "user", Value: "42"}
	fmt.Println(Encode("servers", "web1.example.com", "cpu.load", r, Counter))

	// Output:
	// servers.web1_example_com.cpu_load.user-1m:42|c
}
