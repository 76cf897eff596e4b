package logger_test

import (
	"fmt"

	"github.com/philipp01105/taglog/core"
	"github.com/philipp01105/taglog/formatter"
	"github.com/philipp01105/taglog/logger"
	"github.com/philipp01105/taglog/sink"
)

// Log to an in-memory sink with a threshold of Info.
func Example() {
	mem := sink.NewMemory()

	log := logger.NewBuilder().
		WithLevel(logger.InfoLevel).
		WithClock(core.ClockFunc(func() uint64 { return 1500 })).
		WithFormatter(formatter.NewLineFormatter(formatter.Config{DisableColor: true})).
		WithOutputs(mem).
		Build()

	log.Warn("NET", "link down")
	log.Debug("NET", "retry %d", 3)
	log.Info("NET", "link up after %dms", 250)

	for _, line := range mem.Lines() {
		fmt.Println(line)
	}
	// Output:
	//   1500 [W] [NET] link down
	//   1500 [I] [NET] link up after 250ms
}

// Register the console and remove a sink again.
func ExampleLogger_AddOutput() {
	log := logger.New()
	log.AddOutput(sink.Stdout())

	mem := sink.NewMemory()
	log.AddOutput(mem)
	log.AddOutput(mem)
	log.RemoveOutput(mem)

	fmt.Println(log.Outputs())
	// Output:
	// 1
}
