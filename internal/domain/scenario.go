package domain

// Scenario pairs one regex engine with one workload.
// Source is a complete, independently compilable Rust program that performs
// repeated pattern construction and matching to create repeatable memory
// pressure for the profiler to observe.
type Scenario struct {
	Name   string
	Source string
}
