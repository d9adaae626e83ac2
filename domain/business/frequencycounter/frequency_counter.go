package frequencycounter

import "sort"

// ValueCount amount of times Value was seen
type ValueCount[K comparable] struct {
	Value K
	Count int
}

// FrequencyCounter counts how many times each value appears in a column
// + counters: {value: amount of appearances}
// + order: values in the order they were first seen, used to break ties
type FrequencyCounter[K comparable] struct {
	counters map[K]int
	order    []K
	total    int
}

func NewFrequencyCounter[K comparable]() *FrequencyCounter[K] {
	return &FrequencyCounter[K]{
		counters: make(map[K]int),
	}
}

// NewFrequencyCounterWithData returns a counter that already saw every value of data
func NewFrequencyCounterWithData[K comparable](data []K) *FrequencyCounter[K] {
	fc := NewFrequencyCounter[K]()
	for _, value := range data {
		fc.UpdateCounter(value)
	}
	return fc
}

func (fc *FrequencyCounter[K]) UpdateCounter(value K) {
	if _, ok := fc.counters[value]; !ok {
		fc.order = append(fc.order, value)
	}
	fc.counters[value] += 1
	fc.total += 1
}

func (fc *FrequencyCounter[K]) GetCounter(value K) int {
	return fc.counters[value]
}

// GetTotal returns the amount of values seen
func (fc *FrequencyCounter[K]) GetTotal() int {
	return fc.total
}

// Mode returns the most frequent value. On ties the value seen first wins.
// The bool is false if the counter is empty
func (fc *FrequencyCounter[K]) Mode() (K, int, bool) {
	var mode K
	maxCount := 0
	for _, value := range fc.order {
		if count := fc.counters[value]; count > maxCount {
			mode = value
			maxCount = count
		}
	}
	return mode, maxCount, maxCount > 0
}

// ValueCounts returns every value with its amount of appearances, most frequent first
func (fc *FrequencyCounter[K]) ValueCounts() []ValueCount[K] {
	valueCounts := make([]ValueCount[K], 0, len(fc.order))
	for _, value := range fc.order {
		valueCounts = append(valueCounts, ValueCount[K]{Value: value, Count: fc.counters[value]})
	}

	sort.SliceStable(valueCounts, func(i, j int) bool {
		return valueCounts[i].Count > valueCounts[j].Count
	})
	return valueCounts
}
