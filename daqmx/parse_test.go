package daqmx

import (
	"reflect"
	"testing"
)

func TestStringFromBuffer(t *testing.T) {
	buf := make([]byte, LENGTH_DEVICE_NAMES_BUFFER)
	copy(buf, "Dev1, Dev2")
	if got := stringFromBuffer(buf); got != "Dev1, Dev2" {
		t.Errorf("got %q, want %q", got, "Dev1, Dev2")
	}
}

func TestStringFromBufferNoTerminator(t *testing.T) {
	// a name longer than the buffer comes back truncated and unterminated
	buf := []byte("Dev1")
	if got := stringFromBuffer(buf); got != "Dev1" {
		t.Errorf("got %q, want %q", got, "Dev1")
	}
}

func TestStringFromBufferEmpty(t *testing.T) {
	buf := make([]byte, 16)
	if got := stringFromBuffer(buf); got != "" {
		t.Errorf("got %q, want empty string", got)
	}
}

func TestSplitNameList(t *testing.T) {
	tests := []struct {
		name string
		list string
		want []string
	}{
		{"single", "Dev1", []string{"Dev1"}},
		{"multiple", "Dev1, Dev2, Dev3", []string{"Dev1", "Dev2", "Dev3"}},
		{"noSpaces", "Dev1,Dev2", []string{"Dev1", "Dev2"}},
		{"channelNames", "Dev1/ai0, Dev1/ai1", []string{"Dev1/ai0", "Dev1/ai1"}},
		{"empty", "", nil},
		{"whitespaceOnly", "   ", nil},
		{"trailingComma", "Dev1,", []string{"Dev1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := splitNameList(tt.list); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitNameList(%q) = %v, want %v", tt.list, got, tt.want)
			}
		})
	}
}

func TestSplitNameListIdempotent(t *testing.T) {
	// splitting an already split element must yield the element itself
	for _, name := range splitNameList("Dev1, Dev2/ai0, Dev3") {
		if got := splitNameList(name); !reflect.DeepEqual(got, []string{name}) {
			t.Errorf("splitNameList(%q) = %v, want %v", name, got, []string{name})
		}
	}
}

func TestSplitNameListMatchesDriverBuffer(t *testing.T) {
	// a driver-filled fixed buffer splits the same as the literal string
	buf := make([]byte, LENGTH_DEVICE_NAMES_BUFFER)
	copy(buf, "Dev1, Dev2")
	if got, want := splitNameList(stringFromBuffer(buf)), splitNameList("Dev1, Dev2"); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRangePairs(t *testing.T) {
	values := make([]float64, MAX_RANGE_VALUES)
	copy(values, []float64{-10, 10, -5, 5, -0.2, 0.2})

	want := []Range{{-10, 10}, {-5, 5}, {-0.2, 0.2}}
	if got := rangePairs(values); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRangePairsEmpty(t *testing.T) {
	values := make([]float64, MAX_RANGE_VALUES)
	if got := rangePairs(values); got != nil {
		t.Errorf("got %v, want nil", got)
	}
}

func TestRangePairsOneSided(t *testing.T) {
	// unipolar ranges keep one element at zero and must still count
	values := make([]float64, 8)
	copy(values, []float64{0, 10, -10, 0})

	want := []Range{{0, 10}, {-10, 0}}
	if got := rangePairs(values); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRangePairsSkipsInteriorZeroPair(t *testing.T) {
	// zeroed slots are filtered wherever they sit, later pairs survive
	values := []float64{-10, 10, 0, 0, -5, 5}
	want := []Range{{-10, 10}, {-5, 5}}
	if got := rangePairs(values); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRangePairsOddLength(t *testing.T) {
	// a stray trailing value cannot form a pair
	values := []float64{-10, 10, 42}
	want := []Range{{-10, 10}}
	if got := rangePairs(values); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
