package model

import (
	"math/rand"
	"reflect"
	"strings"
	"testing"
)

func step(text string) string {
	grid := ParseGrid(text)
	return grid.Next(grid.CountNeighbors())
}

func TestParseGrid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Grid
	}{
		{"empty input", "", Grid{{}}},
		{"single row", "010", Grid{{'0', '1', '0'}}},
		{"lf rows", "01\n10", Grid{{'0', '1'}, {'1', '0'}}},
		{"crlf rows", "01\r\n10", Grid{{'0', '1'}, {'1', '0'}}},
		{"trailing newline", "1\n", Grid{{'1'}, {}}},
		{"lone carriage return stays a cell", "a\r\nb\r", Grid{{'a'}, {'b', '\r'}}},
		{"ragged rows", "111\n1", Grid{{'1', '1', '1'}, {'1'}}},
		{"any character is a cell", "x.1", Grid{{'x', '.', '1'}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseGrid(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseGrid(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseGridStringRoundTrip(t *testing.T) {
	for _, text := range []string{"", "0", "0110\n1001\n", "01110\n00000\n\n1"} {
		if got := ParseGrid(text).String(); got != text {
			t.Errorf("ParseGrid(%q).String() = %q", text, got)
		}
	}

	out := step("00000\n00000\n01110\n00000\n00000")
	if got := ParseGrid(out).String(); got != out {
		t.Errorf("round trip of generation output drifted: %q != %q", got, out)
	}
}

func TestIsAliveOutOfRange(t *testing.T) {
	grid := ParseGrid("11\n1")
	for _, pos := range [][2]int{{-1, 0}, {0, -1}, {0, 2}, {1, 1}, {2, 0}} {
		if grid.IsAlive(pos[0], pos[1]) {
			t.Errorf("IsAlive(%d, %d) = true for a position outside the grid", pos[0], pos[1])
		}
	}
	if !grid.IsAlive(1, 0) {
		t.Error("IsAlive(1, 0) = false, want true")
	}
}

func TestCountNeighbors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Counts
	}{
		{"empty", "", Counts{{}}},
		{"lone cell", "000\n010\n000", Counts{{1, 1, 1}, {1, 0, 1}, {1, 1, 1}}},
		{"full", "111\n111\n111", Counts{{3, 5, 3}, {5, 8, 5}, {3, 5, 3}}},
		{"ragged", "111\n1", Counts{{2, 3, 1}, {2}}},
		{"short middle row", "111\n1\n111", Counts{{2, 3, 1}, {4}, {2, 3, 1}}},
		{"only ones count", "x2x\nx1x\nxxx", Counts{{1, 1, 1}, {1, 0, 1}, {1, 1, 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseGrid(tt.input).CountNeighbors(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("CountNeighbors(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestCountNeighborsParallelMatchesSequential(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	rows := make([]string, 37)
	for i := range rows {
		var b strings.Builder
		for range 1 + r.Intn(40) {
			b.WriteByte('0' + byte(r.Intn(2)))
		}
		rows[i] = b.String()
	}
	grid := ParseGrid(strings.Join(rows, "\n"))

	want := grid.CountNeighbors()
	for _, workers := range []int{0, 2, 3, 8, 64} {
		got := grid.CountNeighborsParallel(workers)
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("CountNeighborsParallel(%d) differs from CountNeighbors", workers)
		}
		if next := grid.NextParallel(got, workers); next != grid.Next(want) {
			t.Fatalf("NextParallel(%d) differs from Next", workers)
		}
	}
}

func TestNext(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "block is a still life",
			input: "0000\n0110\n0110\n0000",
			want:  "0000\n0110\n0110\n0000",
		},
		{
			name:  "blinker turns vertical",
			input: "00000\n00000\n01110\n00000\n00000",
			want:  "00000\n00100\n00100\n00100\n00000",
		},
		{
			name:  "lonely corner cell dies",
			input: "100\n000\n000",
			want:  "000\n000\n000",
		},
		{
			name:  "birth from three neighbors",
			input: "110\n100\n000",
			want:  "110\n110\n000",
		},
		{
			name:  "overcrowded center dies",
			input: "111\n111\n111",
			want:  "101\n000\n101",
		},
		{
			name:  "ragged rows treat missing cells as dead",
			input: "111\n1",
			want:  "110\n1",
		},
		{
			name:  "unknown characters become dead",
			input: "x1x\nx1x\nx1x",
			want:  "000\n111\n000",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "trailing newline keeps its empty row",
			input: "010\n",
			want:  "000\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := step(tt.input); got != tt.want {
				t.Errorf("next generation of %q = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestBlinkerOscillates(t *testing.T) {
	horizontal := "00000\n00000\n01110\n00000\n00000"
	vertical := step(horizontal)
	if vertical == horizontal {
		t.Fatal("blinker did not change after one generation")
	}
	if got := step(vertical); got != horizontal {
		t.Errorf("blinker after two generations = %q, want %q", got, horizontal)
	}
}

func TestNextDoesNotMutateGrid(t *testing.T) {
	grid := ParseGrid("010\n010\n010")
	before := grid.String()
	grid.Next(grid.CountNeighbors())
	if grid.String() != before {
		t.Error("Next modified the source grid")
	}
}
